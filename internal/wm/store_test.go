package wm

import "testing"

func TestStore_ReadsReturnCopies(t *testing.T) {
	m, _ := newTestManager(t, 1280, 800, desktopApps(), Options{})

	rec := mustGet(t, m, "about")
	rec.Open = false
	rec.Position = Point{X: 999, Y: 999}

	all := m.All()
	all[0].Z = 500

	got := mustGet(t, m, "about")
	if !got.Open || got.Position != (Point{X: 150, Y: 100}) || got.Z != 11 {
		t.Fatalf("store mutated through a copy: %+v", got)
	}
}

func TestStore_PutIgnoresUnknownIDs(t *testing.T) {
	s := newStore([]App{{ID: "about"}})
	s.put(Record{ID: "intruder", Open: true})

	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	if _, ok := s.Get("intruder"); ok {
		t.Fatalf("Get(intruder) found a record, want none")
	}
}

func TestRect_ContainsExcludesFarEdges(t *testing.T) {
	r := Rect{Point: Point{X: 10, Y: 5}, Size: Size{Width: 4, Height: 2}}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{X: 10, Y: 5}, true},
		{Point{X: 13, Y: 6}, true},
		{Point{X: 14, Y: 5}, false},
		{Point{X: 10, Y: 7}, false},
		{Point{X: 9, Y: 5}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Fatalf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestTracker_Set(t *testing.T) {
	tr := NewTracker(80, 24)

	if tr.Set(80, 24) {
		t.Fatalf("Set(same) = true, want false")
	}
	if !tr.Set(120, 40) {
		t.Fatalf("Set(new) = false, want true")
	}
	if got := tr.Size(); got != (Size{Width: 120, Height: 40}) {
		t.Fatalf("Size = %+v, want {120 40}", got)
	}
	tr.Set(-5, 10)
	if got := tr.Size(); got != (Size{Width: 0, Height: 10}) {
		t.Fatalf("Size = %+v, want {0 10}", got)
	}
}

func TestViewportFunc_ReadAtCallTime(t *testing.T) {
	width := 1000
	vp := ViewportFunc(func() Size { return Size{Width: width, Height: 800} })
	m := New([]App{{ID: "about", DefaultSize: Size{Width: 400, Height: 300}}}, Options{Viewport: vp})

	width = 500
	m.Move("about", Point{X: 400, Y: 0})
	if got := mustGet(t, m, "about").Position; got != (Point{X: 100, Y: 0}) {
		t.Fatalf("Position = %+v, want {100 0}", got)
	}
}

package mobile

import "testing"

var apps = []string{"about", "portfolio", "contact", "notes", "systeminfo"}

func TestShell_LaunchAndHome(t *testing.T) {
	s := New(apps, Options{})

	if s.Screen() != ScreenHome {
		t.Fatalf("Screen = %v, want home", s.Screen())
	}
	if !s.Launch("contact") {
		t.Fatalf("Launch(contact) = false, want true")
	}
	if id, ok := s.Foreground(); !ok || id != "contact" {
		t.Fatalf("Foreground = %q, %v, want contact", id, ok)
	}

	// Launching another app replaces the foreground directly.
	s.Launch("notes")
	if id, _ := s.Foreground(); id != "notes" {
		t.Fatalf("Foreground = %q, want notes", id)
	}
	if sel, _ := s.Selected(); sel != "notes" {
		t.Fatalf("Selected = %q, want notes", sel)
	}

	s.Home()
	if s.Screen() != ScreenHome {
		t.Fatalf("Screen after Home = %v, want home", s.Screen())
	}
	if _, ok := s.Foreground(); ok {
		t.Fatalf("Foreground still set after Home")
	}
}

func TestShell_LaunchUnknownIsIgnored(t *testing.T) {
	s := New(apps, Options{})
	s.Launch("about")

	if s.Launch("solitaire") {
		t.Fatalf("Launch(solitaire) = true, want false")
	}
	if id, _ := s.Foreground(); id != "about" {
		t.Fatalf("Foreground = %q, want about unchanged", id)
	}
}

func TestShell_SwipeUpCloses(t *testing.T) {
	tests := []struct {
		name      string
		from, to  int
		wantClose bool
	}{
		{"long swipe", 30, 20, true},
		{"just past threshold", 30, 27, true},
		{"exactly threshold", 30, 28, false},
		{"downward", 20, 30, false},
		{"tap", 30, 30, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(apps, Options{})
			s.Launch("about")
			s.BeginSwipe(tt.from)
			if !s.Swiping() {
				t.Fatalf("Swiping = false after BeginSwipe")
			}
			if got := s.EndSwipe(tt.to); got != tt.wantClose {
				t.Fatalf("EndSwipe(%d) = %v, want %v", tt.to, got, tt.wantClose)
			}
			if got := s.Screen() == ScreenHome; got != tt.wantClose {
				t.Fatalf("home = %v, want %v", got, tt.wantClose)
			}
			if s.Swiping() {
				t.Fatalf("Swiping = true after EndSwipe")
			}
		})
	}
}

func TestShell_SwipeOnHomeIsIgnored(t *testing.T) {
	s := New(apps, Options{})
	s.BeginSwipe(30)
	if s.Swiping() {
		t.Fatalf("Swiping = true on the home screen")
	}
	if s.EndSwipe(0) {
		t.Fatalf("EndSwipe = true without a swipe")
	}
}

func TestShell_CancelSwipe(t *testing.T) {
	s := New(apps, Options{SwipeThreshold: 5})
	s.Launch("about")
	s.BeginSwipe(30)
	s.CancelSwipe()

	if s.EndSwipe(0) {
		t.Fatalf("EndSwipe after Cancel = true, want false")
	}
	if s.Screen() != ScreenForeground {
		t.Fatalf("Screen = %v, want foreground", s.Screen())
	}
}

func TestShell_MoveSelection(t *testing.T) {
	s := New(apps, Options{})

	steps := []struct {
		dx, dy int
		want   string
	}{
		{1, 0, "portfolio"},
		{1, 0, "contact"},
		{1, 0, "contact"},
		{0, 1, "systeminfo"},
		{0, 1, "systeminfo"},
		{-1, 0, "notes"},
		{0, -1, "about"},
		{0, -1, "about"},
	}
	for i, step := range steps {
		s.MoveSelection(step.dx, step.dy)
		if got, _ := s.Selected(); got != step.want {
			t.Fatalf("step %d: Selected = %q, want %q", i, got, step.want)
		}
	}

	s.MoveSelection(2, 0)
	if !s.LaunchSelected() {
		t.Fatalf("LaunchSelected = false, want true")
	}
	if id, _ := s.Foreground(); id != "contact" {
		t.Fatalf("Foreground = %q, want contact", id)
	}
}

func TestShell_Cell(t *testing.T) {
	s := New(apps, Options{})
	if col, row := s.Cell(4); col != 1 || row != 1 {
		t.Fatalf("Cell(4) = %d,%d, want 1,1", col, row)
	}
	if s.Columns() != DefaultColumns {
		t.Fatalf("Columns = %d, want %d", s.Columns(), DefaultColumns)
	}
}

func TestScreen_String(t *testing.T) {
	if ScreenHome.String() != "home" || ScreenForeground.String() != "foreground" || Screen(7).String() != "unknown" {
		t.Fatalf("unexpected Screen names")
	}
}

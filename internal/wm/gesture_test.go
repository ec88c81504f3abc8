package wm

import "testing"

func dragFixture(t *testing.T) (*Manager, *Handler) {
	t.Helper()
	apps := []App{
		{ID: "about", DefaultSize: Size{Width: 400, Height: 300}},
		{ID: "notes", DefaultSize: Size{Width: 400, Height: 300}},
	}
	m, _ := newTestManager(t, 1000, 800, apps, Options{})
	m.Move("about", Point{X: 100, Y: 100})
	return m, NewHandler("about", m)
}

func TestDrag_ProducesLiveClampedPositions(t *testing.T) {
	m, h := dragFixture(t)

	if !h.BeginDrag(Point{X: 120, Y: 105}) {
		t.Fatalf("BeginDrag = false, want true")
	}
	h.Move(Point{X: 120 + 5000, Y: 105 + 5000})

	if got := mustGet(t, m, "about").Position; got != (Point{X: 600, Y: 500}) {
		t.Fatalf("Position = %+v, want {600 500}", got)
	}
}

func TestDrag_AppliesEveryMove(t *testing.T) {
	m, h := dragFixture(t)
	h.BeginDrag(Point{X: 110, Y: 100})

	steps := []struct {
		pointer Point
		want    Point
	}{
		{Point{X: 120, Y: 110}, Point{X: 110, Y: 110}},
		{Point{X: 100, Y: 90}, Point{X: 90, Y: 90}},
		{Point{X: -500, Y: 100}, Point{X: 0, Y: 100}},
		{Point{X: 110, Y: 100}, Point{X: 100, Y: 100}},
	}
	for _, step := range steps {
		h.Move(step.pointer)
		if got := mustGet(t, m, "about").Position; got != step.want {
			t.Fatalf("Move(%+v) position = %+v, want %+v", step.pointer, got, step.want)
		}
	}
}

func TestDrag_FocusesBeforeMoving(t *testing.T) {
	m, h := dragFixture(t)
	m.Open("notes")
	if top, _ := m.Topmost(); top.ID != "notes" {
		t.Fatalf("Topmost = %s, want notes", top.ID)
	}

	h.BeginDrag(Point{X: 100, Y: 100})
	if top, _ := m.Topmost(); top.ID != "about" {
		t.Fatalf("Topmost after BeginDrag = %s, want about", top.ID)
	}
	if got := mustGet(t, m, "about").Position; got != (Point{X: 100, Y: 100}) {
		t.Fatalf("Position = %+v, want unchanged before the first move", got)
	}
}

func TestResizeGesture_AnchorsOnStartSize(t *testing.T) {
	m, h := dragFixture(t)

	if !h.BeginResize(Point{X: 499, Y: 399}) {
		t.Fatalf("BeginResize = false, want true")
	}
	h.Move(Point{X: 549, Y: 419})
	if got := mustGet(t, m, "about").Size; got != (Size{Width: 450, Height: 320}) {
		t.Fatalf("Size = %+v, want {450 320}", got)
	}
	h.Move(Point{X: 0, Y: 0})
	if got := mustGet(t, m, "about").Size; got != (Size{Width: 320, Height: 240}) {
		t.Fatalf("Size = %+v, want floor {320 240}", got)
	}
	if got := mustGet(t, m, "about").Position; got != (Point{X: 100, Y: 100}) {
		t.Fatalf("Position = %+v, want resize to leave position alone", got)
	}
}

func TestHandler_OneGestureAtATime(t *testing.T) {
	m, h := dragFixture(t)

	h.BeginResize(Point{X: 499, Y: 399})
	if h.BeginDrag(Point{X: 499, Y: 399}) {
		t.Fatalf("BeginDrag during resize = true, want false")
	}
	if h.Active() != GestureResize {
		t.Fatalf("Active = %v, want resize", h.Active())
	}

	h.Move(Point{X: 509, Y: 409})
	rec := mustGet(t, m, "about")
	if rec.Position != (Point{X: 100, Y: 100}) {
		t.Fatalf("Position = %+v, want the press to belong to the resize only", rec.Position)
	}
	if rec.Size != (Size{Width: 410, Height: 310}) {
		t.Fatalf("Size = %+v, want {410 310}", rec.Size)
	}

	h.End()
	if h.Active() != GestureNone {
		t.Fatalf("Active after End = %v, want none", h.Active())
	}
	if !h.BeginDrag(Point{}) {
		t.Fatalf("BeginDrag after End = false, want true")
	}
}

func TestHandler_MoveWithoutGestureIsNoop(t *testing.T) {
	m, h := dragFixture(t)
	before := mustGet(t, m, "about")

	h.Move(Point{X: 900, Y: 900})
	if got := mustGet(t, m, "about"); got != before {
		t.Fatalf("record changed without a gesture: %+v", got)
	}
}

func TestHandler_UnknownWindow(t *testing.T) {
	m, _ := dragFixture(t)
	h := NewHandler("ghost", m)

	if h.BeginDrag(Point{}) {
		t.Fatalf("BeginDrag on unknown window = true, want false")
	}
	if h.ID() != "ghost" {
		t.Fatalf("ID = %q, want ghost", h.ID())
	}
}

func TestHandler_MaximizedWindowIgnoresDrag(t *testing.T) {
	m, h := dragFixture(t)
	m.ToggleMaximize("about")

	h.BeginDrag(Point{X: 10, Y: 0})
	h.Move(Point{X: 300, Y: 300})

	if got := mustGet(t, m, "about").Position; got != (Point{}) {
		t.Fatalf("Position = %+v, want pinned origin", got)
	}
}

func TestHandlers_IndependentPerWindow(t *testing.T) {
	m, about := dragFixture(t)
	m.Open("notes")
	m.Move("notes", Point{X: 500, Y: 400})
	notes := NewHandler("notes", m)

	about.BeginDrag(Point{X: 100, Y: 100})
	notes.BeginResize(Point{X: 899, Y: 699})
	about.Move(Point{X: 110, Y: 120})
	notes.Move(Point{X: 879, Y: 689})

	if got := mustGet(t, m, "about").Position; got != (Point{X: 110, Y: 120}) {
		t.Fatalf("about.Position = %+v, want {110 120}", got)
	}
	if got := mustGet(t, m, "notes").Size; got != (Size{Width: 380, Height: 290}) {
		t.Fatalf("notes.Size = %+v, want {380 290}", got)
	}
}

func TestCapture_DispatchesToOwnerOnly(t *testing.T) {
	m, h := dragFixture(t)
	var c Capture

	if c.Dispatch(Point{X: 1, Y: 1}) {
		t.Fatalf("Dispatch without owner = true, want false")
	}

	h.BeginDrag(Point{X: 100, Y: 100})
	c.Acquire(h)
	if !c.Held() || c.Owner() != h {
		t.Fatalf("Held = %v owner = %v, want the drag handler", c.Held(), c.Owner())
	}
	if !c.Dispatch(Point{X: 150, Y: 130}) {
		t.Fatalf("Dispatch = false, want true")
	}
	if got := mustGet(t, m, "about").Position; got != (Point{X: 150, Y: 130}) {
		t.Fatalf("Position = %+v, want {150 130}", got)
	}
}

func TestCapture_ReleaseEndsGesture(t *testing.T) {
	m, h := dragFixture(t)
	var c Capture

	h.BeginDrag(Point{X: 100, Y: 100})
	c.Acquire(h)
	c.Dispatch(Point{X: 140, Y: 100})
	c.Release()

	if c.Held() {
		t.Fatalf("Held after Release = true, want false")
	}
	if h.Active() != GestureNone {
		t.Fatalf("Active after Release = %v, want none", h.Active())
	}
	if c.Dispatch(Point{X: 900, Y: 900}) {
		t.Fatalf("Dispatch after Release = true, want false")
	}
	if got := mustGet(t, m, "about").Position; got != (Point{X: 140, Y: 100}) {
		t.Fatalf("Position = %+v, want the last applied move kept", got)
	}

	// Releasing twice is harmless.
	c.Release()
	c.Cancel()
}

func TestCapture_CancelKeepsAppliedMoves(t *testing.T) {
	m, h := dragFixture(t)
	var c Capture

	h.BeginDrag(Point{X: 100, Y: 100})
	c.Acquire(h)
	c.Dispatch(Point{X: 100, Y: 160})
	c.Cancel()

	if c.Held() || h.Active() != GestureNone {
		t.Fatalf("capture still held after Cancel")
	}
	if got := mustGet(t, m, "about").Position; got != (Point{X: 100, Y: 160}) {
		t.Fatalf("Position = %+v, want {100 160}", got)
	}
}

func TestCapture_AcquireDropsStaleOwner(t *testing.T) {
	m, about := dragFixture(t)
	m.Open("notes")
	notes := NewHandler("notes", m)
	var c Capture

	about.BeginDrag(Point{X: 100, Y: 100})
	c.Acquire(about)

	// The release for the first press never arrived.
	notes.BeginDrag(Point{X: 200, Y: 200})
	c.Acquire(notes)

	if about.Active() != GestureNone {
		t.Fatalf("stale owner Active = %v, want none", about.Active())
	}
	if c.Owner() != notes {
		t.Fatalf("Owner = %v, want notes handler", c.Owner())
	}
	before := mustGet(t, m, "about").Position
	c.Dispatch(Point{X: 250, Y: 260})
	if got := mustGet(t, m, "about").Position; got != before {
		t.Fatalf("stale owner moved to %+v", got)
	}
}

func TestGestureKind_String(t *testing.T) {
	tests := map[GestureKind]string{
		GestureNone:    "none",
		GestureDrag:    "drag",
		GestureResize:  "resize",
		GestureKind(9): "unknown",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Fatalf("GestureKind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}

package wm

// Controller is the subset of Manager a gesture handler drives.
type Controller interface {
	Get(id string) (Record, bool)
	Focus(id string)
	Move(id string, p Point)
	Resize(id string, s Size)
}

// GestureKind identifies what a pointer gesture manipulates.
type GestureKind int

const (
	// GestureNone means no gesture is in progress.
	GestureNone GestureKind = iota
	// GestureDrag moves the window from its title bar.
	GestureDrag
	// GestureResize resizes the window from its corner handle.
	GestureResize
)

// String returns the string representation of the gesture kind.
func (k GestureKind) String() string {
	switch k {
	case GestureNone:
		return "none"
	case GestureDrag:
		return "drag"
	case GestureResize:
		return "resize"
	default:
		return "unknown"
	}
}

// gesture is the snapshot taken at pointer-down. It lives until the gesture
// ends and is never shared.
type gesture struct {
	kind         GestureKind
	pointerStart Point
	windowStart  Point
	sizeStart    Size
}

// Handler turns one window's pointer gestures into Focus, Move and Resize
// calls. Every move is applied immediately; there is no preview or commit
// step. The handler never clamps, the controller does.
type Handler struct {
	id     string
	ctl    Controller
	active *gesture
}

// NewHandler returns the handler for window id.
func NewHandler(id string, ctl Controller) *Handler {
	return &Handler{id: id, ctl: ctl}
}

// ID returns the window the handler belongs to.
func (h *Handler) ID() string {
	return h.id
}

// Active reports the gesture in progress.
func (h *Handler) Active() GestureKind {
	if h.active == nil {
		return GestureNone
	}
	return h.active.kind
}

// BeginDrag starts a drag at pointer position p and raises the window before
// any movement. It reports false when another gesture is already running or
// the window is unknown.
func (h *Handler) BeginDrag(p Point) bool {
	return h.begin(GestureDrag, p)
}

// BeginResize starts a resize from the corner handle. The press belongs to
// the resize exclusively; no drag starts from it.
func (h *Handler) BeginResize(p Point) bool {
	return h.begin(GestureResize, p)
}

func (h *Handler) begin(kind GestureKind, p Point) bool {
	if h.active != nil {
		return false
	}
	rec, ok := h.ctl.Get(h.id)
	if !ok {
		return false
	}
	h.ctl.Focus(h.id)
	h.active = &gesture{
		kind:         kind,
		pointerStart: p,
		windowStart:  rec.Position,
		sizeStart:    rec.Size,
	}
	return true
}

// Move applies the delta between p and the gesture start.
func (h *Handler) Move(p Point) {
	g := h.active
	if g == nil {
		return
	}
	delta := p.Sub(g.pointerStart)
	switch g.kind {
	case GestureDrag:
		h.ctl.Move(h.id, g.windowStart.Add(delta))
	case GestureResize:
		h.ctl.Resize(h.id, Size{
			Width:  g.sizeStart.Width + delta.X,
			Height: g.sizeStart.Height + delta.Y,
		})
	}
}

// End finishes the gesture. Moves already applied stay applied.
func (h *Handler) End() {
	h.active = nil
}

// Cancel aborts the gesture. Since movement is live it behaves like End.
func (h *Handler) Cancel() {
	h.active = nil
}

// Capture routes pointer events to the one handler that owns the current
// gesture, standing in for a document-wide pointer listener. Release must be
// reached on every way a gesture can end; Acquire releases any stale owner
// first so a listener never outlives its gesture.
type Capture struct {
	owner *Handler
}

// Acquire makes h the owner of subsequent pointer events.
func (c *Capture) Acquire(h *Handler) {
	if c.owner != nil && c.owner != h {
		c.owner.Cancel()
	}
	c.owner = h
}

// Held reports whether a handler currently owns the pointer.
func (c *Capture) Held() bool {
	return c.owner != nil
}

// Owner returns the capturing handler, or nil.
func (c *Capture) Owner() *Handler {
	return c.owner
}

// Dispatch forwards a pointer move to the owner. It reports whether the
// event was consumed.
func (c *Capture) Dispatch(p Point) bool {
	if c.owner == nil {
		return false
	}
	c.owner.Move(p)
	return true
}

// Release ends the owner's gesture and drops the capture.
func (c *Capture) Release() {
	if c.owner == nil {
		return
	}
	c.owner.End()
	c.owner = nil
}

// Cancel aborts the owner's gesture and drops the capture.
func (c *Capture) Cancel() {
	if c.owner == nil {
		return
	}
	c.owner.Cancel()
	c.owner = nil
}

package wm

// Viewport reports the current drawable area. Implementations are read on
// every move and resize so a stale size is never used for clamping.
type Viewport interface {
	Size() Size
}

// ViewportFunc adapts a function to the Viewport interface.
type ViewportFunc func() Size

// Size implements Viewport.
func (f ViewportFunc) Size() Size {
	return f()
}

// Tracker holds the last observed viewport dimensions. The UI feeds it from
// terminal resize events.
type Tracker struct {
	size Size
}

// NewTracker returns a Tracker seeded with the given dimensions.
func NewTracker(width, height int) *Tracker {
	return &Tracker{size: Size{Width: width, Height: height}}
}

// Size implements Viewport.
func (t *Tracker) Size() Size {
	return t.size
}

// Set records new viewport dimensions. Negative values are treated as zero.
// It reports whether the size changed.
func (t *Tracker) Set(width, height int) bool {
	next := Size{Width: max(0, width), Height: max(0, height)}
	if next == t.size {
		return false
	}
	t.size = next
	return true
}

package wm

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// OpenPolicy decides what Open does for a window that is already open.
type OpenPolicy int

const (
	// OpenToggle closes an already open window (dock icon click hides it).
	OpenToggle OpenPolicy = iota
	// OpenFocus brings an already open window to the front instead.
	OpenFocus
)

// String returns the config spelling of the policy.
func (p OpenPolicy) String() string {
	switch p {
	case OpenToggle:
		return "toggle"
	case OpenFocus:
		return "focus"
	default:
		return "unknown"
	}
}

// ParseOpenPolicy parses "toggle" or "focus". An empty string is toggle.
func ParseOpenPolicy(value string) (OpenPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "toggle":
		return OpenToggle, nil
	case "focus":
		return OpenFocus, nil
	default:
		return OpenToggle, fmt.Errorf("unknown open policy %q", value)
	}
}

const (
	// DefaultOpenApp is the window shown when a session starts.
	DefaultOpenApp = "about"

	// BaseZ is the z-order every window starts with.
	BaseZ = 10
	// DefaultOpenZ is reserved for the default-open window and is the
	// initial value of the highest z counter.
	DefaultOpenZ = BaseZ + 1
)

var (
	// DefaultMinSize is the resize floor for apps that declare no minimum.
	DefaultMinSize = Size{Width: 320, Height: 240}

	defaultCascadeOrigin = Point{X: 150, Y: 100}
	defaultCascadeStep   = Point{X: 50, Y: 40}
)

// Options configure a Manager. The zero value is usable: an empty viewport,
// toggle policy, the "about" app open at start and pixel-scale defaults.
type Options struct {
	Viewport Viewport

	// DefaultOpen names the window open at session start. Empty means
	// DefaultOpenApp; an id missing from the app list leaves every window
	// closed.
	DefaultOpen string

	OpenPolicy OpenPolicy

	// MinSizeFloor replaces DefaultMinSize for apps without a declared
	// minimum. Each dimension falls back independently.
	MinSizeFloor Size

	// Cascade places the initial windows. Nil selects the defaults; any
	// non-nil value is used as given, including all zeros.
	Cascade *Cascade

	Logger *slog.Logger
}

// Cascade lays out initial window positions: the i-th app starts at
// Origin + i*Step.
type Cascade struct {
	Origin Point
	Step   Point
}

// At returns the position of the i-th window.
func (c Cascade) At(i int) Point {
	return Point{X: c.Origin.X + i*c.Step.X, Y: c.Origin.Y + i*c.Step.Y}
}

// Manager owns the window store and is the only writer to it. All methods
// run to completion on the caller's goroutine; the UI event loop is the
// sole synchronisation mechanism, so Manager is not safe for concurrent use.
type Manager struct {
	store    *Store
	viewport Viewport
	policy   OpenPolicy
	floor    Size
	highestZ int
	log      *slog.Logger
}

// New creates a Manager with one record per app, in the given order.
// Duplicate or empty ids are skipped.
func New(apps []App, opts Options) *Manager {
	viewport := opts.Viewport
	if viewport == nil {
		viewport = &Tracker{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	floor := opts.MinSizeFloor
	if floor.Width <= 0 {
		floor.Width = DefaultMinSize.Width
	}
	if floor.Height <= 0 {
		floor.Height = DefaultMinSize.Height
	}
	cascade := Cascade{Origin: defaultCascadeOrigin, Step: defaultCascadeStep}
	if opts.Cascade != nil {
		cascade = *opts.Cascade
	}
	defaultOpen := opts.DefaultOpen
	if defaultOpen == "" {
		defaultOpen = DefaultOpenApp
	}

	m := &Manager{
		store:    newStore(apps),
		viewport: viewport,
		policy:   opts.OpenPolicy,
		floor:    floor,
		highestZ: DefaultOpenZ,
		log:      logger,
	}

	for i, id := range m.store.order {
		rec := m.store.records[id]
		rec.Position = cascade.At(i)
		rec.Size = m.atLeastMin(id, rec.Size)
		rec.Z = BaseZ
		if id == defaultOpen {
			rec.Open = true
			rec.Z = DefaultOpenZ
		}
		m.store.put(rec)
	}
	return m
}

// Store exposes the read side of the window store.
func (m *Manager) Store() *Store {
	return m.store
}

// Get returns the record for id.
func (m *Manager) Get(id string) (Record, bool) {
	return m.store.Get(id)
}

// All returns every record in registration order.
func (m *Manager) All() []Record {
	return m.store.All()
}

// Viewport returns the current viewport size.
func (m *Manager) Viewport() Size {
	return m.viewport.Size()
}

// HighestZ returns the z-order counter. It never decreases.
func (m *Manager) HighestZ() int {
	return m.highestZ
}

// Policy returns the configured open policy.
func (m *Manager) Policy() OpenPolicy {
	return m.policy
}

// MinSize returns the effective minimum size for id.
func (m *Manager) MinSize(id string) Size {
	app, _ := m.store.app(id)
	minSize := app.MinSize
	if minSize.Width <= 0 {
		minSize.Width = m.floor.Width
	}
	if minSize.Height <= 0 {
		minSize.Height = m.floor.Height
	}
	return minSize
}

// Open shows a closed window on top of the stack. For an open window the
// policy applies: toggle closes it, focus raises it.
func (m *Manager) Open(id string) {
	rec, ok := m.store.Get(id)
	if !ok {
		m.log.Debug("open ignored: unknown window", "id", id)
		return
	}
	if rec.Open {
		if m.policy == OpenFocus {
			m.Focus(id)
			return
		}
		m.Close(id)
		return
	}

	rec = m.fit(rec)
	rec.Open = true
	rec.Z = m.nextZ()
	m.store.put(rec)
	m.log.Debug("window opened", "id", id, "z", rec.Z, "x", rec.Position.X, "y", rec.Position.Y)
}

// Close hides a window. Geometry and z-order are kept for the next Open.
func (m *Manager) Close(id string) {
	rec, ok := m.store.Get(id)
	if !ok || !rec.Open {
		return
	}
	rec.Open = false
	m.store.put(rec)
	m.log.Debug("window closed", "id", id)
}

// Focus raises a window to the top unless it already is the topmost.
func (m *Manager) Focus(id string) {
	rec, ok := m.store.Get(id)
	if !ok || rec.Z >= m.highestZ {
		return
	}
	rec.Z = m.nextZ()
	m.store.put(rec)
	m.log.Debug("window focused", "id", id, "z", rec.Z)
}

// Move places a window at p, clamped so it stays inside the viewport as it
// is right now. Maximized windows do not move.
func (m *Manager) Move(id string, p Point) {
	rec, ok := m.store.Get(id)
	if !ok || rec.Maximized {
		return
	}
	vp := m.viewport.Size()
	rec.Position = Point{
		X: clamp(p.X, 0, vp.Width-rec.Size.Width),
		Y: clamp(p.Y, 0, vp.Height-rec.Size.Height),
	}
	m.store.put(rec)
}

// Resize sets a window's size, no smaller than its minimum and no larger
// than the room between its position and the viewport edge (unless the
// minimum itself is larger, in which case the window is pushed back inside).
// Maximized windows do not resize.
func (m *Manager) Resize(id string, s Size) {
	rec, ok := m.store.Get(id)
	if !ok || rec.Maximized {
		return
	}
	vp := m.viewport.Size()
	minSize := m.MinSize(id)
	maxWidth := max(minSize.Width, vp.Width-rec.Position.X)
	maxHeight := max(minSize.Height, vp.Height-rec.Position.Y)
	rec.Size = Size{
		Width:  clamp(s.Width, minSize.Width, maxWidth),
		Height: clamp(s.Height, minSize.Height, maxHeight),
	}
	rec.Position = Point{
		X: clamp(rec.Position.X, 0, vp.Width-rec.Size.Width),
		Y: clamp(rec.Position.Y, 0, vp.Height-rec.Size.Height),
	}
	m.store.put(rec)
}

// ToggleMaximize fills the viewport with an open window, remembering its
// geometry, or restores the remembered geometry exactly.
func (m *Manager) ToggleMaximize(id string) {
	rec, ok := m.store.Get(id)
	if !ok || !rec.Open {
		return
	}
	if rec.Maximized {
		rec.Position = rec.PrevPosition
		rec.Size = rec.PrevSize
		rec.PrevPosition = Point{}
		rec.PrevSize = Size{}
		rec.Maximized = false
		m.store.put(rec)
		m.log.Debug("window restored", "id", id)
		return
	}

	vp := m.viewport.Size()
	if vp.IsZero() {
		// Nothing to fill before the first size report.
		return
	}
	rec.PrevPosition = rec.Position
	rec.PrevSize = rec.Size
	rec.Position = Point{}
	rec.Size = vp
	rec.Maximized = true
	m.store.put(rec)
	m.Focus(id)
	m.log.Debug("window maximized", "id", id)
}

// RepinMaximized refits maximized windows to the current viewport. Call it
// after the viewport changes; nothing else is recomputed eagerly.
func (m *Manager) RepinMaximized() {
	vp := m.viewport.Size()
	for _, rec := range m.store.All() {
		if !rec.Maximized || rec.Size == vp {
			continue
		}
		rec.Position = Point{}
		rec.Size = vp
		m.store.put(rec)
	}
}

// Nudge moves a window by a delta.
func (m *Manager) Nudge(id string, dx, dy int) {
	rec, ok := m.store.Get(id)
	if !ok {
		return
	}
	m.Move(id, rec.Position.Add(Point{X: dx, Y: dy}))
}

// Grow resizes a window by a delta.
func (m *Manager) Grow(id string, dw, dh int) {
	rec, ok := m.store.Get(id)
	if !ok {
		return
	}
	m.Resize(id, Size{Width: rec.Size.Width + dw, Height: rec.Size.Height + dh})
}

// Stack returns the open windows ordered bottom to top.
func (m *Manager) Stack() []Record {
	var open []Record
	for _, rec := range m.store.All() {
		if rec.Open {
			open = append(open, rec)
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].Z < open[j].Z
	})
	return open
}

// Topmost returns the open window with the highest z-order.
func (m *Manager) Topmost() (Record, bool) {
	stack := m.Stack()
	if len(stack) == 0 {
		return Record{}, false
	}
	return stack[len(stack)-1], true
}

// WindowAt returns the topmost open window containing p.
func (m *Manager) WindowAt(p Point) (Record, bool) {
	stack := m.Stack()
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].Rect().Contains(p) {
			return stack[i], true
		}
	}
	return Record{}, false
}

// FocusNext raises the bottom-most open window, rotating the stack.
func (m *Manager) FocusNext() {
	stack := m.Stack()
	if len(stack) < 2 {
		return
	}
	m.Focus(stack[0].ID)
}

func (m *Manager) nextZ() int {
	m.highestZ++
	return m.highestZ
}

func (m *Manager) atLeastMin(id string, s Size) Size {
	minSize := m.MinSize(id)
	return Size{Width: max(s.Width, minSize.Width), Height: max(s.Height, minSize.Height)}
}

// fit pulls a window being reopened back into the viewport after the
// viewport shrank while it was hidden. An unknown (zero) viewport leaves the
// record untouched.
func (m *Manager) fit(rec Record) Record {
	vp := m.viewport.Size()
	if vp.IsZero() {
		return rec
	}
	if rec.Maximized {
		rec.Position = Point{}
		rec.Size = vp
		return rec
	}
	minSize := m.MinSize(rec.ID)
	rec.Size = Size{
		Width:  clamp(rec.Size.Width, minSize.Width, max(minSize.Width, vp.Width)),
		Height: clamp(rec.Size.Height, minSize.Height, max(minSize.Height, vp.Height)),
	}
	rec.Position = Point{
		X: clamp(rec.Position.X, 0, vp.Width-rec.Size.Width),
		Y: clamp(rec.Position.Y, 0, vp.Height-rec.Size.Height),
	}
	return rec
}

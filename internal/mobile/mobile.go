// Package mobile is the single-app shell used on narrow terminals.
//
// There are no overlapping windows here, no z-order and no geometry. The
// shell is either on the Home grid or showing exactly one app full screen:
//
//	Home ──Launch(id)──> Foreground(id) ──Launch(other)──> Foreground(other)
//	  ^                        │
//	  └──Home() / swipe up─────┘
//
// Swiping up on the home bar returns to the grid once the pointer has
// travelled more than the threshold.
package mobile

import (
	"log/slog"
)

// Screen is the shell's state.
type Screen int

const (
	// ScreenHome shows the icon grid.
	ScreenHome Screen = iota
	// ScreenForeground shows one app.
	ScreenForeground
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenForeground:
		return "foreground"
	default:
		return "unknown"
	}
}

const (
	// DefaultSwipeThreshold is the upward travel, in rows, a swipe must
	// exceed to count.
	DefaultSwipeThreshold = 2
	// DefaultColumns is the width of the icon grid.
	DefaultColumns = 3
)

// Options configure a Shell.
type Options struct {
	SwipeThreshold int
	Columns        int
	Logger         *slog.Logger
}

// Shell is the mobile state machine. It is driven from the UI goroutine
// only.
type Shell struct {
	apps       []string
	known      map[string]bool
	foreground string
	selected   int
	columns    int
	swipe      Swipe
	log        *slog.Logger
}

// New returns a shell on the home screen with the first app selected.
func New(apps []string, opts Options) *Shell {
	if opts.SwipeThreshold <= 0 {
		opts.SwipeThreshold = DefaultSwipeThreshold
	}
	if opts.Columns <= 0 {
		opts.Columns = DefaultColumns
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	known := make(map[string]bool, len(apps))
	for _, id := range apps {
		known[id] = true
	}
	return &Shell{
		apps:    append([]string(nil), apps...),
		known:   known,
		columns: opts.Columns,
		swipe:   Swipe{Threshold: opts.SwipeThreshold},
		log:     logger,
	}
}

// Screen returns the current state.
func (s *Shell) Screen() Screen {
	if s.foreground == "" {
		return ScreenHome
	}
	return ScreenForeground
}

// Foreground returns the app on screen.
func (s *Shell) Foreground() (string, bool) {
	return s.foreground, s.foreground != ""
}

// Apps returns the grid order.
func (s *Shell) Apps() []string {
	return append([]string(nil), s.apps...)
}

// Columns returns the grid width.
func (s *Shell) Columns() int {
	return s.columns
}

// Launch shows id full screen, replacing whatever was there. Unknown ids
// are ignored.
func (s *Shell) Launch(id string) bool {
	if !s.known[id] {
		s.log.Debug("launch ignored: unknown app", "id", id)
		return false
	}
	s.foreground = id
	for i, app := range s.apps {
		if app == id {
			s.selected = i
		}
	}
	s.swipe.Cancel()
	s.log.Debug("app launched", "id", id)
	return true
}

// Home returns to the grid.
func (s *Shell) Home() {
	if s.foreground == "" {
		return
	}
	s.log.Debug("app closed", "id", s.foreground)
	s.foreground = ""
	s.swipe.Cancel()
}

// Selected returns the highlighted grid app.
func (s *Shell) Selected() (string, bool) {
	if len(s.apps) == 0 {
		return "", false
	}
	return s.apps[s.selected], true
}

// MoveSelection moves the grid highlight by dx columns and dy rows,
// stopping at the edges.
func (s *Shell) MoveSelection(dx, dy int) {
	if len(s.apps) == 0 || s.foreground != "" {
		return
	}
	row, col := s.selected/s.columns, s.selected%s.columns
	col = max(0, min(s.columns-1, col+dx))
	row = max(0, row+dy)
	next := row*s.columns + col
	if next >= len(s.apps) {
		// Clamp into the last (possibly partial) row.
		lastRow := (len(s.apps) - 1) / s.columns
		if row > lastRow {
			row = lastRow
		}
		next = min(row*s.columns+col, len(s.apps)-1)
	}
	s.selected = next
}

// LaunchSelected opens the highlighted app.
func (s *Shell) LaunchSelected() bool {
	id, ok := s.Selected()
	if !ok {
		return false
	}
	return s.Launch(id)
}

// Cell returns the grid cell (column, row) of app index i.
func (s *Shell) Cell(i int) (int, int) {
	return i % s.columns, i / s.columns
}

// BeginSwipe starts tracking a press on the home bar at row y.
func (s *Shell) BeginSwipe(y int) {
	if s.foreground == "" {
		return
	}
	s.swipe.Begin(y)
}

// Swiping reports whether a swipe is being tracked.
func (s *Shell) Swiping() bool {
	return s.swipe.Active()
}

// EndSwipe finishes the swipe at row y and returns home when it went far
// enough. It reports whether the app was closed.
func (s *Shell) EndSwipe(y int) bool {
	if !s.swipe.End(y) {
		return false
	}
	s.Home()
	return true
}

// CancelSwipe drops a swipe without acting on it.
func (s *Shell) CancelSwipe() {
	s.swipe.Cancel()
}

// Swipe tracks one vertical pointer gesture.
type Swipe struct {
	Threshold int
	start     int
	active    bool
}

// Begin records the starting row.
func (s *Swipe) Begin(y int) {
	s.start = y
	s.active = true
}

// Active reports whether a gesture is in progress.
func (s *Swipe) Active() bool {
	return s.active
}

// Travel returns the upward distance from the start to y.
func (s *Swipe) Travel(y int) int {
	if !s.active {
		return 0
	}
	return s.start - y
}

// End finishes the gesture and reports whether the upward travel exceeded
// the threshold.
func (s *Swipe) End(y int) bool {
	if !s.active {
		return false
	}
	travel := s.Travel(y)
	s.active = false
	return travel > s.Threshold
}

// Cancel abandons the gesture.
func (s *Swipe) Cancel() {
	s.active = false
}

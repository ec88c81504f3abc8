package wm

// App is the part of an application descriptor the window manager needs:
// its key and its declared sizes. Everything else about an app (title,
// icon, content) stays with the registry.
type App struct {
	ID          string
	DefaultSize Size
	MinSize     Size
}

// Record is the live state of one application window.
type Record struct {
	ID        string
	Open      bool
	Position  Point
	Size      Size
	Z         int
	Maximized bool

	// PrevPosition and PrevSize hold the geometry to restore while the
	// window is maximized. They are zero otherwise.
	PrevPosition Point
	PrevSize     Size
}

// Rect returns the record's bounds.
func (r Record) Rect() Rect {
	return Rect{Point: r.Position, Size: r.Size}
}

// Store is the authoritative id → Record mapping. Records are created once
// for every app and never removed. Only Manager writes to it.
type Store struct {
	order   []string
	apps    map[string]App
	records map[string]Record
}

func newStore(apps []App) *Store {
	s := &Store{
		order:   make([]string, 0, len(apps)),
		apps:    make(map[string]App, len(apps)),
		records: make(map[string]Record, len(apps)),
	}
	for _, app := range apps {
		if app.ID == "" {
			continue
		}
		if _, dup := s.apps[app.ID]; dup {
			continue
		}
		s.order = append(s.order, app.ID)
		s.apps[app.ID] = app
		s.records[app.ID] = Record{ID: app.ID, Size: app.DefaultSize}
	}
	return s
}

// Get returns a copy of the record for id.
func (s *Store) Get(id string) (Record, bool) {
	rec, ok := s.records[id]
	return rec, ok
}

// All returns copies of every record in registration order.
func (s *Store) All() []Record {
	out := make([]Record, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.order)
}

func (s *Store) app(id string) (App, bool) {
	app, ok := s.apps[id]
	return app, ok
}

// put replaces the whole record. Unknown ids are ignored so the store never
// grows after construction.
func (s *Store) put(rec Record) {
	if _, ok := s.records[rec.ID]; !ok {
		return
	}
	s.records[rec.ID] = rec
}

package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/five82/portfolios/internal/wm"
)

var (
	// ErrEmptyRegistry is returned when no app survives validation.
	ErrEmptyRegistry = errors.New("registry has no apps")
	// ErrUnknownApp is returned when an override names an app that is not
	// registered.
	ErrUnknownApp = errors.New("unknown app")
	// ErrDuplicateApp is returned when two descriptors share an id.
	ErrDuplicateApp = errors.New("duplicate app id")
)

// Descriptor is the static declaration of one app. The window manager only
// sees its id and sizes; Content is handed to the renderer untouched.
type Descriptor struct {
	ID          string
	Title       string
	Icon        string
	Content     any
	DefaultSize wm.Size
	MinSize     wm.Size
}

// Override replaces selected descriptor fields. Zero values keep the
// current value; Hidden removes the app altogether.
type Override struct {
	ID          string
	Title       string
	Icon        string
	DefaultSize wm.Size
	MinSize     wm.Size
	Hidden      bool
}

// Registry is the ordered, immutable set of apps. Order drives the dock and
// the initial cascade.
type Registry struct {
	order []string
	byID  map[string]Descriptor
}

// New validates descriptors and builds a registry in the given order.
func New(descs []Descriptor) (*Registry, error) {
	r := &Registry{
		order: make([]string, 0, len(descs)),
		byID:  make(map[string]Descriptor, len(descs)),
	}
	for i, d := range descs {
		d.ID = strings.TrimSpace(d.ID)
		if d.ID == "" {
			return nil, fmt.Errorf("app %d: id is empty", i)
		}
		if _, dup := r.byID[d.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateApp, d.ID)
		}
		if d.DefaultSize.Width < 0 || d.DefaultSize.Height < 0 {
			return nil, fmt.Errorf("app %s: negative default size", d.ID)
		}
		if strings.TrimSpace(d.Title) == "" {
			d.Title = d.ID
		}
		r.order = append(r.order, d.ID)
		r.byID[d.ID] = d
	}
	if len(r.order) == 0 {
		return nil, ErrEmptyRegistry
	}
	return r, nil
}

// Apply returns a new registry with the overrides applied. The receiver is
// left unchanged.
func (r *Registry) Apply(overrides []Override) (*Registry, error) {
	descs := r.All()
	index := make(map[string]int, len(descs))
	for i, d := range descs {
		index[d.ID] = i
	}

	hidden := make(map[string]bool)
	for _, o := range overrides {
		id := strings.TrimSpace(o.ID)
		i, ok := index[id]
		if !ok {
			return nil, fmt.Errorf("apply override: %w: %q", ErrUnknownApp, o.ID)
		}
		if o.Hidden {
			hidden[id] = true
			continue
		}
		d := descs[i]
		if title := strings.TrimSpace(o.Title); title != "" {
			d.Title = title
		}
		if icon := strings.TrimSpace(o.Icon); icon != "" {
			d.Icon = icon
		}
		d.DefaultSize = mergeSize(d.DefaultSize, o.DefaultSize)
		d.MinSize = mergeSize(d.MinSize, o.MinSize)
		descs[i] = d
	}

	kept := descs[:0]
	for _, d := range descs {
		if !hidden[d.ID] {
			kept = append(kept, d)
		}
	}
	return New(kept)
}

// Get returns the descriptor for id.
func (r *Registry) Get(id string) (Descriptor, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// All returns the descriptors in registration order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// IDs returns the app ids in registration order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of apps.
func (r *Registry) Len() int {
	return len(r.order)
}

// Windows returns what the window manager needs to create one record per
// app.
func (r *Registry) Windows() []wm.App {
	out := make([]wm.App, 0, len(r.order))
	for _, id := range r.order {
		d := r.byID[id]
		out = append(out, wm.App{ID: d.ID, DefaultSize: d.DefaultSize, MinSize: d.MinSize})
	}
	return out
}

func mergeSize(base, override wm.Size) wm.Size {
	if override.Width > 0 {
		base.Width = override.Width
	}
	if override.Height > 0 {
		base.Height = override.Height
	}
	return base
}

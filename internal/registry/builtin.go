package registry

import "github.com/five82/portfolios/internal/wm"

// App ids of the built-in set.
const (
	About      = "about"
	Portfolio  = "portfolio"
	Contact    = "contact"
	Notes      = "notes"
	SystemInfo = "systeminfo"
	Music      = "music"
)

// Builtin returns the stock apps in dock order, sized in terminal cells.
// Content is left nil; the caller attaches panels before calling New.
func Builtin() []Descriptor {
	return []Descriptor{
		{ID: About, Title: "About Me", Icon: "☺", DefaultSize: wm.Size{Width: 52, Height: 20}, MinSize: wm.Size{Width: 30, Height: 10}},
		{ID: Portfolio, Title: "Portfolio", Icon: "▣", DefaultSize: wm.Size{Width: 62, Height: 20}, MinSize: wm.Size{Width: 30, Height: 10}},
		{ID: Contact, Title: "Contact", Icon: "✉", DefaultSize: wm.Size{Width: 50, Height: 16}, MinSize: wm.Size{Width: 30, Height: 10}},
		{ID: Notes, Title: "Notes", Icon: "✎", DefaultSize: wm.Size{Width: 62, Height: 20}, MinSize: wm.Size{Width: 30, Height: 10}},
		{ID: SystemInfo, Title: "System Info", Icon: "⚙", DefaultSize: wm.Size{Width: 46, Height: 14}, MinSize: wm.Size{Width: 30, Height: 10}},
		{ID: Music, Title: "Music", Icon: "♪", DefaultSize: wm.Size{Width: 44, Height: 12}},
	}
}

// WithContent attaches panels by id. Descriptors without a panel keep their
// current Content.
func WithContent(descs []Descriptor, panels map[string]any) []Descriptor {
	out := make([]Descriptor, len(descs))
	for i, d := range descs {
		if c, ok := panels[d.ID]; ok {
			d.Content = c
		}
		out[i] = d
	}
	return out
}

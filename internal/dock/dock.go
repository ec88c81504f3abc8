// Package dock lays out the launcher bar.
//
// The dock shows one entry per registered app, in registry order, with an
// active marker bound to the window's open state. Layout is pure: it turns
// entries and a bar width into cell spans, and HitTest maps a clicked column
// back to an app id. Drawing is left to the UI.
package dock

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/portfolios/internal/registry"
	"github.com/five82/portfolios/internal/wm"
)

// Gap is the number of blank cells between two slots.
const Gap = 1

// Windows is the read side of the window store the dock binds to.
type Windows interface {
	Get(id string) (wm.Record, bool)
}

// Entry is one launcher item.
type Entry struct {
	ID     string
	Icon   string
	Title  string
	Key    string
	Active bool
}

// Entries builds the dock entries in registry order. Active mirrors the
// window's open state. The first nine entries get a number key.
func Entries(descs []registry.Descriptor, windows Windows) []Entry {
	out := make([]Entry, 0, len(descs))
	for i, d := range descs {
		e := Entry{ID: d.ID, Icon: d.Icon, Title: d.Title}
		if i < 9 {
			e.Key = fmt.Sprintf("%d", i+1)
		}
		if rec, ok := windows.Get(d.ID); ok {
			e.Active = rec.Open
		}
		out = append(out, e)
	}
	return out
}

// Slot is a laid-out entry.
type Slot struct {
	Entry
	X     int
	Width int
	Label string
}

// Bar is the dock laid out for one width.
type Bar struct {
	Slots []Slot
	Width int
}

// Layout centres the entries in width cells. When full labels do not fit it
// falls back to key and icon, then to icon only; slots that still do not
// fit are dropped from the end.
func Layout(entries []Entry, width int) Bar {
	bar := Bar{Width: width}
	if width <= 0 || len(entries) == 0 {
		return bar
	}

	var labels []string
	for _, format := range []func(Entry) string{fullLabel, shortLabel, iconLabel} {
		labels = labels[:0]
		for _, e := range entries {
			labels = append(labels, format(e))
		}
		if totalWidth(labels) <= width {
			break
		}
	}

	for len(labels) > 0 && totalWidth(labels) > width {
		labels = labels[:len(labels)-1]
	}

	x := (width - totalWidth(labels)) / 2
	for i, label := range labels {
		w := ansi.StringWidth(label)
		bar.Slots = append(bar.Slots, Slot{Entry: entries[i], X: x, Width: w, Label: label})
		x += w + Gap
	}
	return bar
}

// HitTest returns the id of the slot covering column x.
func (b Bar) HitTest(x int) (string, bool) {
	for _, s := range b.Slots {
		if x >= s.X && x < s.X+s.Width {
			return s.ID, true
		}
	}
	return "", false
}

// Slot returns the slot for id.
func (b Bar) Slot(id string) (Slot, bool) {
	for _, s := range b.Slots {
		if s.ID == id {
			return s, true
		}
	}
	return Slot{}, false
}

func fullLabel(e Entry) string {
	if e.Key == "" {
		return fmt.Sprintf(" %s %s ", e.Icon, e.Title)
	}
	return fmt.Sprintf(" %s %s %s ", e.Key, e.Icon, e.Title)
}

func shortLabel(e Entry) string {
	if e.Key == "" {
		return fmt.Sprintf(" %s ", e.Icon)
	}
	return fmt.Sprintf(" %s %s ", e.Key, e.Icon)
}

func iconLabel(e Entry) string {
	return e.Icon
}

func totalWidth(labels []string) int {
	if len(labels) == 0 {
		return 0
	}
	total := Gap * (len(labels) - 1)
	for _, l := range labels {
		total += ansi.StringWidth(l)
	}
	return total
}

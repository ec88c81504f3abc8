package dock

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/portfolios/internal/registry"
	"github.com/five82/portfolios/internal/wm"
)

func testDescriptors() []registry.Descriptor {
	return []registry.Descriptor{
		{ID: "about", Title: "About", Icon: "A", DefaultSize: wm.Size{Width: 40, Height: 10}},
		{ID: "notes", Title: "Notes", Icon: "N", DefaultSize: wm.Size{Width: 40, Height: 10}},
		{ID: "music", Title: "Music", Icon: "M", DefaultSize: wm.Size{Width: 40, Height: 10}},
	}
}

func testManager(descs []registry.Descriptor) *wm.Manager {
	apps := make([]wm.App, 0, len(descs))
	for _, d := range descs {
		apps = append(apps, wm.App{ID: d.ID, DefaultSize: d.DefaultSize})
	}
	return wm.New(apps, wm.Options{Viewport: wm.NewTracker(200, 50), MinSizeFloor: wm.Size{Width: 10, Height: 4}})
}

func TestEntries_ActiveFollowsOpenState(t *testing.T) {
	descs := testDescriptors()
	m := testManager(descs)

	entries := Entries(descs, m)
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}
	if !entries[0].Active || entries[1].Active || entries[2].Active {
		t.Fatalf("Active = %v/%v/%v, want only about", entries[0].Active, entries[1].Active, entries[2].Active)
	}
	if entries[2].Key != "3" {
		t.Fatalf("music Key = %q, want 3", entries[2].Key)
	}

	m.Open("notes")
	m.Open("about")
	entries = Entries(descs, m)
	if entries[0].Active || !entries[1].Active {
		t.Fatalf("Active = %v/%v after toggling, want about off and notes on", entries[0].Active, entries[1].Active)
	}
}

func TestEntries_DoubleClickCloses(t *testing.T) {
	descs := testDescriptors()
	m := testManager(descs)
	bar := Layout(Entries(descs, m), 80)

	slot, _ := bar.Slot("music")
	for i := 0; i < 2; i++ {
		id, ok := bar.HitTest(slot.X)
		if !ok {
			t.Fatalf("HitTest(%d) missed", slot.X)
		}
		m.Open(id)
	}
	if Entries(descs, m)[2].Active {
		t.Fatalf("music Active after two clicks = true, want false")
	}
}

func TestLayout_CentresFullLabels(t *testing.T) {
	bar := Layout(Entries(testDescriptors(), testManager(testDescriptors())), 80)

	if len(bar.Slots) != 3 {
		t.Fatalf("len(Slots) = %d, want 3", len(bar.Slots))
	}
	// " 1 A About " is 11 wide; three slots plus two gaps is 35.
	if bar.Slots[0].Label != " 1 A About " {
		t.Fatalf("Label = %q, want full label", bar.Slots[0].Label)
	}
	if bar.Slots[0].X != (80-35)/2 {
		t.Fatalf("first X = %d, want %d", bar.Slots[0].X, (80-35)/2)
	}
	if bar.Slots[1].X != bar.Slots[0].X+bar.Slots[0].Width+Gap {
		t.Fatalf("second X = %d, want right after the first slot", bar.Slots[1].X)
	}
}

func TestLayout_FallsBackWhenNarrow(t *testing.T) {
	entries := Entries(testDescriptors(), testManager(testDescriptors()))

	short := Layout(entries, 20)
	if short.Slots[0].Label != " 1 A " {
		t.Fatalf("Label at 20 cols = %q, want key and icon", short.Slots[0].Label)
	}

	icons := Layout(entries, 6)
	if len(icons.Slots) != 3 || icons.Slots[0].Label != "A" {
		t.Fatalf("Slots at 6 cols = %+v, want icon-only labels", icons.Slots)
	}

	tiny := Layout(entries, 3)
	if len(tiny.Slots) != 2 {
		t.Fatalf("len(Slots) at 3 cols = %d, want 2", len(tiny.Slots))
	}

	if empty := Layout(entries, 0); len(empty.Slots) != 0 {
		t.Fatalf("Slots at 0 cols = %d, want none", len(empty.Slots))
	}
}

func TestLayout_WidthsMatchRenderedLabels(t *testing.T) {
	descs := []registry.Descriptor{
		{ID: "about", Title: "About", Icon: "☺", DefaultSize: wm.Size{Width: 40, Height: 10}},
		{ID: "system", Title: "System", Icon: "⚙", DefaultSize: wm.Size{Width: 40, Height: 10}},
		{ID: "music", Title: "Music", Icon: "♫", DefaultSize: wm.Size{Width: 40, Height: 10}},
	}
	entries := Entries(descs, testManager(descs))

	for _, width := range []int{80, 20, 6} {
		bar := Layout(entries, width)
		for _, s := range bar.Slots {
			if got := lipgloss.Width(s.Label); s.Width != got {
				t.Fatalf("width %d: %s Width = %d, want rendered width %d", width, s.ID, s.Width, got)
			}
			if id, ok := bar.HitTest(s.X + s.Width - 1); !ok || id != s.ID {
				t.Fatalf("width %d: HitTest(last cell of %s) = %q, %v", width, s.ID, id, ok)
			}
		}
	}
}

func TestBar_HitTest(t *testing.T) {
	bar := Layout(Entries(testDescriptors(), testManager(testDescriptors())), 80)
	first := bar.Slots[0]

	tests := []struct {
		x      int
		wantID string
		wantOK bool
	}{
		{first.X, "about", true},
		{first.X + first.Width - 1, "about", true},
		{first.X + first.Width, "", false},
		{first.X + first.Width + Gap, "notes", true},
		{0, "", false},
	}
	for _, tt := range tests {
		id, ok := bar.HitTest(tt.x)
		if id != tt.wantID || ok != tt.wantOK {
			t.Fatalf("HitTest(%d) = %q, %v, want %q, %v", tt.x, id, ok, tt.wantID, tt.wantOK)
		}
	}
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/five82/portfolios/internal/wm"
)

// region is the part of a window a pointer press landed on.
type region int

const (
	regionNone region = iota
	regionTitle
	regionClose
	regionMaximize
	regionResize
	regionBody
)

func (r region) String() string {
	switch r {
	case regionTitle:
		return "title"
	case regionClose:
		return "close"
	case regionMaximize:
		return "maximize"
	case regionResize:
		return "resize"
	case regionBody:
		return "body"
	default:
		return "none"
	}
}

// hitTest classifies p, in desktop coordinates, against the chrome of rec.
// The title bar is the first row with the buttons at its right end. The
// resize handle is the bottom-right corner.
func hitTest(rec wm.Record, p wm.Point) region {
	if !rec.Rect().Contains(p) {
		return regionNone
	}
	dx, dy := p.X-rec.Position.X, p.Y-rec.Position.Y
	w, h := rec.Size.Width, rec.Size.Height

	if dy == 0 {
		switch {
		case dx >= w-closeButtonWidth:
			return regionClose
		case dx >= w-closeButtonWidth-maxButtonWidth:
			return regionMaximize
		default:
			return regionTitle
		}
	}
	if dy == h-1 && dx >= w-resizeHandleWidth && !rec.Maximized {
		return regionResize
	}
	return regionBody
}

// bodySize is the content area inside the frame.
func bodySize(s wm.Size) wm.Size {
	return wm.Size{Width: max(0, s.Width-2), Height: max(0, s.Height-2)}
}

// frame holds what renderWindow needs besides the record.
type frame struct {
	Icon    string
	Title   string
	Body    string
	Focused bool
}

// renderWindow draws a window as exactly rec.Size.Height lines of
// rec.Size.Width cells.
func (m Model) renderWindow(rec wm.Record, f frame) []string {
	w, h := rec.Size.Width, rec.Size.Height
	if w <= 0 || h <= 0 {
		return nil
	}
	styles := m.theme.Styles()
	lines := make([]string, 0, h)

	lines = append(lines, m.renderTitleBar(rec, f, styles))
	if h == 1 {
		return lines
	}

	border := styles.Border
	if f.Focused {
		border = styles.BorderFocus
	}
	surface := NewBgStyle(m.theme.Surface)
	body := strings.Split(f.Body, "\n")
	inner := bodySize(rec.Size)
	for i := 0; i < inner.Height; i++ {
		var line string
		if i < len(body) {
			line = body[i]
		}
		lines = append(lines,
			border.Render("│")+
				surface.FillLine(styles.Surface.Render(line), inner.Width)+
				border.Render("│"))
	}

	corner := "◢"
	if rec.Maximized {
		corner = "╯"
	}
	bottom := "╰" + strings.Repeat("─", max(0, w-2)) + corner
	if w == 1 {
		bottom = corner
	}
	lines = append(lines, border.Render(bottom))
	return lines
}

func (m Model) renderTitleBar(rec wm.Record, f frame, styles Styles) string {
	w := rec.Size.Width
	titleStyle, bgColor := styles.Title, m.theme.TitleBg
	if f.Focused {
		titleStyle, bgColor = styles.TitleActive, m.theme.TitleBgActive
	}
	bg := NewBgStyle(bgColor)

	maxGlyph := " □"
	if rec.Maximized {
		maxGlyph = " ❐"
	}
	buttons := bg.Render(maxGlyph, styles.MaxButton) + bg.Render(" × ", styles.CloseButton)

	room := w - closeButtonWidth - maxButtonWidth
	if room <= 0 {
		return bg.FillLine(buttons, w)
	}
	label := " " + f.Title
	if f.Icon != "" {
		label = " " + f.Icon + " " + f.Title
	}
	label = runewidth.Truncate(label, room, "…")
	return bg.Render(label, titleStyle) + bg.Spaces(room-lipgloss.Width(label)) + buttons
}

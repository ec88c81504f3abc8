package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/five82/portfolios/internal/wm"
)

const (
	// mobileChrome counts the status bar, app header and home bar rows
	// around a foreground app.
	mobileChrome = 3

	// gridTop is the first row of the icon grid; each cell is gridCellRows
	// tall.
	gridTop      = 2
	gridCellRows = 3
)

// mobileBodySize is the content area of a foreground app.
func (m Model) mobileBodySize() wm.Size {
	return wm.Size{Width: m.width, Height: max(0, m.height-mobileChrome)}
}

// gridCellWidth is the width of one icon cell.
func (m Model) gridCellWidth() int {
	return max(1, m.width/m.shell.Columns())
}

// gridAppAt returns the app whose grid cell covers the screen cell (x, y).
func (m Model) gridAppAt(x, y int) (string, bool) {
	if y < gridTop || x < 0 {
		return "", false
	}
	col := x / m.gridCellWidth()
	row := (y - gridTop) / gridCellRows
	if col >= m.shell.Columns() {
		return "", false
	}
	apps := m.shell.Apps()
	idx := row*m.shell.Columns() + col
	if idx >= len(apps) {
		return "", false
	}
	return apps[idx], true
}

// renderMobile renders the single-app shell.
func (m Model) renderMobile() string {
	lines := make([]string, 0, m.height)
	lines = append(lines, m.renderStatusBar())

	if id, ok := m.shell.Foreground(); ok {
		lines = append(lines, m.renderAppHeader(id)...)
		lines = append(lines, m.renderHomeBar())
	} else {
		lines = append(lines, m.renderGrid()...)
	}

	if len(lines) > m.height {
		lines = lines[:m.height]
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatusBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	left := bg.Render(" "+m.now.Format("15:04"), styles.Text.Bold(true))
	right := bg.Render("portfolios ", styles.Logo)
	return bg.Spread(left, right, m.width)
}

// renderAppHeader renders the app title row and the body rows.
func (m Model) renderAppHeader(id string) []string {
	styles := m.theme.Styles()
	bar := NewBgStyle(m.theme.TitleBgActive)
	surface := NewBgStyle(m.theme.Surface)

	desc, _ := m.registry.Get(id)
	title := bar.Render(" ‹ "+desc.Icon+" "+desc.Title, styles.TitleActive)
	lines := []string{bar.FillLine(title, m.width)}

	size := m.mobileBodySize()
	var body []string
	if vp, ok := m.views[id]; ok {
		body = strings.Split(vp.View(), "\n")
	}
	for i := 0; i < size.Height; i++ {
		var line string
		if i < len(body) {
			line = body[i]
		}
		lines = append(lines, surface.FillLine(line, m.width))
	}
	return lines
}

func (m Model) renderHomeBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	handle := "━━━━━━━━"
	if m.shell.Swiping() {
		handle = "━━━━━━━━━━━━"
	}
	return bg.Render(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, handle), styles.FaintText)
}

// renderGrid renders the home screen icon grid.
func (m Model) renderGrid() []string {
	styles := m.theme.Styles()
	desktop := NewBgStyle(m.theme.Desktop)
	cellW := m.gridCellWidth()
	cols := m.shell.Columns()
	apps := m.shell.Apps()
	selected, _ := m.shell.Selected()

	rows := max(0, m.height-1)
	lines := make([]string, 0, rows)
	lines = append(lines, desktop.FillLine("", m.width))

	for start := 0; start < len(apps); start += cols {
		end := min(start+cols, len(apps))
		var icons, titles strings.Builder
		for i := start; i < end; i++ {
			desc, _ := m.registry.Get(apps[i])
			style := styles.Surface
			if apps[i] == selected {
				style = styles.Selected
			}
			icon := lipgloss.PlaceHorizontal(cellW, lipgloss.Center, desc.Icon)
			name := lipgloss.PlaceHorizontal(cellW, lipgloss.Center, runewidth.Truncate(desc.Title, max(1, cellW-2), "…"))
			icons.WriteString(style.Render(icon))
			titles.WriteString(style.Render(name))
		}
		lines = append(lines,
			desktop.FillLine(icons.String(), m.width),
			desktop.FillLine(titles.String(), m.width),
			desktop.FillLine("", m.width),
		)
	}

	for len(lines) < rows-1 {
		lines = append(lines, desktop.FillLine("", m.width))
	}
	hint := styles.FaintText.Render(" arrows select · enter open · ? help")
	lines = append(lines, desktop.FillLine(hint, m.width))
	return lines
}

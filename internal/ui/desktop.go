package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/portfolios/internal/dock"
)

// renderDesktop renders the windowed layout: top bar, desktop with the
// window stack painted bottom to top, dock.
func (m Model) renderDesktop() string {
	var b strings.Builder

	b.WriteString(m.renderTopBar())
	b.WriteString("\n")

	for _, line := range m.renderWindows() {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(m.renderDock())
	return b.String()
}

// renderWindows composites every open window over the wallpaper.
func (m Model) renderWindows() []string {
	rows := max(0, m.height-TopBarHeight-DockHeight)
	lines := m.wallpaper(m.width, rows)

	stack := m.manager.Stack()
	for i, rec := range stack {
		desc, _ := m.registry.Get(rec.ID)
		f := frame{
			Icon:    desc.Icon,
			Title:   desc.Title,
			Focused: i == len(stack)-1,
		}
		if vp, ok := m.views[rec.ID]; ok {
			f.Body = vp.View()
		}
		overlay(lines, m.renderWindow(rec, f), rec.Position.X, rec.Position.Y, m.width)
	}
	return lines
}

// renderTopBar renders the menu bar with the focused window and the clock.
func (m Model) renderTopBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	left := bg.Render(" ◆ portfolios ", styles.Logo)
	if top, ok := m.manager.Topmost(); ok {
		if desc, ok := m.registry.Get(top.ID); ok {
			left += bg.Space() + bg.Render(desc.Title, styles.Text)
		}
	}
	right := bg.Render(m.now.Format("Mon Jan 2  15:04")+" ", styles.MutedText)

	return bg.Spread(left, right, m.width)
}

// dockBar lays out the dock for the current width.
func (m Model) dockBar() dock.Bar {
	return dock.Layout(dock.Entries(m.registry.All(), m.manager), m.width)
}

// renderDock renders the launcher row. Entries of open windows are
// highlighted.
func (m Model) renderDock() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	var b strings.Builder
	cursor := 0
	for _, slot := range m.dockBar().Slots {
		b.WriteString(bg.Spaces(slot.X - cursor))
		style := styles.DockItem
		if slot.Active {
			style = styles.DockActive
		}
		b.WriteString(style.Render(slot.Label))
		cursor = slot.X + slot.Width
	}
	return bg.FillLine(b.String(), m.width)
}

// placeCentered centers content over the whole screen on the desktop color.
func (m Model) placeCentered(content string) string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Desktop)),
	)
}

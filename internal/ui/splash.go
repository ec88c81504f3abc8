package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderSplash renders the lock screen shown at start.
func (m Model) renderSplash() string {
	styles := m.theme.Styles()

	logo := m.logo
	if lipgloss.Width(logo) > m.width-4 {
		logo = "portfolios"
	}

	hint := "Press any key or click to unlock"
	if m.mobile {
		hint = "Swipe up or press any key to unlock"
	}

	var b strings.Builder
	b.WriteString(styles.Logo.Render(logo))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Bold(true).Render(m.now.Format("15:04")))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(m.now.Format("Monday, January 2")))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render(ansi.Truncate(hint, max(0, m.width-2), "…")))

	block := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Render(b.String())
	return m.placeCentered(block)
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	h := m.help
	h.ShowAll = true
	h.Width = max(0, m.width-8)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning))
	h.Styles.FullDesc = styles.Text
	h.Styles.FullSeparator = styles.FaintText

	bindings := m.keys.FullHelp()
	if m.mobile {
		bindings = m.keys.mobileHelp()
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")
	b.WriteString(h.FullHelpView(bindings))
	if !m.mobile {
		b.WriteString("\n\n")
		b.WriteString(styles.AccentText.Bold(true).Render("Mouse"))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("drag title bar to move · drag ◢ to resize\n□ maximize · × close · dock toggles apps"))
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2)

	return m.placeCentered(modal.Render(b.String()))
}

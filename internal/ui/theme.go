package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the desktop.
type Theme struct {
	Name string
	// Dark selects the dark markdown style for content panels.
	Dark bool

	// Base colors
	Desktop    string // Wallpaper behind the windows
	Pattern    string // Wallpaper dots
	Surface    string // Window bodies, top bar and dock
	SurfaceAlt string // Inactive title bars, dock entries

	// Title bars
	TitleBg       string
	TitleText     string
	TitleBgActive string

	// Borders
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Desktop: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Desktop)).
			Foreground(lipgloss.Color(t.Pattern)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		TopBar: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Title: lipgloss.NewStyle().
			Background(lipgloss.Color(t.TitleBg)).
			Foreground(lipgloss.Color(t.Muted)),

		TitleActive: lipgloss.NewStyle().
			Background(lipgloss.Color(t.TitleBgActive)).
			Foreground(lipgloss.Color(t.TitleText)).
			Bold(true),

		CloseButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		MaxButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),

		Border: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Border)),

		BorderFocus: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.BorderFocus)),

		DockItem: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Muted)),

		DockActive: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Accent)).
			Foreground(lipgloss.Color(t.Surface)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Accent)).
			Foreground(lipgloss.Color(t.Surface)).
			Bold(true),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Desktop lipgloss.Style
	Surface lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	WarningText lipgloss.Style

	// Components
	TopBar      lipgloss.Style
	Logo        lipgloss.Style
	Title       lipgloss.Style
	TitleActive lipgloss.Style
	CloseButton lipgloss.Style
	MaxButton   lipgloss.Style
	Border      lipgloss.Style
	BorderFocus lipgloss.Style
	DockItem    lipgloss.Style
	DockActive  lipgloss.Style
	Selected    lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Dark":     darkTheme(),
	"Light":    lightTheme(),
	"Nightfox": nightfoxTheme(),
}

var themeOrder = []string{"Dark", "Light", "Nightfox"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return darkTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func darkTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Dark",
		Dark: true,

		Desktop:    "#020617", // slate-950
		Pattern:    "#1e293b", // slate-800
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800

		TitleBg:       "#1e293b", // slate-800
		TitleText:     "#f8fafc", // slate-50
		TitleBgActive: "#334155", // slate-700

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
	}
}

func lightTheme() Theme {
	return Theme{
		Name: "Light",
		Dark: false,

		Desktop:    "#e2e8f0", // slate-200
		Pattern:    "#cbd5e1", // slate-300
		Surface:    "#f8fafc", // slate-50
		SurfaceAlt: "#f1f5f9", // slate-100

		TitleBg:       "#e2e8f0", // slate-200
		TitleText:     "#0f172a", // slate-900
		TitleBgActive: "#cbd5e1", // slate-300

		Border:      "#cbd5e1", // slate-300
		BorderFocus: "#0284c7", // sky-600

		Text:    "#0f172a", // slate-900
		Muted:   "#475569", // slate-600
		Faint:   "#94a3b8", // slate-400
		Accent:  "#0284c7", // sky-600
		Success: "#16a34a", // green-600
		Warning: "#d97706", // amber-600
		Danger:  "#dc2626", // red-600
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",
		Dark: true,

		Desktop:    "#131a24", // bg0
		Pattern:    "#212e3f", // bg2
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2

		TitleBg:       "#212e3f", // bg2
		TitleText:     "#cdcecf", // fg1
		TitleBgActive: "#2b3b51", // sel0

		Border:      "#39506d", // bg4
		BorderFocus: "#719cd6", // blue

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
	}
}

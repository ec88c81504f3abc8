package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	// Windows
	Launch       key.Binding
	CycleFocus   key.Binding
	Close        key.Binding
	Maximize     key.Binding
	MoveUp       key.Binding
	MoveDown     key.Binding
	MoveLeft     key.Binding
	MoveRight    key.Binding
	GrowUp       key.Binding
	GrowDown     key.Binding
	GrowLeft     key.Binding
	GrowRight    key.Binding
	ScrollUp     key.Binding
	ScrollDown   key.Binding
	ScrollTop    key.Binding
	ScrollBottom key.Binding

	// Mobile
	Open key.Binding
	Home key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel drag"),
		),

		// Windows
		Launch: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Open/close app"),
		),
		CycleFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next window"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Close window"),
		),
		Maximize: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Maximize/restore"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "Move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "Move down"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Move left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Move right"),
		),
		GrowUp: key.NewBinding(
			key.WithKeys("shift+up"),
			key.WithHelp("shift+↑", "Shorter"),
		),
		GrowDown: key.NewBinding(
			key.WithKeys("shift+down"),
			key.WithHelp("shift+↓", "Taller"),
		),
		GrowLeft: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("shift+←", "Narrower"),
		),
		GrowRight: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("shift+→", "Wider"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup", "k"),
			key.WithHelp("pgup/k", "Scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown", "j"),
			key.WithHelp("pgdown/j", "Scroll down"),
		),
		ScrollTop: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "Scroll to top"),
		),
		ScrollBottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "Scroll to bottom"),
		),

		// Mobile
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open app"),
		),
		Home: key.NewBinding(
			key.WithKeys("esc", "backspace", "h"),
			key.WithHelp("esc", "Home screen"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Launch, k.CycleFocus, k.Close, k.Maximize},
		{k.MoveUp, k.MoveDown, k.MoveLeft, k.MoveRight},
		{k.GrowUp, k.GrowDown, k.GrowLeft, k.GrowRight},
		{k.ScrollUp, k.ScrollDown, k.ScrollTop, k.ScrollBottom},
		{k.CycleTheme, k.Help, k.Escape, k.Quit},
	}
}

// mobileHelp returns the bindings that apply on the narrow shell.
func (k keyMap) mobileHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Launch, k.Open, k.Home},
		{k.ScrollUp, k.ScrollDown},
		{k.CycleTheme, k.Help, k.Quit},
	}
}

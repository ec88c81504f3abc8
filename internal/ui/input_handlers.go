package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key lifts the lock screen.
	if m.locked {
		m.unlock()
		return m, nil
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	}

	if m.mobile {
		return m.handleMobileKey(msg)
	}
	return m.handleDesktopKey(msg)
}

// handleDesktopKey processes keys in the windowed layout. Window commands
// apply to the topmost window; unmatched keys go to its panel.
func (m Model) handleDesktopKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.cancelPointer()
		return m, nil

	case key.Matches(msg, m.keys.Launch):
		if id, ok := m.appForKey(msg.String()); ok {
			m.manager.Open(id)
			m.syncWindows()
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleFocus):
		m.manager.FocusNext()
		return m, nil
	}

	top, ok := m.manager.Topmost()
	if !ok {
		return m, nil
	}
	id := top.ID

	switch {
	case key.Matches(msg, m.keys.Close):
		m.manager.Close(id)
	case key.Matches(msg, m.keys.Maximize):
		m.manager.ToggleMaximize(id)
	case key.Matches(msg, m.keys.MoveUp):
		m.manager.Nudge(id, 0, -NudgeY)
	case key.Matches(msg, m.keys.MoveDown):
		m.manager.Nudge(id, 0, NudgeY)
	case key.Matches(msg, m.keys.MoveLeft):
		m.manager.Nudge(id, -NudgeX, 0)
	case key.Matches(msg, m.keys.MoveRight):
		m.manager.Nudge(id, NudgeX, 0)
	case key.Matches(msg, m.keys.GrowUp):
		m.manager.Grow(id, 0, -NudgeY)
	case key.Matches(msg, m.keys.GrowDown):
		m.manager.Grow(id, 0, NudgeY)
	case key.Matches(msg, m.keys.GrowLeft):
		m.manager.Grow(id, -NudgeX, 0)
	case key.Matches(msg, m.keys.GrowRight):
		m.manager.Grow(id, NudgeX, 0)
	default:
		if m.scrollKey(id, msg) {
			return m, nil
		}
		if h, ok := m.keyHandler(id); ok && h.HandleKey(msg.String()) {
			m.syncWindows()
		}
		return m, nil
	}

	m.syncWindows()
	return m, nil
}

// handleMobileKey processes keys on the narrow shell.
func (m Model) handleMobileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Launch) {
		if id, ok := m.appForKey(msg.String()); ok && m.shell.Launch(id) {
			m.syncWindows()
		}
		return m, nil
	}

	if id, ok := m.shell.Foreground(); ok {
		switch {
		case key.Matches(msg, m.keys.Home):
			m.shell.Home()
		case m.scrollKey(id, msg):
		default:
			if h, ok := m.keyHandler(id); ok && h.HandleKey(msg.String()) {
				m.syncWindows()
			}
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.MoveUp):
		m.shell.MoveSelection(0, -1)
	case key.Matches(msg, m.keys.MoveDown):
		m.shell.MoveSelection(0, 1)
	case key.Matches(msg, m.keys.MoveLeft):
		m.shell.MoveSelection(-1, 0)
	case key.Matches(msg, m.keys.MoveRight):
		m.shell.MoveSelection(1, 0)
	case key.Matches(msg, m.keys.Open):
		if m.shell.LaunchSelected() {
			m.syncWindows()
		}
	}
	return m, nil
}

// scrollKey applies a scroll binding to the content of id. It reports
// whether msg was one.
func (m Model) scrollKey(id string, msg tea.KeyMsg) bool {
	vp := m.view(id)
	switch {
	case key.Matches(msg, m.keys.ScrollUp):
		vp.ScrollUp(max(1, vp.Height-1))
	case key.Matches(msg, m.keys.ScrollDown):
		vp.ScrollDown(max(1, vp.Height-1))
	case key.Matches(msg, m.keys.ScrollTop):
		vp.GotoTop()
	case key.Matches(msg, m.keys.ScrollBottom):
		vp.GotoBottom()
	default:
		return false
	}
	return true
}

// appForKey maps a number key to the app in that dock position.
func (m Model) appForKey(k string) (string, bool) {
	if len(k) != 1 || k[0] < '1' || k[0] > '9' {
		return "", false
	}
	ids := m.registry.IDs()
	idx := int(k[0] - '1')
	if idx >= len(ids) {
		return "", false
	}
	return ids[idx], true
}

package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/portfolios/internal/wm"
)

// handleMouse routes pointer events. A press on window chrome starts a
// gesture and acquires the capture; motion and release then go to the
// capturing handler only, wherever the pointer is.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.locked {
		return m.handleSplashMouse(msg)
	}
	if m.showHelp {
		if msg.Action == tea.MouseActionPress {
			m.showHelp = false
		}
		return m, nil
	}
	if m.mobile {
		return m.handleMobileMouse(msg)
	}
	return m.handleDesktopMouse(msg)
}

// desktopPoint converts screen cells to desktop coordinates.
func desktopPoint(msg tea.MouseMsg) wm.Point {
	return wm.Point{X: msg.X, Y: msg.Y - TopBarHeight}
}

func (m Model) handleDesktopMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := desktopPoint(msg)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			m.scrollAt(p, msg.Button == tea.MouseButtonWheelUp)
			return m, nil
		}
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		// A press while a capture is still held means its release was lost.
		m.capture.Cancel()

		if msg.Y == m.height-DockHeight {
			m.pressDock(msg.X)
			return m, nil
		}
		if msg.Y < TopBarHeight {
			return m, nil
		}
		m.pressWindow(p)

	case tea.MouseActionMotion:
		if !m.capture.Dispatch(p) {
			return m, nil
		}

	case tea.MouseActionRelease:
		if !m.capture.Held() {
			return m, nil
		}
		m.capture.Dispatch(p)
		m.capture.Release()
	}

	m.syncWindows()
	return m, nil
}

// pressDock handles a click on the dock row.
func (m *Model) pressDock(x int) {
	bar := m.dockBar()
	id, ok := bar.HitTest(x)
	if !ok {
		return
	}
	m.manager.Open(id)
	m.syncWindows()
}

// pressWindow handles a left press on the desktop at p.
func (m *Model) pressWindow(p wm.Point) {
	rec, ok := m.manager.WindowAt(p)
	if !ok {
		return
	}
	switch hitTest(rec, p) {
	case regionClose:
		m.manager.Close(rec.ID)
	case regionMaximize:
		m.manager.ToggleMaximize(rec.ID)
	case regionTitle:
		h := m.handler(rec.ID)
		if h.BeginDrag(p) {
			m.capture.Acquire(h)
		}
	case regionResize:
		h := m.handler(rec.ID)
		if h.BeginResize(p) {
			m.capture.Acquire(h)
		}
	case regionBody:
		m.manager.Focus(rec.ID)
	}
}

// scrollAt scrolls the window under p without raising it.
func (m *Model) scrollAt(p wm.Point, up bool) {
	rec, ok := m.manager.WindowAt(p)
	if !ok {
		return
	}
	vp := m.view(rec.ID)
	if up {
		vp.ScrollUp(WheelStep)
	} else {
		vp.ScrollDown(WheelStep)
	}
}

func (m Model) handleMobileMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	id, inApp := m.shell.Foreground()

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
			if inApp {
				vp := m.view(id)
				if msg.Button == tea.MouseButtonWheelUp {
					vp.ScrollUp(WheelStep)
				} else {
					vp.ScrollDown(WheelStep)
				}
			}
			return m, nil
		case tea.MouseButtonLeft:
		default:
			return m, nil
		}

		if inApp {
			if msg.Y == m.height-1 {
				m.shell.BeginSwipe(msg.Y)
				m.swipeStart = msg.Y
			}
			return m, nil
		}
		if app, ok := m.gridAppAt(msg.X, msg.Y); ok && m.shell.Launch(app) {
			m.syncWindows()
		}

	case tea.MouseActionRelease:
		if !m.shell.Swiping() {
			return m, nil
		}
		if m.shell.EndSwipe(msg.Y) {
			return m, nil
		}
		// A tap on the home bar goes home too.
		if msg.Y == m.swipeStart {
			m.shell.Home()
		}
	}
	return m, nil
}

func (m Model) handleSplashMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Releases may not carry the button, so only presses are filtered.
	if msg.Action == tea.MouseActionPress && msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if !m.mobile {
		if msg.Action == tea.MouseActionPress {
			m.unlock()
		}
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.splashSwipe.Begin(msg.Y)
	case tea.MouseActionRelease:
		if m.splashSwipe.End(msg.Y) {
			m.unlock()
		}
	}
	return m, nil
}

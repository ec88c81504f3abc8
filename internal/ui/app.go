package ui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/portfolios/internal/config"
	"github.com/five82/portfolios/internal/content"
	"github.com/five82/portfolios/internal/logging"
	"github.com/five82/portfolios/internal/mobile"
	"github.com/five82/portfolios/internal/prefs"
	"github.com/five82/portfolios/internal/registry"
	"github.com/five82/portfolios/internal/wm"
)

// Options configures the UI.
type Options struct {
	Context  context.Context
	Registry *registry.Registry
	Config   *config.Config

	// Manager and Tracker must share the viewport. When Manager is nil one
	// is built from Registry over Tracker (or a new tracker).
	Manager *wm.Manager
	Tracker *wm.Tracker

	ThemeName   string
	PrefsPath   string
	ForceMobile bool
	Logger      *slog.Logger

	// Now overrides the wall clock, for tests.
	Now func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	registry  *registry.Registry
	config    *config.Config
	manager   *wm.Manager
	tracker   *wm.Tracker
	prefsPath string
	log       *slog.Logger

	// UI state
	theme       Theme
	keys        keyMap
	help        help.Model
	logo        string
	width       int
	height      int
	ready       bool
	showHelp    bool
	locked      bool
	forceMobile bool
	mobile      bool

	// Time state
	now     time.Time
	started time.Time

	// Pointer state
	capture     *wm.Capture
	handlers    map[string]*wm.Handler
	splashSwipe *mobile.Swipe
	swipeStart  int

	// Window contents, one scrollable view per app
	views map[string]*viewport.Model

	shell *mobile.Shell
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := opts.Config
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}

	reg := opts.Registry
	if reg == nil {
		reg, _ = registry.New(registry.Builtin())
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	tracker := opts.Tracker
	if tracker == nil {
		tracker = wm.NewTracker(0, 0)
	}
	manager := opts.Manager
	if manager == nil {
		manager = wm.New(reg.Windows(), wm.Options{Viewport: tracker, Logger: logger})
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Default().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	clock := opts.Now
	if clock == nil {
		clock = time.Now
	}
	now := clock()

	return Model{
		ctx:         ctx,
		registry:    reg,
		config:      cfg,
		manager:     manager,
		tracker:     tracker,
		prefsPath:   prefsPath,
		log:         logger,
		theme:       GetTheme(themeName),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		logo:        createLogo("portfolios"),
		locked:      !cfg.SkipSplash,
		forceMobile: opts.ForceMobile,
		mobile:      opts.ForceMobile,
		now:         now,
		started:     now,
		capture:     &wm.Capture{},
		handlers:    make(map[string]*wm.Handler),
		splashSwipe: &mobile.Swipe{Threshold: mobile.DefaultSwipeThreshold},
		views:       make(map[string]*viewport.Model),
		shell:       mobile.New(reg.IDs(), mobile.Options{Logger: logger}),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(ClockInterval)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.BlurMsg:
		// Losing terminal focus mid-gesture is a pointer cancel.
		m.cancelPointer()
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		m.syncWindows()
		return m, tickCmd(ClockInterval)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.locked {
		return m.renderSplash()
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.mobile {
		return m.renderMobile()
	}
	return m.renderDesktop()
}

// resize applies a terminal size change: it picks the layout mode, feeds
// the desktop area to the viewport tracker and refits maximized windows.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.ready = true

	wasMobile := m.mobile
	m.mobile = m.forceMobile || width < m.config.CompactWidth
	if wasMobile != m.mobile {
		m.cancelPointer()
		m.log.Info("layout mode changed", "mobile", m.mobile, "width", width)
	}

	if m.tracker.Set(width, max(0, height-TopBarHeight-DockHeight)) {
		m.manager.RepinMaximized()
	}
	m.syncWindows()
}

// cancelPointer drops any gesture in progress.
func (m *Model) cancelPointer() {
	m.capture.Cancel()
	m.shell.CancelSwipe()
	m.splashSwipe.Cancel()
}

// handler returns the gesture handler for window id, creating it on first
// use.
func (m *Model) handler(id string) *wm.Handler {
	h, ok := m.handlers[id]
	if !ok {
		h = wm.NewHandler(id, m.manager)
		m.handlers[id] = h
	}
	return h
}

// view returns the content viewport for app id.
func (m *Model) view(id string) *viewport.Model {
	vp, ok := m.views[id]
	if !ok {
		v := viewport.New(0, 0)
		vp = &v
		m.views[id] = vp
	}
	return vp
}

// syncWindows sizes and refills the content of every visible app.
func (m *Model) syncWindows() {
	if m.mobile {
		if id, ok := m.shell.Foreground(); ok {
			m.syncView(id, m.mobileBodySize())
		}
		return
	}
	for _, rec := range m.manager.Stack() {
		m.syncView(rec.ID, bodySize(rec.Size))
	}
}

func (m *Model) syncView(id string, size wm.Size) {
	vp := m.view(id)
	vp.Width = size.Width
	vp.Height = size.Height
	vp.SetContent(m.renderPanel(id, size.Width))
}

// renderPanel renders the body of app id at width cells.
func (m *Model) renderPanel(id string, width int) string {
	styles := m.theme.Styles()
	desc, ok := m.registry.Get(id)
	if !ok {
		return ""
	}
	panel, ok := desc.Content.(content.Panel)
	if !ok {
		return styles.MutedText.Render("Nothing to show.")
	}

	mode := "desktop"
	if m.mobile {
		mode = "mobile"
	}
	out, err := panel.Render(content.Env{
		Width:   width,
		Dark:    m.theme.Dark,
		Theme:   m.theme.Name,
		Now:     m.now,
		Started: m.started,
		Columns: m.width,
		Rows:    m.height,
		Mode:    mode,
		LogFile: m.config.LogFile,
		Session: logging.Session(),
	})
	if err != nil {
		m.log.Warn("render panel failed", "id", id, "error", err)
		return styles.WarningText.Render("Could not render " + desc.Title + ".")
	}
	return out
}

// keyHandler returns the key handler of app id, if its panel has one.
func (m *Model) keyHandler(id string) (content.Handler, bool) {
	desc, ok := m.registry.Get(id)
	if !ok {
		return nil, false
	}
	h, ok := desc.Content.(content.Handler)
	return h, ok
}

// unlock leaves the splash screen.
func (m *Model) unlock() {
	if !m.locked {
		return
	}
	m.locked = false
	m.splashSwipe.Cancel()
	m.syncWindows()
	m.log.Debug("desktop unlocked")
}

// cycleTheme switches to the next theme and persists the choice.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefsPath != "" {
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			m.log.Warn("save prefs failed", "error", err)
		}
	}
	m.syncWindows()
}

// Messages

type tickMsg time.Time

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithContext(m.ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}

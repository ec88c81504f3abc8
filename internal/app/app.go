package app

import (
	"context"
	"fmt"

	"github.com/five82/portfolios/internal/config"
	"github.com/five82/portfolios/internal/content"
	"github.com/five82/portfolios/internal/logging"
	"github.com/five82/portfolios/internal/prefs"
	"github.com/five82/portfolios/internal/registry"
	"github.com/five82/portfolios/internal/ui"
	"github.com/five82/portfolios/internal/wm"
)

// closedStart is an id no app carries. Passing it as the default-open app
// starts the session with every window closed.
const closedStart = "-"

// Options configure the desktop shell.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/portfolios/prefs.toml
	LogPath    string // empty uses the config's log_file
	Mobile     bool   // force the single-app layout
}

// Run boots the desktop TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if opts.LogPath != "" {
		cfg.LogFile = opts.LogPath
	}
	closer, err := logging.Setup(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer func() { _ = closer.Close() }()
	log := logging.New("app")

	userPrefs, err := prefs.Load(opts.PrefsPath, ui.ThemeNames())
	if err != nil {
		log.Warn("load prefs failed, using defaults", "error", err)
		userPrefs = prefs.Default()
	}

	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	manager, tracker, err := buildManager(cfg, reg)
	if err != nil {
		return err
	}

	log.Info("session started",
		"apps", reg.Len(),
		"default_open", cfg.DefaultOpen,
		"dock_click", manager.Policy(),
		"theme", userPrefs.Theme,
		"mobile", opts.Mobile,
	)

	uiOpts := ui.Options{
		Context:     ctx,
		Registry:    reg,
		Config:      &cfg,
		Manager:     manager,
		Tracker:     tracker,
		ThemeName:   userPrefs.Theme,
		PrefsPath:   opts.PrefsPath,
		ForceMobile: opts.Mobile,
		Logger:      logging.New("ui"),
	}
	if err := ui.Run(uiOpts); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	log.Info("session ended")
	return nil
}

// buildRegistry attaches the built-in panels to the built-in apps and
// applies the config overrides.
func buildRegistry(cfg config.Config) (*registry.Registry, error) {
	panels, err := content.Builtin()
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	reg, err := registry.New(registry.WithContent(registry.Builtin(), content.AsContent(panels)))
	if err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}
	reg, err = reg.Apply(overrides(cfg.Apps))
	if err != nil {
		return nil, fmt.Errorf("apply app overrides: %w", err)
	}
	return reg, nil
}

// buildManager creates the window manager over a tracker the UI feeds with
// the desktop size.
func buildManager(cfg config.Config, reg *registry.Registry) (*wm.Manager, *wm.Tracker, error) {
	policy, err := wm.ParseOpenPolicy(cfg.DockClick)
	if err != nil {
		return nil, nil, fmt.Errorf("parse dock_click: %w", err)
	}
	defaultOpen := cfg.DefaultOpen
	if defaultOpen == "" {
		defaultOpen = closedStart
	}

	// The config already carries resolved values, so zeros are honoured.
	cascade := wm.Cascade{
		Origin: wm.Point{X: cfg.CascadeOrigin.X, Y: cfg.CascadeOrigin.Y},
		Step:   wm.Point{X: cfg.CascadeStep.X, Y: cfg.CascadeStep.Y},
	}
	tracker := wm.NewTracker(0, 0)
	manager := wm.New(reg.Windows(), wm.Options{
		Viewport:     tracker,
		DefaultOpen:  defaultOpen,
		OpenPolicy:   policy,
		MinSizeFloor: wm.Size{Width: cfg.MinSize.Width, Height: cfg.MinSize.Height},
		Cascade:      &cascade,
		Logger:       logging.New("wm"),
	})
	return manager, tracker, nil
}

func overrides(apps []config.AppOverride) []registry.Override {
	out := make([]registry.Override, 0, len(apps))
	for _, a := range apps {
		out = append(out, registry.Override{
			ID:          a.ID,
			Title:       a.Title,
			Icon:        a.Icon,
			DefaultSize: wm.Size{Width: a.Width, Height: a.Height},
			MinSize:     wm.Size{Width: a.MinWidth, Height: a.MinHeight},
			Hidden:      a.Hidden,
		})
	}
	return out
}

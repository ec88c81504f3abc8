package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Dims is a width/height pair in terminal cells.
type Dims struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Offset is a column/row pair in terminal cells.
type Offset struct {
	X int `toml:"x"`
	Y int `toml:"y"`
}

// AppOverride adjusts one built-in app. Zero fields keep the built-in value.
type AppOverride struct {
	ID        string `toml:"id"`
	Title     string `toml:"title"`
	Icon      string `toml:"icon"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	MinWidth  int    `toml:"min_width"`
	MinHeight int    `toml:"min_height"`
	Hidden    bool   `toml:"hidden"`
}

// Config is the desktop shell configuration.
type Config struct {
	DefaultOpen   string
	DockClick     string
	CompactWidth  int
	SkipSplash    bool
	MinSize       Dims
	CascadeOrigin Offset
	CascadeStep   Offset
	Apps          []AppOverride
	LogFile       string
}

const (
	defaultConfigPath   = "~/.config/portfolios/config.toml"
	defaultLogFile      = "~/.local/state/portfolios/portfolios.log"
	defaultOpenApp      = "about"
	defaultDockClick    = "toggle"
	defaultCompactWidth = 80
)

var (
	defaultMinSize       = Dims{Width: 24, Height: 8}
	defaultCascadeOrigin = Offset{X: 4, Y: 1}
	defaultCascadeStep   = Offset{X: 6, Y: 2}
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		DefaultOpen:   defaultOpenApp,
		DockClick:     defaultDockClick,
		CompactWidth:  defaultCompactWidth,
		MinSize:       defaultMinSize,
		CascadeOrigin: defaultCascadeOrigin,
		CascadeStep:   defaultCascadeStep,
		LogFile:       mustExpand(defaultLogFile),
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DefaultOpen  *string       `toml:"default_open"`
		DockClick    string        `toml:"dock_click"`
		CompactWidth *int          `toml:"compact_width"`
		SkipSplash   bool          `toml:"skip_splash"`
		MinSize      *Dims         `toml:"min_size"`
		Cascade      *rawCascade   `toml:"cascade"`
		Apps         []AppOverride `toml:"apps"`
		LogFile      string        `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	// An explicit empty default_open means start with every window closed.
	if raw.DefaultOpen != nil {
		cfg.DefaultOpen = strings.TrimSpace(*raw.DefaultOpen)
	}

	cfg.DockClick = strings.ToLower(strings.TrimSpace(raw.DockClick))
	if cfg.DockClick == "" {
		cfg.DockClick = defaultDockClick
	}
	if cfg.DockClick != "toggle" && cfg.DockClick != "focus" {
		return Config{}, fmt.Errorf("invalid dock_click %q: want toggle or focus", raw.DockClick)
	}

	if raw.CompactWidth != nil {
		if *raw.CompactWidth < 0 {
			return Config{}, fmt.Errorf("invalid compact_width %d: must not be negative", *raw.CompactWidth)
		}
		cfg.CompactWidth = *raw.CompactWidth
	}

	cfg.SkipSplash = raw.SkipSplash

	if raw.MinSize != nil {
		if raw.MinSize.Width > 0 {
			cfg.MinSize.Width = raw.MinSize.Width
		}
		if raw.MinSize.Height > 0 {
			cfg.MinSize.Height = raw.MinSize.Height
		}
	}

	if raw.Cascade != nil {
		if raw.Cascade.Origin != nil {
			cfg.CascadeOrigin = *raw.Cascade.Origin
		}
		if raw.Cascade.Step != nil {
			cfg.CascadeStep = *raw.Cascade.Step
		}
	}

	seen := make(map[string]bool, len(raw.Apps))
	for i, app := range raw.Apps {
		app.ID = strings.TrimSpace(app.ID)
		if app.ID == "" {
			return Config{}, fmt.Errorf("apps[%d]: id is required", i)
		}
		if seen[app.ID] {
			return Config{}, fmt.Errorf("apps[%d]: duplicate id %q", i, app.ID)
		}
		seen[app.ID] = true
		cfg.Apps = append(cfg.Apps, app)
	}

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	return cfg, nil
}

type rawCascade struct {
	Origin *Offset `toml:"origin"`
	Step   *Offset `toml:"step"`
}

// DefaultPath returns the config file location used when none is given.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

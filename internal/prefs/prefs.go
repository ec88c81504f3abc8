// Package prefs remembers the desktop theme between sessions.
//
// The file at ~/.config/portfolios/prefs.toml holds one key, theme. Window
// layout is never stored: every session starts from the configured cascade.
// Load always yields usable preferences; a theme the shell does not offer
// is replaced by the default so an old or hand-edited file cannot select a
// missing palette.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences.
type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/portfolios/prefs.toml"
	defaultTheme     = "Dark"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Default returns the preferences of a first run.
func Default() Prefs {
	return Prefs{Theme: defaultTheme}
}

// Load reads preferences from path (empty selects DefaultPath). themes lists
// the theme names the shell offers; a stored name is matched against it
// without regard to case and replaced by the default when absent. An empty
// list accepts any name.
//
// A missing file is a first run, not an error. When the file cannot be read
// or parsed the defaults are returned together with the error.
func Load(path string, themes []string) (Prefs, error) {
	p := Default()

	resolved, err := resolvePath(path)
	if err != nil {
		return p, err
	}
	data, err := os.ReadFile(resolved)
	if errors.Is(err, os.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("read prefs: %w", err)
	}

	var stored Prefs
	if err := toml.Unmarshal(data, &stored); err != nil {
		return p, fmt.Errorf("parse prefs %s: %w", resolved, err)
	}
	if theme, ok := matchTheme(stored.Theme, themes); ok {
		p.Theme = theme
	}
	return p, nil
}

// matchTheme returns the canonical spelling of name from themes.
func matchTheme(name string, themes []string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	if len(themes) == 0 {
		return name, true
	}
	for _, t := range themes {
		if strings.EqualFold(t, name) {
			return t, true
		}
	}
	return "", false
}

// Save writes preferences to path, creating its directory. The file is
// replaced atomically so a crash mid-write leaves the previous theme.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("create temp prefs: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), resolved); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = defaultPrefsPath
	}
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, rest)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve prefs path: %w", err)
	}
	return abs, nil
}

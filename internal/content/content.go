// Package content holds the panels shown inside desktop windows.
//
// Panels are opaque to the window manager. The UI hands each one an Env
// describing the space it has and gets back a rendered string, which it
// scrolls and clips to the window body.
//
// Markdown panels (About, Contact, Notes, Portfolio) render through glamour
// and cache the result per width and theme. System Info and Music are built
// from live values on every render.
package content

import (
	"embed"
	"fmt"
	"time"

	"github.com/five82/portfolios/internal/registry"
)

//go:embed assets
var assets embed.FS

// Env is what a panel knows about its surroundings at render time.
type Env struct {
	Width   int
	Dark    bool
	Theme   string
	Now     time.Time
	Started time.Time
	Columns int
	Rows    int
	Mode    string

	// LogFile and Session locate this run's entries in the session log.
	LogFile string
	Session string
}

// Panel renders one app body.
type Panel interface {
	Render(env Env) (string, error)
}

// Handler is implemented by panels that react to keys while their window
// is in front. It reports whether the key was used.
type Handler interface {
	HandleKey(key string) bool
}

// Builtin returns the stock panels keyed by app id.
func Builtin() (map[string]Panel, error) {
	about, err := assets.ReadFile("assets/about.md")
	if err != nil {
		return nil, fmt.Errorf("read about: %w", err)
	}
	contact, err := assets.ReadFile("assets/contact.md")
	if err != nil {
		return nil, fmt.Errorf("read contact: %w", err)
	}
	notes, err := assets.ReadFile("assets/notes.md")
	if err != nil {
		return nil, fmt.Errorf("read notes: %w", err)
	}
	projectsRaw, err := assets.ReadFile("assets/projects.yaml")
	if err != nil {
		return nil, fmt.Errorf("read projects: %w", err)
	}
	projects, err := ParseProjects(projectsRaw)
	if err != nil {
		return nil, err
	}
	playlistRaw, err := assets.ReadFile("assets/playlist.yaml")
	if err != nil {
		return nil, fmt.Errorf("read playlist: %w", err)
	}
	playlist, err := ParsePlaylist(playlistRaw)
	if err != nil {
		return nil, err
	}

	return map[string]Panel{
		registry.About:      NewMarkdown(string(about)),
		registry.Portfolio:  NewMarkdown(ProjectsMarkdown(projects)),
		registry.Contact:    NewMarkdown(string(contact)),
		registry.Notes:      NewMarkdown(string(notes)),
		registry.SystemInfo: SystemInfo{},
		registry.Music:      NewMusic(playlist),
	}, nil
}

// AsContent converts panels for registry.WithContent.
func AsContent(panels map[string]Panel) map[string]any {
	out := make(map[string]any, len(panels))
	for id, p := range panels {
		out[id] = p
	}
	return out
}

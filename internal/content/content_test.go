package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/portfolios/internal/registry"
)

func TestBuiltin_OnePanelPerApp(t *testing.T) {
	panels, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin returned error: %v", err)
	}
	for _, d := range registry.Builtin() {
		if _, ok := panels[d.ID]; !ok {
			t.Fatalf("no panel for %q", d.ID)
		}
	}
	if got := len(AsContent(panels)); got != len(panels) {
		t.Fatalf("AsContent len = %d, want %d", got, len(panels))
	}
}

func TestParseProjects(t *testing.T) {
	projects, err := ParseProjects([]byte(`
projects:
  - title: " one "
    description: first
    url: https://example.com/one
    tags: [go]
  - title: ""
    description: dropped
  - title: two
`))
	if err != nil {
		t.Fatalf("ParseProjects returned error: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("len = %d, want 2", len(projects))
	}
	if projects[0].Title != "one" || projects[0].Tags[0] != "go" {
		t.Fatalf("projects[0] = %+v", projects[0])
	}

	if _, err := ParseProjects([]byte("projects: [")); err == nil {
		t.Fatalf("ParseProjects(bad yaml) returned nil error")
	}
}

func TestProjectsMarkdown(t *testing.T) {
	md := ProjectsMarkdown([]Project{{Title: "flyer", Description: "dash", URL: "https://x", Tags: []string{"go", "tui"}}})
	for _, want := range []string{"## flyer", "dash", "`go` `tui`", "https://x"} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown %q missing %q", md, want)
		}
	}
	if !strings.Contains(ProjectsMarkdown(nil), "Nothing here yet") {
		t.Fatalf("empty list should say so")
	}
}

func TestMarkdown_RenderWrapsAndCaches(t *testing.T) {
	panel := NewMarkdown("# Title\n\nsome words that will need to wrap around at a narrow width")

	out, err := panel.Render(Env{Width: 30, Dark: true})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	plain := ansi.Strip(out)
	if !strings.Contains(plain, "Title") {
		t.Fatalf("render %q missing heading", plain)
	}
	if lines := strings.Count(strings.TrimSpace(plain), "\n") + 1; lines < 3 {
		t.Fatalf("render has %d lines, want the paragraph wrapped", lines)
	}

	again, _ := panel.Render(Env{Width: 30, Dark: true})
	if again != out {
		t.Fatalf("second render differs from cached one")
	}
	if _, err := panel.Render(Env{Width: 30, Dark: false}); err != nil {
		t.Fatalf("light Render returned error: %v", err)
	}
	if len(panel.cache) != 2 {
		t.Fatalf("cache size = %d, want 2", len(panel.cache))
	}
}

func TestMarkdown_CacheIsBounded(t *testing.T) {
	panel := NewMarkdown("hello")
	for w := 20; w < 20+maxCachedRenders+4; w++ {
		if _, err := panel.Render(Env{Width: w, Dark: true}); err != nil {
			t.Fatalf("Render returned error: %v", err)
		}
	}
	if len(panel.cache) != maxCachedRenders || len(panel.order) != maxCachedRenders {
		t.Fatalf("cache = %d/%d entries, want %d", len(panel.cache), len(panel.order), maxCachedRenders)
	}
}

func TestParsePlaylist(t *testing.T) {
	p, err := ParsePlaylist([]byte(`
artist: someone
tracks:
  - title: a
    length: 2m41s
`))
	if err != nil {
		t.Fatalf("ParsePlaylist returned error: %v", err)
	}
	if p.Station != "Radio" {
		t.Fatalf("Station = %q, want Radio", p.Station)
	}
	if p.Tracks[0].Length != 2*time.Minute+41*time.Second {
		t.Fatalf("Length = %v, want 2m41s", p.Tracks[0].Length)
	}
}

func TestMusic_HandleKey(t *testing.T) {
	m := NewMusic(Playlist{Station: "s", Tracks: []Track{{Title: "a"}, {Title: "b"}, {Title: "c"}}})

	if !m.HandleKey(" ") || !m.Playing() {
		t.Fatalf("space should start playback")
	}
	for i := 0; i < 20; i++ {
		m.HandleKey("+")
	}
	if m.Volume() != maxVolume {
		t.Fatalf("Volume = %d, want %d", m.Volume(), maxVolume)
	}
	m.HandleKey("b")
	if m.Current() != 2 {
		t.Fatalf("Current = %d, want 2 after skipping back from the first track", m.Current())
	}
	m.HandleKey("n")
	if m.Current() != 0 {
		t.Fatalf("Current = %d, want 0", m.Current())
	}
	if m.HandleKey("z") {
		t.Fatalf("HandleKey(z) = true, want false")
	}

	out, err := m.Render(Env{Width: 40})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(ansi.Strip(out), "Playing") {
		t.Fatalf("render %q missing play state", ansi.Strip(out))
	}
}

func TestSystemInfo_Render(t *testing.T) {
	start := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	out, err := SystemInfo{}.Render(Env{
		Width:   60,
		Now:     start.Add(90 * time.Second),
		Started: start,
		Columns: 120,
		Rows:    40,
		Theme:   "Dark",
		Mode:    "desktop",
	})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	plain := ansi.Strip(out)
	for _, want := range []string{"10:01:30", "1m 30s", "120×40", "Dark", "desktop"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("render %q missing %q", plain, want)
		}
	}
}

func TestSystemInfo_RecentActivity(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "portfolios.log")
	log := strings.Join([]string{
		`time=2026-01-02T10:00:00Z level=INFO msg="window opened" session=other id=notes`,
		`time=2026-01-02T10:00:01Z level=DEBUG msg="window opened" session=me component=wm id=contact`,
	}, "\n") + "\n"
	if err := os.WriteFile(logPath, []byte(log), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	out, err := SystemInfo{}.Render(Env{Width: 60, LogFile: logPath, Session: "me"})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	plain := ansi.Strip(out)
	if !strings.Contains(plain, "Recent activity") || !strings.Contains(plain, "window opened contact") {
		t.Fatalf("render %q missing this session's activity", plain)
	}
	if strings.Contains(plain, "notes") {
		t.Fatalf("render %q shows another session", plain)
	}

	out, _ = SystemInfo{}.Render(Env{Width: 60, LogFile: filepath.Join(t.TempDir(), "none.log")})
	if strings.Contains(ansi.Strip(out), "Recent activity") {
		t.Fatalf("activity section shown without a log")
	}
}

func TestFormatUptime(t *testing.T) {
	tests := map[time.Duration]string{
		-time.Second:                      "0s",
		5 * time.Second:                   "5s",
		2*time.Hour + 3*time.Minute:       "2h 03m 00s",
		61*time.Second + time.Millisecond: "1m 01s",
	}
	for in, want := range tests {
		if got := formatUptime(in); got != want {
			t.Fatalf("formatUptime(%v) = %q, want %q", in, got, want)
		}
	}
}

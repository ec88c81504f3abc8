package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Track is one playlist entry.
type Track struct {
	Title  string        `yaml:"title"`
	Length time.Duration `yaml:"length"`
}

// Playlist describes the radio station shown by the music panel.
type Playlist struct {
	Station string  `yaml:"station"`
	Artist  string  `yaml:"artist"`
	Stream  string  `yaml:"stream"`
	Tracks  []Track `yaml:"tracks"`
}

// ParsePlaylist decodes a playlist document.
func ParsePlaylist(data []byte) (Playlist, error) {
	var p Playlist
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Playlist{}, fmt.Errorf("parse playlist: %w", err)
	}
	if strings.TrimSpace(p.Station) == "" {
		p.Station = "Radio"
	}
	return p, nil
}

const maxVolume = 10

// Music is the player panel. It tracks play state, volume and the current
// track; no audio is produced.
type Music struct {
	playlist Playlist
	playing  bool
	volume   int
	current  int
}

// NewMusic returns a paused player at half volume.
func NewMusic(p Playlist) *Music {
	return &Music{playlist: p, volume: maxVolume / 2}
}

// Playing reports the play state.
func (m *Music) Playing() bool { return m.playing }

// Volume returns the volume from 0 to 10.
func (m *Music) Volume() int { return m.volume }

// Current returns the index of the current track.
func (m *Music) Current() int { return m.current }

// HandleKey implements Handler: space or p toggles play, +/- change the
// volume, n and b skip tracks.
func (m *Music) HandleKey(key string) bool {
	switch key {
	case " ", "space", "p":
		m.playing = !m.playing
	case "+", "=":
		m.volume = min(maxVolume, m.volume+1)
	case "-":
		m.volume = max(0, m.volume-1)
	case "n":
		m.skip(1)
	case "b":
		m.skip(-1)
	default:
		return false
	}
	return true
}

func (m *Music) skip(delta int) {
	n := len(m.playlist.Tracks)
	if n == 0 {
		return
	}
	m.current = ((m.current+delta)%n + n) % n
}

// Render implements Panel.
func (m *Music) Render(env Env) (string, error) {
	title := lipgloss.NewStyle().Bold(true)
	muted := lipgloss.NewStyle().Faint(true)

	state := "❚❚ Paused"
	if m.playing {
		state = "▶ Playing"
	}

	var b strings.Builder
	b.WriteString(title.Render(m.playlist.Station))
	b.WriteString("\n")
	if m.playlist.Artist != "" {
		b.WriteString(muted.Render("by " + m.playlist.Artist))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s   vol %s\n\n", state, volumeBar(m.volume))

	for i, t := range m.playlist.Tracks {
		marker := "  "
		if i == m.current {
			marker = "♪ "
		}
		line := fmt.Sprintf("%s%-20s %s", marker, t.Title, formatLength(t.Length))
		if i == m.current {
			line = title.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(muted.Render("space play/pause  +/- volume  n/b skip"))

	out := b.String()
	if env.Width > 0 {
		out = lipgloss.NewStyle().MaxWidth(env.Width).Render(out)
	}
	return out, nil
}

func volumeBar(v int) string {
	return strings.Repeat("█", v) + strings.Repeat("░", maxVolume-v)
}

func formatLength(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

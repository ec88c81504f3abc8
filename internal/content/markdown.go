package content

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

const maxCachedRenders = 8

type renderKey struct {
	width int
	dark  bool
}

// Markdown renders a static markdown document. Results are cached per width
// and theme, oldest first out; the panel is used from the UI goroutine only.
type Markdown struct {
	source string
	cache  map[renderKey]string
	order  []renderKey
}

// NewMarkdown returns a panel for source.
func NewMarkdown(source string) *Markdown {
	return &Markdown{source: source, cache: make(map[renderKey]string)}
}

// Source returns the raw markdown.
func (m *Markdown) Source() string {
	return m.source
}

// Render implements Panel.
func (m *Markdown) Render(env Env) (string, error) {
	width := env.Width
	if width <= 0 {
		width = 80
	}
	key := renderKey{width: width, dark: env.Dark}
	if out, ok := m.cache[key]; ok {
		return out, nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamourStyle(env.Dark),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := renderer.Render(m.source)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	out = strings.Trim(out, "\n")

	m.cache[key] = out
	m.order = append(m.order, key)
	for len(m.order) > maxCachedRenders {
		delete(m.cache, m.order[0])
		m.order = m.order[1:]
	}
	return out, nil
}

func glamourStyle(dark bool) glamour.TermRendererOption {
	if dark {
		return glamour.WithStandardStyle("dark")
	}
	return glamour.WithStandardStyle("light")
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// BgStyle provides helpers for rendering text with consistent background colors.
// This solves lipgloss's limitation where ANSI reset codes between styled segments
// cause gaps in background color. See: https://github.com/charmbracelet/lipgloss/discussions/78
type BgStyle struct {
	bg    lipgloss.Color
	space string // cached styled space
}

// NewBgStyle creates a new background style helper for the given color.
func NewBgStyle(bgColor string) BgStyle {
	bg := lipgloss.Color(bgColor)
	return BgStyle{
		bg:    bg,
		space: lipgloss.NewStyle().Background(bg).Render(" "),
	}
}

// Render renders text with a style, keeping the background on every cell.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	return style.Background(b.bg).Render(text)
}

// Space returns a single styled space.
func (b BgStyle) Space() string {
	return b.space
}

// Spaces returns n styled spaces.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Background(b.bg).Render(strings.Repeat(" ", n))
}

// FillLine pads rendered content to exactly width cells with the background
// color, cutting anything longer.
func (b BgStyle) FillLine(content string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(content) > width {
		content = ansi.Truncate(content, width, "")
	}
	return content + b.Spaces(width-lipgloss.Width(content))
}

// Spread places left and right in width cells with the background between
// them. The right part wins when space runs out.
func (b BgStyle) Spread(left, right string, width int) string {
	rw := lipgloss.Width(right)
	if rw >= width {
		return b.FillLine(right, width)
	}
	room := width - rw
	if lipgloss.Width(left) > room {
		left = ansi.Truncate(left, room, "")
	}
	return left + b.Spaces(room-lipgloss.Width(left)) + right
}

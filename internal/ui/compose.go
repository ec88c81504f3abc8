package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const resetSGR = "\x1b[0m"

// overlay paints layer onto base with its top-left corner at (x, y). base
// lines are width cells wide; parts of the layer outside base are cut.
func overlay(base []string, layer []string, x, y, width int) {
	for i, line := range layer {
		row := y + i
		if row < 0 || row >= len(base) {
			continue
		}
		base[row] = spliceLine(base[row], line, x, width)
	}
}

// spliceLine replaces the cells of bg starting at column x with fg.
func spliceLine(bg, fg string, x, width int) string {
	if x >= width {
		return bg
	}
	if x < 0 {
		fg = ansi.TruncateLeft(fg, -x, "")
		x = 0
	}
	fw := ansi.StringWidth(fg)
	if x+fw > width {
		fg = ansi.Truncate(fg, width-x, "")
		fw = width - x
	}

	var b strings.Builder
	b.WriteString(ansi.Truncate(bg, x, ""))
	b.WriteString(resetSGR)
	b.WriteString(fg)
	b.WriteString(resetSGR)
	b.WriteString(ansi.TruncateLeft(bg, x+fw, ""))
	return b.String()
}

// wallpaper returns rows lines of width cells with the desktop pattern.
func (m Model) wallpaper(width, rows int) []string {
	styles := m.theme.Styles()
	lines := make([]string, rows)
	var b strings.Builder
	for y := 0; y < rows; y++ {
		b.Reset()
		for x := 0; x < width; x++ {
			if (x+2*y)%8 == 0 && y%2 == 0 {
				b.WriteString("·")
			} else {
				b.WriteByte(' ')
			}
		}
		lines[y] = styles.Desktop.Render(b.String())
	}
	return lines
}

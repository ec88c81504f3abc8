package ui

import (
	"os/exec"
	"strings"
)

// createLogo generates the splash logo using figlet or fallback
func createLogo(text string) string {
	// Try to use figlet for ASCII art
	cmd := exec.Command("figlet", "-f", "small", text)
	output, err := cmd.Output()
	if err == nil && len(output) > 0 {
		return trimBlankLines(string(output))
	}

	// Fallback: letter-spaced text
	return strings.ToUpper(strings.Join(strings.Split(text, ""), " "))
}

// trimBlankLines drops empty leading and trailing lines, keeping the
// alignment of the rest.
func trimBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}

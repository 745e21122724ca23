package view

import (
	"strings"
	"swarm/internal/color"
)

// PrepareLogContent styles and truncates log lines for the overlay.
func PrepareLogContent(lines []string, maxWidth int) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = styleLogLine(truncate(l, maxWidth))
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return color.ErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return color.WarningStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return color.SubtleStyle.Render(l)
	default:
		return l
	}
}

package view

import (
	"fmt"
	"strings"
	"swarm/internal/color"
	"swarm/internal/tui/model"
)

func renderNearestPane(m *model.Model, width, height int) string {
	innerWidth := width - color.PaneStyle.GetHorizontalFrameSize()
	focused := m.Focus == model.PaneNearest

	title := "Nearest"
	if m.NearestOrigin != "" {
		title = "Nearest to " + m.NearestOrigin
	}
	if m.PendingNearest != "" {
		title += " " + m.Spinner.View()
	}

	var lines []string
	if len(m.Nearest) == 0 {
		lines = append(lines, color.SubtleStyle.Render("Press n on a channel."))
	}
	start, end := window(m.NearestCursor, len(m.Nearest), height-1)
	for i := start; i < end; i++ {
		h := m.Nearest[i]
		dist := fmt.Sprintf("%8.1f km", h.DistanceKm)
		mark := " "
		if m.NearestMarked[h.Channel] {
			mark = "✓"
		}
		nameWidth := innerWidth - len(dist) - 2
		line := mark + padRight(truncate(h.Channel, nameWidth), nameWidth) + " " + dist

		style := color.InfoStyle
		if !h.InTree {
			style = color.ErrorStyle
		}
		if focused && i == m.NearestCursor {
			style = style.Inherit(color.CursorStyle)
		}
		lines = append(lines, style.Render(line))
	}
	return paneFrame(title, strings.Join(lines, "\n"), width, height, focused)
}

package view

import (
	"fmt"
	"strings"
	"swarm/internal/chooser"
	"swarm/internal/color"
	"swarm/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

func renderTreePane(m *model.Model, width, height int) string {
	tree := m.Chooser.Tree()
	innerWidth := width - color.PaneStyle.GetHorizontalFrameSize()
	rows := m.VisibleRows()

	var lines []string
	if len(rows) == 0 {
		lines = append(lines, color.SubtleStyle.Render("No data sources. Press a to add one."))
	}
	start, end := window(m.Cursor, len(rows), height-1)
	for i := start; i < end; i++ {
		lines = append(lines, renderRow(m, rows[i], i == m.Cursor && m.Focus == model.PaneTree, innerWidth))
	}

	title := chooser.Label(tree.Root())
	if n := len(m.Marked); n > 0 {
		title += fmt.Sprintf(" (%d marked)", n)
	}
	return paneFrame(title, strings.Join(lines, "\n"), width, height, m.Focus == model.PaneTree)
}

func renderRow(m *model.Model, row model.Row, focused bool, width int) string {
	n := row.Node

	expander := "  "
	if !n.IsLeaf() {
		if m.Expanded[n] {
			expander = "▾ "
		} else {
			expander = "▸ "
		}
	}
	mark := " "
	if m.Marked[n] {
		mark = "✓"
	}

	icon := chooser.Icon(n)
	if n.Kind == chooser.KindServer && n.State == chooser.Opening {
		icon = m.Spinner.View()
	}
	line := truncate(mark+indent(row.Depth)+expander+icon+" "+chooser.Label(n), width)

	style := rowStyle(n)
	if m.Marked[n] {
		style = color.MarkedStyle
	}
	if focused {
		style = style.Inherit(color.CursorStyle)
		line += strings.Repeat(" ", max(0, width-lipgloss.Width(line)))
	}
	return style.Render(line)
}

func rowStyle(n *chooser.Node) lipgloss.Style {
	switch n.Kind {
	case chooser.KindServer:
		switch n.State {
		case chooser.Broken:
			return color.ErrorStyle
		case chooser.Opening:
			return color.WarningStyle
		case chooser.Opened:
			return color.SuccessStyle
		}
		return lipgloss.NewStyle()
	case chooser.KindMessage:
		return color.SubtleStyle.Italic(true)
	case chooser.KindChannel:
		return color.InfoStyle
	default:
		return lipgloss.NewStyle()
	}
}

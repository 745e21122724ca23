package view

import (
	"fmt"
	"swarm/internal/chooser"
	"swarm/internal/color"
	"swarm/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

func renderHeader(m *model.Model, width int) string {
	title := color.TitleStyle.Render("Swarm data chooser")

	var opened, broken, opening int
	sources := m.Chooser.Tree().Sources()
	for _, n := range sources {
		switch n.State {
		case chooser.Opened:
			opened++
		case chooser.Broken:
			broken++
		case chooser.Opening:
			opening++
		}
	}
	summary := fmt.Sprintf("%d sources  %s  %s",
		len(sources),
		color.SuccessStyle.Render(fmt.Sprintf("%d open", opened)),
		color.ErrorStyle.Render(fmt.Sprintf("%d broken", broken)))
	if opening > 0 {
		summary += "  " + m.Spinner.View() + color.WarningStyle.Render(fmt.Sprintf(" %d listing", opening))
	}
	if m.DebugMode {
		summary += color.SubtleStyle.Render(fmt.Sprintf("  [%s, %dx%d]", m.CurrentAppMode, m.Width, m.Height))
	}

	gap := max(1, width-lipgloss.Width(title)-lipgloss.Width(summary))
	return title + lipgloss.NewStyle().Width(gap).Render("") + summary
}

func renderStatusBar(m *model.Model, width int) string {
	right := color.SubtleStyle.Render(m.Help.ShortHelpView(m.Keys.ShortHelp()))
	msg := m.StatusBarMessage
	if msg == "" {
		msg = fmt.Sprintf("%d channel limit", m.Chooser.MaxChannels())
	}
	leftWidth := max(0, width-lipgloss.Width(right)-1)
	left := color.StatusStyle(statusKind(m.StatusBarMessageType)).Render(truncate(msg, max(0, leftWidth-2)))
	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}

func statusKind(t model.MessageType) color.StatusKind {
	switch t {
	case model.StatusBarSuccess:
		return color.StatusSuccess
	case model.StatusBarError:
		return color.StatusError
	case model.StatusBarWarning:
		return color.StatusWarning
	default:
		return color.StatusInfo
	}
}

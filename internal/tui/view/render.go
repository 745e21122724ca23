package view

import (
	"fmt"
	"swarm/internal/color"
	"swarm/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

var overlayBackdrop = lipgloss.WithWhitespaceBackground(lipgloss.AdaptiveColor{Light: "rgba(0,0,0,0.1)", Dark: "rgba(0,0,0,0.6)"})

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	if m.CurrentAppMode == model.ModeQuitting {
		return color.SubtleStyle.Render(m.QuittingMessage)
	}
	if m.Width == 0 || m.Height == 0 {
		return color.SubtleStyle.Render("Initializing... (waiting for window size)")
	}

	switch m.CurrentAppMode {
	case model.ModeMainDashboard, model.ModeSourceInput:
		return renderDashboard(m)
	case model.ModeFilePicker:
		return renderFilePicker(m)
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	default:
		return color.ErrorStyle.Render(fmt.Sprintf("Unhandled application mode: %s", m.CurrentAppMode))
	}
}

func renderDashboard(m *model.Model) string {
	contentWidth := m.Width - color.AppStyle.GetHorizontalFrameSize()

	header := renderHeader(m, contentWidth)
	status := renderStatusBar(m, contentWidth)
	var input string
	if m.CurrentAppMode == model.ModeSourceInput {
		input = m.Input.View()
	}

	used := lipgloss.Height(header) + lipgloss.Height(status)
	if input != "" {
		used += lipgloss.Height(input)
	}
	paneHeight := m.Height - used - color.PaneStyle.GetVerticalFrameSize()
	if paneHeight < 1 {
		paneHeight = 1
	}

	treeWidth := contentWidth * 3 / 5
	nearestWidth := contentWidth - treeWidth
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		renderTreePane(m, treeWidth, paneHeight),
		renderNearestPane(m, nearestWidth, paneHeight),
	)

	parts := []string{header, body}
	if input != "" {
		parts = append(parts, input)
	}
	parts = append(parts, status)
	return color.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func renderFilePicker(m *model.Model) string {
	title := color.TitleStyle.Render("Add channel list file  (enter pick  •  Esc cancel)")
	dir := color.SubtleStyle.Render(m.Files.Dir())
	box := color.OverlayStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, dir, "", m.Files.View()))
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box, overlayBackdrop)
}

// paneFrame draws a titled pane of the given outer size.
func paneFrame(title, content string, width, height int, focused bool) string {
	style := color.PaneStyle
	if focused {
		style = color.FocusedPaneStyle
	}
	innerWidth := width - style.GetHorizontalFrameSize()
	if innerWidth < 1 {
		innerWidth = 1
	}
	body := lipgloss.JoinVertical(lipgloss.Left, color.TitleStyle.Render(truncate(title, innerWidth)), content)
	return style.Width(innerWidth).Height(height).MaxHeight(height + style.GetVerticalFrameSize()).Render(body)
}

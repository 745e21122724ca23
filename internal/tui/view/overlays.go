package view

import (
	"strings"
	"swarm/internal/color"
	"swarm/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

func renderHelpOverlay(m *model.Model) string {
	titleView := color.TitleStyle.Render("KEYBOARD SHORTCUTS")

	columns := m.Keys.FullHelp()
	rendered := make([]string, 0, len(columns))
	for _, column := range columns {
		keyWidth := 0
		for _, b := range column {
			if w := lipgloss.Width(b.Help().Key); w > keyWidth {
				keyWidth = w
			}
		}
		lines := make([]string, 0, len(column))
		for _, b := range column {
			lines = append(lines, color.HelpKeyStyle.Render(padRight(b.Help().Key, keyWidth))+"  "+color.HelpDescStyle.Render(b.Help().Desc))
		}
		rendered = append(rendered, lipgloss.NewStyle().MarginRight(3).Render(strings.Join(lines, "\n")))
	}

	content := titleView + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	container := color.OverlayStyle.Render(content)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, container, overlayBackdrop)
}

func renderLogOverlay(m *model.Model) string {
	titleView := color.TitleStyle.Render("Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)")
	titleHeight := lipgloss.Height(titleView)

	overlayWidth := int(float64(m.Width) * 0.8)
	overlayHeight := int(float64(m.Height) * 0.7)

	vpWidth := max(0, overlayWidth-color.OverlayStyle.GetHorizontalFrameSize())
	vpHeight := max(0, overlayHeight-color.OverlayStyle.GetVerticalFrameSize()-titleHeight)
	resized := m.LogViewport.Width != vpWidth || m.LogViewport.Height != vpHeight
	m.LogViewport.Width = vpWidth
	m.LogViewport.Height = vpHeight

	if m.ActivityLogDirty || resized {
		atBottom := m.LogViewport.AtBottom()
		m.LogViewport.SetContent(PrepareLogContent(m.ActivityLog, vpWidth))
		m.ActivityLogDirty = false
		if atBottom {
			m.LogViewport.GotoBottom()
		}
	}

	box := color.OverlayStyle.Width(vpWidth).Render(lipgloss.JoinVertical(lipgloss.Left, titleView, m.LogViewport.View()))
	canvas := lipgloss.Place(m.Width, m.Height-1, lipgloss.Center, lipgloss.Center, box, overlayBackdrop)
	return lipgloss.JoinVertical(lipgloss.Left, canvas, renderStatusBar(m, m.Width))
}

package controller

import (
	"strings"
	"swarm/internal/color"
	"swarm/internal/tui/model"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// handleKeyMsgGlobal routes a key press by mode. Overlays and input modes
// get the first look; everything else goes to the focused pane.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if keyMsg.String() == "ctrl+c" {
		return quit(m)
	}

	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return m, nil
	case model.ModeSourceInput:
		return handleKeyMsgInputMode(m, keyMsg)
	case model.ModeFilePicker:
		return handleFilePickerMsg(m, keyMsg)
	case model.ModeLogOverlay:
		switch keyMsg.String() {
		case "L", "esc":
			m.CurrentAppMode = m.LastAppMode
			return m, nil
		case "y":
			if err := copyToClipboard(strings.Join(m.ActivityLog, "\n")); err != nil {
				LogError(err, "Failed to copy logs")
				return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, 3*time.Second)
			}
			return m, m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, 3*time.Second)
		case "k", "up", "j", "down", "pgup", "pgdown", "home", "end":
			var vpCmd tea.Cmd
			m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
			return m, vpCmd
		default:
			return m, nil
		}
	case model.ModeHelpOverlay:
		if key.Matches(keyMsg, m.Keys.Esc) || key.Matches(keyMsg, m.Keys.Help) {
			m.CurrentAppMode = m.LastAppMode
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)
	case key.Matches(keyMsg, m.Keys.Help):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleDark):
		color.Initialize(!lipgloss.HasDarkBackground())
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleDebug):
		m.DebugMode = !m.DebugMode
		return m, nil
	case key.Matches(keyMsg, m.Keys.Tab):
		if m.Focus == model.PaneTree && len(m.Nearest) > 0 {
			m.Focus = model.PaneNearest
		} else {
			m.Focus = model.PaneTree
		}
		return m, nil
	}

	if m.Focus == model.PaneNearest {
		return handleKeyMsgNearest(m, keyMsg)
	}
	return handleKeyMsgTree(m, keyMsg)
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Shutting down..."
	return m, tea.Quit
}

package controller

import (
	"fmt"
	"swarm/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgNearest processes keys while the nearest pane has focus.
// Choosing entries replaces the tree marks with the channels' canonical paths.
func handleKeyMsgNearest(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Up):
		if m.NearestCursor > 0 {
			m.NearestCursor--
		}
	case key.Matches(keyMsg, m.Keys.Down):
		if m.NearestCursor < len(m.Nearest)-1 {
			m.NearestCursor++
		}
	case key.Matches(keyMsg, m.Keys.Mark):
		if m.NearestCursor >= 0 && m.NearestCursor < len(m.Nearest) {
			ch := m.Nearest[m.NearestCursor].Channel
			if m.NearestMarked[ch] {
				delete(m.NearestMarked, ch)
			} else {
				m.NearestMarked[ch] = true
			}
		}
	case key.Matches(keyMsg, m.Keys.ClearMarks):
		m.NearestMarked = make(map[string]bool)
	case key.Matches(keyMsg, m.Keys.Esc):
		m.Focus = model.PaneTree
	case key.Matches(keyMsg, m.Keys.Enter):
		return m, selectNearest(m)
	}
	return m, nil
}

func selectNearest(m *model.Model) tea.Cmd {
	chosen := m.ChosenNearest()
	if len(chosen) == 0 {
		return nil
	}
	missing := m.SelectChannels(chosen)
	switch {
	case len(missing) == len(chosen) && len(chosen) == 1:
		return m.SetStatusMessage(fmt.Sprintf("%s is not in any opened source", chosen[0]), model.StatusBarWarning, model.StatusClearDelay)
	case len(missing) == len(chosen):
		return m.SetStatusMessage("None of the chosen channels is in an opened source", model.StatusBarWarning, model.StatusClearDelay)
	}
	m.NearestMarked = make(map[string]bool)
	m.Focus = model.PaneTree
	if len(missing) > 0 {
		return m.SetStatusMessage(fmt.Sprintf("Selected %d channel(s); %d not in any opened source", len(chosen)-len(missing), len(missing)), model.StatusBarWarning, model.StatusClearDelay)
	}
	return nil
}

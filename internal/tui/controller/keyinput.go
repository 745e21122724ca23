package controller

import (
	"fmt"
	"swarm/internal/source"
	"swarm/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgInputMode processes key presses while the source input line is
// open. Enter submits, Esc cancels and everything else goes to the textinput.
func handleKeyMsgInputMode(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		closeInput(m)
		return m, nil

	case "enter":
		value := m.Input.Value()
		if value == "" {
			return m, nil
		}
		src, err := source.New(value)
		if err != nil {
			return m, m.SetStatusMessage(err.Error(), model.StatusBarError, model.StatusClearDelay)
		}

		purpose, old := m.InputPurpose, m.EditingSource
		closeInput(m)
		if purpose == model.InputEditSource {
			if err := m.Chooser.EditSource(old, src); err != nil {
				LogError(err, "Cannot edit source %s", old)
				return m, m.SetStatusMessage(err.Error(), model.StatusBarError, model.StatusClearDelay)
			}
		} else {
			m.Chooser.AddSource(src)
		}
		m.SourcesChanged = true
		m.Prune()
		m.RemapNearest()
		m.MoveCursorTo([]int{m.Chooser.Tree().SourceIndex(src.Name())})
		return m, m.SetStatusMessage(fmt.Sprintf("Saved source %s", src.Name()), model.StatusBarSuccess, model.StatusClearDelay)
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(keyMsg)
	return m, cmd
}

func closeInput(m *model.Model) {
	m.CurrentAppMode = m.LastAppMode
	m.Input.Blur()
	m.Input.Reset()
	m.EditingSource = ""
}

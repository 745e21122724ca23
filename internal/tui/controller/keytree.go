package controller

import (
	"errors"
	"fmt"
	"swarm/internal/chooser"
	"swarm/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgTree processes keys while the tree pane has focus.
func handleKeyMsgTree(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	rows := m.VisibleRows()

	switch {
	case key.Matches(keyMsg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.Down):
		if m.Cursor < len(rows)-1 {
			m.Cursor++
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.Expand):
		row, ok := m.CurrentRow()
		if !ok {
			return m, nil
		}
		return m, expandRow(m, row)

	case key.Matches(keyMsg, m.Keys.Collapse):
		collapseRow(m)
		return m, nil

	case key.Matches(keyMsg, m.Keys.CollapseAll):
		m.CollapseAll()
		return m, nil

	case key.Matches(keyMsg, m.Keys.Mark):
		row, ok := m.CurrentRow()
		if !ok {
			return m, nil
		}
		if m.Marked[row.Node] {
			delete(m.Marked, row.Node)
		} else {
			m.Marked[row.Node] = true
		}
		if m.Cursor < len(rows)-1 {
			m.Cursor++
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.ClearMarks):
		m.Marked = make(map[*chooser.Node]bool)
		return m, nil

	case key.Matches(keyMsg, m.Keys.Enter):
		row, ok := m.CurrentRow()
		if !ok {
			return m, nil
		}
		if row.Node.Kind == chooser.KindChannel {
			return m, commit(m, chooser.ActionHelicorder)
		}
		if m.Expanded[row.Node] {
			m.Expanded[row.Node] = false
			return m, nil
		}
		return m, expandRow(m, row)

	case key.Matches(keyMsg, m.Keys.Helicorder):
		return m, commit(m, chooser.ActionHelicorder)
	case key.Matches(keyMsg, m.Keys.RealtimeWave):
		return m, commit(m, chooser.ActionRealtimeWave)
	case key.Matches(keyMsg, m.Keys.Clipboard):
		return m, commit(m, chooser.ActionClipboard)
	case key.Matches(keyMsg, m.Keys.Monitor):
		return m, commit(m, chooser.ActionMonitor)

	case key.Matches(keyMsg, m.Keys.Nearest):
		return m, requestNearest(m)

	case key.Matches(keyMsg, m.Keys.Refresh):
		return m, refreshSource(m)

	case key.Matches(keyMsg, m.Keys.AddSource):
		m.InputPurpose = model.InputAddSource
		m.EditingSource = ""
		m.Input.Prompt = "Add source (name;type:params): "
		m.Input.SetValue("")
		return m, startInput(m)

	case key.Matches(keyMsg, m.Keys.EditSource):
		src, ok := m.CurrentSource()
		if !ok {
			return m, nil
		}
		ds, ok := m.Chooser.Registry().Get(src.Name)
		if !ok {
			return m, nil
		}
		m.InputPurpose = model.InputEditSource
		m.EditingSource = src.Name
		m.Input.Prompt = fmt.Sprintf("Edit %s: ", src.Name)
		m.Input.SetValue(ds.ConfigString())
		m.Input.CursorEnd()
		return m, startInput(m)

	case key.Matches(keyMsg, m.Keys.RemoveSource):
		src, ok := m.CurrentSource()
		if !ok {
			return m, nil
		}
		name := src.Name
		if m.Chooser.RemoveSource(name) {
			m.SourcesChanged = true
			m.Prune()
			m.RemapNearest()
			return m, m.SetStatusMessage(fmt.Sprintf("Removed %s", name), model.StatusBarInfo, model.StatusClearDelay)
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.AddFile):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeFilePicker
		return m, m.Files.Open()
	}

	return m, nil
}

// expandRow opens row. Sources that are not listed yet start a background
// fetch; their "Opening…" child shows until the result arrives.
func expandRow(m *model.Model, row model.Row) tea.Cmd {
	if row.Node.IsLeaf() {
		return nil
	}
	m.Expanded[row.Node] = true
	if row.Node.Kind != chooser.KindServer {
		return nil
	}
	task, err := m.Chooser.Expand(row.Node.Name)
	if err != nil {
		LogError(err, "Cannot expand %s", row.Node.Name)
		return m.SetStatusMessage(err.Error(), model.StatusBarError, model.StatusClearDelay)
	}
	if task == nil {
		return nil
	}
	return model.FetchCmd(task)
}

// collapseRow folds the row under the cursor, or jumps to its parent when
// the row is already folded.
func collapseRow(m *model.Model) {
	row, ok := m.CurrentRow()
	if !ok {
		return
	}
	if m.Expanded[row.Node] {
		m.Expanded[row.Node] = false
		return
	}
	if len(row.Path) > 1 {
		m.MoveCursorTo(row.Path[:len(row.Path)-1])
	}
}

func refreshSource(m *model.Model) tea.Cmd {
	src, ok := m.CurrentSource()
	if !ok {
		return nil
	}
	task, err := m.Chooser.Refresh(src.Name)
	if err != nil {
		LogError(err, "Cannot refresh %s", src.Name)
		return m.SetStatusMessage(err.Error(), model.StatusBarError, model.StatusClearDelay)
	}
	m.Expanded[src] = true
	return model.FetchCmd(task)
}

// commit resolves the selection on the update path and hands it to the sink
// in the background. Over-limit selections open nothing.
func commit(m *model.Model, action chooser.Action) tea.Cmd {
	sel, task, err := m.Chooser.PrepareCommit(action, m.SelectedPaths())
	var limit *chooser.LimitError
	switch {
	case errors.As(err, &limit):
		return m.SetStatusMessage(
			fmt.Sprintf("%d channels selected, at most %d can be opened at once", limit.Count, limit.Max),
			model.StatusBarError, model.StatusClearDelay)
	case err != nil:
		LogError(err, "Cannot open selection in %s", action)
		return m.SetStatusMessage(err.Error(), model.StatusBarError, model.StatusClearDelay)
	case task == nil:
		return m.SetStatusMessage("Nothing to open: select a group or channel", model.StatusBarWarning, model.StatusClearDelay)
	}
	return model.CommitCmd(action, sel, task)
}

// requestNearest ranks the neighbours of the channel under the cursor. A
// repeat request for the ranked channel only moves focus to the pane.
func requestNearest(m *model.Model) tea.Cmd {
	row, ok := m.CurrentRow()
	if !ok || row.Node.Kind != chooser.KindChannel {
		return m.SetStatusMessage("Nearest needs a channel", model.StatusBarWarning, model.StatusClearDelay)
	}
	channel := row.Node.Name
	if channel == m.NearestOrigin && len(m.Nearest) > 0 {
		m.Focus = model.PaneNearest
		return nil
	}
	if channel == m.PendingNearest {
		return nil
	}
	m.PendingNearest = channel
	return model.NearestCmd(channel, m.Chooser.NearestTask(channel))
}

func startInput(m *model.Model) tea.Cmd {
	m.LastAppMode = m.CurrentAppMode
	m.CurrentAppMode = model.ModeSourceInput
	m.Input.Focus()
	return textinput.Blink
}

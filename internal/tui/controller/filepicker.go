package controller

import (
	"fmt"
	"path/filepath"
	"strings"
	"swarm/internal/source"
	"swarm/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// handleFilePickerMsg forwards msg to the file picker. A picked file is added
// as a file source named after the file.
func handleFilePickerMsg(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.CurrentAppMode = m.LastAppMode
		return m, nil
	}

	cmd, path, picked := m.Files.Update(msg)
	if !picked {
		return m, cmd
	}

	m.CurrentAppMode = m.LastAppMode
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	src, err := source.New(source.FileConfigString(name, path))
	if err != nil {
		LogError(err, "Cannot add %s", path)
		return m, m.SetStatusMessage(err.Error(), model.StatusBarError, model.StatusClearDelay)
	}
	m.Chooser.AddSource(src)
	m.SourcesChanged = true
	m.Prune()
	m.MoveCursorTo([]int{m.Chooser.Tree().SourceIndex(src.Name())})
	return m, tea.Batch(cmd, m.SetStatusMessage(fmt.Sprintf("Added file source %s", name), model.StatusBarSuccess, model.StatusClearDelay))
}

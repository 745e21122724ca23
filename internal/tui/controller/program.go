package controller

import (
	"swarm/internal/tui/model"
	"swarm/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// AppModel wraps the model to handle updates and views
type AppModel struct {
	model *model.Model
}

// NewAppModel creates a new app wrapper
func NewAppModel(m *model.Model) AppModel {
	return AppModel{model: m}
}

// Init implements tea.Model
func (a AppModel) Init() tea.Cmd {
	return a.model.Init()
}

// Update implements tea.Model
func (a AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := Update(msg, a.model)
	a.model = updated
	return a, cmd
}

// View implements tea.Model
func (a AppModel) View() string {
	return view.Render(a.model)
}

// Model returns the wrapped model, for reading state after the program exits.
func (a AppModel) Model() *model.Model {
	return a.model
}

// NewProgram creates the Bubble Tea program for the data chooser.
func NewProgram(opts model.Options) (*tea.Program, *model.Model) {
	m := model.InitialModel(opts)
	return tea.NewProgram(NewAppModel(m), tea.WithAltScreen()), m
}

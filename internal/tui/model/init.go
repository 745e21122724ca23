package model

import (
	"swarm/internal/chooser"
	"swarm/internal/color"
	"swarm/internal/filechooser"
	"swarm/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures InitialModel.
type Options struct {
	Chooser      *chooser.Chooser
	Files        *filechooser.Lazy
	NearestLimit int
	DebugMode    bool
	LogChannel   <-chan logging.LogEntry
}

// InitialModel builds the model the program starts with.
func InitialModel(opts Options) *Model {
	ti := textinput.New()
	ti.Placeholder = "AVO;wws:pubavo1.wr.usgs.gov:16022"
	ti.CharLimit = 512
	ti.Width = 60

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = color.WarningStyle

	files := opts.Files
	if files == nil {
		files = filechooser.New("")
	}

	return &Model{
		CurrentAppMode: ModeMainDashboard,
		LastAppMode:    ModeMainDashboard,
		DebugMode:      opts.DebugMode,
		Chooser:        opts.Chooser,
		Files:          files,
		Expanded:       make(map[*chooser.Node]bool),
		Marked:         make(map[*chooser.Node]bool),
		NearestMarked:  make(map[string]bool),
		NearestLimit:   opts.NearestLimit,
		Input:          ti,
		LogViewport:    viewport.New(0, 0),
		LogChannel:     opts.LogChannel,
		Spinner:        s,
		Keys:           DefaultKeyMap(),
		Help:           help.New(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.Spinner.Tick}
	if cmd := ListenForLogEntriesCmd(m.LogChannel); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

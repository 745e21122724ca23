package model

import (
	"swarm/internal/chooser"
	"swarm/internal/filechooser"
	"swarm/pkg/logging"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeMainDashboard AppMode = iota
	ModeSourceInput
	ModeFilePicker
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String returns a string representation of the AppMode
func (m AppMode) String() string {
	switch m {
	case ModeMainDashboard:
		return "MainDashboard"
	case ModeSourceInput:
		return "SourceInput"
	case ModeFilePicker:
		return "FilePicker"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// Pane identifies the focused pane of the dashboard.
type Pane int

const (
	PaneTree Pane = iota
	PaneNearest
)

// InputPurpose says what the source input line is editing.
type InputPurpose int

const (
	InputAddSource InputPurpose = iota
	InputEditSource
)

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

const (
	// MaxActivityLogLines caps the log overlay.
	MaxActivityLogLines = 1000
	// FetchTimeout bounds one background listing.
	FetchTimeout = 30 * time.Second
	// CommitTimeout bounds one sink call.
	CommitTimeout = 15 * time.Second
	// StatusClearDelay is how long status messages stay visible.
	StatusClearDelay = 5 * time.Second
)

// Row is one visible line of the tree pane.
type Row struct {
	Path  chooser.Path
	Node  *chooser.Node
	Depth int
}

// Model holds the TUI state. Everything in it is read and written on the
// Bubble Tea Update goroutine only.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	CurrentAppMode AppMode
	LastAppMode    AppMode
	DebugMode      bool

	Chooser *chooser.Chooser
	Files   *filechooser.Lazy

	// Tree pane
	Expanded map[*chooser.Node]bool
	Marked   map[*chooser.Node]bool
	Cursor   int
	Focus    Pane

	// Nearest pane
	NearestOrigin  string
	PendingNearest string
	Neighbors      []chooser.Neighbor
	Nearest        []chooser.Highlight
	NearestMarked  map[string]bool
	NearestCursor  int
	NearestLimit   int

	// Source input line
	Input         textinput.Model
	InputPurpose  InputPurpose
	EditingSource string

	// SourcesChanged is set when sources were added, edited or removed and
	// the configuration should be saved on exit.
	SourcesChanged bool

	ActivityLog      []string
	ActivityLogDirty bool
	LogViewport      viewport.Model
	LogChannel       <-chan logging.LogEntry

	Spinner spinner.Model
	Keys    KeyMap
	Help    help.Model

	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	QuittingMessage string
}

// SetStatusMessage updates the status bar message and schedules its removal.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// Busy reports whether any source is waiting for a listing.
func (m *Model) Busy() bool {
	for _, n := range m.Chooser.Tree().Sources() {
		if n.State == chooser.Opening {
			return true
		}
	}
	return false
}

package color

import "github.com/charmbracelet/lipgloss"

var (
	Primary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	Success = lipgloss.AdaptiveColor{Light: "#05A167", Dark: "#05D176"}
	Error   = lipgloss.AdaptiveColor{Light: "#E06A56", Dark: "#F97171"}
	Warning = lipgloss.AdaptiveColor{Light: "#E0A956", Dark: "#F9C171"}
	Info    = lipgloss.AdaptiveColor{Light: "#5A9FE0", Dark: "#71B7F9"}
	Subtle  = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	Border  = lipgloss.AdaptiveColor{Light: "#D1D1D1", Dark: "#3C3C3C"}
	Text    = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#E4E4E4"}
)

var (
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	InfoStyle    = lipgloss.NewStyle().Foreground(Info)
	SubtleStyle  = lipgloss.NewStyle().Foreground(Subtle)

	AppStyle   = lipgloss.NewStyle().Padding(0, 1)
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(Primary)

	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)
	FocusedPaneStyle = PaneStyle.BorderForeground(Primary)

	CursorStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	MarkedStyle = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	StatusBarStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(Text)

	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Primary).
			Padding(1, 2)
	HelpKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(Info)
	HelpDescStyle = lipgloss.NewStyle().Foreground(Subtle)
)

// Initialize forces the dark or light variants regardless of what the
// terminal reports.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// StatusStyle returns the status bar style for a message kind.
func StatusStyle(kind StatusKind) lipgloss.Style {
	switch kind {
	case StatusSuccess:
		return StatusBarStyle.Foreground(Success)
	case StatusError:
		return StatusBarStyle.Foreground(Error).Bold(true)
	case StatusWarning:
		return StatusBarStyle.Foreground(Warning)
	default:
		return StatusBarStyle.Foreground(Info)
	}
}

// StatusKind classifies a status bar message.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
	StatusWarning
)

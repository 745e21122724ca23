package model

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Expand      key.Binding
	Collapse    key.Binding
	CollapseAll key.Binding
	Mark        key.Binding
	ClearMarks  key.Binding
	Enter       key.Binding
	Esc         key.Binding
	Tab         key.Binding

	Helicorder   key.Binding
	RealtimeWave key.Binding
	Clipboard    key.Binding
	Monitor      key.Binding
	Nearest      key.Binding

	Refresh      key.Binding
	AddSource    key.Binding
	EditSource   key.Binding
	RemoveSource key.Binding
	AddFile      key.Binding

	Help        key.Binding
	ToggleLog   key.Binding
	CopyLogs    key.Binding
	ToggleDark  key.Binding
	ToggleDebug key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "navigate up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "navigate down"),
		),
		Expand: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "expand"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "collapse"),
		),
		CollapseAll: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "collapse all"),
		),
		Mark: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "mark/unmark"),
		),
		ClearMarks: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "clear marks"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "toggle / open helicorder"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/back"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Helicorder: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "open helicorder"),
		),
		RealtimeWave: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "open realtime wave"),
		),
		Clipboard: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy to clipboard"),
		),
		Monitor: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "add to monitor"),
		),
		Nearest: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "nearest channels"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh source"),
		),
		AddSource: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add source"),
		),
		EditSource: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit source"),
		),
		RemoveSource: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove source"),
		),
		AddFile: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "add file source"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		CopyLogs: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy logs"),
		),
		ToggleDark: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "toggle dark/light mode"),
		),
		ToggleDebug: key.NewBinding(
			key.WithKeys("Z"),
			key.WithHelp("Z", "toggle debug info"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view, one column per
// slice.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Expand, k.Collapse, k.CollapseAll, k.Mark, k.ClearMarks, k.Tab},
		{k.Enter, k.Helicorder, k.RealtimeWave, k.Clipboard, k.Monitor, k.Nearest},
		{k.Refresh, k.AddSource, k.EditSource, k.RemoveSource, k.AddFile},
		{k.Help, k.ToggleLog, k.CopyLogs, k.ToggleDark, k.ToggleDebug, k.Quit},
	}
}

package model

import (
	"context"
	"swarm/internal/chooser"
	"swarm/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// FetchCmd runs a listing task in the background.
func FetchCmd(task chooser.FetchTask) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), FetchTimeout)
		defer cancel()
		return ListingResultMsg{Result: task(ctx)}
	}
}

// NearestCmd ranks the neighbours of channel in the background.
func NearestCmd(channel string, task func() ([]chooser.Neighbor, error)) tea.Cmd {
	return func() tea.Msg {
		neighbors, err := task()
		return NearestResultMsg{Channel: channel, Neighbors: neighbors, Err: err}
	}
}

// CommitCmd hands a resolved selection to its sink in the background.
func CommitCmd(action chooser.Action, sel []chooser.Selection, task chooser.CommitTask) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), CommitTimeout)
		defer cancel()
		return CommitResultMsg{Action: action, Selections: sel, Err: task(ctx)}
	}
}

// ListenForLogEntriesCmd waits for the next entry on ch.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return LogChannelClosedMsg{}
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

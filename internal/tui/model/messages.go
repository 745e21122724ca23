package model

import (
	"swarm/internal/chooser"
	"swarm/pkg/logging"
)

// ListingResultMsg carries a finished background listing.
type ListingResultMsg struct {
	Result chooser.ListingResult
}

// NearestResultMsg carries the ranked neighbours of Channel.
type NearestResultMsg struct {
	Channel   string
	Neighbors []chooser.Neighbor
	Err       error
}

// CommitResultMsg reports the outcome of handing a selection to a sink.
type CommitResultMsg struct {
	Action     chooser.Action
	Selections []chooser.Selection
	Err        error
}

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// LogChannelClosedMsg is sent once the logging channel is closed.
type LogChannelClosedMsg struct{}

// ClearStatusBarMsg clears the status bar.
type ClearStatusBarMsg struct{}

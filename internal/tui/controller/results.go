package controller

import (
	"errors"
	"fmt"
	"strings"
	"swarm/internal/chooser"
	"swarm/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// handleListingResult applies a finished listing. A broken source is
// collapsed so its "Opening…" child no longer shows.
func handleListingResult(m *model.Model, msg model.ListingResultMsg) tea.Cmd {
	res := msg.Result
	err := m.Chooser.ApplyListing(res)
	if errors.Is(err, chooser.ErrUnknownSource) {
		LogDebug(m, "Dropped listing of removed source %s", res.Source)
		return nil
	}
	if err != nil {
		LogError(err, "Cannot apply listing of %s", res.Source)
		return nil
	}

	m.Prune()
	m.RemapNearest()

	if res.Err != nil {
		if n := m.Chooser.Tree().SourceNode(res.Source); n != nil {
			m.Expanded[n] = false
		}
		m.ClampCursor()
		return m.SetStatusMessage(fmt.Sprintf("%s is unreachable", res.Source), model.StatusBarError, model.StatusClearDelay)
	}
	if n := m.Chooser.Tree().SourceNode(res.Source); n != nil && m.Expanded[n] && len(n.Children) > 0 {
		m.Expanded[n.Children[0]] = true
	}
	return nil
}

func handleNearestResult(m *model.Model, msg model.NearestResultMsg) tea.Cmd {
	if msg.Channel == m.PendingNearest {
		m.PendingNearest = ""
	}
	if msg.Err != nil {
		return m.SetStatusMessage(msg.Err.Error(), model.StatusBarWarning, model.StatusClearDelay)
	}
	m.SetNeighbors(msg.Channel, msg.Neighbors)
	if len(m.Nearest) == 0 {
		return m.SetStatusMessage(fmt.Sprintf("No located channels near %s", msg.Channel), model.StatusBarInfo, model.StatusClearDelay)
	}
	m.Focus = model.PaneNearest
	return nil
}

func handleCommitResult(m *model.Model, msg model.CommitResultMsg) tea.Cmd {
	if msg.Err != nil {
		LogError(msg.Err, "Opening %d channel(s) failed", len(msg.Selections))
		return m.SetStatusMessage(msg.Err.Error(), model.StatusBarError, model.StatusClearDelay)
	}
	m.Marked = make(map[*chooser.Node]bool)
	return m.SetStatusMessage(
		fmt.Sprintf("%s: %s", msg.Action, summarize(msg.Selections)),
		model.StatusBarSuccess, model.StatusClearDelay)
}

func summarize(sel []chooser.Selection) string {
	const shown = 3
	names := make([]string, 0, shown)
	for i, s := range sel {
		if i == shown {
			break
		}
		names = append(names, s.Channel)
	}
	out := strings.Join(names, ", ")
	if len(sel) > shown {
		out += fmt.Sprintf(" and %d more", len(sel)-shown)
	}
	return out
}

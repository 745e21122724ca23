package chooser

import (
	"context"
	"fmt"
	"strings"
)

// Action names the sink a committed selection goes to.
type Action int

const (
	ActionHelicorder Action = iota
	ActionRealtimeWave
	ActionClipboard
	ActionMonitor
)

var actionNames = map[Action]string{
	ActionHelicorder:   "helicorder",
	ActionRealtimeWave: "wave",
	ActionClipboard:    "clipboard",
	ActionMonitor:      "monitor",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction accepts the names printed by String, plus "heli" and "realtime".
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "helicorder", "heli":
		return ActionHelicorder, nil
	case "wave", "realtime", "realtimewave":
		return ActionRealtimeWave, nil
	case "clipboard":
		return ActionClipboard, nil
	case "monitor":
		return ActionMonitor, nil
	default:
		return 0, fmt.Errorf("unknown action %q", s)
	}
}

// Committer consumes a finalized selection for an action.
type Committer interface {
	Commit(ctx context.Context, action Action, sel []Selection) error
}

package sinks

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"swarm/internal/chooser"
	"swarm/pkg/logging"
)

// CommandSink starts an external viewer once per selected pair. The
// placeholders {source} and {channel} in Argv are replaced per pair.
// Viewers outlive the call; their exit status is only logged.
type CommandSink struct {
	Name string
	Argv []string

	start func(cmd *exec.Cmd) error
}

// NewCommandSink returns a sink running argv.
func NewCommandSink(name string, argv []string) *CommandSink {
	return &CommandSink{Name: name, Argv: append([]string(nil), argv...), start: startDetached}
}

// Expand returns the argument vector for one pair.
func (s *CommandSink) Expand(sel chooser.Selection) []string {
	r := strings.NewReplacer("{source}", sel.Source, "{channel}", sel.Channel)
	out := make([]string, len(s.Argv))
	for i, a := range s.Argv {
		out[i] = r.Replace(a)
	}
	return out
}

// Open implements Sink.
func (s *CommandSink) Open(ctx context.Context, sel []chooser.Selection) error {
	if len(s.Argv) == 0 {
		return fmt.Errorf("%s viewer: no command configured", s.Name)
	}
	for _, p := range sel {
		if err := ctx.Err(); err != nil {
			return err
		}
		argv := s.Expand(p)
		cmd := exec.Command(argv[0], argv[1:]...)
		cmd.Env = os.Environ()
		if err := s.start(cmd); err != nil {
			return fmt.Errorf("start %s viewer for %s: %w", s.Name, p, err)
		}
		logging.Info(subsystem, "Started %s viewer for %s", s.Name, p)
	}
	return nil
}

func startDetached(cmd *exec.Cmd) error {
	setProcessGroup(cmd)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			logging.Warn(subsystem, "Viewer %s exited: %v", cmd.Path, err)
		}
	}()
	return nil
}

// LogSink records requests for viewers that have no command configured.
type LogSink struct {
	Name string
}

// Open implements Sink.
func (s *LogSink) Open(ctx context.Context, sel []chooser.Selection) error {
	for _, p := range sel {
		logging.Info(subsystem, "No %s viewer configured; requested %s", s.Name, p)
	}
	return nil
}

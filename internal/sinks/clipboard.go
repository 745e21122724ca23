package sinks

import (
	"context"
	"fmt"
	"strings"
	"swarm/internal/chooser"
	"swarm/pkg/logging"

	"github.com/atotto/clipboard"
)

// ClipboardSink copies "source;channel" lines to the system clipboard.
type ClipboardSink struct {
	write func(string) error
}

// NewClipboardSink returns a sink backed by the system clipboard.
func NewClipboardSink() *ClipboardSink {
	return &ClipboardSink{write: clipboard.WriteAll}
}

// Format renders a selection the way it is copied.
func Format(sel []chooser.Selection) string {
	lines := make([]string, len(sel))
	for i, p := range sel {
		lines[i] = p.String()
	}
	return strings.Join(lines, "\n")
}

// Open implements Sink.
func (s *ClipboardSink) Open(ctx context.Context, sel []chooser.Selection) error {
	if err := s.write(Format(sel)); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	logging.Info(subsystem, "Copied %d channel(s) to the clipboard", len(sel))
	return nil
}

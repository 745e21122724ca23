// Package sinks opens committed channel selections: external helicorder and
// realtime wave viewers, the system clipboard and the monitor list.
package sinks

import (
	"context"
	"fmt"
	"swarm/internal/chooser"
	"swarm/internal/config"
	"sync"
)

const subsystem = "Sinks"

// Sink consumes one committed selection.
type Sink interface {
	Open(ctx context.Context, sel []chooser.Selection) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, sel []chooser.Selection) error

// Open implements Sink.
func (f SinkFunc) Open(ctx context.Context, sel []chooser.Selection) error { return f(ctx, sel) }

// Dispatcher routes a selection to the sink registered for the action that
// committed it. It implements chooser.Committer.
type Dispatcher struct {
	mu    sync.RWMutex
	sinks map[chooser.Action]Sink
}

// NewDispatcher returns a dispatcher with no sinks.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{sinks: make(map[chooser.Action]Sink)}
}

// Register sets the sink for action, replacing any previous one.
func (d *Dispatcher) Register(action chooser.Action, sink Sink) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sinks[action] = sink
}

// Commit implements chooser.Committer.
func (d *Dispatcher) Commit(ctx context.Context, action chooser.Action, sel []chooser.Selection) error {
	d.mu.RLock()
	sink, ok := d.sinks[action]
	d.mu.RUnlock()
	if !ok {
		return fmt.Errorf("no sink registered for %s", action)
	}
	return sink.Open(ctx, sel)
}

// NewDefault wires the four standard sinks. Viewer actions without a
// configured command fall back to a LogSink.
func NewDefault(viewers config.ViewerSettings, monitor *MonitorSink) *Dispatcher {
	d := NewDispatcher()
	d.Register(chooser.ActionHelicorder, viewerSink("helicorder", viewers.Helicorder))
	d.Register(chooser.ActionRealtimeWave, viewerSink("wave", viewers.RealtimeWave))
	d.Register(chooser.ActionClipboard, NewClipboardSink())
	if monitor != nil {
		d.Register(chooser.ActionMonitor, monitor)
	}
	return d
}

func viewerSink(name string, argv []string) Sink {
	if len(argv) == 0 {
		return &LogSink{Name: name}
	}
	return NewCommandSink(name, argv)
}

package sinks

import (
	"context"
	"fmt"
	"swarm/internal/chooser"
	"swarm/pkg/logging"
	"sync"
)

// MonitorSink keeps the de-duplicated list of monitored "source;channel"
// entries and persists it after every change. Saves happen in the order of
// the changes they record.
type MonitorSink struct {
	saveMu  sync.Mutex // held from a change until its save completes
	mu      sync.Mutex
	entries []string
	persist func([]string) error
}

// NewMonitorSink starts from entries; persist may be nil.
func NewMonitorSink(entries []string, persist func([]string) error) *MonitorSink {
	m := &MonitorSink{persist: persist}
	m.add(entries)
	return m
}

func (m *MonitorSink) add(entries []string) int {
	seen := make(map[string]bool, len(m.entries))
	for _, e := range m.entries {
		seen[e] = true
	}
	added := 0
	for _, e := range entries {
		if e == "" || seen[e] {
			continue
		}
		seen[e] = true
		m.entries = append(m.entries, e)
		added++
	}
	return added
}

// Open implements Sink.
func (m *MonitorSink) Open(ctx context.Context, sel []chooser.Selection) error {
	entries := make([]string, len(sel))
	for i, p := range sel {
		entries[i] = p.String()
	}

	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.mu.Lock()
	added := m.add(entries)
	snapshot := append([]string(nil), m.entries...)
	m.mu.Unlock()

	if added == 0 {
		return nil
	}
	logging.Info(subsystem, "Monitoring %d new channel(s)", added)
	return m.save(snapshot)
}

// Remove stops monitoring entry and saves the list. It reports whether the
// entry was monitored.
func (m *MonitorSink) Remove(entry string) (bool, error) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.mu.Lock()
	found := false
	for i, e := range m.entries {
		if e == entry {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			found = true
			break
		}
	}
	snapshot := append([]string(nil), m.entries...)
	m.mu.Unlock()

	if !found {
		return false, nil
	}
	logging.Info(subsystem, "Stopped monitoring %s", entry)
	return true, m.save(snapshot)
}

func (m *MonitorSink) save(snapshot []string) error {
	if m.persist == nil {
		return nil
	}
	if err := m.persist(snapshot); err != nil {
		return fmt.Errorf("save monitor list: %w", err)
	}
	return nil
}

// Entries returns the monitored entries in the order they were added.
func (m *MonitorSink) Entries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.entries...)
}

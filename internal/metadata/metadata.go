// Package metadata holds per-channel metadata (groups and coordinates) and the
// great-circle geometry used for nearest-channel lookups.
package metadata

import (
	"sort"

	"swarm/internal/config"
)

// Metadata is the optional record attached to a channel.
type Metadata struct {
	Groups    []string
	Longitude *float64
	Latitude  *float64
}

// HasLonLat reports whether both coordinates are known.
func (m Metadata) HasLonLat() bool {
	return m.Longitude != nil && m.Latitude != nil
}

// Lookup resolves metadata by channel name. A missing record is not an error:
// callers treat it as "no groups" and "not eligible for nearest".
type Lookup interface {
	Get(channel string) (Metadata, bool)
}

// LookupFunc adapts a function to Lookup.
type LookupFunc func(channel string) (Metadata, bool)

// Get implements Lookup.
func (f LookupFunc) Get(channel string) (Metadata, bool) { return f(channel) }

// Store is an in-memory Lookup. It is read-only after construction and safe
// for concurrent readers.
type Store struct {
	entries map[string]Metadata
}

// NewStore builds a store from the configuration's metadata section.
func NewStore(entries map[string]config.MetadataEntry) *Store {
	s := &Store{entries: make(map[string]Metadata, len(entries))}
	for ch, e := range entries {
		s.entries[ch] = Metadata{
			Groups:    append([]string(nil), e.Groups...),
			Longitude: e.Longitude,
			Latitude:  e.Latitude,
		}
	}
	return s
}

// Get implements Lookup.
func (s *Store) Get(channel string) (Metadata, bool) {
	if s == nil {
		return Metadata{}, false
	}
	md, ok := s.entries[channel]
	return md, ok
}

// Channels returns every channel that has a metadata record, sorted.
func (s *Store) Channels() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.entries))
	for ch := range s.entries {
		out = append(out, ch)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

package chooser

import (
	"context"
	"fmt"
	"swarm/internal/metadata"
	"swarm/internal/source"
	"sync"
)

func fp(v float64) *float64 { return &v }

func lookupOf(md map[string]metadata.Metadata) metadata.Lookup {
	return metadata.LookupFunc(func(ch string) (metadata.Metadata, bool) {
		m, ok := md[ch]
		return m, ok
	})
}

func at(lon, lat float64, groups ...string) metadata.Metadata {
	return metadata.Metadata{Groups: groups, Longitude: fp(lon), Latitude: fp(lat)}
}

type stubSource struct{ name string }

func (s stubSource) Name() string                                          { return s.name }
func (s stubSource) ConfigString() string                                  { return s.name + ";file:/dev/null" }
func (s stubSource) Establish(ctx context.Context) (source.Session, error) { return s, nil }
func (s stubSource) Channels(ctx context.Context) ([]string, error)        { return nil, nil }
func (s stubSource) Close() error                                          { return nil }

// stubFetcher serves canned listings keyed by source name.
type stubFetcher struct {
	mu       sync.Mutex
	listings map[string][]string
	failures map[string]error
	calls    map[string]int
}

func newStubFetcher() *stubFetcher {
	return &stubFetcher{
		listings: map[string][]string{},
		failures: map[string]error{},
		calls:    map[string]int{},
	}
}

func (f *stubFetcher) fetch(ctx context.Context, src source.DataSource) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[src.Name()]++
	if err := f.failures[src.Name()]; err != nil {
		return nil, &source.UnreachableError{Source: src.Name(), Op: "establish", Err: err}
	}
	if ch, ok := f.listings[src.Name()]; ok {
		return ch, nil
	}
	return nil, fmt.Errorf("no listing for %s", src.Name())
}

func (f *stubFetcher) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func channelNames(nodes []*Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Name)
	}
	return out
}

func channelsOf(sel []Selection) []string {
	out := make([]string, 0, len(sel))
	for _, s := range sel {
		out = append(out, s.Channel)
	}
	return out
}

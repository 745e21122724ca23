package chooser

import (
	"fmt"
	"sort"

	"swarm/internal/metadata"
)

// Neighbor is a channel and its great-circle distance from a reference channel.
type Neighbor struct {
	Channel    string
	DistanceKm float64
}

// Highlight maps a neighbor to its canonical tree path. Channels that are not
// in the tree have InTree false and no path.
type Highlight struct {
	Neighbor
	Path   Path
	InTree bool
}

// NearestTo ranks every other candidate channel with coordinates by distance
// from channel, nearest first. Ties are broken by channel name. It returns
// ErrNotFound when channel has no coordinates.
func NearestTo(channel string, lookup metadata.Lookup, candidates []string) ([]Neighbor, error) {
	if lookup == nil {
		return nil, fmt.Errorf("%w: no metadata for %s", ErrNotFound, channel)
	}
	ref, ok := lookup.Get(channel)
	if !ok || !ref.HasLonLat() {
		return nil, fmt.Errorf("%w: no coordinates for %s", ErrNotFound, channel)
	}

	seen := map[string]bool{channel: true}
	var out []Neighbor
	for _, ch := range candidates {
		if seen[ch] {
			continue
		}
		seen[ch] = true
		md, ok := lookup.Get(ch)
		if !ok || !md.HasLonLat() {
			continue
		}
		d := metadata.DistanceKm(*ref.Longitude, *ref.Latitude, *md.Longitude, *md.Latitude)
		out = append(out, Neighbor{Channel: ch, DistanceKm: d})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DistanceKm != out[j].DistanceKm {
			return out[i].DistanceKm < out[j].DistanceKm
		}
		return out[i].Channel < out[j].Channel
	})
	return out, nil
}

// Highlight resolves neighbors against the current tree.
func (t *Tree) Highlight(neighbors []Neighbor) []Highlight {
	out := make([]Highlight, len(neighbors))
	for i, n := range neighbors {
		out[i].Neighbor = n
		out[i].Path, out[i].InTree = t.PathOf(n.Channel)
	}
	return out
}

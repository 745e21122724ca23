package chooser

import (
	"sort"

	"swarm/internal/metadata"
)

// Path locates a node by child indices from the root. Its depth is
// len(path)+1: the root alone has depth 1, a source node depth 2.
type Path []int

// Depth returns the number of nodes on the path, root included.
func (p Path) Depth() int { return len(p) + 1 }

// Clone returns a copy that does not share p's backing array.
func (p Path) Clone() Path { return append(Path(nil), p...) }

// Equal reports whether two paths name the same position.
func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// BuildSourceTree builds the subtree of one source from its channel listing.
//
// The returned server node has an "All" group first, holding every channel in
// input order, followed by one group per distinct group name in ascending
// ordinal order, each holding its channels in input order. The index maps each
// channel to its canonical sub-path below the server node: ungrouped channels
// map to their "All" position, grouped channels to their position in the
// last group processed, which is the greatest group name.
//
// A nil lookup means no metadata. The function has no side effects.
func BuildSourceTree(src string, channels []string, lookup metadata.Lookup) (*Node, map[string]Path) {
	server := &Node{Kind: KindServer, Name: src, Source: src, State: Opened}
	all := &Node{Kind: KindGroup, Name: AllGroup, Source: src}
	index := make(map[string]Path, len(channels))

	members := make(map[string][]string)
	for i, ch := range channels {
		all.Children = append(all.Children, &Node{Kind: KindChannel, Name: ch, Source: src})

		groups := groupsOf(lookup, ch)
		if len(groups) == 0 {
			index[ch] = Path{0, i}
			continue
		}
		for _, g := range groups {
			members[g] = append(members[g], ch)
		}
	}

	names := make([]string, 0, len(members))
	for g := range members {
		names = append(names, g)
	}
	sort.Strings(names)

	server.Children = append(server.Children, all)
	for gi, g := range names {
		group := &Node{Kind: KindGroup, Name: g, Source: src}
		for ci, ch := range members[g] {
			group.Children = append(group.Children, &Node{Kind: KindChannel, Name: ch, Source: src})
			index[ch] = Path{gi + 1, ci}
		}
		server.Children = append(server.Children, group)
	}
	return server, index
}

// groupsOf returns the distinct group names of a channel in declaration order.
func groupsOf(lookup metadata.Lookup, ch string) []string {
	if lookup == nil {
		return nil
	}
	md, ok := lookup.Get(ch)
	if !ok || len(md.Groups) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(md.Groups))
	out := make([]string, 0, len(md.Groups))
	for _, g := range md.Groups {
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true
		out = append(out, g)
	}
	return out
}

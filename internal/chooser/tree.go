package chooser

import (
	"fmt"
	"sort"
	"strings"

	"swarm/internal/metadata"
)

// canonical is a nearest-index entry: the owning source and the sub-path
// below its server node.
type canonical struct {
	source string
	sub    Path
}

// Tree is the live channel tree plus the tree-wide nearest index. It is not
// safe for concurrent use.
type Tree struct {
	root    *Node
	nearest map[string]canonical
}

// NewTree returns a tree with only the root.
func NewTree() *Tree {
	return &Tree{
		root:    &Node{Kind: KindRoot},
		nearest: make(map[string]canonical),
	}
}

// Root returns the root node.
func (t *Tree) Root() *Node { return t.root }

// Sources returns the server nodes in display order.
func (t *Tree) Sources() []*Node { return t.root.Children }

// SourceIndex returns the position of the named source or -1.
func (t *Tree) SourceIndex(name string) int {
	for i, n := range t.root.Children {
		if strings.EqualFold(n.Name, name) {
			return i
		}
	}
	return -1
}

// SourceNode returns the named server node or nil.
func (t *Tree) SourceNode(name string) *Node {
	if i := t.SourceIndex(name); i >= 0 {
		return t.root.Children[i]
	}
	return nil
}

// InsertSource adds an unopened source at the first position whose name
// compares case-insensitively >= name. An existing source of the same name is
// replaced.
func (t *Tree) InsertSource(name string) *Node {
	t.RemoveSource(name)

	key := strings.ToLower(name)
	i := sort.Search(len(t.root.Children), func(i int) bool {
		return strings.ToLower(t.root.Children[i].Name) >= key
	})
	n := newServerNode(name)
	t.root.Children = append(t.root.Children, nil)
	copy(t.root.Children[i+1:], t.root.Children[i:])
	t.root.Children[i] = n
	return n
}

// RemoveSource removes the named source and its nearest-index entries.
func (t *Tree) RemoveSource(name string) bool {
	i := t.SourceIndex(name)
	if i < 0 {
		return false
	}
	t.dropIndex(t.root.Children[i].Name)
	t.root.Children = append(t.root.Children[:i], t.root.Children[i+1:]...)
	return true
}

// ReplaceSource swaps oldName for a fresh unopened newName.
func (t *Tree) ReplaceSource(oldName, newName string) (*Node, error) {
	if !t.RemoveSource(oldName) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, oldName)
	}
	return t.InsertSource(newName), nil
}

// Populate replaces the named source's subtree with one built from channels
// and merges its index into the nearest index. Entries for channels listed by
// several sources are overwritten by the most recent Populate.
func (t *Tree) Populate(name string, channels []string, lookup metadata.Lookup) error {
	n := t.SourceNode(name)
	if n == nil {
		return fmt.Errorf("%w: %s", ErrUnknownSource, name)
	}
	built, index := BuildSourceTree(n.Name, channels, lookup)

	t.dropIndex(n.Name)
	n.Children = built.Children
	n.State = Opened
	for ch, sub := range index {
		t.nearest[ch] = canonical{source: n.Name, sub: sub}
	}
	return nil
}

// MarkBroken resets the named source to its message child in the Broken state.
func (t *Tree) MarkBroken(name string) error {
	n := t.SourceNode(name)
	if n == nil {
		return fmt.Errorf("%w: %s", ErrUnknownSource, name)
	}
	t.dropIndex(n.Name)
	n.State = Broken
	n.Children = []*Node{openingNode()}
	return nil
}

func (t *Tree) dropIndex(source string) {
	for ch, c := range t.nearest {
		if c.source == source {
			delete(t.nearest, ch)
		}
	}
}

// Node returns the node at p. A path that does not name a node is a
// programming error and panics.
func (t *Tree) Node(p Path) *Node {
	n := t.root
	for depth, i := range p {
		if i < 0 || i >= len(n.Children) {
			panic(fmt.Sprintf("chooser: malformed path %v at depth %d", []int(p), depth+2))
		}
		n = n.Children[i]
	}
	return n
}

// Has reports whether p names a node.
func (t *Tree) Has(p Path) bool {
	n := t.root
	for _, i := range p {
		if i < 0 || i >= len(n.Children) {
			return false
		}
		n = n.Children[i]
	}
	return true
}

// PathOf returns the canonical path of a channel for nearest highlighting.
func (t *Tree) PathOf(channel string) (Path, bool) {
	c, ok := t.nearest[channel]
	if !ok {
		return nil, false
	}
	si := t.SourceIndex(c.source)
	if si < 0 {
		return nil, false
	}
	p := append(Path{si}, c.sub...)
	if !t.Has(p) {
		return nil, false
	}
	if n := t.Node(p); n.Kind != KindChannel || n.Name != channel {
		return nil, false
	}
	return p, true
}

// Channels returns every channel listed by opened sources, without duplicates.
func (t *Tree) Channels() []string {
	seen := make(map[string]bool)
	var out []string
	for _, src := range t.root.Children {
		if len(src.Children) == 0 || src.Children[0].Kind != KindGroup {
			continue
		}
		for _, ch := range src.Children[0].Children {
			if !seen[ch.Name] {
				seen[ch.Name] = true
				out = append(out, ch.Name)
			}
		}
	}
	return out
}

// Walk visits every node depth-first in display order. Returning false from
// fn skips the node's children.
func (t *Tree) Walk(fn func(p Path, n *Node) bool) {
	var walk func(p Path, n *Node)
	walk = func(p Path, n *Node) {
		if !fn(p, n) {
			return
		}
		for i, c := range n.Children {
			walk(append(p.Clone(), i), c)
		}
	}
	walk(Path{}, t.root)
}

package model

import "swarm/internal/chooser"

// VisibleRows lists the tree rows in display order. The root is not shown;
// sources sit at depth 0.
func (m *Model) VisibleRows() []Row {
	var rows []Row
	m.Chooser.Tree().Walk(func(p chooser.Path, n *chooser.Node) bool {
		if n.Kind == chooser.KindRoot {
			return true
		}
		rows = append(rows, Row{Path: p, Node: n, Depth: len(p) - 1})
		return m.Expanded[n]
	})
	return rows
}

// CurrentRow returns the row under the cursor.
func (m *Model) CurrentRow() (Row, bool) {
	rows := m.VisibleRows()
	if m.Cursor < 0 || m.Cursor >= len(rows) {
		return Row{}, false
	}
	return rows[m.Cursor], true
}

// ClampCursor keeps the cursor on a visible row.
func (m *Model) ClampCursor() {
	n := len(m.VisibleRows())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// CurrentSource returns the source node owning the row under the cursor.
func (m *Model) CurrentSource() (*chooser.Node, bool) {
	row, ok := m.CurrentRow()
	if !ok || len(row.Path) == 0 {
		return nil, false
	}
	return m.Chooser.Tree().Node(row.Path[:1]), true
}

// MoveCursorTo puts the cursor on the row at p, if it is visible.
func (m *Model) MoveCursorTo(p chooser.Path) bool {
	for i, row := range m.VisibleRows() {
		if row.Path.Equal(p) {
			m.Cursor = i
			return true
		}
	}
	return false
}

// Reveal expands every ancestor of p and moves the cursor onto it.
func (m *Model) Reveal(p chooser.Path) bool {
	tree := m.Chooser.Tree()
	if !tree.Has(p) {
		return false
	}
	for i := 1; i < len(p); i++ {
		m.Expanded[tree.Node(p[:i])] = true
	}
	return m.MoveCursorTo(p)
}

// CollapseAll folds every node and keeps the cursor on the source it was in.
func (m *Model) CollapseAll() {
	src, ok := m.CurrentSource()
	m.Expanded = make(map[*chooser.Node]bool)
	m.Cursor = 0
	if ok {
		m.MoveCursorTo(chooser.Path{m.Chooser.Tree().SourceIndex(src.Name)})
	}
}

// SelectedPaths returns the marked paths in display order, or the row under
// the cursor when nothing is marked.
func (m *Model) SelectedPaths() []chooser.Path {
	var paths []chooser.Path
	if len(m.Marked) > 0 {
		m.Chooser.Tree().Walk(func(p chooser.Path, n *chooser.Node) bool {
			if m.Marked[n] {
				paths = append(paths, p)
			}
			return true
		})
		if len(paths) > 0 {
			return paths
		}
	}
	if row, ok := m.CurrentRow(); ok {
		paths = append(paths, row.Path)
	}
	return paths
}

// Prune forgets expansion and marks of nodes no longer in the tree.
func (m *Model) Prune() {
	live := make(map[*chooser.Node]bool)
	m.Chooser.Tree().Walk(func(_ chooser.Path, n *chooser.Node) bool {
		live[n] = true
		return true
	})
	for n := range m.Expanded {
		if !live[n] {
			delete(m.Expanded, n)
		}
	}
	for n := range m.Marked {
		if !live[n] {
			delete(m.Marked, n)
		}
	}
	m.ClampCursor()
}

// SetNeighbors stores a nearest result and maps it onto the current tree.
func (m *Model) SetNeighbors(origin string, neighbors []chooser.Neighbor) {
	if m.NearestLimit > 0 && len(neighbors) > m.NearestLimit {
		neighbors = neighbors[:m.NearestLimit]
	}
	m.NearestOrigin = origin
	m.Neighbors = neighbors
	m.NearestMarked = make(map[string]bool)
	m.NearestCursor = 0
	m.RemapNearest()
}

// ChosenNearest returns the marked nearest channels in list order, or the
// entry under the nearest cursor when none is marked.
func (m *Model) ChosenNearest() []string {
	var chosen []string
	for _, h := range m.Nearest {
		if m.NearestMarked[h.Channel] {
			chosen = append(chosen, h.Channel)
		}
	}
	if len(chosen) == 0 && m.NearestCursor >= 0 && m.NearestCursor < len(m.Nearest) {
		chosen = append(chosen, m.Nearest[m.NearestCursor].Channel)
	}
	return chosen
}

// SelectChannels replaces the tree marks with the canonical nodes of
// channels and moves the cursor to the first one. Channels not in the tree
// are returned as missing.
func (m *Model) SelectChannels(channels []string) (missing []string) {
	tree := m.Chooser.Tree()
	var paths []chooser.Path
	for _, ch := range channels {
		p, ok := tree.PathOf(ch)
		if !ok {
			missing = append(missing, ch)
			continue
		}
		paths = append(paths, p)
	}
	if len(paths) == 0 {
		return missing
	}

	m.Marked = make(map[*chooser.Node]bool)
	for _, p := range paths {
		m.Marked[tree.Node(p)] = true
		for i := 1; i < len(p); i++ {
			m.Expanded[tree.Node(p[:i])] = true
		}
	}
	m.MoveCursorTo(paths[0])
	return missing
}

// RemapNearest re-resolves the nearest entries after the tree changed.
func (m *Model) RemapNearest() {
	m.Nearest = m.Chooser.Tree().Highlight(m.Neighbors)
	if m.NearestCursor >= len(m.Nearest) {
		m.NearestCursor = len(m.Nearest) - 1
	}
	if m.NearestCursor < 0 {
		m.NearestCursor = 0
	}
}

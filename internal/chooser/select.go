package chooser

// DefaultMaxChannels is the selection limit used when none is configured.
const DefaultMaxChannels = 500

// Selection is one (source, channel) pair handed to a sink.
type Selection struct {
	Source  string
	Channel string
}

// String renders the pair as "source;channel".
func (s Selection) String() string { return s.Source + ";" + s.Channel }

// SelectLeaves turns selected tree paths into (source, channel) pairs.
//
// Paths of depth 2 or less (root or source) contribute nothing. A channel leaf
// contributes itself; a group contributes its direct channel children. Pairs
// follow the order of paths, then child order, and duplicates are kept.
//
// If the result holds more than max pairs (max <= 0 means DefaultMaxChannels)
// the whole list is returned together with a *LimitError. Malformed paths panic.
func (t *Tree) SelectLeaves(paths []Path, max int) ([]Selection, error) {
	if max <= 0 {
		max = DefaultMaxChannels
	}

	var out []Selection
	for _, p := range paths {
		if p.Depth() <= 2 {
			continue
		}
		src := t.Node(p[:1]).Name
		n := t.Node(p)
		switch n.Kind {
		case KindChannel:
			out = append(out, Selection{Source: src, Channel: n.Name})
		case KindGroup:
			for _, c := range n.Children {
				if c.Kind == KindChannel {
					out = append(out, Selection{Source: src, Channel: c.Name})
				}
			}
		}
	}

	if len(out) > max {
		return out, &LimitError{Count: len(out), Max: max}
	}
	return out, nil
}

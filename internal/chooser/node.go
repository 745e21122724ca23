package chooser

import "fmt"

// NodeKind tags the variant of a Node.
type NodeKind int

const (
	KindRoot NodeKind = iota
	KindServer
	KindChannel
	KindMessage
	KindGroup
)

func (k NodeKind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindServer:
		return "server"
	case KindChannel:
		return "channel"
	case KindMessage:
		return "message"
	case KindGroup:
		return "group"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

const (
	// AllGroup names the pseudo-group holding every channel of a source.
	AllGroup = "All"
	// OpeningMessage is shown under a source until its first listing lands.
	OpeningMessage = "Opening…"
	rootLabel      = "Data Sources"
)

// Node is one entry of the channel tree. Which fields are meaningful depends
// on Kind:
//
//	KindServer  Name is the source name, State its listing state
//	KindGroup   Name is the group name
//	KindChannel Name is the channel, Source the owning source
//	KindMessage Name is the message text
type Node struct {
	Kind     NodeKind
	Name     string
	Source   string
	State    ListingState
	Children []*Node
}

func newServerNode(name string) *Node {
	return &Node{
		Kind:     KindServer,
		Name:     name,
		Source:   name,
		State:    Unopened,
		Children: []*Node{openingNode()},
	}
}

func openingNode() *Node {
	return &Node{Kind: KindMessage, Name: OpeningMessage}
}

// Broken reports whether a server node's last listing failed.
func (n *Node) Broken() bool {
	return n.Kind == KindServer && n.State == Broken
}

// IsLeaf reports whether the node can hold no children.
func (n *Node) IsLeaf() bool {
	return n.Kind == KindChannel || n.Kind == KindMessage
}

// Label returns the text shown for a node.
func Label(n *Node) string {
	if n.Kind == KindRoot {
		return rootLabel
	}
	return n.Name
}

// Icon returns the glyph shown before a node's label.
func Icon(n *Node) string {
	switch n.Kind {
	case KindRoot:
		return "◆"
	case KindServer:
		switch n.State {
		case Opening:
			return "◌"
		case Opened:
			return "●"
		case Broken:
			return "✗"
		default:
			return "○"
		}
	case KindGroup:
		if n.Name == AllGroup {
			return "≡"
		}
		return "▤"
	case KindChannel:
		return "∿"
	default:
		return "·"
	}
}

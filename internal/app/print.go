package app

import (
	"fmt"
	"swarm/internal/chooser"

	"github.com/jedib0t/go-pretty/v6/list"
)

// RenderTree draws the chooser tree as an indented list. Unopened sources
// show no children; broken ones are marked unreachable.
func RenderTree(tree *chooser.Tree) string {
	lw := list.NewWriter()
	lw.SetStyle(list.StyleConnectedRounded)

	root := tree.Root()
	lw.AppendItem(chooser.Label(root))
	lw.Indent()
	for _, src := range tree.Sources() {
		switch src.State {
		case chooser.Broken:
			lw.AppendItem(fmt.Sprintf("%s %s (unreachable)", chooser.Icon(src), src.Name))
			continue
		case chooser.Opened:
			lw.AppendItem(fmt.Sprintf("%s %s", chooser.Icon(src), src.Name))
		default:
			lw.AppendItem(fmt.Sprintf("%s %s (%s)", chooser.Icon(src), src.Name, src.State))
			continue
		}
		lw.Indent()
		for _, group := range src.Children {
			lw.AppendItem(fmt.Sprintf("%s (%d)", group.Name, len(group.Children)))
			lw.Indent()
			for _, ch := range group.Children {
				lw.AppendItem(ch.Name)
			}
			lw.UnIndent()
		}
		lw.UnIndent()
	}
	return lw.Render()
}

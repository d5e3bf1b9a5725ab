package vfs

import (
	"sort"
	"strings"
)

// Render draws node and its subtree as an indented listing.
//
// Each level lists directories before files, each group sorted by name.
// Directory names carry a trailing slash, so a root named "/" renders
// as "//". A child that is not the last of its siblings extends the
// running prefix with "|  ", the last child with three spaces.
func Render(node *Node) string {
	var b strings.Builder
	render(&b, node, "")
	return b.String()
}

func render(b *strings.Builder, n *Node, prefix string) {
	b.WriteString(prefix)
	b.WriteString(n.Name())
	if n.IsDir() {
		b.WriteByte('/')
	}
	b.WriteByte('\n')

	children := n.Children()
	sort.SliceStable(children, func(i, j int) bool {
		if children[i].IsDir() != children[j].IsDir() {
			return children[i].IsDir()
		}
		return children[i].Name() < children[j].Name()
	})
	for i, child := range children {
		connector := "   "
		if i < len(children)-1 {
			connector = "|  "
		}
		render(b, child, prefix+connector)
	}
}

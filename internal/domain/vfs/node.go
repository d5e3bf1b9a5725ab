package vfs

import (
	"sort"
	"time"
)

// Node is one entry in the virtual filesystem tree.
//
// Children are keyed by name for O(1) lookup while preserving insertion
// order for iteration. Sibling names are unique, every non-root node has
// exactly one parent, and a leaf never holds children.
type Node struct {
	name     string
	dir      bool
	size     int64
	modTime  time.Time
	children map[string]*Node
	order    []string
}

// NewDir creates an empty directory node.
func NewDir(name string) *Node {
	return &Node{name: name, dir: true, children: make(map[string]*Node)}
}

// NewFile creates a leaf node.
func NewFile(name string) *Node {
	return &Node{name: name}
}

// Name returns the node's own name, the last segment of its path.
func (n *Node) Name() string { return n.name }

// IsDir reports whether the node is a directory.
func (n *Node) IsDir() bool { return n.dir }

// Size returns the byte size recorded for the node, zero when unknown.
func (n *Node) Size() int64 { return n.size }

// ModTime returns the modification time recorded for the node. Nodes
// implied by child paths rather than declared by the archive report the
// zero time.
func (n *Node) ModTime() time.Time { return n.modTime }

// SetMeta records display metadata from an archive entry.
func (n *Node) SetMeta(size int64, modTime time.Time) {
	n.size = size
	n.modTime = modTime
}

// Child looks up a direct child by name.
func (n *Node) Child(name string) (*Node, bool) {
	c, ok := n.children[name]
	return c, ok
}

// Len returns the number of direct children.
func (n *Node) Len() int { return len(n.children) }

// AddChild attaches child, replacing any same-named sibling.
func (n *Node) AddChild(child *Node) {
	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	if _, exists := n.children[child.name]; !exists {
		n.order = append(n.order, child.name)
	}
	n.children[child.name] = child
}

// Detach removes and returns the direct child with the given name.
func (n *Node) Detach(name string) (*Node, bool) {
	c, ok := n.children[name]
	if !ok {
		return nil, false
	}
	delete(n.children, name)
	for i, o := range n.order {
		if o == name {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
	return c, true
}

// EnsureDir returns the child with the given name as a directory. A
// missing child is created; an existing leaf is promoted in place,
// since a node that gains children is always a directory.
func (n *Node) EnsureDir(name string) *Node {
	if c, ok := n.children[name]; ok {
		c.dir = true
		if c.children == nil {
			c.children = make(map[string]*Node)
		}
		return c
	}
	c := NewDir(name)
	n.AddChild(c)
	return c
}

// Children returns the direct children in insertion order. The slice is
// the caller's to keep or reorder.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.order))
	for _, name := range n.order {
		out = append(out, n.children[name])
	}
	return out
}

// SortedNames returns the direct child names in lexical order.
func (n *Node) SortedNames() []string {
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of nodes in the subtree, including n itself.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.children {
		total += c.Count()
	}
	return total
}

// Walk visits every node below n depth-first in insertion order,
// passing each node's path relative to n without a leading slash.
func (n *Node) Walk(fn func(relPath string, node *Node)) {
	var walk func(prefix string, node *Node)
	walk = func(prefix string, node *Node) {
		for _, name := range node.order {
			child := node.children[name]
			p := name
			if prefix != "" {
				p = prefix + "/" + name
			}
			fn(p, child)
			if child.dir {
				walk(p, child)
			}
		}
	}
	walk("", n)
}

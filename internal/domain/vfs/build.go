package vfs

import "time"

// Entry is one archive member to place in the tree: a /-separated path,
// the archive's directory flag, and display metadata.
type Entry struct {
	Path    string
	Dir     bool
	Size    int64
	ModTime time.Time
}

// Build assembles a tree from entries in any enumeration order.
//
// Intermediate path segments become directories no matter how the
// archive flags them; the final segment takes the entry's own flag. An
// entry whose node already exists leaves that node untouched, which
// makes duplicates idempotent and the result independent of entry
// order.
func Build(entries []Entry) *Node {
	root := NewDir("/")
	for _, entry := range entries {
		Insert(root, entry)
	}
	return root
}

// Insert places a single entry below root.
func Insert(root *Node, entry Entry) {
	segments := SplitPath(entry.Path)
	if len(segments) == 0 {
		return
	}
	current := root
	for _, segment := range segments[:len(segments)-1] {
		current = current.EnsureDir(segment)
	}
	last := segments[len(segments)-1]
	if _, ok := current.Child(last); ok {
		return
	}
	node := NewFile(last)
	if entry.Dir {
		node = NewDir(last)
	}
	node.SetMeta(entry.Size, entry.ModTime)
	current.AddChild(node)
}

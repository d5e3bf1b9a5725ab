package vfs

import "strings"

// SplitPath splits a virtual path into segments, discarding the empty
// segments produced by leading, trailing, or doubled separators. The
// root path yields no segments.
func SplitPath(path string) []string {
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// JoinPath builds the canonical absolute form of a segment list.
func JoinPath(segments []string) string {
	if len(segments) == 0 {
		return "/"
	}
	return "/" + strings.Join(segments, "/")
}

// Canonical normalizes a virtual path to its /-joined absolute form.
func Canonical(path string) string {
	return JoinPath(SplitPath(path))
}

// Resolve walks path from root one segment at a time. Resolution is
// absolute, never mutates, and returns the tree's own node. A missing
// segment stops the walk with a NotFoundError carrying the full path.
func Resolve(root *Node, path string) (*Node, error) {
	current := root
	for _, segment := range SplitPath(path) {
		child, ok := current.Child(segment)
		if !ok {
			return nil, &NotFoundError{Path: path}
		}
		current = child
	}
	return current, nil
}

package vfs

// Move relocates the node at src to the path dst, renaming it to dst's
// final segment.
//
// Every precondition is checked before anything is mutated, so a failed
// move leaves the tree exactly as it was: the source must resolve and
// must not be the root, the destination must not resolve, and the
// destination's parent must resolve to a directory outside the source's
// own subtree.
func Move(root *Node, src, dst string) error {
	srcSegs := SplitPath(src)
	if len(srcSegs) == 0 {
		return ErrMoveRoot
	}
	node, err := Resolve(root, src)
	if err != nil {
		return err
	}
	if _, err := Resolve(root, dst); err == nil {
		return &ExistsError{Path: dst}
	}
	dstSegs := SplitPath(dst)
	parentPath := JoinPath(dstSegs[:len(dstSegs)-1])
	parent, err := Resolve(root, parentPath)
	if err != nil {
		return err
	}
	if !parent.IsDir() {
		return &NotDirError{Path: parentPath}
	}
	if parent == node || isDescendant(node, parent) {
		return &CycleError{Source: src, Dest: dst}
	}
	srcParent, err := Resolve(root, JoinPath(srcSegs[:len(srcSegs)-1]))
	if err != nil {
		return err
	}
	detached, ok := srcParent.Detach(srcSegs[len(srcSegs)-1])
	if !ok {
		return &NotFoundError{Path: src}
	}
	detached.name = dstSegs[len(dstSegs)-1]
	parent.AddChild(detached)
	return nil
}

func isDescendant(ancestor, candidate *Node) bool {
	for _, child := range ancestor.children {
		if child == candidate || isDescendant(child, candidate) {
			return true
		}
	}
	return false
}

// Package vfs implements the virtual filesystem tree that backs the
// archive shell.
//
// The tree is built once from an archive's entry listing and then
// browsed and rearranged entirely in memory; nothing is ever written
// back to the archive.
//
// Components:
//   - Node: named tree node with ordered children and O(1) lookup
//   - Build/Insert: order-independent construction from entries
//   - Resolve: absolute path resolution from the root
//   - Move: transactional relocation with cycle protection
//   - Render: indented subtree listing, directories first
//
// Path Semantics:
//   - Paths are /-separated; empty segments are discarded, so "/",
//     "" and "//" all name the root
//   - Resolution always starts at the root; relative input is the
//     caller's concern
//   - Sibling names are unique and lookups return the tree's own
//     nodes, never copies
//
// Example Usage:
//
//	root := vfs.Build(entries)
//	node, err := vfs.Resolve(root, "/docs/readme.txt")
//	if err := vfs.Move(root, "/docs/readme.txt", "/archive/readme.txt"); err != nil {
//		...
//	}
//	fmt.Print(vfs.Render(root))
package vfs

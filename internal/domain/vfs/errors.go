package vfs

import (
	"errors"
	"fmt"
)

// ErrMoveRoot is returned when a move names the tree root as its source.
var ErrMoveRoot = errors.New("cannot move the root directory")

// NotFoundError reports a path that does not resolve.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("path not found: %s", e.Path)
}

// ExistsError reports a destination path that already resolves.
type ExistsError struct {
	Path string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("path already exists: %s", e.Path)
}

// NotDirError reports a leaf node used where a directory is required.
type NotDirError struct {
	Path string
}

func (e *NotDirError) Error() string {
	return fmt.Sprintf("not a directory: %s", e.Path)
}

// CycleError reports a move that would place a directory inside its own
// subtree.
type CycleError struct {
	Source string
	Dest   string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cannot move %s into its own subtree at %s", e.Source, e.Dest)
}

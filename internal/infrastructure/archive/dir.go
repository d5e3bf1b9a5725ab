package archive

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"

	"github.com/charlievieth/fastwalk"

	"github.com/arcshell/arcshell/internal/domain/vfs"
)

// dirSource exposes a directory on the host filesystem through the
// same interface as a packed archive. Enumeration opens no persistent
// handle, so Close has nothing to release.
type dirSource struct {
	root string
}

func newDirSource(root string) Source {
	return &dirSource{root: root}
}

func (s *dirSource) Format() string { return "dir" }

func (s *dirSource) Snapshot() ([]vfs.Entry, error) {
	var (
		mu      sync.Mutex
		entries []vfs.Entry
	)
	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil || rel == "." {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		entry := vfs.Entry{
			Path:    filepath.ToSlash(rel),
			Dir:     d.IsDir(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		}
		mu.Lock()
		entries = append(entries, entry)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("dir snapshot: %w", err)
	}

	// Walk order is nondeterministic across goroutines; sort for a
	// stable snapshot.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}

func (s *dirSource) Close() error { return nil }

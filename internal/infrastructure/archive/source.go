// Package archive opens read-only archive backends and enumerates
// their entries for the tree builder. A source is opened once at
// startup and closed exactly once at shutdown; nothing is ever written
// back.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arcshell/arcshell/internal/domain/vfs"
)

// Source is a read-only handle on an archive.
type Source interface {
	// Snapshot enumerates every entry. Order follows the archive and
	// carries no meaning; tree construction does not depend on it.
	Snapshot() ([]vfs.Entry, error)
	// Format names the backend ("tar", "zip", "dir").
	Format() string
	// Close releases the underlying handle. Safe to call twice.
	Close() error
}

// Open picks a backend from the path: a directory on disk, a .zip
// archive, or a tar archive with optional gzip/zstd compression.
func Open(path string) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	if info.IsDir() {
		return newDirSource(path), nil
	}

	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(name, ".zip"):
		return openZip(path)
	case strings.HasSuffix(name, ".tar"),
		strings.HasSuffix(name, ".tar.gz"),
		strings.HasSuffix(name, ".tgz"),
		strings.HasSuffix(name, ".tar.zst"):
		return openTar(path)
	}
	return nil, fmt.Errorf("open archive: unsupported format %q", filepath.Ext(path))
}

// normalizePath cleans an entry name into a /-separated path relative
// to the archive root. An empty result names the root itself and is
// skipped by callers.
func normalizePath(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = strings.TrimPrefix(name, "./")
	name = strings.Trim(name, "/")
	if name == "." {
		return ""
	}
	return name
}

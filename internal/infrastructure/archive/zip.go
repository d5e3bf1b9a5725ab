package archive

import (
	"archive/zip"
	"fmt"
	"strings"
	"sync"

	"github.com/arcshell/arcshell/internal/domain/vfs"
)

// zipSource reads zip archives through the central directory, so a
// snapshot never decompresses member contents.
type zipSource struct {
	rc *zip.ReadCloser

	closeOnce sync.Once
	closeErr  error
}

func openZip(path string) (Source, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	return &zipSource{rc: rc}, nil
}

func (s *zipSource) Format() string { return "zip" }

func (s *zipSource) Snapshot() ([]vfs.Entry, error) {
	entries := make([]vfs.Entry, 0, len(s.rc.File))
	for _, f := range s.rc.File {
		path := normalizePath(f.Name)
		if path == "" {
			continue
		}
		info := f.FileInfo()
		entries = append(entries, vfs.Entry{
			Path:    path,
			Dir:     info.IsDir() || strings.HasSuffix(f.Name, "/"),
			Size:    info.Size(),
			ModTime: f.Modified,
		})
	}
	return entries, nil
}

func (s *zipSource) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.rc.Close()
	})
	return s.closeErr
}

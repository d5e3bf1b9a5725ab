package archive

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/arcshell/arcshell/internal/domain/vfs"
)

// tarSource reads tar archives, transparently decompressing .gz/.tgz
// and .zst files. The file handle stays open until Close so the
// snapshot can be retaken.
type tarSource struct {
	path string
	file *os.File

	closeOnce sync.Once
	closeErr  error
}

func openTar(path string) (Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tar: %w", err)
	}
	return &tarSource{path: path, file: file}, nil
}

func (s *tarSource) Format() string { return "tar" }

func (s *tarSource) Snapshot() ([]vfs.Entry, error) {
	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("tar snapshot: %w", err)
	}

	var reader io.Reader = s.file
	if strings.HasSuffix(s.path, ".gz") || strings.HasSuffix(s.path, ".tgz") {
		gzReader, err := gzip.NewReader(s.file)
		if err != nil {
			return nil, fmt.Errorf("tar snapshot: gzip: %w", err)
		}
		defer gzReader.Close()
		reader = gzReader
	} else if strings.HasSuffix(s.path, ".zst") {
		zstdReader, err := zstd.NewReader(s.file)
		if err != nil {
			return nil, fmt.Errorf("tar snapshot: zstd: %w", err)
		}
		defer zstdReader.Close()
		reader = zstdReader
	}

	var entries []vfs.Entry
	tarReader := tar.NewReader(reader)
	for {
		hdr, err := tarReader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tar snapshot: %w", err)
		}
		path := normalizePath(hdr.Name)
		if path == "" {
			continue
		}
		// Symlinks and other special members appear as plain leaves.
		entries = append(entries, vfs.Entry{
			Path:    path,
			Dir:     hdr.Typeflag == tar.TypeDir || strings.HasSuffix(hdr.Name, "/"),
			Size:    hdr.Size,
			ModTime: hdr.ModTime,
		})
	}
	return entries, nil
}

func (s *tarSource) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.file.Close()
	})
	return s.closeErr
}

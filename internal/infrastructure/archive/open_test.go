package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMissingPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.tar"))
	require.Error(t, err)
}

func TestOpenUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fs.rar")
	require.NoError(t, os.WriteFile(path, []byte("not an archive"), 0o644))

	_, err := Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"./dir/file.txt", "dir/file.txt"},
		{"/dir/file.txt", "dir/file.txt"},
		{"dir/", "dir"},
		{`win\style\path`, "win/style/path"},
		{".", ""},
		{"./", ""},
		{"/", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizePath(tt.in), "normalizePath(%q)", tt.in)
	}
}

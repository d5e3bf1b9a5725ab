package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArchive(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs", "readme.md"), []byte("# hi\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("note\n"), 0o644))
	return root
}

func writeManifest(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "arcshell.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunInteractive(t *testing.T) {
	manifest := writeManifest(t, "username: erik\narchive: "+writeArchive(t)+"\n")

	in := strings.NewReader("pwd\nls\nexit\n")
	var out strings.Builder
	require.NoError(t, run(manifest, in, &out))

	assert.Equal(t, "Hello erik!\n/ > /\n/ > docs\nnotes.txt\n/ > ", out.String())
}

func TestRunEchoesErrors(t *testing.T) {
	manifest := writeManifest(t, "username: erik\narchive: "+writeArchive(t)+"\n")

	in := strings.NewReader("cd missing\n")
	var out strings.Builder
	require.NoError(t, run(manifest, in, &out))

	assert.Contains(t, out.String(), "Directory not found: missing\n")
}

func TestRunStopsAtEOF(t *testing.T) {
	manifest := writeManifest(t, "username: erik\narchive: "+writeArchive(t)+"\n")

	in := strings.NewReader("pwd\n")
	var out strings.Builder
	require.NoError(t, run(manifest, in, &out))

	assert.True(t, strings.HasSuffix(out.String(), "/ > "), "loop should end quietly at EOF")
}

func TestRunStartupScript(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "startup.txt")
	require.NoError(t, os.WriteFile(script, []byte("cd docs\n\npwd\n"), 0o644))
	manifest := writeManifest(t,
		"username: erik\narchive: "+writeArchive(t)+"\nstartup_script: "+script+"\n")

	in := strings.NewReader("exit\n")
	var out strings.Builder
	require.NoError(t, run(manifest, in, &out))

	assert.Equal(t, "Hello erik!\n/docs\n/docs > ", out.String())
}

func TestRunStartupScriptMayExit(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "startup.txt")
	require.NoError(t, os.WriteFile(script, []byte("pwd\nexit\nls\n"), 0o644))
	manifest := writeManifest(t,
		"username: erik\narchive: "+writeArchive(t)+"\nstartup_script: "+script+"\n")

	in := strings.NewReader("ls\n")
	var out strings.Builder
	require.NoError(t, run(manifest, in, &out))

	// The session ends inside the script; no prompt is ever shown.
	assert.Equal(t, "Hello erik!\n/\n", out.String())
}

func TestRunMissingManifest(t *testing.T) {
	var out strings.Builder
	err := run(filepath.Join(t.TempDir(), "absent.yaml"), strings.NewReader(""), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read manifest")
}

func TestRunMissingStartupScript(t *testing.T) {
	manifest := writeManifest(t,
		"username: erik\narchive: "+writeArchive(t)+"\nstartup_script: /does/not/exist\n")

	var out strings.Builder
	err := run(manifest, strings.NewReader(""), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open startup script")
}

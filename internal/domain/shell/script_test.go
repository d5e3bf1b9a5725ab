package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScript(t *testing.T) {
	e := newTestEngine()

	script := "cd dir1\n\n   \nls\n"
	results, err := RunScript(e, strings.NewReader(script))
	require.NoError(t, err)

	// Blank lines are skipped, everything else runs in file order.
	require.Len(t, results, 2)
	assert.True(t, results[0].Ok())
	assert.Equal(t, "file1.txt\nfile2.txt", results[1].Output)
	assert.Equal(t, "/dir1", e.Cwd())
}

func TestRunScriptStopsAtExit(t *testing.T) {
	e := newTestEngine()

	results, err := RunScript(e, strings.NewReader("exit\nls\n"))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Exit)
}

func TestRunScriptKeepsGoingOnFailures(t *testing.T) {
	e := newTestEngine()

	script := "cd nonexistent\nls dir2\n"
	results, err := RunScript(e, strings.NewReader(script))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.False(t, results[0].Ok())
	assert.Equal(t, "file3.txt", results[1].Output)
}

func TestRunScriptEmpty(t *testing.T) {
	e := newTestEngine()

	results, err := RunScript(e, strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, results)
}

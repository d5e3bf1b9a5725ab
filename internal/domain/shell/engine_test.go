package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcshell/arcshell/internal/domain/vfs"
)

func newTestEngine() *Engine {
	return New(vfs.Build([]vfs.Entry{
		{Path: "dir1/", Dir: true},
		{Path: "dir1/file1.txt", Size: 16},
		{Path: "dir1/file2.txt", Size: 16},
		{Path: "dir2/", Dir: true},
		{Path: "dir2/file3.txt", Size: 16},
		{Path: "file4.txt", Size: 16},
	}))
}

func TestLs(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name string
		line string
		want string
	}{
		{"root", "ls", "dir1\ndir2\nfile4.txt"},
		{"directory", "ls dir1", "file1.txt\nfile2.txt"},
		{"absolute", "ls /dir2", "file3.txt"},
		{"leaf has no children", "ls file4.txt", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.Execute(tt.line)
			require.True(t, res.Ok(), "unexpected error: %v", res.Err)
			assert.Equal(t, tt.want, res.Output)
		})
	}
}

func TestLsMissingTarget(t *testing.T) {
	e := newTestEngine()

	res := e.Execute("ls nonexistent")
	require.False(t, res.Ok())
	assert.Equal(t, KindNotFound, res.Err.Kind)
	assert.Equal(t, "Directory not found: nonexistent", res.Err.Message)
}

// Path arguments resolve from the root; only cd composes with the
// current directory.
func TestLsArgumentsAreRootBased(t *testing.T) {
	e := newTestEngine()
	require.True(t, e.Execute("cd dir1").Ok())

	res := e.Execute("ls dir2")
	require.True(t, res.Ok())
	assert.Equal(t, "file3.txt", res.Output)

	res = e.Execute("ls file1.txt")
	require.False(t, res.Ok())
	assert.Equal(t, KindNotFound, res.Err.Kind)
}

func TestCd(t *testing.T) {
	e := newTestEngine()

	require.True(t, e.Execute("cd dir1").Ok())
	assert.Equal(t, "/dir1", e.Cwd())

	require.True(t, e.Execute("cd ..").Ok())
	assert.Equal(t, "/", e.Cwd())

	// ".." at the root stays at the root.
	require.True(t, e.Execute("cd ..").Ok())
	assert.Equal(t, "/", e.Cwd())

	require.True(t, e.Execute("cd dir1").Ok())
	require.True(t, e.Execute("cd /").Ok())
	assert.Equal(t, "/", e.Cwd())

	// No argument is a no-op.
	res := e.Execute("cd")
	require.True(t, res.Ok())
	assert.Empty(t, res.Output)
	assert.Equal(t, "/", e.Cwd())
}

func TestCdRelativeChain(t *testing.T) {
	e := newTestEngine()
	require.True(t, e.Execute("cd dir1").Ok())

	// dir2 exists at the root, not under /dir1.
	res := e.Execute("cd dir2")
	require.False(t, res.Ok())
	assert.Equal(t, "Directory not found: dir2", res.Err.Message)
	assert.Equal(t, "/dir1", e.Cwd())
}

func TestCdErrors(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name string
		line string
	}{
		{"missing directory", "cd nonexistent"},
		{"target is a file", "cd file4.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.Execute(tt.line)
			require.False(t, res.Ok())
			assert.Equal(t, KindNotFound, res.Err.Kind)
			assert.Contains(t, res.Err.Message, "Directory not found")
			assert.Equal(t, "/", e.Cwd())
		})
	}
}

func TestPwdAndPrompt(t *testing.T) {
	e := newTestEngine()

	assert.Equal(t, "/", e.Execute("pwd").Output)
	assert.Equal(t, "/ > ", e.Prompt())

	require.True(t, e.Execute("cd dir1").Ok())
	assert.Equal(t, "/dir1", e.Execute("pwd").Output)
	assert.Equal(t, "/dir1 > ", e.Prompt())
}

func TestNoArgCommandsUseCwd(t *testing.T) {
	e := newTestEngine()
	require.True(t, e.Execute("cd dir1").Ok())

	assert.Equal(t, "file1.txt\nfile2.txt", e.Execute("ls").Output)
	assert.Equal(t, "dir1/\n|  file1.txt\n   file2.txt\n", e.Execute("tree").Output)
}

func TestMvSuccess(t *testing.T) {
	e := newTestEngine()

	res := e.Execute("mv file4.txt dir1/file4.txt")
	require.True(t, res.Ok())
	assert.Equal(t, "file4.txt moved to dir1/file4.txt.", res.Output)

	assert.Equal(t, "file1.txt\nfile2.txt\nfile4.txt", e.Execute("ls dir1").Output)
	assert.Equal(t, "dir1\ndir2", e.Execute("ls /").Output)
}

func TestMvUsage(t *testing.T) {
	e := newTestEngine()

	for _, line := range []string{"mv", "mv file4.txt", "mv a b c"} {
		res := e.Execute(line)
		require.False(t, res.Ok(), "line %q", line)
		assert.Equal(t, KindInvalidUsage, res.Err.Kind)
		assert.Equal(t, "Usage: mv <source> <destination>", res.Err.Message)
	}
}

func TestMvErrors(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name    string
		line    string
		kind    ErrorKind
		message string
	}{
		{
			"source missing",
			"mv nonexistent.txt dir1/file5.txt",
			KindNotFound,
			"nonexistent.txt not found.",
		},
		{
			"destination exists",
			"mv file4.txt dir1/file1.txt",
			KindAlreadyExists,
			"Destination dir1/file1.txt already exists.",
		},
		{
			"destination parent missing",
			"mv file4.txt missing/file4.txt",
			KindNotFound,
			"Destination parent not found: /missing.",
		},
		{
			"destination parent is a file",
			"mv dir2/file3.txt file4.txt/file3.txt",
			KindInvalidUsage,
			"Destination parent /file4.txt is not a directory.",
		},
		{
			"into own subtree",
			"mv dir1 dir1/sub",
			KindInvalidUsage,
			"Cannot move dir1 into its own subtree.",
		},
		{
			"root as source",
			"mv / dir1/root",
			KindInvalidUsage,
			"Cannot move the root directory.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.Execute(tt.line)
			require.False(t, res.Ok())
			assert.Equal(t, tt.kind, res.Err.Kind)
			assert.Equal(t, tt.message, res.Err.Message)
		})
	}

	// None of the failures touched the tree.
	assert.Equal(t, "dir1\ndir2\nfile4.txt", e.Execute("ls /").Output)
	assert.Equal(t, "file1.txt\nfile2.txt", e.Execute("ls dir1").Output)
}

func TestTree(t *testing.T) {
	e := newTestEngine()

	want := "" +
		"//\n" +
		"|  dir1/\n" +
		"|  |  file1.txt\n" +
		"|     file2.txt\n" +
		"|  dir2/\n" +
		"|     file3.txt\n" +
		"   file4.txt\n"
	res := e.Execute("tree")
	require.True(t, res.Ok())
	assert.Equal(t, want, res.Output)

	res = e.Execute("tree dir1")
	require.True(t, res.Ok())
	assert.Equal(t, "dir1/\n|  file1.txt\n   file2.txt\n", res.Output)

	res = e.Execute("tree missing")
	require.False(t, res.Ok())
	assert.Equal(t, "Directory not found: missing", res.Err.Message)
}

func TestFind(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name string
		line string
		want string
	}{
		{
			"top level only",
			"find *.txt",
			"/file4.txt",
		},
		{
			"recursive",
			"find **/*.txt",
			"/dir1/file1.txt\n/dir1/file2.txt\n/dir2/file3.txt\n/file4.txt",
		},
		{
			"under explicit base",
			"find * dir1",
			"/dir1/file1.txt\n/dir1/file2.txt",
		},
		{
			"no matches",
			"find *.md",
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.Execute(tt.line)
			require.True(t, res.Ok(), "unexpected error: %v", res.Err)
			assert.Equal(t, tt.want, res.Output)
		})
	}
}

func TestFindErrors(t *testing.T) {
	e := newTestEngine()

	res := e.Execute("find")
	require.False(t, res.Ok())
	assert.Equal(t, KindInvalidUsage, res.Err.Kind)

	res = e.Execute("find [")
	require.False(t, res.Ok())
	assert.Equal(t, "Invalid pattern: [", res.Err.Message)

	res = e.Execute("find * missing")
	require.False(t, res.Ok())
	assert.Equal(t, KindNotFound, res.Err.Kind)
}

func TestStat(t *testing.T) {
	e := newTestEngine()

	res := e.Execute("stat dir1")
	require.True(t, res.Ok())
	assert.Contains(t, res.Output, "Name: dir1")
	assert.Contains(t, res.Output, "Kind: directory")
	assert.Contains(t, res.Output, "Children: 2")

	res = e.Execute("stat file4.txt")
	require.True(t, res.Ok())
	assert.Contains(t, res.Output, "Kind: file")
	assert.Contains(t, res.Output, "Size: 16")

	res = e.Execute("stat missing")
	require.False(t, res.Ok())
	assert.Equal(t, "missing not found.", res.Err.Message)

	res = e.Execute("stat")
	require.False(t, res.Ok())
	assert.Equal(t, KindInvalidUsage, res.Err.Kind)
}

func TestHelp(t *testing.T) {
	e := newTestEngine()

	res := e.Execute("help")
	require.True(t, res.Ok())
	assert.Contains(t, res.Output, "mv <source> <destination>")
	assert.Contains(t, res.Output, "exit")
}

func TestExit(t *testing.T) {
	e := newTestEngine()

	res := e.Execute("exit")
	require.True(t, res.Ok())
	assert.True(t, res.Exit)
	assert.Empty(t, res.Output)
}

func TestUnknownCommand(t *testing.T) {
	e := newTestEngine()

	res := e.Execute("frobnicate now")
	require.False(t, res.Ok())
	assert.Equal(t, KindUnknownCommand, res.Err.Kind)
	assert.Equal(t, "Unknown command: frobnicate", res.Err.Message)
}

func TestBlankInput(t *testing.T) {
	e := newTestEngine()

	for _, line := range []string{"", "   ", "\t"} {
		res := e.Execute(line)
		require.True(t, res.Ok())
		assert.Empty(t, res.Output)
		assert.False(t, res.Exit)
	}
}

func TestResultText(t *testing.T) {
	e := newTestEngine()

	assert.Equal(t, "dir1\ndir2\nfile4.txt", e.Execute("ls").Text())
	assert.Equal(t, "Unknown command: bogus", e.Execute("bogus").Text())
}

func TestCommandName(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"ls dir1", "ls"},
		{"  mv a b  ", "mv"},
		{"exit", "exit"},
		{"frobnicate", "unknown"},
		{"", "none"},
		{"   ", "none"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CommandName(tt.line), "line %q", tt.line)
	}
}

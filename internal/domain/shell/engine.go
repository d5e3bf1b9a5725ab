package shell

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/arcshell/arcshell/internal/domain/vfs"
)

// Engine interprets command lines against one session's view of the
// archive tree.
//
// Each engine owns its root and current directory. A single mutex
// serializes callers, so an engine may be shared within a session;
// sessions stay isolated by holding separate engines over separate
// trees.
type Engine struct {
	mu   sync.Mutex
	root *vfs.Node
	cwd  string
}

// New creates an engine rooted at root with the current directory at /.
func New(root *vfs.Node) *Engine {
	return &Engine{root: root, cwd: "/"}
}

// Cwd returns the session's current directory.
func (e *Engine) Cwd() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cwd
}

// Prompt returns the interactive prompt for the current directory.
func (e *Engine) Prompt() string {
	return e.Cwd() + " > "
}

// Root returns the tree the engine operates on.
func (e *Engine) Root() *vfs.Node {
	return e.root
}

// Execute splits line on whitespace and dispatches the first token to
// its handler. Blank input is a no-op. Failures are carried in the
// Result, and a panicking handler is converted to an internal error at
// this boundary, so the command loop never terminates on a bad line.
func (e *Engine) Execute(line string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = failure(KindInternal, "Error: %v", r)
		}
	}()

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return success("")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	name, args := fields[0], fields[1:]
	switch name {
	case "ls":
		return e.ls(args)
	case "cd":
		return e.cd(args)
	case "pwd":
		return e.pwd(args)
	case "mv":
		return e.mv(args)
	case "tree":
		return e.tree(args)
	case "find":
		return e.find(args)
	case "stat":
		return e.stat(args)
	case "help":
		return e.help(args)
	case "exit":
		return e.exit(args)
	default:
		return failure(KindUnknownCommand, "Unknown command: %s", name)
	}
}

// commands lists every dispatchable name.
var commands = map[string]bool{
	"ls": true, "cd": true, "pwd": true, "mv": true, "tree": true,
	"find": true, "stat": true, "help": true, "exit": true,
}

// CommandName classifies a line's leading token so metric labels stay
// bounded: a known command name, "unknown", or "none" for blank input.
func CommandName(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "none"
	}
	if commands[fields[0]] {
		return fields[0]
	}
	return "unknown"
}

// ls lists the target's child names in lexical order, one per line.
// Without an argument it lists the current directory.
func (e *Engine) ls(args []string) Result {
	target := e.cwd
	if len(args) > 0 {
		target = args[0]
	}
	node, err := vfs.Resolve(e.root, target)
	if err != nil {
		return failure(KindNotFound, "Directory not found: %s", target)
	}
	return success(strings.Join(node.SortedNames(), "\n"))
}

// cd changes the current directory. No argument is a no-op, "/" resets
// to the root, ".." steps to the parent unless already at the root, and
// anything else is appended to the current directory and must resolve
// to a directory.
func (e *Engine) cd(args []string) Result {
	if len(args) == 0 {
		return success("")
	}
	target := args[0]
	switch target {
	case "/":
		e.cwd = "/"
		return success("")
	case "..":
		segments := vfs.SplitPath(e.cwd)
		if len(segments) > 0 {
			e.cwd = vfs.JoinPath(segments[:len(segments)-1])
		}
		return success("")
	}
	candidate := vfs.Canonical(e.cwd + "/" + target)
	node, err := vfs.Resolve(e.root, candidate)
	if err != nil || !node.IsDir() {
		return failure(KindNotFound, "Directory not found: %s", target)
	}
	e.cwd = candidate
	return success("")
}

func (e *Engine) pwd(_ []string) Result {
	return success(e.cwd)
}

// mv relocates or renames a node. Both paths resolve from the root and
// every check runs before anything is mutated, so a failed move leaves
// the tree as it was.
func (e *Engine) mv(args []string) Result {
	if len(args) != 2 {
		return failure(KindInvalidUsage, "Usage: mv <source> <destination>")
	}
	src, dst := args[0], args[1]
	if err := vfs.Move(e.root, src, dst); err != nil {
		return moveFailure(src, dst, err)
	}
	return success(fmt.Sprintf("%s moved to %s.", src, dst))
}

func moveFailure(src, dst string, err error) Result {
	var (
		notFound *vfs.NotFoundError
		exists   *vfs.ExistsError
		notDir   *vfs.NotDirError
		cycle    *vfs.CycleError
	)
	switch {
	case errors.Is(err, vfs.ErrMoveRoot):
		return failure(KindInvalidUsage, "Cannot move the root directory.")
	case errors.As(err, &exists):
		return failure(KindAlreadyExists, "Destination %s already exists.", dst)
	case errors.As(err, &cycle):
		return failure(KindInvalidUsage, "Cannot move %s into its own subtree.", src)
	case errors.As(err, &notDir):
		return failure(KindInvalidUsage, "Destination parent %s is not a directory.", notDir.Path)
	case errors.As(err, &notFound):
		if notFound.Path == src {
			return failure(KindNotFound, "%s not found.", src)
		}
		return failure(KindNotFound, "Destination parent not found: %s.", notFound.Path)
	}
	return failure(KindInternal, "Error: %v", err)
}

// tree renders the subtree at the target, defaulting to the current
// directory.
func (e *Engine) tree(args []string) Result {
	target := e.cwd
	if len(args) > 0 {
		target = args[0]
	}
	node, err := vfs.Resolve(e.root, target)
	if err != nil {
		return failure(KindNotFound, "Directory not found: %s", target)
	}
	return success(vfs.Render(node))
}

// find globs the subtree below an optional base path. Patterns support
// doublestar syntax, matched against paths relative to the base;
// results are absolute, sorted, one per line.
func (e *Engine) find(args []string) Result {
	if len(args) == 0 {
		return failure(KindInvalidUsage, "Usage: find <pattern> [path]")
	}
	pattern := args[0]
	if !doublestar.ValidatePattern(pattern) {
		return failure(KindInvalidUsage, "Invalid pattern: %s", pattern)
	}
	base := e.cwd
	if len(args) > 1 {
		base = args[1]
	}
	start, err := vfs.Resolve(e.root, base)
	if err != nil {
		return failure(KindNotFound, "Directory not found: %s", base)
	}

	basePath := vfs.Canonical(base)
	var matches []string
	start.Walk(func(relPath string, _ *vfs.Node) {
		ok, _ := doublestar.Match(pattern, relPath)
		if !ok {
			return
		}
		if basePath == "/" {
			matches = append(matches, "/"+relPath)
		} else {
			matches = append(matches, basePath+"/"+relPath)
		}
	})
	sort.Strings(matches)
	return success(strings.Join(matches, "\n"))
}

// stat shows one node's details.
func (e *Engine) stat(args []string) Result {
	if len(args) == 0 {
		return failure(KindInvalidUsage, "Usage: stat <path>")
	}
	target := args[0]
	node, err := vfs.Resolve(e.root, target)
	if err != nil {
		return failure(KindNotFound, "%s not found.", target)
	}

	kind := "file"
	if node.IsDir() {
		kind = "directory"
	}
	lines := []string{
		"Name: " + node.Name(),
		"Kind: " + kind,
	}
	if node.IsDir() {
		lines = append(lines, fmt.Sprintf("Children: %d", node.Len()))
	} else {
		lines = append(lines, fmt.Sprintf("Size: %d", node.Size()))
	}
	if !node.ModTime().IsZero() {
		lines = append(lines, "Modified: "+node.ModTime().Format(time.RFC3339))
	}
	return success(strings.Join(lines, "\n"))
}

func (e *Engine) help(_ []string) Result {
	return success(strings.Join([]string{
		"ls [path]                  List child names in lexical order",
		"cd [path]                  Change the current directory (.. and / supported)",
		"pwd                        Print the current directory",
		"mv <source> <destination>  Move or rename a node within the tree",
		"tree [path]                Draw the subtree, directories first",
		"find <pattern> [path]      List paths matching a glob pattern",
		"stat <path>                Show one node's details",
		"help                       Show this help",
		"exit                       End the session",
	}, "\n"))
}

func (e *Engine) exit(_ []string) Result {
	return Result{Exit: true}
}

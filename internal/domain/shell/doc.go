// Package shell interprets command lines against a virtual filesystem
// tree.
//
// An Engine owns one session's state: the tree root and the current
// directory. Dispatch is a fixed mapping from command name to handler;
// every line produces a Result carrying either the output text or a
// structured error, so a failing command never ends the loop. Only the
// exit command terminates a session, via the Result's Exit flag.
//
// Commands:
//   - ls [path], cd [path], pwd
//   - mv <source> <destination>
//   - tree [path], find <pattern> [path], stat <path>
//   - help, exit
//
// Path arguments resolve from the tree root; only cd composes its
// argument with the current directory.
package shell

package shell

import "fmt"

// ErrorKind classifies a failed command for callers that branch on the
// failure class rather than on message text.
type ErrorKind string

const (
	KindNotFound       ErrorKind = "not_found"
	KindAlreadyExists  ErrorKind = "already_exists"
	KindInvalidUsage   ErrorKind = "invalid_usage"
	KindUnknownCommand ErrorKind = "unknown_command"
	KindInternal       ErrorKind = "internal"
)

// CommandError is the structured outcome of a failed command. Message
// holds the exact text shown to the user.
type CommandError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *CommandError) Error() string { return e.Message }

// Result is the outcome of one dispatched command line.
type Result struct {
	Output string        `json:"output"`
	Exit   bool          `json:"exit,omitempty"`
	Err    *CommandError `json:"error,omitempty"`
}

// Ok reports whether the command succeeded.
func (r Result) Ok() bool { return r.Err == nil }

// Text returns what a presentation layer prints verbatim: the output on
// success, the error message on failure.
func (r Result) Text() string {
	if r.Err != nil {
		return r.Err.Message
	}
	return r.Output
}

// success helper
func success(output string) Result {
	return Result{Output: output}
}

// failure helper
func failure(kind ErrorKind, format string, args ...interface{}) Result {
	return Result{Err: &CommandError{Kind: kind, Message: fmt.Sprintf(format, args...)}}
}

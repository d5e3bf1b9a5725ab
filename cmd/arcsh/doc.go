// Package main is the arcsh terminal client.
//
// arcsh opens the archive named by a manifest file and runs an
// interactive shell over it on stdin/stdout: greeting, optional
// startup script, then a read-eval-print loop with the prompt
// "<cwd> > " until exit or end of input.
//
// Usage:
//
//	./arcsh -config arcshell.yaml
package main

// Package main is the entry point for the arcshell service.
//
// The service opens a read-only archive, snapshots its entries once,
// and serves interactive shell sessions over that snapshot.
//
// The server provides:
//   - REST API for session management and command execution
//   - WebSocket endpoint for interactive shells
//   - Prometheus metrics
//   - Rate limiting and CORS
//
// Configuration:
//   - Environment variables (12-factor)
//   - Archive manifest file (-config, YAML or TOML)
//   - CLI flags (override env vars)
//
// Usage:
//
//	# Serve the archive described by arcshell.yaml
//	./server -config arcshell.yaml
//
//	# Override the listen address
//	./server -config arcshell.yaml -host 127.0.0.1 -port 9000
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main

// Package http provides HTTP handlers for the arcshell REST API.
//
// This package implements all endpoints using the Gin framework:
//
//   - Banner and health: / and /health
//   - Sessions: POST /sessions, GET /sessions, GET /sessions/:id,
//     DELETE /sessions/:id
//   - Execution: POST /sessions/:id/exec with {"line": "..."}
//
// Responses are JSON. Command failures still return 200 with the error
// message and kind in the body, mirroring what an interactive shell
// would print; 404 is reserved for unknown sessions.
//
// Example Usage:
//
//	handlers := http.NewHandlers(sessions, source, len(entries), metrics)
//	router.GET("/health", handlers.Health)
//	router.POST("/sessions/:id/exec", handlers.Exec)
package http

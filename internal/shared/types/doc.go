// Package types provides shared data structures for the arcshell service.
//
// This package defines the wire types used across the API surface,
// ensuring the REST and WebSocket layers agree on shapes.
//
// Core Types:
//   - SessionInfo: One shell session as reported by the manager
//   - SessionStats: Aggregate session counters
//
// Request Types:
//   - CreateSessionRequest: Session creation
//   - ExecRequest, ExecResponse: Command execution
//   - WSMessage, WSResult: WebSocket communication
//
// Example Usage:
//
//	resp := types.ExecResponse{
//	    Output: result.Output,
//	    Cwd:    session.Cwd(),
//	    Prompt: session.Prompt(),
//	}
package types

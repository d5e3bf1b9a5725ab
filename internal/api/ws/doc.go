// Package ws provides the interactive WebSocket shell surface.
//
// Every connection opens a dedicated session over its own tree. Frames
// are JSON, encoded and decoded with sonic.
//
// Message Types (Client → Server):
//   - command: Run one shell line, e.g. {"type":"command","command":"ls dir1"}
//   - ping: Keep-alive ping
//
// Message Types (Server → Client):
//   - greeting: Sent on connect with the username banner and prompt
//   - result: One command's output, error, cwd and next prompt
//   - pong: Keep-alive reply
//   - error: Malformed frame or closed session
//
// The connection closes when the client disconnects or a command ends
// the session; the session is closed either way.
//
// Example Usage:
//
//	handler := ws.NewHandler(sessions, logger, metrics)
//	router.GET("/ws", handler.HandleConnection)
package ws

package types

// CreateSessionRequest opens a new shell session. Username overrides the
// manifest default when set.
type CreateSessionRequest struct {
	Username string `json:"username,omitempty"`
}

// ExecRequest represents a shell command execution request
type ExecRequest struct {
	Line string `json:"line" binding:"required"`
}

// ExecResponse carries the outcome of one command
type ExecResponse struct {
	Output    string `json:"output"`
	Error     string `json:"error,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
	Exit      bool   `json:"exit,omitempty"`
	Cwd       string `json:"cwd"`
	Prompt    string `json:"prompt"`
}

// WebSocket message types
const (
	WSTypeCommand  = "command"
	WSTypePing     = "ping"
	WSTypePong     = "pong"
	WSTypeGreeting = "greeting"
	WSTypeResult   = "result"
	WSTypeError    = "error"
)

// WSMessage represents a client WebSocket frame
type WSMessage struct {
	Type    string `json:"type"`
	Command string `json:"command,omitempty"`
}

// WSResult represents a server WebSocket frame
type WSResult struct {
	Type   string `json:"type"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
	Cwd    string `json:"cwd,omitempty"`
	Prompt string `json:"prompt,omitempty"`
	Exit   bool   `json:"exit,omitempty"`
}

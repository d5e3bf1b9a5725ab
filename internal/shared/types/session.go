package types

import "time"

// SessionState represents session lifecycle states
type SessionState string

const (
	SessionActive SessionState = "active"
	SessionClosed SessionState = "closed"
)

// SessionInfo describes one shell session
type SessionInfo struct {
	ID         string       `json:"id"`
	Username   string       `json:"username"`
	State      SessionState `json:"state"`
	Cwd        string       `json:"cwd"`
	Prompt     string       `json:"prompt"`
	CreatedAt  time.Time    `json:"created_at"`
	LastActive time.Time    `json:"last_active"`
	Commands   int64        `json:"commands"`
}

// SessionStats contains session manager statistics
type SessionStats struct {
	ActiveSessions int   `json:"active_sessions"`
	TotalOpened    int64 `json:"total_opened"`
	TotalExpired   int64 `json:"total_expired"`
}

package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/arcshell/arcshell/internal/domain/shell"
	"github.com/arcshell/arcshell/internal/shared/id"
	"github.com/arcshell/arcshell/internal/shared/types"
)

// Session is one live shell bound to its own tree. The engine carries
// its own lock; the session lock only guards activity bookkeeping.
type Session struct {
	ID       id.SessionID
	Username string

	engine    *shell.Engine
	createdAt time.Time

	mu         sync.Mutex
	state      types.SessionState
	lastActive time.Time
	commands   int64
}

// Execute runs one command line through the session's engine and
// refreshes the activity timestamp.
func (s *Session) Execute(line string) shell.Result {
	s.mu.Lock()
	s.lastActive = time.Now()
	s.commands++
	s.mu.Unlock()

	return s.engine.Execute(line)
}

// Cwd returns the session's current directory.
func (s *Session) Cwd() string {
	return s.engine.Cwd()
}

// Prompt returns the interactive prompt for the current directory.
func (s *Session) Prompt() string {
	return s.engine.Prompt()
}

// Greeting returns the banner shown when the session opens.
func (s *Session) Greeting() string {
	return fmt.Sprintf("Hello %s!", s.Username)
}

// Info reports the session for API listings.
func (s *Session) Info() types.SessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	return types.SessionInfo{
		ID:         s.ID.String(),
		Username:   s.Username,
		State:      s.state,
		Cwd:        s.engine.Cwd(),
		Prompt:     s.engine.Prompt(),
		CreatedAt:  s.createdAt,
		LastActive: s.lastActive,
		Commands:   s.commands,
	}
}

// idleFor reports how long the session has gone without a command.
func (s *Session) idleFor(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastActive)
}

func (s *Session) markClosed() {
	s.mu.Lock()
	s.state = types.SessionClosed
	s.mu.Unlock()
}

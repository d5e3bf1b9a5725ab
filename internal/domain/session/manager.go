package session

import (
	"errors"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/arcshell/arcshell/internal/domain/shell"
	"github.com/arcshell/arcshell/internal/domain/vfs"
	"github.com/arcshell/arcshell/internal/infrastructure/logging"
	"github.com/arcshell/arcshell/internal/infrastructure/monitoring"
	"github.com/arcshell/arcshell/internal/shared/id"
	"github.com/arcshell/arcshell/internal/shared/types"
)

var (
	// ErrNotFound reports an unknown or already closed session id.
	ErrNotFound = errors.New("session not found")

	// ErrLimitReached reports that MaxSessions sessions are already open.
	ErrLimitReached = errors.New("session limit reached")
)

// Options configures the manager.
type Options struct {
	// Username is the default identity for sessions created without one.
	Username string

	// IdleTimeout closes sessions with no activity for this long.
	// Zero disables the reaper.
	IdleTimeout time.Duration

	// ReapInterval is how often the reaper scans. Defaults to a minute.
	ReapInterval time.Duration

	// MaxSessions caps concurrently open sessions. Zero means unlimited.
	MaxSessions int
}

// Manager owns every live session. Each session gets a fresh tree built
// from the shared entry snapshot, so sessions never observe each
// other's moves.
type Manager struct {
	sessions sync.Map // id.SessionID -> *Session

	entries []vfs.Entry
	opts    Options

	logger  *logging.Logger
	metrics *monitoring.Metrics

	mu      sync.RWMutex
	active  int
	opened  int64
	expired int64

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewManager creates a session manager over an immutable entry
// snapshot and starts the idle reaper when a timeout is configured.
func NewManager(entries []vfs.Entry, opts Options, logger *logging.Logger, metrics *monitoring.Metrics) *Manager {
	if logger == nil {
		logger = logging.NewNop()
	}
	if metrics == nil {
		metrics = monitoring.NewMetrics()
	}
	if opts.Username == "" {
		opts.Username = "guest"
	}
	if opts.ReapInterval <= 0 {
		opts.ReapInterval = time.Minute
	}

	m := &Manager{
		entries: entries,
		opts:    opts,
		logger:  logger.Component("session"),
		metrics: metrics,
		stop:    make(chan struct{}),
	}

	if opts.IdleTimeout > 0 {
		m.wg.Add(1)
		go m.reapLoop()
	}

	return m
}

// Create opens a new session with its own tree. An empty username
// falls back to the manager default.
func (m *Manager) Create(username string) (*Session, error) {
	if username == "" {
		username = m.opts.Username
	}

	m.mu.Lock()
	if m.opts.MaxSessions > 0 && m.active >= m.opts.MaxSessions {
		m.mu.Unlock()
		return nil, ErrLimitReached
	}
	m.active++
	m.opened++
	active := m.active
	m.mu.Unlock()

	now := time.Now()
	s := &Session{
		ID:         id.NewSessionID(),
		Username:   username,
		engine:     shell.New(vfs.Build(m.entries)),
		createdAt:  now,
		state:      types.SessionActive,
		lastActive: now,
	}
	m.sessions.Store(s.ID, s)

	m.metrics.IncSessionsOpened()
	m.metrics.SetSessionsActive(active)
	m.logger.Info("session opened",
		zap.String("session_id", s.ID.String()),
		zap.String("username", username),
		zap.Int("active", active))

	return s, nil
}

// Get returns the session for id if it is still open.
func (m *Manager) Get(sid id.SessionID) (*Session, bool) {
	v, ok := m.sessions.Load(sid)
	if !ok {
		return nil, false
	}
	return v.(*Session), true
}

// Execute runs a command line inside a session, records its metrics,
// and closes the session when the command ends it.
func (m *Manager) Execute(sid id.SessionID, line string) (shell.Result, error) {
	s, ok := m.Get(sid)
	if !ok {
		return shell.Result{}, ErrNotFound
	}

	timer := monitoring.NewTimer(m.metrics, shell.CommandName(line))
	res := s.Execute(line)
	if res.Ok() {
		timer.Stop(monitoring.StatusOK)
	} else {
		timer.Stop(monitoring.StatusError)
	}

	if res.Exit {
		m.Close(sid)
	}

	return res, nil
}

// Close removes a session. Reports whether it was open.
func (m *Manager) Close(sid id.SessionID) bool {
	v, ok := m.sessions.LoadAndDelete(sid)
	if !ok {
		return false
	}
	s := v.(*Session)
	s.markClosed()

	m.mu.Lock()
	m.active--
	active := m.active
	m.mu.Unlock()

	m.metrics.SetSessionsActive(active)
	m.logger.Info("session closed", zap.String("session_id", s.ID.String()))

	return true
}

// List returns infos for all open sessions, oldest first. Session ids
// are ULID-based, so the lexical order is the creation order.
func (m *Manager) List() []types.SessionInfo {
	infos := make([]types.SessionInfo, 0)
	m.sessions.Range(func(_, value interface{}) bool {
		infos = append(infos, value.(*Session).Info())
		return true
	})
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Count returns the number of open sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active
}

// Stats returns session manager statistics.
func (m *Manager) Stats() types.SessionStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return types.SessionStats{
		ActiveSessions: m.active,
		TotalOpened:    m.opened,
		TotalExpired:   m.expired,
	}
}

// Shutdown stops the reaper and closes every remaining session.
func (m *Manager) Shutdown() {
	m.stopOnce.Do(func() { close(m.stop) })
	m.wg.Wait()

	m.sessions.Range(func(key, _ interface{}) bool {
		m.Close(key.(id.SessionID))
		return true
	})
}

func (m *Manager) reapLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.opts.ReapInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.reapIdle(time.Now())
		}
	}
}

// reapIdle closes every session idle past the timeout and returns how
// many it closed.
func (m *Manager) reapIdle(now time.Time) int {
	reaped := 0
	m.sessions.Range(func(_, value interface{}) bool {
		s := value.(*Session)
		if s.idleFor(now) <= m.opts.IdleTimeout {
			return true
		}
		if m.Close(s.ID) {
			reaped++
			m.mu.Lock()
			m.expired++
			m.mu.Unlock()
			m.metrics.IncSessionsExpired()
			m.logger.Info("session expired",
				zap.String("session_id", s.ID.String()),
				zap.Duration("idle", s.idleFor(now)))
		}
		return true
	})
	return reaped
}

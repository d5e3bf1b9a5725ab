package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arcshell/arcshell/internal/domain/session"
	"github.com/arcshell/arcshell/internal/infrastructure/archive"
	"github.com/arcshell/arcshell/internal/infrastructure/monitoring"
	"github.com/arcshell/arcshell/internal/shared/id"
	"github.com/arcshell/arcshell/internal/shared/types"
)

// Version is the service version reported by the banner endpoint.
const Version = "0.3.0"

// Handlers contains all HTTP handlers
type Handlers struct {
	sessions *session.Manager
	source   archive.Source
	entries  int
	metrics  *monitoring.Metrics
}

// NewHandlers creates a new handler set
func NewHandlers(sessions *session.Manager, source archive.Source, entries int, metrics *monitoring.Metrics) *Handlers {
	return &Handlers{
		sessions: sessions,
		source:   source,
		entries:  entries,
		metrics:  metrics,
	}
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "arcshell",
		"version": Version,
		"archive": gin.H{
			"format":  h.source.Format(),
			"entries": h.entries,
		},
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	snap := h.metrics.GetSnapshot()

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"sessions": h.sessions.Stats(),
		"archive": gin.H{
			"format":  h.source.Format(),
			"entries": h.entries,
		},
		"uptime_seconds": snap.UptimeSeconds,
	})
}

// CreateSession opens a new session over its own tree
func (h *Handlers) CreateSession(c *gin.Context) {
	var req types.CreateSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	s, err := h.sessions.Create(req.Username)
	if err != nil {
		if errors.Is(err, session.ErrLimitReached) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       s.ID.String(),
		"greeting": s.Greeting(),
		"cwd":      s.Cwd(),
		"prompt":   s.Prompt(),
	})
}

// ListSessions lists all open sessions
func (h *Handlers) ListSessions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sessions": h.sessions.List(),
		"stats":    h.sessions.Stats(),
	})
}

// GetSession returns one session's info
func (h *Handlers) GetSession(c *gin.Context) {
	sid := id.SessionID(c.Param("id"))

	s, ok := h.sessions.Get(sid)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	c.JSON(http.StatusOK, s.Info())
}

// CloseSession closes a session
func (h *Handlers) CloseSession(c *gin.Context) {
	sid := id.SessionID(c.Param("id"))

	if !h.sessions.Close(sid) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"closed": sid.String()})
}

// Exec runs one command line inside a session
func (h *Handlers) Exec(c *gin.Context) {
	sid := id.SessionID(c.Param("id"))

	s, ok := h.sessions.Get(sid)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	var req types.ExecRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.sessions.Execute(sid, req.Line)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	resp := types.ExecResponse{
		Output: res.Output,
		Exit:   res.Exit,
		Cwd:    s.Cwd(),
		Prompt: s.Prompt(),
	}
	if res.Err != nil {
		resp.Error = res.Err.Message
		resp.ErrorKind = string(res.Err.Kind)
	}

	c.JSON(http.StatusOK, resp)
}

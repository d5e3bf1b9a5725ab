package ws

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/arcshell/arcshell/internal/domain/session"
	"github.com/arcshell/arcshell/internal/infrastructure/logging"
	"github.com/arcshell/arcshell/internal/infrastructure/monitoring"
	"github.com/arcshell/arcshell/internal/shared/id"
	"github.com/arcshell/arcshell/internal/shared/types"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true // Origin policy is enforced at the CORS layer
	},
}

// Handler manages WebSocket connections. Every connection gets its own
// session, so concurrent clients never share a tree.
type Handler struct {
	sessions *session.Manager
	logger   *logging.Logger
	metrics  *monitoring.Metrics
}

// NewHandler creates a new WebSocket handler
func NewHandler(sessions *session.Manager, logger *logging.Logger, metrics *monitoring.Metrics) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	if metrics == nil {
		metrics = monitoring.NewMetrics()
	}
	return &Handler{
		sessions: sessions,
		logger:   logger.Component("ws"),
		metrics:  metrics,
	}
}

// HandleConnection upgrades the request, opens a session, and serves
// frames until the client leaves or the session exits.
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	connID := id.NewConnID()

	s, err := h.sessions.Create("")
	if err != nil {
		h.sendError(conn, err.Error())
		return
	}
	defer h.sessions.Close(s.ID)

	h.metrics.IncWSConnections()
	defer h.metrics.DecWSConnections()

	h.logger.Info("websocket connected",
		zap.String("conn_id", connID.String()),
		zap.String("session_id", s.ID.String()))
	defer h.logger.Info("websocket disconnected",
		zap.String("conn_id", connID.String()))

	h.send(conn, types.WSResult{
		Type:   types.WSTypeGreeting,
		Output: s.Greeting(),
		Cwd:    s.Cwd(),
		Prompt: s.Prompt(),
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn("websocket read error",
					zap.String("conn_id", connID.String()),
					zap.Error(err))
			}
			return
		}

		var msg types.WSMessage
		if err := sonic.Unmarshal(data, &msg); err != nil {
			h.sendError(conn, "malformed frame")
			continue
		}
		h.metrics.RecordWSMessage("in", inboundLabel(msg.Type))

		switch msg.Type {
		case types.WSTypeCommand:
			if done := h.handleCommand(conn, s, msg.Command); done {
				return
			}
		case types.WSTypePing:
			h.send(conn, types.WSResult{Type: types.WSTypePong})
		default:
			h.sendError(conn, "unknown message type")
		}
	}
}

// handleCommand runs one line through the session and reports whether
// the connection should end.
func (h *Handler) handleCommand(conn *websocket.Conn, s *session.Session, line string) bool {
	res, err := h.sessions.Execute(s.ID, line)
	if err != nil {
		h.sendError(conn, err.Error())
		return true
	}

	frame := types.WSResult{
		Type:   types.WSTypeResult,
		Output: res.Output,
		Cwd:    s.Cwd(),
		Prompt: s.Prompt(),
		Exit:   res.Exit,
	}
	if res.Err != nil {
		frame.Error = res.Err.Message
	}
	h.send(conn, frame)

	return res.Exit
}

func (h *Handler) send(conn *websocket.Conn, frame types.WSResult) error {
	payload, err := sonic.Marshal(frame)
	if err != nil {
		return err
	}
	h.metrics.RecordWSMessage("out", frame.Type)
	return conn.WriteMessage(websocket.TextMessage, payload)
}

func (h *Handler) sendError(conn *websocket.Conn, msg string) error {
	return h.send(conn, types.WSResult{
		Type:  types.WSTypeError,
		Error: msg,
	})
}

// inboundLabel keeps the message-type metric label bounded.
func inboundLabel(msgType string) string {
	switch msgType {
	case types.WSTypeCommand, types.WSTypePing:
		return msgType
	default:
		return "unknown"
	}
}

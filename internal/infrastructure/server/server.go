package server

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arcshell/arcshell/internal/api/http"
	"github.com/arcshell/arcshell/internal/api/middleware"
	"github.com/arcshell/arcshell/internal/api/ws"
	"github.com/arcshell/arcshell/internal/domain/session"
	"github.com/arcshell/arcshell/internal/infrastructure/archive"
	"github.com/arcshell/arcshell/internal/infrastructure/config"
	"github.com/arcshell/arcshell/internal/infrastructure/logging"
	"github.com/arcshell/arcshell/internal/infrastructure/monitoring"
)

// Server wraps the HTTP server and its dependencies
type Server struct {
	router   *gin.Engine
	http     *nethttp.Server
	source   archive.Source
	sessions *session.Manager
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
}

// NewServer opens the archive named by the manifest and wires the
// snapshot, session manager, and API surface together.
func NewServer(cfg *config.Config, manifest *config.Manifest) (*Server, error) {
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	logger.Info("initializing arcshell server",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port),
		zap.String("archive", manifest.Archive),
	)

	// Metrics first, everything else reports into them
	metrics := monitoring.NewMetrics()

	source, err := archive.Open(manifest.Archive)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	entries, err := source.Snapshot()
	if err != nil {
		source.Close()
		return nil, fmt.Errorf("read archive snapshot: %w", err)
	}
	metrics.SetArchiveEntries(len(entries))
	logger.Info("archive loaded",
		zap.String("format", source.Format()),
		zap.Int("entries", len(entries)),
	)

	sessions := session.NewManager(entries, session.Options{
		Username:     manifest.DisplayName(),
		IdleTimeout:  cfg.Session.IdleTimeout,
		ReapInterval: cfg.Session.ReapInterval,
		MaxSessions:  cfg.Session.MaxSessions,
	}, logger, metrics)

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORSWithOrigins(cfg.CORS.Origins))
	if cfg.RateLimit.Enabled {
		logger.Info("rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	// Create handlers
	handlers := http.NewHandlers(sessions, source, len(entries), metrics)
	wsHandler := ws.NewHandler(sessions, logger, metrics)

	// Register routes
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Session endpoints
	router.POST("/sessions", handlers.CreateSession)
	router.GET("/sessions", handlers.ListSessions)
	router.GET("/sessions/:id", handlers.GetSession)
	router.DELETE("/sessions/:id", handlers.CloseSession)
	router.POST("/sessions/:id/exec", handlers.Exec)

	// WebSocket
	router.GET("/ws", wsHandler.HandleConnection)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	logger.Info("server initialized")

	return &Server{
		router: router,
		http: &nethttp.Server{
			Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		source:   source,
		sessions: sessions,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server and blocks until the listener stops.
func (s *Server) Run() error {
	s.logger.Info("starting http server", zap.String("addr", s.http.Addr))

	if err := s.http.ListenAndServe(); err != nil && err != nethttp.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests, closes every session, and
// releases the archive handle.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")

	var firstErr error
	if err := s.http.Shutdown(ctx); err != nil {
		firstErr = err
	}

	s.sessions.Shutdown()

	if err := s.source.Close(); err != nil && firstErr == nil {
		firstErr = err
	}

	s.logger.Sync()
	return firstErr
}

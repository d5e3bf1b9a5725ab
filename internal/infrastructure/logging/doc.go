// Package logging provides structured logging using uber/zap.
//
// Two modes:
//   - Production: JSON output for machine parsing
//   - Development: colored console output for human readability
//
// Domain packages stay logger-free; infrastructure and api layers take
// a *Logger and attach structured fields. User-facing shell output is
// never routed through the logger.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("server starting", zap.String("port", "8090"))
//	ws := logger.Component("ws")
package logging

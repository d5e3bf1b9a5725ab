/*
Package monitoring provides Prometheus metrics collection.

# Overview

This package tracks HTTP requests, shell command executions, session
lifecycle, WebSocket traffic, and archive load for the arcshell service.
Each Metrics instance owns a private registry.

# Features

- HTTP request metrics (latency, throughput, size)
- Shell command metrics (per-command counters, latency)
- Session lifecycle metrics (active, opened, expired)
- WebSocket connection and message metrics
- Archive entry gauge and service uptime

# Usage

	// Create metrics collector
	metrics := monitoring.NewMetrics()

	// Add middleware to Gin router
	router.Use(monitoring.Middleware(metrics))

	// Record custom metrics
	metrics.SetSessionsActive(5)
	metrics.IncSessionsOpened()

	// Time a command execution
	timer := monitoring.NewTimer(metrics, "ls")
	// ... execute command ...
	timer.Stop(monitoring.StatusOK)

# Metrics Endpoint

Expose metrics via the collector's own registry:

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
*/
package monitoring

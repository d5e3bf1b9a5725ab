package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all service configuration.
type Config struct {
	Server    ServerConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	Session   SessionConfig
	CORS      CORSConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8090"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"50"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"100"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// SessionConfig holds shell session lifecycle configuration.
type SessionConfig struct {
	IdleTimeout  time.Duration `envconfig:"SESSION_IDLE_TIMEOUT" default:"30m"`
	ReapInterval time.Duration `envconfig:"SESSION_REAP_INTERVAL" default:"1m"`
	MaxSessions  int           `envconfig:"SESSION_MAX" default:"256"`
}

// CORSConfig holds cross-origin configuration.
type CORSConfig struct {
	Origins []string `envconfig:"CORS_ORIGINS" default:"*"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8090",
			Host: "0.0.0.0",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 50,
			Burst:             100,
			Enabled:           true,
		},
		Session: SessionConfig{
			IdleTimeout:  30 * time.Minute,
			ReapInterval: time.Minute,
			MaxSessions:  256,
		},
		CORS: CORSConfig{
			Origins: []string{"*"},
		},
	}
}

// Validate checks settings the service cannot run with.
func (c *Config) Validate() error {
	if c.Session.IdleTimeout <= 0 {
		return fmt.Errorf("config: session idle timeout must be positive")
	}
	if c.Session.MaxSessions <= 0 {
		return fmt.Errorf("config: session limit must be positive")
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("config: rate limit rps must be positive when enabled")
	}
	return nil
}

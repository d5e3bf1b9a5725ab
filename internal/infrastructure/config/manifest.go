package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Manifest describes the archive a shell serves and how to greet its
// user. It is the file the -config flag points at, parsed as YAML or
// TOML by extension.
type Manifest struct {
	Username      string `yaml:"username" toml:"username"`
	Archive       string `yaml:"archive" toml:"archive"`
	StartupScript string `yaml:"startup_script" toml:"startup_script"`
}

// LoadManifest reads and validates a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse manifest: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse manifest: %w", err)
		}
	default:
		return nil, fmt.Errorf("parse manifest: unsupported extension %q", filepath.Ext(path))
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the fields a shell cannot run without.
func (m *Manifest) Validate() error {
	if m.Archive == "" {
		return fmt.Errorf("manifest: archive path is required")
	}
	return nil
}

// DisplayName returns the username for greetings, with a fallback for
// manifests that leave it unset.
func (m *Manifest) DisplayName() string {
	if m.Username == "" {
		return "guest"
	}
	return m.Username
}

// Package config provides reading of minigrep configuration.
// Supports both global (~/.minigrep/config.yaml) and local (.minigrep/config.yaml).
// Reading: uses local if it exists, otherwise global.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidValue is returned when a config value is out of bounds.
var ErrInvalidValue = errors.New("invalid config value")

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.minigrep/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .minigrep/config.yaml
	ScopeLocal
)

// Limits holds size limit configuration options.
type Limits struct {
	MaxLineLength *int `yaml:"max_line_length,omitempty"`
}

// Log holds audit log configuration options.
type Log struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// DefaultMaxLineLength is applied when not configured.
const DefaultMaxLineLength = 10 * 1024 * 1024 // 10 MB

// Validation bounds for configuration values.
const (
	MinMaxLineLength = 1
	MaxMaxLineLength = 1024 * 1024 * 1024 // 1 GB
)

// Config contains configuration for minigrep.
type Config struct {
	Limits Limits `yaml:"limits,omitempty"`
	Log    Log    `yaml:"log,omitempty"`

	// path is the file this config was loaded from
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Limits.MaxLineLength != nil {
		v := *c.Limits.MaxLineLength
		if v < MinMaxLineLength || v > MaxMaxLineLength {
			return fmt.Errorf("%w: max_line_length must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxLineLength, MaxMaxLineLength, v)
		}
	}
	return nil
}

// MaxLineLength returns the maximum line length for scanning (defaults to 10 MB).
// Affects files with very long lines (minified JS, large JSON, base64 blobs).
func (c *Config) MaxLineLength() int {
	if c.Limits.MaxLineLength == nil {
		return DefaultMaxLineLength
	}
	return *c.Limits.MaxLineLength
}

// LogEnabled returns whether audit logging is enabled (defaults to true).
func (c *Config) LogEnabled() bool {
	if c.Log.Enabled == nil {
		return true
	}
	return *c.Log.Enabled
}

// LocalPath returns the path to the local (directory) config file.
func LocalPath() string {
	return filepath.Join(".minigrep", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.minigrep/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".minigrep", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

func pathForScope(scope Scope) string {
	if scope == ScopeLocal {
		return LocalPath()
	}
	return GlobalPath()
}

// Package config loads the optional .wrangler.yaml user config. The
// file supplies defaults for the rotate command; command-line flags
// always win over config values, and config values win over the
// built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the user config file looked up in the working directory
// and then in the home directory.
const FileName = ".wrangler.yaml"

// Config holds all wrangler configuration.
type Config struct {
	// DefaultPattern is the rotation pattern used when --pattern is
	// not given.
	DefaultPattern string `yaml:"default_pattern,omitempty"`

	// DefaultBasis is the rotation basis mode used when --basis is
	// not given.
	DefaultBasis string `yaml:"default_basis,omitempty"`

	// StandardVul forces standard vulnerability by board number.
	StandardVul bool `yaml:"standard_vul,omitempty"`

	// Logging configuration.
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is the minimum level: debug, info, warn, or error.
	Level string `yaml:"level,omitempty"`
}

// GetDefaultPattern returns the configured default pattern, falling
// back to the identity-covering four-direction pattern.
func (c *Config) GetDefaultPattern() string {
	if c.DefaultPattern != "" {
		return c.DefaultPattern
	}
	return "NESW"
}

// GetDefaultBasis returns the configured default basis mode name.
func (c *Config) GetDefaultBasis() string {
	if c.DefaultBasis != "" {
		return c.DefaultBasis
	}
	return "standard"
}

// GetLogging returns logging settings with defaults applied.
func (c *Config) GetLogging() LoggingConfig {
	cfg := c.Logging
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	return cfg
}

// Load reads the config file at path. A missing file is not an
// error; it yields an empty config so the built-in defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns the first config path that exists, preferring
// the working directory over the home directory. When neither exists
// it returns the working-directory path, which Load treats as empty
// config.
func DefaultPath() string {
	local := FileName
	if _, err := os.Stat(local); err == nil {
		return local
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return local
}

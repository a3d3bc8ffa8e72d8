// Package config holds csvfix settings: built-in defaults overlaid by an
// optional YAML file, then by explicitly set command-line flags.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultSkipLines is the number of boilerplate lines above the CSV header.
const DefaultSkipLines = 2

type Config struct {
	// SkipLines is discarded before the header row, unconditionally.
	SkipLines int  `yaml:"skip_lines"`
	Recurse   bool `yaml:"recurse"`
	Verbose   bool `yaml:"verbose"`
	// Locale overrides the environment (LC_ALL, LC_NUMERIC, LANG) when set.
	Locale    string `yaml:"locale"`
	LogFormat string `yaml:"log_format"`
	LogLevel  string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		SkipLines: DefaultSkipLines,
		LogFormat: "text",
		LogLevel:  "warn",
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.SkipLines < 0 {
		return fmt.Errorf("skip_lines must not be negative, got %d", c.SkipLines)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

// Level is the effective log level; verbose always means debug.
func (c Config) Level() string {
	if c.Verbose {
		return "debug"
	}
	return c.LogLevel
}

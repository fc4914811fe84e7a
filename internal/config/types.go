package config

import (
	"log/slog"

	"unwrapgen/internal/options"
)

// Config holds all tool configuration.
type Config struct {
	// Source is the front end: "document" (YAML) or "go".
	Source    string        `koanf:"source"`
	Format    string        `koanf:"format"`
	OutputDir string        `koanf:"output_dir"`
	Package   string        `koanf:"package"`
	Workers   int           `koanf:"workers"`
	LogLevel  string        `koanf:"log_level"`
	Verbose   bool          `koanf:"verbose"`
	Policy    PolicyConfig  `koanf:"policy"`
	Capture   CaptureConfig `koanf:"capture"`

	// File is the configuration file that was read, if any.
	File string `koanf:"-"`
}

// PolicyConfig mirrors options.Policy.
type PolicyConfig struct {
	FieldDerives bool `koanf:"field_derives"`
	AutoName     bool `koanf:"auto_name"`
}

// CaptureConfig configures the aggregation artifact.
type CaptureConfig struct {
	Enabled bool   `koanf:"enabled"`
	Dir     string `koanf:"dir"`
	File    string `koanf:"file"`
}

// OptionsPolicy returns the parser policy.
func (c *Config) OptionsPolicy() options.Policy {
	return options.Policy{
		FieldDerives: c.Policy.FieldDerives,
		AutoName:     c.Policy.AutoName,
	}
}

// SlogLevel returns the configured log level. Verbose forces debug.
func (c *Config) SlogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}

	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

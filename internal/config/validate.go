package config

import (
	"fmt"
	"slices"
)

var (
	sources   = []string{"document", "go"}
	formats   = []string{"yaml", "text", "go"}
	logLevels = []string{"debug", "info", "warn", "error"}
)

// Validate checks enumerated values and bounds.
func (c *Config) Validate() error {
	if !slices.Contains(sources, c.Source) {
		return fmt.Errorf("invalid source %q: expected one of %v", c.Source, sources)
	}

	if !slices.Contains(formats, c.Format) {
		return fmt.Errorf("invalid format %q: expected one of %v", c.Format, formats)
	}

	if !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("invalid log_level %q: expected one of %v", c.LogLevel, logLevels)
	}

	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}

	if c.Capture.Enabled && (c.Capture.Dir == "" || c.Capture.File == "") {
		return fmt.Errorf("capture requires capture.dir and capture.file")
	}

	return nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"unwrapgen/internal/capture"
)

// EnvPrefix prefixes environment variables read by Load.
const EnvPrefix = "UNWRAPGEN_"

// Default values.
const (
	DefaultSource    = "document"
	DefaultFormat    = "yaml"
	DefaultOutputDir = "generated"
	DefaultLogLevel  = "info"
)

// FileNames are the configuration files looked up in the working directory.
var FileNames = []string{"unwrapgen.yaml", "unwrapgen.yml"}

// flagKeys maps flags whose names differ from their configuration key.
var flagKeys = map[string]string{
	"field-derives": "policy.field_derives",
	"auto-name":     "policy.auto_name",
	"capture":       "capture.enabled",
	"capture-dir":   "capture.dir",
	"capture-file":  "capture.file",
}

func defaults() map[string]any {
	return map[string]any{
		"source":               DefaultSource,
		"format":               DefaultFormat,
		"output_dir":           DefaultOutputDir,
		"package":              "",
		"workers":              0,
		"log_level":            DefaultLogLevel,
		"verbose":              false,
		"policy.field_derives": false,
		"policy.auto_name":     false,
		"capture.enabled":      false,
		"capture.dir":          capture.DefaultDir,
		"capture.file":         capture.DefaultFile,
	}
}

// findConfigFile returns the explicit path, or the first default file
// present in dir.
func findConfigFile(explicit, dir string) string {
	if explicit != "" {
		return explicit
	}

	for _, name := range FileNames {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}

// Load reads the configuration. cfgFile may be empty to search the current
// directory; flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	return LoadFrom(".", cfgFile, flags)
}

// LoadFrom is Load with an explicit directory for the configuration file
// search.
func LoadFrom(dir, cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile, dir)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// UNWRAPGEN_OUTPUT_DIR -> output_dir, UNWRAPGEN_CAPTURE__DIR -> capture.dir
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}

			if key, ok := flagKeys[f.Name]; ok {
				return key, posflag.FlagVal(flags, f)
			}

			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

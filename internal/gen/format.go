package gen

import (
	"fmt"
	"strings"
)

// Format selects the rendering of generated declarations.
type Format int

const (
	FormatYAML Format = iota
	FormatText
	FormatGo
)

// String returns the configuration name of the format.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatText:
		return "text"
	case FormatGo:
		return "go"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a configuration name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "text", "txt":
		return FormatText, nil
	case "go", "golang":
		return FormatGo, nil
	default:
		return 0, fmt.Errorf("unknown output format %q (expected yaml, text or go)", s)
	}
}

// extension returns the file suffix for generated files.
func (f Format) extension() string {
	switch f {
	case FormatText:
		return ".txt"
	case FormatGo:
		return ".go"
	default:
		return ".yaml"
	}
}

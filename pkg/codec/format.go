package codec

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/alx/pkg/errors"
)

// Format is a serialization format for export and import payloads
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats in flag help order
var Formats = []Format{FormatJSON, FormatTOML, FormatYAML}

// ParseFormat parses a format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.Newf(errors.ErrUnsupportedFormat, "unsupported format: %s (expected json, toml or yaml)", s).
			WithDetail("format", s)
	}
}

// FormatFromPath infers the format from a file extension
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.Newf(errors.ErrUnsupportedFormat, "cannot infer format of %s, pass --format", path).
			WithDetail("path", path)
	}
	return ParseFormat(ext)
}

// Extension returns the canonical file extension, without the dot
func (f Format) Extension() string {
	return string(f)
}

package ui

import (
	"os"
	"strings"

	"github.com/arthur-debert/alx/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how command results are written
type Format int

const (
	FormatAuto     Format = iota // terminal on a color tty, text otherwise
	FormatTerminal               // tables, colors, markdown
	FormatText                   // tab separated, one record per line
	FormatJSON                   // one JSON document per result
)

var formatNames = [...]string{"auto", "term", "text", "json"}

// accepted --format spellings
var formatAliases = map[string]Format{
	"":         FormatAuto,
	"auto":     FormatAuto,
	"term":     FormatTerminal,
	"terminal": FormatTerminal,
	"text":     FormatText,
	"plain":    FormatText,
	"json":     FormatJSON,
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat maps a --format value to a Format, ignoring case and
// surrounding space
func ParseFormat(s string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput,
		"unknown output format: %s (expected %s)", s, strings.Join(formatNames[:], ", ")).
		WithDetail("format", s)
}

// DetectFormat returns FormatTerminal only when output is a tty that can
// show color and NO_COLOR is unset
func DetectFormat(output *os.File) Format {
	fd := output.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	switch {
	case os.Getenv("NO_COLOR") != "", !tty:
		return FormatText
	case termenv.NewOutput(output).ColorProfile() == termenv.Ascii:
		return FormatText
	}
	return FormatTerminal
}

// Resolve settles FormatAuto against output; noColor turns terminal
// output into text
func Resolve(format Format, output *os.File, noColor bool) Format {
	if format == FormatAuto {
		format = DetectFormat(output)
	}
	if format == FormatTerminal && noColor {
		format = FormatText
	}
	return format
}

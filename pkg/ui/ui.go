// Package ui renders command results as terminal, text or JSON output.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/alx/pkg/errors"
	"github.com/arthur-debert/alx/pkg/ui/json"
	"github.com/arthur-debert/alx/pkg/ui/terminal"
	"github.com/arthur-debert/alx/pkg/ui/text"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders a command result
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a confirmation line
	RenderMessage(msg string) error

	// RenderWarning renders a non-fatal notice
	RenderWarning(msg string) error
}

// NewRenderer creates a renderer for format. FormatAuto detects terminal
// capabilities when output is a file and falls back to text otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown output format: %v", format)
	}
}

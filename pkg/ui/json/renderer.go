// Package json writes every result, error and notice as an indented JSON
// document so scripts can consume alx output.
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/alx/pkg/commands"
	"github.com/arthur-debert/alx/pkg/errors"
)

type errorDoc struct {
	Error   string                 `json:"error"`
	Code    errors.ErrorCode       `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type messageDoc struct {
	Message string `json:"message,omitempty"`
	Warning string `json:"warning,omitempty"`
}

type Renderer struct {
	w   io.Writer
	enc *json.Encoder
}

func New(w io.Writer) *Renderer {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &Renderer{w: w, enc: enc}
}

// RenderResult encodes result. An export bound for stdout is already in
// its exchange format and is written as is.
func (r *Renderer) RenderResult(result interface{}) error {
	if export, ok := result.(*commands.ExportResult); ok && export.Path == "" {
		_, err := r.w.Write(export.Data)
		return err
	}
	return r.enc.Encode(result)
}

func (r *Renderer) RenderError(err error) error {
	return r.enc.Encode(errorDoc{
		Error:   err.Error(),
		Code:    errors.GetErrorCode(err),
		Details: errors.GetErrorDetails(err),
	})
}

func (r *Renderer) RenderMessage(msg string) error {
	return r.enc.Encode(messageDoc{Message: msg})
}

func (r *Renderer) RenderWarning(msg string) error {
	return r.enc.Encode(messageDoc{Warning: msg})
}

// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/arthur-debert/alx/pkg/commands"
	"github.com/arthur-debert/alx/pkg/types"
	"github.com/arthur-debert/alx/pkg/ui/view"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders a command result as plain text. Alias rows are tab
// separated so they survive cut and awk.
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *commands.ListResult:
		return r.renderList(v)
	case *commands.GroupsResult:
		for _, g := range v.Groups {
			if _, err := fmt.Fprintf(r.output, "%s\t%d\t%d\n", g.Name, g.Count, g.Disabled); err != nil {
				return err
			}
		}
		return nil
	case *commands.InfoResult:
		return r.renderInfo(v)
	case *commands.ExportResult:
		if v.Path == "" {
			_, err := r.output.Write(v.Data)
			return err
		}
		return r.RenderMessage(fmt.Sprintf("Exported %d alias(es) as %s to %s", v.Count, v.Format, v.Path))
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %s\n", err.Error())
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// RenderWarning renders a warning
func (r *Renderer) RenderWarning(msg string) error {
	_, err := fmt.Fprintf(r.output, "Warning: %s\n", msg)
	return err
}

func (r *Renderer) renderList(list *commands.ListResult) error {
	for _, a := range list.Aliases {
		if _, err := fmt.Fprintln(r.output, row(a)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderInfo(info *commands.InfoResult) error {
	w := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	for _, row := range view.InfoRows(info) {
		if _, err := fmt.Fprintf(w, "%s:\t%s\n", row.Label, row.Value); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if snippet := view.Snippet(info); snippet != "" {
		if _, err := fmt.Fprintf(r.output, "\nAdd this to %s to load your aliases:\n\n%s\n", info.RCFile, snippet); err != nil {
			return err
		}
	}
	return nil
}

func row(a types.Alias) string {
	state := "enabled"
	if a.Disabled {
		state = "disabled"
	}
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s", a.Name, a.EffectiveGroup(), state, a.Command, a.Description)
}

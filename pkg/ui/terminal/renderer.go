// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/alx/pkg/commands"
	"github.com/arthur-debert/alx/pkg/style"
	"github.com/arthur-debert/alx/pkg/types"
	"github.com/arthur-debert/alx/pkg/ui/view"
	"github.com/charmbracelet/glamour"
	"github.com/pterm/pterm"
)

// Renderer writes tables, colored messages and markdown
type Renderer struct {
	output io.Writer
	// Width wraps markdown output; 0 keeps glamour's default
	Width int
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderResult renders a command result with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *commands.ListResult:
		if v.Keyword != "" {
			return r.renderMatches(v)
		}
		return r.renderSections(v)
	case *commands.GroupsResult:
		return r.renderGroups(v)
	case *commands.InfoResult:
		return r.renderInfo(v)
	case *commands.ExportResult:
		if v.Path == "" {
			_, err := io.WriteString(r.output, string(v.Data))
			return err
		}
		return r.RenderMessage(fmt.Sprintf("Exported %d alias(es) as %s to %s", v.Count, v.Format, style.PathStyle.Render(v.Path)))
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error with its code
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, style.FormatError(err))
	return werr
}

// RenderMessage renders a success line
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, style.FormatSuccess(msg))
	return err
}

// RenderWarning renders a warning line
func (r *Renderer) RenderWarning(msg string) error {
	_, err := fmt.Fprintln(r.output, style.FormatWarning(msg))
	return err
}

func (r *Renderer) renderSections(list *commands.ListResult) error {
	if len(list.Aliases) == 0 {
		return r.empty(list)
	}

	for i, section := range view.Sections(list.Aliases) {
		if i > 0 {
			if _, err := fmt.Fprintln(r.output); err != nil {
				return err
			}
		}
		heading := fmt.Sprintf("%s %s", style.GroupStyle.Render(section.Group), style.MutedStyle.Render(fmt.Sprintf("(%d)", len(section.Aliases))))
		if _, err := fmt.Fprintln(r.output, heading); err != nil {
			return err
		}

		data := pterm.TableData{{"NAME", "COMMAND", "DESCRIPTION"}}
		for _, a := range section.Aliases {
			data = append(data, aliasRow(a, false))
		}
		if err := r.table(data); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderMatches(list *commands.ListResult) error {
	if len(list.Aliases) == 0 {
		return r.empty(list)
	}

	data := pterm.TableData{{"NAME", "GROUP", "COMMAND", "DESCRIPTION"}}
	for _, a := range list.Aliases {
		data = append(data, aliasRow(a, true))
	}
	return r.table(data)
}

func (r *Renderer) renderGroups(groups *commands.GroupsResult) error {
	if len(groups.Groups) == 0 {
		_, err := fmt.Fprintln(r.output, style.MutedStyle.Render("No groups yet. Add an alias with `alx add`."))
		return err
	}

	data := pterm.TableData{{"GROUP", "ALIASES", "DISABLED"}}
	for _, g := range groups.Groups {
		data = append(data, []string{style.GroupStyle.Render(g.Name), fmt.Sprint(g.Count), fmt.Sprint(g.Disabled)})
	}
	return r.table(data)
}

func (r *Renderer) renderInfo(info *commands.InfoResult) error {
	var md strings.Builder
	md.WriteString("# alx\n\n")
	md.WriteString("| | |\n|---|---|\n")
	for _, row := range view.InfoRows(info) {
		fmt.Fprintf(&md, "| %s | `%s` |\n", row.Label, strings.ReplaceAll(row.Value, "|", `\|`))
	}
	if snippet := view.Snippet(info); snippet != "" {
		fmt.Fprintf(&md, "\nAdd this to `%s` to load your aliases:\n\n```sh\n%s\n```\n", info.RCFile, snippet)
	}

	_, err := io.WriteString(r.output, r.markdown(md.String()))
	return err
}

// markdown renders content with glamour, falling back to the raw text
func (r *Renderer) markdown(content string) string {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

func (r *Renderer) table(data pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, out)
	return err
}

func (r *Renderer) empty(list *commands.ListResult) error {
	msg := "No aliases yet. Add one with `alx add <name> <command>`."
	switch {
	case list.Keyword != "":
		msg = fmt.Sprintf("No aliases match %q.", list.Keyword)
	case list.Group != "":
		msg = fmt.Sprintf("No aliases in group %q.", list.Group)
	case list.EnabledOnly:
		msg = "No enabled aliases."
	}
	_, err := fmt.Fprintln(r.output, style.MutedStyle.Render(msg))
	return err
}

func aliasRow(a types.Alias, withGroup bool) []string {
	name := style.NameStyle.Render(a.Name)
	command := style.CommandStyle.Render(a.Command)
	if a.Disabled {
		name = style.DisabledStyle.Render(a.Name + " (disabled)")
		command = style.DisabledStyle.Render(a.Command)
	}
	row := []string{name}
	if withGroup {
		row = append(row, style.GroupStyle.Render(a.EffectiveGroup()))
	}
	return append(row, command, style.MutedStyle.Render(a.Description))
}

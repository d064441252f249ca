package topics

import "github.com/charmbracelet/glamour"

// Renderer turns a topic body into what is printed. ext is the topic's
// file extension including the dot.
type Renderer interface {
	Render(content, ext string) string
}

// RenderFunc adapts a function to Renderer
type RenderFunc func(content, ext string) string

func (f RenderFunc) Render(content, ext string) string { return f(content, ext) }

// Plain prints topics verbatim
var Plain Renderer = RenderFunc(func(content, _ string) string { return content })

// Markdown renders .md topics through glamour with the terminal's style,
// wrapping at width when it is positive. Anything glamour cannot handle is
// printed verbatim.
func Markdown(width int) Renderer {
	return RenderFunc(func(content, ext string) string {
		if ext != ".md" {
			return content
		}
		opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
		if width > 0 {
			opts = append(opts, glamour.WithWordWrap(width))
		}
		tr, err := glamour.NewTermRenderer(opts...)
		if err != nil {
			return content
		}
		out, err := tr.Render(content)
		if err != nil {
			return content
		}
		return out
	})
}

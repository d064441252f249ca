package alx

import (
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// helpFuncs are the extra functions available to the usage template
var helpFuncs = template.FuncMap{
	"bold":  bold,
	"upper": strings.ToUpper,
	"boldUpper": func(s string) string {
		return bold(strings.ToUpper(s))
	},
}

// bold emphasizes s when help goes to an interactive stdout
func bold(s string) string {
	fd := os.Stdout.Fd()
	if os.Getenv("NO_COLOR") != "" || !(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

func initTemplateFormatting() {
	cobra.AddTemplateFuncs(helpFuncs)
}

// Package style holds the colors and text styles of terminal output
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles built from the active theme
var (
	TitleStyle   lipgloss.Style
	MutedStyle   lipgloss.Style
	PathStyle    lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	NameStyle     lipgloss.Style
	GroupStyle    lipgloss.Style
	CommandStyle  lipgloss.Style
	DisabledStyle lipgloss.Style
)

func init() {
	Apply(DefaultTheme)
}

// Apply rebuilds every style from t
func Apply(t Theme) {
	TitleStyle = lipgloss.NewStyle().Foreground(t.Heading).Bold(true)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
	PathStyle = lipgloss.NewStyle().Foreground(t.Path).Italic(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success).Bold(true)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(t.Warning).Bold(true)

	NameStyle = lipgloss.NewStyle().Foreground(t.Name).Bold(true)
	GroupStyle = lipgloss.NewStyle().Foreground(t.Group).Bold(true)
	CommandStyle = lipgloss.NewStyle().Foreground(t.Command)
	// Disabled aliases are listed but left out of the script
	DisabledStyle = lipgloss.NewStyle().Foreground(t.Muted).Strikethrough(true)
}

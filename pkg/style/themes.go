package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the palette terminal output is drawn with. Every color adapts
// to light and dark backgrounds.
type Theme struct {
	Heading lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
	Path    lipgloss.AdaptiveColor
	Success lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor

	// Alias table columns
	Name    lipgloss.AdaptiveColor
	Group   lipgloss.AdaptiveColor
	Command lipgloss.AdaptiveColor
}

// DefaultTheme is applied at startup
var DefaultTheme = Theme{
	Heading: lipgloss.AdaptiveColor{Light: "#1F2933", Dark: "#F5F7FA"},
	Muted:   lipgloss.AdaptiveColor{Light: "#7B8794", Dark: "#9AA5B1"},
	Path:    lipgloss.AdaptiveColor{Light: "#52606D", Dark: "#CBD2D9"},
	Success: lipgloss.AdaptiveColor{Light: "#1F9D55", Dark: "#51D88A"},
	Error:   lipgloss.AdaptiveColor{Light: "#CC1F1A", Dark: "#EF5753"},
	Warning: lipgloss.AdaptiveColor{Light: "#B7791F", Dark: "#F6E05E"},

	Name:    lipgloss.AdaptiveColor{Light: "#2B6CB0", Dark: "#63B3ED"},
	Group:   lipgloss.AdaptiveColor{Light: "#6B46C1", Dark: "#B794F4"},
	Command: lipgloss.AdaptiveColor{Light: "#2C7A7B", Dark: "#4FD1C5"},
}

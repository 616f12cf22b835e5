package components

import "github.com/charmbracelet/lipgloss"

// Common styles shared across UI components
var (
	// SeparatorStyle for status bar rules
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(SeparatorColor)

	// HelpStyle for help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(FgBorder).
			Padding(0, 1)

	// MutedStyle for secondary information
	MutedStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	// ActiveStyle for the pulse while the chain ticks
	ActiveStyle = lipgloss.NewStyle().
			Foreground(FgActive)

	// IdleStyle for the pulse while the chain rests
	IdleStyle = lipgloss.NewStyle().
			Foreground(FgIdle)
)

// AccentStyle returns a bold style in the theme accent color
func AccentStyle(accent string) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent))
}

package components

import "github.com/charmbracelet/lipgloss"

// Color palette for the UI with semantic naming
const (
	FgMuted  = lipgloss.Color("7") // Light gray - muted elements
	FgBorder = lipgloss.Color("8") // Gray - separators and help text

	FgActive = lipgloss.Color("10") // Green - chain is ticking
	FgIdle   = lipgloss.Color("8")  // Gray - chain is at rest
	FgError  = lipgloss.Color("9")  // Red - errors
)

// SeparatorColor is the adaptive color for status bar separators
var SeparatorColor = lipgloss.AdaptiveColor{Light: "#737373", Dark: "#a3a3a3"}

package cli

import (
	"github.com/charmbracelet/lipgloss"

	"centerball/internal/config"
)

// Headline - High-emphasis text for section headers
var (
	headlineLarge = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).MarginTop(1)
)

// Title - Medium-emphasis text for titles and subtitles
var (
	titleMedium = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
)

// Body - Main content text
var (
	bodyLarge  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	bodyMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
)

// Label - Small text for labels, captions, and supplementary content
var (
	labelLarge = lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E")).Italic(true).MarginTop(1)
)

// Semantic styles - mapped to Material typography scale
var (
	sectionHeader = headlineLarge.MarginBottom(1)
	helpText      = labelLarge

	commandName = titleMedium
	exampleCode = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA726"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF5350"))

	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	appVersionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD"))
	titleWrapper    = lipgloss.NewStyle().MarginTop(1).MarginBottom(1)
)

// RenderTitle renders the app title block with name, version, and description
func RenderTitle() string {
	title := titleWrapper.Render(
		appNameStyle.Render(config.AppName) + appVersionStyle.Render(" v"+config.Version),
	)
	description := bodyLarge.Render(config.AppDescription)

	return lipgloss.JoinVertical(lipgloss.Left, title, description)
}

// RenderUsage renders the full help page
func RenderUsage() string {
	usage := lipgloss.JoinVertical(
		lipgloss.Left,
		bodyMedium.Render("  "+commandName.Render("centerball [run]")+"                   Open the chain in the terminal"),
		bodyMedium.Render("  "+commandName.Render("centerball --no-ui --taps N")+"        Tap N times headless and print the frame"),
		bodyMedium.Render("  "+commandName.Render("centerball version")+"                 Show version"),
		bodyMedium.Render("  "+commandName.Render("centerball help")+"                    Show help"),
	)

	options := lipgloss.JoinVertical(
		lipgloss.Left,
		bodyMedium.Render("  "+commandName.Render("-n, --length <N>")+"                   Number of balls (default 5)"),
		bodyMedium.Render("  "+commandName.Render("--cadence <step|sweep>")+"             One leg per tap, or run to the end of the chain"),
		bodyMedium.Render("  "+commandName.Render("--renderer <tea|tcell>")+"             Terminal front end"),
		bodyMedium.Render("  "+commandName.Render("--interval <duration>")+"              Time between animation ticks"),
		bodyMedium.Render("  "+commandName.Render("--config <path>")+"                    Configuration file (default centerball.yaml)"),
	)

	examples := lipgloss.JoinVertical(
		lipgloss.Left,
		bodyMedium.Render("  "+exampleCode.Render("centerball -n 8 --cadence sweep")+"    Eight balls, each tap sweeps the chain"),
		bodyMedium.Render("  "+exampleCode.Render("centerball --renderer tcell")+"        Draw with tcell instead of Bubble Tea"),
		bodyMedium.Render("  "+exampleCode.Render("centerball --no-ui --taps 3")+"        Print the frame after three taps"),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		sectionHeader.Render("Usage:"),
		usage,
		sectionHeader.Render("Options:"),
		options,
		sectionHeader.Render("Examples:"),
		examples,
		helpText.Render("Keys: space, enter or click to tap, c cadence, r reset, q quit"),
	) + "\n"
}

// RenderError renders an error line for the terminal
func RenderError(err error) string {
	return errorStyle.Render("Error:") + " " + err.Error()
}

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"centerball/internal/config"
)

const statusEdge = 3

func rule(n int) string {
	return SeparatorStyle.Render(strings.Repeat("─", max(n, 0)))
}

// RenderStatus lays out "─── title ──…── info ───" across width, shortening the title before the info
func RenderStatus(width int, title, info string) string {
	room := width - lipgloss.Width(info) - StatusFixedChars - StatusSeparatorMin
	if room > 0 && lipgloss.Width(title) > room {
		title = ansi.Truncate(title, room, "…")
	}

	fill := max(width-lipgloss.Width(title)-lipgloss.Width(info)-StatusFixedChars, StatusSeparatorMin)

	return strings.Join([]string{rule(statusEdge), title, rule(fill), info, rule(statusEdge)}, " ")
}

// RenderHelp puts the key help on the left and the version on the right, dropping the version when it does not fit
func RenderHelp(width int, helpText string) string {
	help := HelpStyle.Render(helpText)
	version := MutedStyle.Render("v" + config.Version)

	gap := width - lipgloss.Width(help) - lipgloss.Width(version)
	if gap < 1 {
		return help
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, help, strings.Repeat(" ", gap), version)
}

package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"centerball/internal/config"
)

func Test_rule(t *testing.T) {
	assert.Equal(t, 5, lipgloss.Width(rule(5)))
	assert.Empty(t, strings.TrimSpace(rule(-1)))
}

func Test_RenderStatus(t *testing.T) {
	tests := []struct {
		name  string
		width int
		title string
		info  string
	}{
		{name: "fits", width: 60, title: "node 2 ↓", info: "cpu 0.1%"},
		{name: "narrow", width: 20, title: "node 2 ↓ cadence sweep", info: "cpu 0.1%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RenderStatus(tt.width, tt.title, tt.info)

			assert.Contains(t, result, tt.info)
			assert.Contains(t, result, "───")
		})
	}

	t.Run("fills the width", func(t *testing.T) {
		assert.Equal(t, 60, lipgloss.Width(RenderStatus(60, "node 2 ↓", "cpu 0.1%")))
	})

	t.Run("shortens a long title", func(t *testing.T) {
		result := RenderStatus(40, strings.Repeat("node ", 10), "cpu 0.1%")

		assert.Contains(t, result, "…")
		assert.Equal(t, 40, lipgloss.Width(result))
	})
}

func Test_RenderHelp(t *testing.T) {
	result := RenderHelp(80, "q quit")

	assert.Contains(t, result, "q quit")
	assert.Contains(t, result, config.Version)
	assert.Equal(t, 80, lipgloss.Width(result))

	assert.NotContains(t, RenderHelp(5, "q quit"), config.Version)
}

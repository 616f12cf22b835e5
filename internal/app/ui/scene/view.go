package scene

import (
	"fmt"

	"centerball/internal/app/render"
	"centerball/internal/app/ui/components"
)

// View renders the stage followed by the status bar
func (m Model) View() string {
	if !m.state.ready || m.state.quitting {
		return ""
	}

	return render.Frame(m.stage.Canvas()) + "\n" + m.renderStatus() + "\n" + m.renderHelp()
}

func (m Model) renderStatus() string {
	snap := m.stage.Snapshot()

	pulseStyle := components.IdleStyle
	if snap.Running {
		pulseStyle = components.ActiveStyle
	}

	title := fmt.Sprintf("%s %s %s",
		m.ui.pulse.Render(pulseStyle),
		components.AccentStyle(m.ui.accent).Render(fmt.Sprintf("node %d %s", snap.Cursor, arrow(snap.Direction))),
		components.MutedStyle.Render(snap.Cadence),
	)

	info := components.MutedStyle.Render(fmt.Sprintf("%s %s", formatCPU(m.state.appCPU), formatMEM(m.state.appMEM)))
	if m.state.lastEvent != "" {
		info = components.MutedStyle.Render(string(m.state.lastEvent)) + " " + info
	}

	return components.RenderStatus(m.width(), title, info)
}

func (m Model) renderHelp() string {
	return components.RenderHelp(m.width(), m.ui.help.View(m.ui.keys))
}

func (m Model) width() int {
	if m.ui.width == 0 {
		return components.DefaultStatusBarWidth
	}

	return m.ui.width
}

// arrow points toward the end the chain is traveling to
func arrow(direction int) string {
	if direction < 0 {
		return "↑"
	}

	return "↓"
}

// formatCPU formats a CPU percentage value
func formatCPU(cpu float64) string {
	return fmt.Sprintf("%.1f%%", cpu)
}

// formatMEM formats a memory value in MB or GB
func formatMEM(mem float64) string {
	if mem < components.MBToGB {
		return fmt.Sprintf("%.0fMB", mem)
	}

	return fmt.Sprintf("%.1fGB", mem/components.MBToGB)
}

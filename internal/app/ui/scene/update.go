package scene

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"centerball/internal/app/bus"
	"centerball/internal/app/monitor"
	"centerball/internal/app/ui/components"
)

// msgMsg wraps a bus message for tea messaging
type msgMsg bus.Message

// frameMsg signals the driver ticked and the stage should advance
type frameMsg struct{}

// tickMsg signals a UI tick for the status bar animation
type tickMsg time.Time

// statsUpdateMsg carries the latest process statistics
type statsUpdateMsg monitor.Stats

// channelClosedMsg signals the event channel has closed
type channelClosedMsg struct{}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.tap()
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = msg.Width
		m.state.ready = true

		m.stage.Resize(msg.Width, stageRows(msg.Height))

		return m, nil

	case frameMsg:
		m.stage.Tick()

		return m, waitForFrameCmd(m.stage.Ticks())

	case tickMsg:
		if m.stage.Running() {
			m.ui.pulse.Start()
		} else {
			m.ui.pulse.Stop()
		}

		m.ui.pulse.Update()

		return m, tickCmd()

	case statsUpdateMsg:
		m.state.appCPU = msg.CPU
		m.state.appMEM = msg.MEM

		return m, statsWorkerCmd(m.ctx, m.monitor)

	case msgMsg:
		return m.handleMessage(bus.Message(msg))

	case channelClosedMsg:
		m.log.Warn().Msg("Event channel closed, quitting")
		m.stage.Stop()

		return m, tea.Quit
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.ui.keys.ForceQuit), key.Matches(msg, m.ui.keys.Quit):
		m.state.quitting = true
		m.stage.Stop()

		return m, tea.Quit

	case key.Matches(msg, m.ui.keys.Tap):
		m.tap()

	case key.Matches(msg, m.ui.keys.Cadence):
		cadence := m.stage.ToggleCadence()
		m.log.Info().Msgf("Cadence switched to %s", cadence)

	case key.Matches(msg, m.ui.keys.Reset):
		m.stage.Reset()
	}

	return m, nil
}

func (m Model) tap() {
	if !m.stage.Tap() {
		m.log.Debug().Msg("Tap ignored, leg already in progress")
	}
}

// handleMessage reacts to bus events
func (m Model) handleMessage(msg bus.Message) (tea.Model, tea.Cmd) {
	m.state.lastEvent = msg.Type

	if msg.Type == bus.EventThemeReloaded {
		if data, ok := msg.Data.(bus.ThemeReloaded); ok {
			m.stage.ApplyTheme(data.Theme)
			m.ui.accent = data.Theme.Accent
			m.log.Info().Msgf("Theme reloaded from %s", data.Path)
		}
	}

	return m, waitForMsgCmd(m.msgChan)
}

func waitForFrameCmd(ticks <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ticks
		return frameMsg{}
	}
}

func waitForMsgCmd(msgChan <-chan bus.Message) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-msgChan
		if !ok {
			return channelClosedMsg{}
		}

		return msgMsg(msg)
	}
}

// tickCmd returns a command that sends a tick after the interval
func tickCmd() tea.Cmd {
	return tea.Tick(components.UITickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// statsWorkerCmd schedules a single stats collection and returns the result
func statsWorkerCmd(ctx context.Context, mon monitor.Monitor) tea.Cmd {
	return tea.Tick(components.StatsPollingInterval, func(time.Time) tea.Msg {
		callCtx, cancel := context.WithTimeout(ctx, components.StatsCallTimeout)
		defer cancel()

		stats, err := mon.Self(callCtx)
		if err != nil {
			return statsUpdateMsg{}
		}

		return statsUpdateMsg(stats)
	})
}

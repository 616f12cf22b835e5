package scene

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"centerball/internal/app/bus"
	"centerball/internal/app/monitor"
	"centerball/internal/app/stage"
	"centerball/internal/app/ui/components"
	"centerball/internal/config"
	"centerball/internal/config/logger"
)

// Model is the Bubble Tea model drawing the stage and its status bar
type Model struct {
	ctx     context.Context
	stage   stage.Stage
	monitor monitor.Monitor
	msgChan <-chan bus.Message

	state struct {
		ready     bool
		quitting  bool
		lastEvent bus.MessageType
		appCPU    float64
		appMEM    float64
	}

	ui struct {
		width  int
		height int
		keys   components.KeyMap
		help   help.Model
		pulse  *components.Pulse
		accent string
	}

	log logger.Logger
}

// NewModel creates a new stage UI model
func NewModel(ctx context.Context, st stage.Stage, b bus.Bus, mon monitor.Monitor, theme config.Theme, log logger.Logger) Model {
	log = log.WithComponent("UI")
	msgChan := b.Subscribe(ctx)

	log.Debug().Msg("Created model and subscribed to events")

	m := Model{
		ctx:     ctx,
		stage:   st,
		monitor: mon,
		msgChan: msgChan,
		log:     log,
	}

	m.ui.keys = components.DefaultKeyMap()
	m.ui.help = help.New()
	m.ui.pulse = components.NewPulse()
	m.ui.accent = theme.Accent

	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForFrameCmd(m.stage.Ticks()),
		waitForMsgCmd(m.msgChan),
		tickCmd(),
		statsWorkerCmd(m.ctx, m.monitor),
	)
}

// stageRows returns the terminal rows left for the stage below the status bar
func stageRows(height int) int {
	return max(height-components.StatusBarHeight, components.MinStageRows)
}

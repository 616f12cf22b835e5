package wire

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"centerball/internal/app/bus"
	"centerball/internal/app/monitor"
	"centerball/internal/app/stage"
	"centerball/internal/app/ui/scene"
	"centerball/internal/config"
	"centerball/internal/config/logger"
)

// UI creates a Bubble Tea program for the TUI
type UI func(ctx context.Context) (*tea.Program, error)

// Module provides the UI factory
var Module = fx.Options(
	fx.Provide(NewUI),
)

// UIParams contains dependencies for creating the UI factory
type UIParams struct {
	fx.In

	Config  *config.Config
	Stage   stage.Stage
	Bus     bus.Bus
	Monitor monitor.Monitor
	Logger  logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(params UIParams) UI {
	return func(ctx context.Context) (*tea.Program, error) {
		model := scene.NewModel(
			ctx,
			params.Stage,
			params.Bus,
			params.Monitor,
			params.Config.Theme,
			params.Logger,
		)

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
			tea.WithContext(ctx),
		)

		params.Logger.Debug().Msg("TUI: Program created via factory")

		return p, nil
	}
}

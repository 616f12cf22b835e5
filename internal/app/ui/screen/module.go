package screen

import (
	"go.uber.org/fx"

	"centerball/internal/app/bus"
	"centerball/internal/app/stage"
	"centerball/internal/config"
	"centerball/internal/config/logger"
)

// Module provides the tcell front end
var Module = fx.Options(
	fx.Provide(func(st stage.Stage, b bus.Bus, cfg *config.Config, log logger.Logger) Screen {
		return New(st, b, cfg.Theme, nil, log)
	}),
)

package driver

import (
	"go.uber.org/fx"

	"centerball/internal/config"
)

// Module provides the tick driver at the configured interval
var Module = fx.Options(
	fx.Provide(func(cfg *config.Config) Driver {
		return New(cfg.Animation.Interval)
	}),
)

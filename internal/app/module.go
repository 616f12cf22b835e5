package app

import (
	"go.uber.org/fx"

	"centerball/internal/app/bus"
	"centerball/internal/app/cli"
	"centerball/internal/app/driver"
	"centerball/internal/app/monitor"
	"centerball/internal/app/stage"
	"centerball/internal/app/ui"
	"centerball/internal/app/watcher"
	"centerball/internal/config/logger"
)

var Module = fx.Options(
	logger.Module,
	bus.Module,
	driver.Module,
	stage.Module,
	monitor.Module,
	watcher.Module,
	ui.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)

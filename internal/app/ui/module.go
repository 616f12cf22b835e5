package ui

import (
	"go.uber.org/fx"

	"centerball/internal/app/ui/screen"
	"centerball/internal/app/ui/wire"
)

// Module provides the fx dependency injection options for the ui package
var Module = fx.Options(
	wire.Module,
	screen.Module,
)

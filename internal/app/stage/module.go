package stage

import "go.uber.org/fx"

// Module provides the stage for dependency injection
var Module = fx.Options(
	fx.Provide(New),
)

package logger

import (
	"io"

	"go.uber.org/fx"

	"centerball/internal/config"
)

// Output is the writer used when no log file is configured, nil selects stdout
type Output struct {
	io.Writer
}

// Module provides the fx dependency injection options for the logger package
var Module = fx.Options(
	fx.Provide(func(cfg *config.Config, out Output) Logger {
		return NewLoggerWithOutput(cfg, out.Writer)
	}),
)

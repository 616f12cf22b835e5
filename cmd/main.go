package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"centerball/internal/app"
	"centerball/internal/app/cli"
	"centerball/internal/config"
	"centerball/internal/config/logger"
)

// main is the entry point for the application
func main() {
	os.Exit(runApp(os.Args[1:]))
}

// runApp parses the arguments, loads the configuration and runs the fx application
func runApp(args []string) int {
	opts, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		return 1
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		return 1
	}

	createApp(cfg, opts).Run()

	return 0
}

// loadConfig reads the configuration file and applies command-line overrides
func loadConfig(opts *cli.Options) (*config.Config, error) {
	if opts.Type != cli.CommandRun {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadFrom(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if err := opts.Apply(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, opts *cli.Options) *fx.App {
	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.Supply(cfg, opts),
		fx.Supply(logger.Output{Writer: logOutput(opts)}),
		fx.Supply(cli.Output{Writer: os.Stdout}),
		app.Module,
	)
}

// logOutput sends logs to stdout only for headless runs, a renderer owns the terminal otherwise
func logOutput(opts *cli.Options) io.Writer {
	if opts.Type == cli.CommandRun && opts.NoUI {
		return nil
	}

	return io.Discard
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}

		return fxevent.NopLogger
	}
}

//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/fx"

	"centerball/internal/app/stage"
	"centerball/internal/app/ui/screen"
	"centerball/internal/app/ui/wire"
	"centerball/internal/config"
	"centerball/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute(ctx context.Context) (int, error)
}

// Params contains the dependencies of the cli
type Params struct {
	fx.In

	Options *Options
	Config  *config.Config
	Stage   stage.Stage
	UI      wire.UI
	Screen  screen.Screen
	Output  Output
	Logger  logger.Logger
}

// Output is where help, version and headless frames are printed
type Output struct {
	io.Writer
}

// cli represents the command-line interface for the application
type cli struct {
	opts   *Options
	cfg    *config.Config
	stage  stage.Stage
	ui     wire.UI
	screen screen.Screen
	out    io.Writer
	log    logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(params Params) CLI {
	return &cli{
		opts:   params.Options,
		cfg:    params.Config,
		stage:  params.Stage,
		ui:     params.UI,
		screen: params.Screen,
		out:    params.Output.Writer,
		log:    params.Logger.WithComponent("CLI"),
	}
}

// Execute runs the parsed command and returns the process exit code
func (c *cli) Execute(ctx context.Context) (int, error) {
	switch c.opts.Type {
	case CommandHelp:
		c.log.Debug().Msg("Displaying help information")
		fmt.Fprint(c.out, RenderUsage())

		return 0, nil

	case CommandVersion:
		c.log.Debug().Msg("Displaying version information")
		fmt.Fprintln(c.out, RenderTitle())

		return 0, nil
	}

	for _, key := range c.cfg.Unknown {
		c.log.Warn().Msgf("Unknown config key '%s' ignored", key)
	}

	if err := c.run(ctx); err != nil {
		c.log.Error().Err(err).Msg("Run failed")
		fmt.Fprintln(c.out, RenderError(err))

		return 1, err
	}

	return 0, nil
}

func (c *cli) run(ctx context.Context) error {
	c.log.Info().Msgf("Starting chain of %d (cadence %s, renderer %s)", c.cfg.Chain.Length, c.cfg.Chain.Cadence, c.cfg.Renderer)

	if c.opts.NoUI {
		return c.runHeadless(ctx)
	}

	if c.cfg.Renderer == config.RendererTcell {
		return c.screen.Run(ctx)
	}

	program, err := c.ui(ctx)
	if err != nil {
		return err
	}

	_, err = program.Run()

	return err
}

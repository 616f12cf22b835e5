package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"centerball/internal/app/errors"
	"centerball/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandRun CommandType = iota
	CommandVersion
	CommandHelp
)

// DefaultTaps is the number of taps a headless run performs
const DefaultTaps = 1

// Options contains the parsed command-line arguments
type Options struct {
	Type       CommandType
	ConfigPath string
	Length     int
	Cadence    string
	Renderer   string
	Interval   time.Duration
	NoUI       bool
	Taps       int

	changed map[string]bool
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version bool
}

// Overridable flag names
const (
	flagLength   = "length"
	flagCadence  = "cadence"
	flagRenderer = "renderer"
	flagInterval = "interval"
)

// Parse parses command-line args and returns an Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{
		Type:       CommandRun,
		ConfigPath: config.ConfigFile,
		Taps:       DefaultTaps,
		changed:    make(map[string]bool),
	}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(
		buildRunCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.version {
		result.Type = CommandVersion
	}

	for _, name := range []string{flagLength, flagCadence, flagRenderer, flagInterval} {
		result.changed[name] = root.PersistentFlags().Changed(name)
	}

	if result.Taps < 0 {
		return nil, fmt.Errorf("%w (got %d)", errors.ErrInvalidTaps, result.Taps)
	}

	return result, nil
}

// Apply overrides cfg with the flags given on the command line and validates the result
func (o *Options) Apply(cfg *config.Config) error {
	if o.changed[flagLength] {
		cfg.Chain.Length = o.Length
	}

	if o.changed[flagCadence] {
		cfg.Chain.Cadence = strings.ToLower(o.Cadence)
	}

	if o.changed[flagRenderer] {
		cfg.Renderer = strings.ToLower(o.Renderer)
	}

	if o.changed[flagInterval] {
		cfg.Animation.Interval = o.Interval
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "A chain of balls falling through the center of the terminal",
		Long: `Centerball draws a chain of balls anchored on alternating edges of the terminal.
Each tap sends the next ball in the chain through the center and out the bottom,
and the traversal reverses direction at either end of the chain.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&result.ConfigPath, "config", config.ConfigFile, "Path to the configuration file")
	pf.IntVarP(&result.Length, flagLength, "n", config.DefaultChainLength, "Number of balls in the chain")
	pf.StringVar(&result.Cadence, flagCadence, config.CadenceStep, "Tap cadence: step or sweep")
	pf.StringVar(&result.Renderer, flagRenderer, config.RendererTea, "Renderer: tea or tcell")
	pf.DurationVar(&result.Interval, flagInterval, config.DefaultTickInterval, "Time between animation ticks")
	pf.BoolVar(&result.NoUI, "no-ui", false, "Run headless and print the final frame")
	pf.IntVar(&result.Taps, "taps", DefaultTaps, "Taps to perform when running headless")

	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildRunCommand creates the run subcommand
func buildRunCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:     "run",
		Aliases: []string{"r"},
		Short:   "Run the chain (default)",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
		},
	}
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}
}

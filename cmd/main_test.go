package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxevent"

	"centerball/internal/app/cli"
	"centerball/internal/config"
	"centerball/internal/config/logger"
)

func Test_LoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "centerball.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chain:\n  length: 4\n"), 0o644))

	tests := []struct {
		name           string
		args           []string
		expectedLength int
		expectError    bool
	}{
		{name: "file value", args: []string{"--config", path}, expectedLength: 4},
		{name: "flag overrides file", args: []string{"--config", path, "-n", "6"}, expectedLength: 6},
		{name: "missing file uses defaults", args: []string{"--config", filepath.Join(dir, "missing.yaml")}, expectedLength: config.DefaultChainLength},
		{name: "invalid override", args: []string{"--config", path, "-n", "0"}, expectError: true},
		{name: "version skips the file", args: []string{"version", "--config", filepath.Join(dir, "missing.yaml")}, expectedLength: config.DefaultChainLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := cli.Parse(tt.args)
			require.NoError(t, err)

			cfg, err := loadConfig(opts)

			if tt.expectError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedLength, cfg.Chain.Length)
		})
	}
}

func Test_RunApp_ParseError(t *testing.T) {
	assert.Equal(t, 1, runApp([]string{"--frobnicate"}))
}

func Test_CreateApp(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "tea renderer", args: []string{}},
		{name: "headless", args: []string{"--no-ui"}},
		{name: "version", args: []string{"version"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := cli.Parse(tt.args)
			require.NoError(t, err)

			cfg := config.DefaultConfig()
			cfg.Watch.Enabled = false

			application := createApp(cfg, opts)

			assert.NotNil(t, application)
			assert.NoError(t, application.Err())
		})
	}
}

func Test_LogOutput(t *testing.T) {
	tests := []struct {
		name     string
		opts     *cli.Options
		expected io.Writer
	}{
		{name: "renderer discards", opts: &cli.Options{Type: cli.CommandRun}, expected: io.Discard},
		{name: "headless uses stdout", opts: &cli.Options{Type: cli.CommandRun, NoUI: true}, expected: nil},
		{name: "help discards", opts: &cli.Options{Type: cli.CommandHelp, NoUI: true}, expected: io.Discard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, logOutput(tt.opts))
		})
	}
}

func Test_CreateFxLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		isConsole bool
	}{
		{name: "debug level uses console logger", level: logger.DebugLevel, isConsole: true},
		{name: "info level uses nop logger", level: logger.InfoLevel, isConsole: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Logging.Level = tt.level

			fxLogger := createFxLogger(cfg)()

			if tt.isConsole {
				assert.IsType(t, &fxevent.ConsoleLogger{}, fxLogger)
			} else {
				assert.Equal(t, fxevent.NopLogger, fxLogger)
			}
		})
	}
}

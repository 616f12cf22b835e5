package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"centerball/internal/config"
)

func Test_NewLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		format   string
		expected zerolog.Level
	}{
		{name: "Default", level: InfoLevel, format: ConsoleFormat, expected: zerolog.InfoLevel},
		{name: "Debug level", level: DebugLevel, format: ConsoleFormat, expected: zerolog.DebugLevel},
		{name: "Warn level and json format", level: WarnLevel, format: JSONFormat, expected: zerolog.WarnLevel},
		{name: "Empty level and format (defaults)", level: "", format: "", expected: zerolog.InfoLevel},
		{name: "Trace level", level: TraceLevel, format: ConsoleFormat, expected: zerolog.TraceLevel},
		{name: "Unknown format (defaults to console)", level: ErrorLevel, format: "unknown", expected: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Logging.Level = tt.level
			cfg.Logging.Format = tt.format

			logger := NewLogger(cfg)
			assert.NotNil(t, logger)

			appLogger, ok := logger.(*AppLogger)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, appLogger.log.GetLevel())
		})
	}
}

func Test_NewLogger_FillsEmptySettings(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Level = ""
	cfg.Logging.Format = ""

	NewLogger(cfg)

	assert.Equal(t, InfoLevel, cfg.Logging.Level)
	assert.Equal(t, ConsoleFormat, cfg.Logging.Format)
}

func Test_NewLoggerWithOutput_CustomWriter(t *testing.T) {
	var buf bytes.Buffer

	cfg := config.DefaultConfig()
	cfg.Logging.Format = JSONFormat

	logger := NewLoggerWithOutput(cfg, &buf)
	logger.WithComponent("STAGE").Info().Int("cursor", 2).Msg("leg complete")

	assert.Contains(t, buf.String(), `"component":"STAGE"`)
	assert.Contains(t, buf.String(), `"cursor":2`)
	assert.Contains(t, buf.String(), `"version":"`+config.Version+`"`)
	assert.Contains(t, buf.String(), `"app":"`+config.AppName+`"`)
}

func Test_NewLoggerWithOutput_LevelFilters(t *testing.T) {
	var buf bytes.Buffer

	cfg := config.DefaultConfig()
	cfg.Logging.Level = WarnLevel
	cfg.Logging.Format = JSONFormat

	logger := NewLoggerWithOutput(cfg, &buf)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func Test_NewLoggerWithOutput_FileTakesPrecedence(t *testing.T) {
	var buf bytes.Buffer

	path := filepath.Join(t.TempDir(), "centerball.log")

	cfg := config.DefaultConfig()
	cfg.Logging.File = path
	cfg.Logging.Format = JSONFormat

	logger := NewLoggerWithOutput(cfg, &buf)
	logger.Error().Err(errors.New("boom")).Msg("written to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
	assert.Empty(t, buf.String())
}

func Test_parseLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{name: "Debug", level: DebugLevel, expected: zerolog.DebugLevel},
		{name: "Info", level: InfoLevel, expected: zerolog.InfoLevel},
		{name: "Warn", level: WarnLevel, expected: zerolog.WarnLevel},
		{name: "Error", level: ErrorLevel, expected: zerolog.ErrorLevel},
		{name: "Trace", level: TraceLevel, expected: zerolog.TraceLevel},
		{name: "Disabled", level: "disabled", expected: zerolog.Disabled},
		{name: "Empty", level: "", expected: zerolog.InfoLevel},
		{name: "Unknown", level: "unknown", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.level))
		})
	}
}

func Test_consoleWriter_ShowsComponent(t *testing.T) {
	var buf bytes.Buffer

	log := zerolog.New(consoleWriter(&buf, true)).With().Str("app", config.AppName).Logger()
	logger := &AppLogger{log: log}
	logger.WithComponent("WATCHER").Warn().Msg("ignoring change")

	assert.Contains(t, buf.String(), "[WATCHER]")
	assert.Contains(t, buf.String(), "ignoring change")
	assert.NotContains(t, buf.String(), "app=")
}

func Test_Module(t *testing.T) {
	assert.NotNil(t, Module)
}

func Test_zerologEvent(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLoggerWithOutput(config.DefaultConfig(), &buf)

	event := logger.Info()
	assert.NotNil(t, event.Str("key", "value"))
	assert.NotNil(t, event.Dur("interval", 50*time.Millisecond))
	event.Msg("test message")

	assert.Contains(t, buf.String(), "test message")
}

//go:generate mockgen -source=logger.go -destination=logger_mock.go -package=logger
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"centerball/internal/config"
)

// Level and format names accepted in the logging section
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
	TraceLevel = "trace"

	ConsoleFormat = "console"
	JSONFormat    = "json"

	TimeFormat = "15:04:05.000"

	componentField = "component"
)

// Logger is the logging surface every component receives
type Logger interface {
	Debug() *zerolog.Event
	Info() *zerolog.Event
	Warn() *zerolog.Event
	Error() *zerolog.Event
	WithComponent(name string) Logger
}

// AppLogger is the zerolog backed Logger
type AppLogger struct {
	log zerolog.Logger
}

// NewLogger creates a logger writing to stdout or the configured file
func NewLogger(cfg *config.Config) Logger {
	return NewLoggerWithOutput(cfg, nil)
}

// NewLoggerWithOutput creates a logger writing to out, a configured log file wins over out
func NewLoggerWithOutput(cfg *config.Config, out io.Writer) Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = InfoLevel
	}

	if cfg.Logging.Format == "" {
		cfg.Logging.Format = ConsoleFormat
	}

	log := zerolog.New(destination(cfg, out)).
		Level(parseLevel(cfg.Logging.Level)).
		With().
		Timestamp().
		Str("app", config.AppName).
		Str("version", config.Version).
		Logger()

	return &AppLogger{log: log}
}

func destination(cfg *config.Config, out io.Writer) io.Writer {
	json := cfg.Logging.Format == JSONFormat

	if cfg.Logging.File != "" {
		file, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			if json {
				return file
			}

			return consoleWriter(file, true)
		}
	}

	switch {
	case out != nil:
		return out
	case json:
		return os.Stdout
	default:
		return consoleWriter(os.Stdout, false)
	}
}

func (l *AppLogger) Debug() *zerolog.Event {
	return l.log.Debug()
}

func (l *AppLogger) Info() *zerolog.Event {
	return l.log.Info()
}

func (l *AppLogger) Warn() *zerolog.Event {
	return l.log.Warn()
}

func (l *AppLogger) Error() *zerolog.Event {
	return l.log.Error()
}

// WithComponent tags every event with the component name, shown as [NAME] on the console
func (l *AppLogger) WithComponent(name string) Logger {
	return &AppLogger{log: l.log.With().Str(componentField, name).Logger()}
}

func consoleWriter(out io.Writer, noColor bool) zerolog.ConsoleWriter {
	w := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = out
		w.NoColor = noColor
		w.TimeFormat = TimeFormat
		w.FieldsExclude = []string{"app", "version", componentField}
		w.PartsOrder = []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			componentField,
			zerolog.MessageFieldName,
		}
	})

	w.FormatPrepare = func(fields map[string]any) error {
		if name, ok := fields[componentField].(string); ok {
			fields[componentField] = fmt.Sprintf("[%s]", name)
		}

		return nil
	}

	return w
}

// parseLevel falls back to info for unknown or empty names
func parseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return level
}

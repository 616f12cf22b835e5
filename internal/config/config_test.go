package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"centerball/internal/app/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultChainLength, cfg.Chain.Length)
	assert.Equal(t, CadenceStep, cfg.Chain.Cadence)
	assert.Equal(t, 50*time.Millisecond, cfg.Animation.Interval)
	assert.Equal(t, DefaultBackground, cfg.Theme.Background)
	assert.Equal(t, DefaultBall, cfg.Theme.Ball)
	assert.Equal(t, RendererTea, cfg.Renderer)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
	assert.True(t, cfg.Watch.Enabled)
	assert.Equal(t, 1, cfg.Version)
	assert.NoError(t, cfg.Validate())
}

func Test_Load(t *testing.T) {
	tests := []struct {
		name    string
		content string
		err     error
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid config file",
			content: `version: 1
chain:
  length: 7
  cadence: Sweep
animation:
  interval: 20ms
theme:
  background: "#000000"
  ball: "#FF0000"
logging:
  level: debug
  format: json
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 7, cfg.Chain.Length)
				assert.Equal(t, CadenceSweep, cfg.Chain.Cadence)
				assert.Equal(t, 20*time.Millisecond, cfg.Animation.Interval)
				assert.Equal(t, "#000000", cfg.Theme.Background)
				assert.Equal(t, "#FF0000", cfg.Theme.Ball)
				assert.Equal(t, DefaultAccent, cfg.Theme.Accent)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.Empty(t, cfg.Unknown)
			},
		},
		{
			name:    "unknown keys are reported",
			content: "chain:\n  length: 3\nservices: {}\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 3, cfg.Chain.Length)
				assert.Equal(t, []string{"services"}, cfg.Unknown)
			},
		},
		{
			name:    "document root is not a mapping",
			content: "- just\n- a list\n",
			err:     errors.ErrFailedToParseConfig,
		},
		{
			name:    "zero length chain",
			content: "chain:\n  length: 0\n",
			err:     errors.ErrInvalidChainLength,
		},
		{
			name:    "unknown cadence",
			content: "chain:\n  cadence: bounce\n",
			err:     errors.ErrInvalidCadence,
		},
		{
			name:    "unknown renderer",
			content: "renderer: sdl\n",
			err:     errors.ErrInvalidRenderer,
		},
		{
			name:    "bad color",
			content: "theme:\n  ball: green\n",
			err:     errors.ErrInvalidColor,
		},
		{
			name:    "non positive interval",
			content: "animation:\n  interval: 0s\n",
			err:     errors.ErrInvalidTickInterval,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			cfg, err := LoadFrom(path)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, cfg)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, path, cfg.Path)
			tt.check(t, cfg)
		})
	}
}

func Test_Load_NoFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()

	require.NoError(t, err)
	assert.Empty(t, cfg.Path)
	assert.Equal(t, DefaultChainLength, cfg.Chain.Length)
}

func Test_Load_InvalidConfigWrapsKind(t *testing.T) {
	path := writeConfig(t, "chain:\n  length: -2\n")

	_, err := LoadFrom(path)

	assert.ErrorIs(t, err, errors.ErrInvalidConfig)
	assert.ErrorIs(t, err, errors.ErrInvalidChainLength)
}

func Test_Load_KeepsCause(t *testing.T) {
	t.Run("yaml syntax error", func(t *testing.T) {
		path := writeConfig(t, "chain:\n  length: 3\n bad: [\n")

		_, err := LoadFrom(path)

		assert.ErrorIs(t, err, errors.ErrFailedToParseConfig)
		assert.Contains(t, err.Error(), "line")
	})

	t.Run("path is a directory", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		_, err := LoadFrom(dir)

		assert.ErrorIs(t, err, errors.ErrFailedToReadConfig)
		assert.Contains(t, err.Error(), dir)
	})
}

func Test_Load_EnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, "chain:\n  length: 4\n")
	t.Setenv("CENTERBALL_CHAIN_LENGTH", "9")
	t.Setenv("CENTERBALL_RENDERER", "tcell")

	cfg, err := LoadFrom(path)

	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Chain.Length)
	assert.Equal(t, RendererTcell, cfg.Renderer)
}

func Test_Load_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("CENTERBALL_CHAIN_CADENCE", "")
	require.NoError(t, os.Unsetenv("CENTERBALL_CHAIN_CADENCE"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, EnvFile), []byte("CENTERBALL_CHAIN_CADENCE=sweep\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("CENTERBALL_CHAIN_CADENCE") })

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, CadenceSweep, cfg.Chain.Cadence)
}

func Test_Theme_Validate(t *testing.T) {
	tests := []struct {
		name  string
		theme Theme
		valid bool
	}{
		{"default", DefaultTheme(), true},
		{"lowercase hex", Theme{Background: "#abcdef", Ball: "#012345", Accent: "#ffffff"}, true},
		{"short hex", Theme{Background: "#fff", Ball: DefaultBall, Accent: DefaultAccent}, false},
		{"named color", Theme{Background: DefaultBackground, Ball: "green", Accent: DefaultAccent}, false},
		{"empty", Theme{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.theme.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, errors.ErrInvalidColor)
			}
		})
	}
}

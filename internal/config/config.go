package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"centerball/internal/app/errors"
)

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config represents the application configuration
type Config struct {
	Chain struct {
		Length  int    `yaml:"length"`
		Cadence string `yaml:"cadence"`
	}
	Animation struct {
		Interval time.Duration `yaml:"interval"`
	}
	Theme    Theme  `yaml:"theme"`
	Renderer string `yaml:"renderer"`
	Headless struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	}
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		File   string `yaml:"file"`
	}
	Watch struct {
		Enabled  bool          `yaml:"enabled"`
		Include  []string      `yaml:"include"`
		Debounce time.Duration `yaml:"debounce"`
	}
	Version int

	// Path is the file the configuration was read from, empty when defaults are used
	Path string `yaml:"-" mapstructure:"-"`
	// Unknown lists top-level keys in the file that no setting consumes
	Unknown []string `yaml:"-" mapstructure:"-"`
}

// Theme holds the colors used when rendering the stage
type Theme struct {
	Background string `yaml:"background"`
	Ball       string `yaml:"ball"`
	Accent     string `yaml:"accent"`
}

// knownKeys are the top-level keys understood by the loader
var knownKeys = map[string]bool{
	"chain":     true,
	"animation": true,
	"theme":     true,
	"renderer":  true,
	"headless":  true,
	"logging":   true,
	"watch":     true,
	"version":   true,
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{Version: 1}

	cfg.Chain.Length = DefaultChainLength
	cfg.Chain.Cadence = CadenceStep

	cfg.Animation.Interval = DefaultTickInterval

	cfg.Theme = DefaultTheme()
	cfg.Renderer = RendererTea

	cfg.Headless.Width = DefaultHeadlessWidth
	cfg.Headless.Height = DefaultHeadlessHeight

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	cfg.Watch.Enabled = true
	cfg.Watch.Include = []string{ConfigFile, EnvFile}
	cfg.Watch.Debounce = DefaultWatchDebounce

	return cfg
}

// DefaultTheme returns the default color theme
func DefaultTheme() Theme {
	return Theme{
		Background: DefaultBackground,
		Ball:       DefaultBall,
		Accent:     DefaultAccent,
	}
}

// Load loads the configuration from centerball.yaml in the working directory
func Load() (*Config, error) {
	return LoadFrom(ConfigFile)
}

// LoadFrom loads the configuration from the given file, applying .env and environment overrides
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := godotenv.Load(EnvFile); err != nil && !isNotExist(err) {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToReadConfig, err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, cfg)

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		unknown, err := topLevelUnknown(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrFailedToParseConfig, err)
		}

		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrFailedToReadConfig, err)
		}

		cfg.Path = path
		cfg.Unknown = unknown
	case !isNotExist(err):
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToReadConfig, err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToParseConfig, err)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// setDefaults registers every setting with viper so environment overrides are honored
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("chain.length", cfg.Chain.Length)
	v.SetDefault("chain.cadence", cfg.Chain.Cadence)
	v.SetDefault("animation.interval", cfg.Animation.Interval)
	v.SetDefault("theme.background", cfg.Theme.Background)
	v.SetDefault("theme.ball", cfg.Theme.Ball)
	v.SetDefault("theme.accent", cfg.Theme.Accent)
	v.SetDefault("renderer", cfg.Renderer)
	v.SetDefault("headless.width", cfg.Headless.Width)
	v.SetDefault("headless.height", cfg.Headless.Height)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("watch.enabled", cfg.Watch.Enabled)
	v.SetDefault("watch.include", cfg.Watch.Include)
	v.SetDefault("watch.debounce", cfg.Watch.Debounce)
	v.SetDefault("version", cfg.Version)
}

// topLevelUnknown parses the document and returns the top-level keys no setting consumes
func topLevelUnknown(data []byte) ([]string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping at document root, got %s", doc.Tag)
	}

	var unknown []string

	for i := 0; i < len(doc.Content); i += 2 {
		key := doc.Content[i].Value
		if !knownKeys[key] {
			unknown = append(unknown, key)
		}
	}

	return unknown, nil
}

// normalize lowercases enumerated settings
func (c *Config) normalize() {
	c.Chain.Cadence = strings.ToLower(strings.TrimSpace(c.Chain.Cadence))
	c.Renderer = strings.ToLower(strings.TrimSpace(c.Renderer))
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateChain(); err != nil {
		return err
	}

	if c.Animation.Interval <= 0 {
		return errors.ErrInvalidTickInterval
	}

	if err := c.Theme.Validate(); err != nil {
		return err
	}

	switch c.Renderer {
	case RendererTea, RendererTcell:
	default:
		return fmt.Errorf("%w: '%s' (must be 'tea' or 'tcell')", errors.ErrInvalidRenderer, c.Renderer)
	}

	return nil
}

// validateChain validates chain settings
func (c *Config) validateChain() error {
	if c.Chain.Length < 1 {
		return errors.ErrInvalidChainLength
	}

	switch c.Chain.Cadence {
	case CadenceStep, CadenceSweep:
		return nil
	default:
		return fmt.Errorf("%w: '%s' (must be 'step' or 'sweep')", errors.ErrInvalidCadence, c.Chain.Cadence)
	}
}

// Validate checks that every color is a #RRGGBB hex value
func (t Theme) Validate() error {
	for name, value := range map[string]string{
		"background": t.Background,
		"ball":       t.Ball,
		"accent":     t.Accent,
	} {
		if !colorPattern.MatchString(value) {
			return fmt.Errorf("%w: theme.%s '%s'", errors.ErrInvalidColor, name, value)
		}
	}

	return nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

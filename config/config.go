// Package config loads the algostep host configuration from a YAML file and
// ALGOSTEP_* environment variables.
package config

import (
	"io"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/katalvlaran/algostep/engine"
)

// Sentinel validation errors.
var (
	ErrInvalidLevel   = errors.New("config: invalid log level")
	ErrInvalidFormat  = errors.New("config: invalid log format")
	ErrInvalidMode    = errors.New("config: invalid renderer mode")
	ErrMissingAddress = errors.New("config: metrics enabled without an address")
)

// Renderer modes.
const (
	ModeText = "text"
	ModeTUI  = "tui"
	ModeNone = "none"
)

const envPrefix = "ALGOSTEP"

// Config holds the whole host configuration.
type Config struct {
	Engine   engine.Config  `mapstructure:"engine"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Renderer RendererConfig `mapstructure:"renderer"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RendererConfig selects and tunes the renderer.
type RendererConfig struct {
	Mode      string `mapstructure:"mode"`
	Color     bool   `mapstructure:"color"`
	Snapshots bool   `mapstructure:"snapshots"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

// Load reads configuration from path, or from algostep.yaml in the working
// directory or ./config when path is empty. A missing default file is not an
// error. Environment variables override file values: engine.step_interval is
// ALGOSTEP_ENGINE_STEP_INTERVAL.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("algostep")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Default returns the configuration Load yields without file or environment.
func Default() *Config {
	return &Config{
		Engine:   engine.DefaultConfig(),
		Logging:  LoggingConfig{Level: "info", Format: "text"},
		Renderer: RendererConfig{Mode: ModeText, Color: true},
		Metrics:  MetricsConfig{Addr: ":9090"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("engine.step_interval", d.Engine.StepInterval.String())

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	v.SetDefault("renderer.mode", d.Renderer.Mode)
	v.SetDefault("renderer.color", d.Renderer.Color)
	v.SetDefault("renderer.snapshots", d.Renderer.Snapshots)

	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("metrics.addr", d.Metrics.Addr)
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Engine.Validate(); err != nil {
		return err
	}
	if _, err := c.Logging.level(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return errors.Wrapf(ErrInvalidFormat, "%q", c.Logging.Format)
	}
	switch c.Renderer.Mode {
	case ModeText, ModeTUI, ModeNone:
	default:
		return errors.Wrapf(ErrInvalidMode, "%q", c.Renderer.Mode)
	}
	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		return ErrMissingAddress
	}
	return nil
}

func (l LoggingConfig) level() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, errors.Wrapf(ErrInvalidLevel, "%q", l.Level)
	}
}

// NewLogger builds a slog.Logger writing to w with the configured level and
// format.
func (l LoggingConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	lvl, err := l.level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

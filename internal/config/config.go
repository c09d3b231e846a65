// Package config loads xover settings from defaults, an optional config
// file, XOVER_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/cwbudde/algo-xover/dsp/filter/passive"
	"github.com/cwbudde/algo-xover/internal/logging"
)

// EnvPrefix prefixes environment overrides, e.g. XOVER_TYPE=lr4.
const EnvPrefix = "XOVER"

// ResponseConfig holds the frequency sweep used by the response command.
type ResponseConfig struct {
	Start  float64 `mapstructure:"start"`
	Stop   float64 `mapstructure:"stop"`
	Points int     `mapstructure:"points"`
}

// Config holds all runtime configuration for an xover invocation.
type Config struct {
	Type      string         `mapstructure:"type"`
	Intent    string         `mapstructure:"intent"`
	Tweeter   float64        `mapstructure:"rh"`
	Woofer    float64        `mapstructure:"rl"`
	Resonance float64        `mapstructure:"fs"`
	Format    string         `mapstructure:"format"`
	Color     string         `mapstructure:"color"`
	LogLevel  string         `mapstructure:"log_level"`
	LogFormat string         `mapstructure:"log_format"`
	Workers   int            `mapstructure:"workers"`
	Response  ResponseConfig `mapstructure:"response"`
}

// Init points v at cfgFile, or at .xover.{yaml,toml,json} in the working
// or home directory when cfgFile is empty, and enables environment
// overrides. A missing default config file is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".xover")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read: %w", err)
	}

	return nil
}

// SetDefaults registers the built-in default of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("type", "lr2")
	v.SetDefault("intent", "flat")
	v.SetDefault("rh", 8.0)
	v.SetDefault("rl", 8.0)
	v.SetDefault("fs", 0.0)
	v.SetDefault("format", "pretty")
	v.SetDefault("color", "auto")
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")
	v.SetDefault("workers", 4)
	v.SetDefault("response.start", 20.0)
	v.SetDefault("response.stop", 20000.0)
	v.SetDefault("response.points", 31)
}

// Load applies defaults to v, decodes it and validates the result.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks enumerated and numeric settings.
func (c Config) Validate() error {
	if _, err := passive.ParseType(c.Type); err != nil {
		return fmt.Errorf("config: type: %w", err)
	}
	if _, err := passive.ParseIntent(c.Intent); err != nil {
		return fmt.Errorf("config: intent: %w", err)
	}
	switch c.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("config: format must be pretty or json, got %q", c.Format)
	}
	switch c.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("config: color must be auto, on or off, got %q", c.Color)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	if c.Response.Start <= 0 || c.Response.Start >= c.Response.Stop {
		return fmt.Errorf("config: response range %v..%v Hz is invalid", c.Response.Start, c.Response.Stop)
	}
	if c.Response.Points < 2 {
		return fmt.Errorf("config: response points must be at least 2, got %d", c.Response.Points)
	}

	return nil
}

// CrossoverType returns the parsed default topology.
func (c Config) CrossoverType() passive.Type {
	t, _ := passive.ParseType(c.Type)
	return t
}

// DesignIntent returns the parsed default intent.
func (c Config) DesignIntent() passive.Intent {
	i, _ := passive.ParseIntent(c.Intent)
	return i
}

// Logger builds the logger described by the config.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, _ := logging.ParseLevel(c.LogLevel)
	format, _ := logging.ParseFormat(c.LogFormat)
	return logging.New(w, level, format)
}

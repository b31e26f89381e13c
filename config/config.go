// SPDX-License-Identifier: MIT

// Package config loads mmpart settings from defaults, an optional YAML file
// and MMPART_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidEpsilon   = errors.New("config: verify.epsilon must be finite and non-negative")
	ErrInvalidMaxPixels = errors.New("config: render.max_pixels must be positive")
	ErrInvalidFormat    = errors.New("config: unknown format")
	ErrInvalidLogLevel  = errors.New("config: unknown log level")
)

// Config holds all configuration for the mmpart CLI.
type Config struct {
	Verify VerifyConfig  `mapstructure:"verify"`
	Render RenderConfig  `mapstructure:"render"`
	Output OutputConfig  `mapstructure:"output"`
	Log    LoggingConfig `mapstructure:"log"`
}

// VerifyConfig holds partition verification settings.
type VerifyConfig struct {
	Epsilon float64 `mapstructure:"epsilon"`
}

// RenderConfig holds image rendering settings.
type RenderConfig struct {
	Format    string `mapstructure:"format"`
	MaxPixels int    `mapstructure:"max_pixels"`
}

// OutputConfig controls report printing.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig loads configuration from file and environment variables. An
// empty configPath searches mmpart.yaml in the working directory and
// $HOME/.config/mmpart; a missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("mmpart")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("$HOME/.config/mmpart")
	}

	viperCfg.SetEnvPrefix("MMPART")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := config.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("verify.epsilon", DefaultEpsilon)

	viperCfg.SetDefault("render.format", DefaultRenderFormat)
	viperCfg.SetDefault("render.max_pixels", DefaultMaxPixels)

	viperCfg.SetDefault("output.format", DefaultOutputFormat)

	viperCfg.SetDefault("log.level", DefaultLogLevel)
	viperCfg.SetDefault("log.format", DefaultLogFormat)
}

// Validate checks every field; flags overriding the config are re-checked
// through the same method.
func (c *Config) Validate() error {
	if math.IsNaN(c.Verify.Epsilon) || math.IsInf(c.Verify.Epsilon, 0) || c.Verify.Epsilon < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidEpsilon, c.Verify.Epsilon)
	}

	if c.Render.MaxPixels <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxPixels, c.Render.MaxPixels)
	}

	if err := oneOf("render.format", c.Render.Format, RenderFormats); err != nil {
		return err
	}

	if err := oneOf("output.format", c.Output.Format, OutputFormats); err != nil {
		return err
	}

	if err := oneOf("log.format", c.Log.Format, LogFormats); err != nil {
		return err
	}

	if _, ok := logLevels[strings.ToLower(c.Log.Level)]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}

	return nil
}

func oneOf(key, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}

	return fmt.Errorf("%w: %s=%q (want one of %s)", ErrInvalidFormat, key, value, strings.Join(allowed, ", "))
}

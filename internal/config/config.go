// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 qrep Contributors

package config

import (
	"errors"
	"log/slog"
	"strings"

	qreperr "github.com/qrep-dev/qrep/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable qrep reads.
const EnvPrefix = "QREP"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds runtime settings that affect how qrep reports, never what it
// reads, replaces or writes.
type Config struct {
	Log   LogConfig `mapstructure:"log"`
	Color string    `mapstructure:"color"`
}

// LogConfig controls diagnostic logging on standard error.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Default values, shared by the viper defaults and the fallback for
// invalid settings.
const (
	DefaultLogLevel = "warn"
	DefaultColor    = ColorAuto
)

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Log:   LogConfig{Level: DefaultLogLevel},
		Color: DefaultColor,
	}
}

// Load reads the configuration from defaults with environment variable
// overrides (prefix QREP_). There is no configuration file.
//
// Load always returns a usable config. Settings that fail validation are
// reset to their defaults and reported through the returned error, which
// callers log rather than treat as fatal.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("color", DefaultColor)

	// Environment
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Default(), qreperr.Wrapf(err, qreperr.CodeConfigLoadInvalidValue, "unmarshalling config")
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))

	errs := cfg.Validate()
	if len(errs) == 0 {
		return &cfg, nil
	}

	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		cfg.Log.Level = DefaultLogLevel
	}
	if !validColor(cfg.Color) {
		cfg.Color = DefaultColor
	}
	return &cfg, qreperr.Wrapf(errors.Join(errs...), qreperr.CodeConfigLoadInvalidValue, "validating config")
}

// Validate checks every setting and returns all problems found.
func (c *Config) Validate() []error {
	var errs []error

	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	if !validColor(c.Color) {
		errs = append(errs, qreperr.Errorf(qreperr.CodeConfigLoadInvalidValue,
			"config: color must be one of [auto, always, never], got %q",
			c.Color,
		))
	}

	return errs
}

func validColor(mode string) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// SlogLevel returns the configured log level. It falls back to warn for an
// unvalidated config.
func (c *Config) SlogLevel() slog.Level {
	lvl, err := ParseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelWarn
	}
	return lvl
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch name {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, qreperr.Errorf(qreperr.CodeConfigLoadInvalidValue,
			"config: log.level must be one of [debug, info, warn, error], got %q",
			name,
		)
	}
}

// SPDX-License-Identifier: MIT

package config

import (
	"log/slog"
	"strings"
)

// Verification defaults.
const (
	DefaultEpsilon = 0.03
)

// Render defaults.
const (
	DefaultRenderFormat = "svg"
	DefaultMaxPixels    = 1000
)

// Output and logging defaults.
const (
	DefaultOutputFormat = "table"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
)

// Accepted enumerations.
var (
	RenderFormats = []string{"svg", "png", "ascii"}
	OutputFormats = []string{"table", "json", "yaml"}
	LogFormats    = []string{"text", "json"}
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel maps the configured level; unknown names fall back to info.
func (l LoggingConfig) SlogLevel() slog.Level {
	if lvl, ok := logLevels[strings.ToLower(l.Level)]; ok {
		return lvl
	}

	return slog.LevelInfo
}

// SPDX-License-Identifier: MIT

package commands

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/mmpart/config"
)

// newLogger builds the slog logger for one invocation; verbose forces debug
// and quiet forces error, quiet winning.
func newLogger(w io.Writer, cfg config.LoggingConfig, verbose, quiet bool) *slog.Logger {
	level := cfg.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("service", "mmpart"))
}

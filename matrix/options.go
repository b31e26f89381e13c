// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for stream ingestion.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxLineBytes caps a single input line read by Read/ReadFile.
	// Coordinate lines are short; the cap only guards against binary input.
	DefaultMaxLineBytes = 1 << 20

	// minLineBytes is the initial scanner buffer.
	minLineBytes = 64 * 1024
)

const panicMaxLineBytesInvalid = "matrix: WithMaxLineBytes: n must be >= 1"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxLineBytes int // DefaultMaxLineBytes
}

// WithMaxLineBytes sets the longest line Read accepts.
//
// Errors:
//   - Panics when n < 1.
//
// Notes:
//   - Lines longer than n make Read fail with bufio.ErrTooLong wrapped in
//     the returned error.
func WithMaxLineBytes(n int) Option {
	if n < 1 {
		panic(panicMaxLineBytesInvalid)
	}

	return func(o *Options) { o.maxLineBytes = n }
}

func defaultOptions() Options {
	return Options{maxLineBytes: DefaultMaxLineBytes}
}

// gatherOptions applies opts over defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

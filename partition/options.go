// SPDX-License-Identifier: MIT

// Package partition: functional configuration for Verify.
package partition

import (
	"log/slog"
	"math"
)

// DefaultEpsilon is the maximum tolerated imbalance.
const DefaultEpsilon = 0.03

const panicEpsilonInvalid = "partition: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps    float64 // >= 0; DefaultEpsilon
	logger *slog.Logger
}

// WithEpsilon sets the maximum tolerated imbalance.
//
// Errors:
//   - Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithLogger routes the Debug diagnostics of Verify (sizes, raw and
// redistributed partition sizes, imbalance) to l. A nil l is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

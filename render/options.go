// SPDX-License-Identifier: MIT

package render

import "fmt"

// DefaultMaxPixels is the target size of the longest image side.
const DefaultMaxPixels = 1000

// Cell size bounds in pixels.
const (
	MinCell = 1
	MaxCell = 10
)

// DefaultRasterLimit caps the cells of a dense output: pixels for Image and
// PNG, characters for ASCII. 1<<26 pixels is 256 MiB of RGBA.
const DefaultRasterLimit = 1 << 26

const (
	panicMaxPixelsInvalid   = "render: WithMaxPixels: n must be >= 1"
	panicRasterLimitInvalid = "render: WithRasterLimit: n must be >= 1"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration.
type Options struct {
	maxPixels   int
	rasterLimit int
	palette     Palette
}

// WithMaxPixels sets the target longest side. Panics when n < 1.
func WithMaxPixels(n int) Option {
	if n < 1 {
		panic(panicMaxPixelsInvalid)
	}

	return func(o *Options) { o.maxPixels = n }
}

// WithRasterLimit sets the largest dense output Image, PNG and ASCII will
// allocate. Panics when n < 1.
func WithRasterLimit(n int) Option {
	if n < 1 {
		panic(panicRasterLimitInvalid)
	}

	return func(o *Options) { o.rasterLimit = n }
}

// WithPalette overrides the label colours.
func WithPalette(p Palette) Option {
	return func(o *Options) { o.palette = p }
}

func gatherOptions(opts ...Option) Options {
	o := Options{maxPixels: DefaultMaxPixels, rasterLimit: DefaultRasterLimit, palette: DefaultPalette()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// CellSize returns min(10, max(1, maxPixels / max(rows, cols))). An empty
// shape gets the largest cell.
func CellSize(rows, cols, maxPixels int) int {
	side := max(rows, cols)
	if side <= 0 {
		return MaxCell
	}

	return min(MaxCell, max(MinCell, maxPixels/side))
}

// checkRaster fails with ErrTooLarge when a w×h dense buffer exceeds limit.
func checkRaster(w, h, limit int) error {
	if w > 0 && h > limit/w {
		return fmt.Errorf("%w: %d×%d exceeds %d", ErrTooLarge, w, h, limit)
	}

	return nil
}

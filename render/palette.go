// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/katalvlaran/mmpart/matrix"
	"github.com/katalvlaran/mmpart/partition"
)

// Palette maps labels to colours.
type Palette struct {
	Red        color.RGBA
	Blue       color.RGBA
	Unassigned color.RGBA
	Other      color.RGBA
	Background color.RGBA
}

// DefaultPalette is red/blue/yellow/black on white.
func DefaultPalette() Palette {
	return Palette{
		Red:        colornames.Red,
		Blue:       colornames.Blue,
		Unassigned: colornames.Yellow,
		Other:      colornames.Black,
		Background: colornames.White,
	}
}

// Color returns the fill for a stored value.
func (p Palette) Color(v matrix.Value) color.RGBA {
	l, ok := partition.ParseLabel(v)
	if !ok {
		return p.Other
	}
	switch l {
	case partition.Red:
		return p.Red
	case partition.Blue:
		return p.Blue
	default:
		return p.Unassigned
	}
}

// hex formats c as #rrggbb.
func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/katalvlaran/mmpart/partition"
)

// Image rasterizes m with the same geometry as SVG.
//
// Errors: ErrTooLarge when the image would exceed the raster limit.
func Image(m partition.Matrix, opts ...Option) (*image.RGBA, error) {
	o := gatherOptions(opts...)
	f := CellSize(m.Rows(), m.Cols(), o.maxPixels)

	width, height := m.Cols()*f, m.Rows()*f
	if err := checkRaster(width, height, o.rasterLimit); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(o.palette.Background), image.Point{}, draw.Src)
	for _, r := range m.RowIndices() {
		for _, e := range m.Row(r) {
			cell := image.Rect(e.Col*f, r*f, (e.Col+1)*f, (r+1)*f)
			draw.Draw(img, cell, image.NewUniform(o.palette.Color(e.Value)), image.Point{}, draw.Src)
		}
	}

	return img, nil
}

// PNG encodes Image(m) as PNG. Matrices with a zero dimension have no
// pixels and fail to encode.
func PNG(w io.Writer, m partition.Matrix, opts ...Option) error {
	img, err := Image(m, opts...)
	if err != nil {
		return err
	}
	if err = png.Encode(w, img); err != nil {
		return fmt.Errorf("render: png: %w", err)
	}

	return nil
}

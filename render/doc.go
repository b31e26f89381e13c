// SPDX-License-Identifier: MIT

// Package render draws a partitioned sparse matrix as an SVG, a PNG or an
// ASCII pattern.
//
// Every nonzero becomes an F×F cell at (col*F, row*F) coloured by its label:
//
//	1 → red   #ff0000
//	2 → blue  #0000ff
//	3 → yellow #ffff00
//	* → black #000000
//
// on a white background. F = CellSize(rows, cols, maxPixels) keeps the image
// near maxPixels on its longest side (1..10 px per cell).
//
// Image, PNG and ASCII allocate a dense buffer and refuse shapes above the
// raster limit with ErrTooLarge; SVG writes one element per nonzero and has
// no limit.
//
// Rendering is independent of verification: an unknown label is drawn black,
// never rejected.
package render

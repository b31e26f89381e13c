// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/mmpart/partition"
)

const (
	svgProlog = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>` + "\n"
	svgOpen   = `<svg xmlns:svg="http://www.w3.org/2000/svg" xmlns="http://www.w3.org/2000/svg" version="1.0" width="%d" height="%d" id="svg2">` + "\n"
	svgBkg    = "\t\t<rect width=\"%d\" height=\"%d\" x=\"0\" y=\"0\" id=\"bkg\" style=\"fill:%s;fill-opacity:1;\" />\n"
	svgCell   = "\t\t\t<rect width=\"%d\" height=\"%d\" x=\"%d\" y=\"%d\" id=\"r%d-%d\" style=\"fill:%s;fill-opacity:1;\" />\n"
)

// SVG writes m as an SVG document. The cell id is "r<col>-<row>". The
// output holds one element per nonzero and is never raster-limited.
func SVG(w io.Writer, m partition.Matrix, opts ...Option) error {
	o := gatherOptions(opts...)
	f := CellSize(m.Rows(), m.Cols(), o.maxPixels)
	width, height := m.Cols()*f, m.Rows()*f

	bw := bufio.NewWriter(w)
	bw.WriteString(svgProlog)
	fmt.Fprintf(bw, svgOpen, width, height)
	bw.WriteString("\t<g>\n")
	fmt.Fprintf(bw, svgBkg, width, height, hex(o.palette.Background))
	for _, r := range m.RowIndices() {
		for _, e := range m.Row(r) {
			fmt.Fprintf(bw, svgCell, f, f, e.Col*f, r*f, e.Col, r, hex(o.palette.Color(e.Value)))
		}
	}
	bw.WriteString("\t</g>\n</svg>\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: svg: %w", err)
	}

	return nil
}

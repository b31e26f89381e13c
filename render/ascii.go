// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/mmpart/partition"
)

// ASCII writes one line per row, '#' for a stored position and '.' for an
// empty one. Only the raster limit option applies.
//
// Errors: ErrTooLarge when Rows×Cols exceeds the raster limit.
func ASCII(w io.Writer, m partition.Matrix, opts ...Option) error {
	o := gatherOptions(opts...)
	if err := checkRaster(m.Cols(), m.Rows(), o.rasterLimit); err != nil {
		return err
	}

	// Empty rows reuse the blank line.
	blank := make([]byte, m.Cols()+1)
	for i := 0; i < m.Cols(); i++ {
		blank[i] = '.'
	}
	blank[m.Cols()] = '\n'

	bw := bufio.NewWriter(w)
	nonEmpty := m.RowIndices()
	line := make([]byte, len(blank))
	for r, next := 0, 0; r < m.Rows(); r++ {
		if next == len(nonEmpty) || nonEmpty[next] != r {
			bw.Write(blank)
			continue
		}
		next++
		copy(line, blank)
		for _, e := range m.Row(r) {
			line[e.Col] = '#'
		}
		bw.Write(line)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: ascii: %w", err)
	}

	return nil
}

// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Write emits m as a general coordinate file: mirrors are already expanded,
// so the symmetry qualifier is always "general" and the size line carries
// the canonical NNZ. Entries are written row-major with 1-based indices.
//
// Parse of the output is Equal to m.
func Write(w io.Writer, m *Sparse) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s %s %s %s %s\n", Magic, objectMatrix, formatCoordinate, m.header.Field, General)
	fmt.Fprintf(bw, "%d %d %d\n", m.r, m.c, m.nnz)
	for i, r := range m.rowIdx {
		for _, e := range m.rowData[i] {
			bw.WriteString(strconv.Itoa(r + 1))
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(e.Col + 1))
			for i := 0; i < e.Value.Len(); i++ {
				bw.WriteByte(' ')
				bw.WriteString(e.Value.Token(i))
			}
			bw.WriteByte('\n')
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("matrix: write: %w", err)
	}

	return nil
}

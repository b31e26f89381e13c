// SPDX-License-Identifier: MIT
// Package partition_test contains test fixtures.

package partition_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/mmpart/matrix"
	"github.com/stretchr/testify/require"
)

// labels returns red "1"s, then blue "2"s, then unassigned "3"s.
func labels(red, blue, unassigned int) []string {
	out := make([]string, 0, red+blue+unassigned)
	out = append(out, repeat("1", red)...)
	out = append(out, repeat("2", blue)...)
	out = append(out, repeat("3", unassigned)...)

	return out
}

func repeat(s string, n int) []string {
	if n == 0 {
		return nil
	}

	return strings.Split(strings.Repeat(s+" ", n-1)+s, " ")
}

// pair BUILDS an original real matrix and its partitioned copy over the
// same positions, filled row-major in a rows×cols grid.
func pair(t testing.TB, rows, cols int, lbl []string) (orig, part *matrix.Sparse) {
	t.Helper()
	require.LessOrEqual(t, len(lbl), rows*cols, "grid too small for labels")

	ob := matrix.NewBuilder(rows, cols, matrix.Header{Field: matrix.FieldReal})
	pb := matrix.NewBuilder(rows, cols, matrix.Header{Field: matrix.FieldInteger})
	for i, l := range lbl {
		r, c := i/cols, i%cols
		require.NoError(t, ob.Set(r, c, matrix.NewValue("1.0")))
		require.NoError(t, pb.Set(r, c, matrix.NewValue(l)))
	}

	return ob.Build(), pb.Build()
}

// mustParse parses a newline-separated document or fails the test.
func mustParse(t testing.TB, doc string) *matrix.Sparse {
	t.Helper()

	m, err := matrix.Parse(strings.Split(doc, "\n"))
	require.NoError(t, err)

	return m
}

// fakeMatrix is a hand-built Matrix whose rows may violate the Sparse
// invariants (duplicate positions).
type fakeMatrix struct {
	rows, cols, nnz int
	data            [][]matrix.Entry
}

func (f fakeMatrix) Rows() int { return f.rows }
func (f fakeMatrix) Cols() int { return f.cols }
func (f fakeMatrix) NNZ() int { return f.nnz }

func (f fakeMatrix) RowIndices() []int {
	var idx []int
	for r, row := range f.data {
		if len(row) > 0 {
			idx = append(idx, r)
		}
	}

	return idx
}

func (f fakeMatrix) Row(r int) []matrix.Entry {
	if r < 0 || r >= len(f.data) {
		return nil
	}

	return f.data[r]
}

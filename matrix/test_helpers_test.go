// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/mmpart/matrix"
	"github.com/stretchr/testify/require"
)

// mustParse PARSES a newline-separated MatrixMarket document or fails the test.
func mustParse(t testing.TB, doc string) *matrix.Sparse {
	t.Helper()

	m, err := matrix.Parse(splitLines(doc))
	require.NoError(t, err)

	return m
}

// splitLines drops the leading newline of raw string literals.
func splitLines(doc string) []string {
	return strings.Split(strings.TrimPrefix(doc, "\n"), "\n")
}

// cells flattens m into "r,c=value" strings in row-major order.
func cells(m *matrix.Sparse) []string {
	var out []string
	for _, r := range m.RowIndices() {
		for _, e := range m.Row(r) {
			out = append(out, cell(r, e.Col, e.Value.String()))
		}
	}

	return out
}

func cell(r, c int, v string) string {
	return fmt.Sprintf("%d,%d=%s", r, c, v)
}

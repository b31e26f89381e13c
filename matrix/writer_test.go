// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the canonical writer.
package matrix_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/mmpart/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWrite_ExpandsSymmetry checks the exact output for a symmetric source.
func TestWrite_ExpandsSymmetry(t *testing.T) {
	t.Parallel()

	m := mustParse(t, "%%MatrixMarket matrix coordinate real symmetric\n% c\n3 3 2\n2 1 0.5\n3 3 1")

	var buf bytes.Buffer
	require.NoError(t, matrix.Write(&buf, m))

	want := strings.Join([]string{
		"%%MatrixMarket matrix coordinate real general",
		"3 3 3",
		"1 2 0.5",
		"2 1 0.5",
		"3 3 1",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

// TestWrite_RoundTrip re-parses written output for every field width.
func TestWrite_RoundTrip(t *testing.T) {
	t.Parallel()

	docs := []string{
		"%%MatrixMarket matrix coordinate pattern general\n3 2 2\n1 2\n3 1",
		"%%MatrixMarket matrix coordinate complex hermitian\n2 2 2\n2 1 1 -1\n1 1 4 0",
		"%%MatrixMarket matrix coordinate integer general\n0 0 0",
	}
	for _, doc := range docs {
		src := mustParse(t, doc)

		var buf bytes.Buffer
		require.NoError(t, matrix.Write(&buf, src))

		back, err := matrix.Read(&buf)
		require.NoError(t, err)
		assert.True(t, src.Equal(back), "round trip of %q", doc)
		assert.Equal(t, src.Header().Field, back.Header().Field)
		assert.Equal(t, matrix.General, back.Header().Symmetry)
	}
}

// SPDX-License-Identifier: MIT
// Package partition_test contains unit tests for Verify.
package partition_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/mmpart/matrix"
	"github.com/katalvlaran/mmpart/partition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVerify_Balanced accepts a 50/50 split of 100 nonzeros.
func TestVerify_Balanced(t *testing.T) {
	t.Parallel()

	orig, part := pair(t, 10, 10, labels(50, 50, 0))
	rep, err := partition.Verify(orig, part)
	require.NoError(t, err)

	assert.Equal(t, partition.Report{
		Rows:      10,
		Cols:      10,
		NNZ:       100,
		Raw:       partition.Counts{Red: 50, Blue: 50},
		Balanced:  partition.Counts{Red: 50, Blue: 50},
		Imbalance: 0,
		Epsilon:   partition.DefaultEpsilon,
	}, rep)
}

// TestVerify_TooImbalanced rejects 80/20 with the default epsilon.
func TestVerify_TooImbalanced(t *testing.T) {
	t.Parallel()

	orig, part := pair(t, 10, 10, labels(80, 20, 0))
	rep, err := partition.Verify(orig, part)
	require.ErrorIs(t, err, partition.ErrTooImbalanced)
	require.ErrorIs(t, err, partition.ErrVerification)
	assert.Zero(t, rep, "no partial report on failure")
	assert.Contains(t, err.Error(), "80 vs 20")
}

// TestVerify_RedistributesUnassigned accepts 40/40/20.
func TestVerify_RedistributesUnassigned(t *testing.T) {
	t.Parallel()

	orig, part := pair(t, 10, 10, labels(40, 40, 20))
	rep, err := partition.Verify(orig, part)
	require.NoError(t, err)
	assert.Equal(t, partition.Counts{Red: 40, Blue: 40, Unassigned: 20}, rep.Raw)
	assert.Equal(t, partition.Counts{Red: 50, Blue: 50}, rep.Balanced)
	assert.Equal(t, 0.0, rep.Imbalance)
}

// TestVerify_Epsilon covers the threshold, including the reference float
// behaviour at 103/100 where 1.03-1.0 rounds just above 0.03.
func TestVerify_Epsilon(t *testing.T) {
	t.Parallel()

	orig, part := pair(t, 10, 10, labels(52, 48, 0))
	_, err := partition.Verify(orig, part)
	assert.ErrorIs(t, err, partition.ErrTooImbalanced, "0.04 > default 0.03")

	rep, err := partition.Verify(orig, part, partition.WithEpsilon(0.05))
	require.NoError(t, err)
	assert.InDelta(t, 0.04, rep.Imbalance, 1e-12)
	assert.Equal(t, 0.05, rep.Epsilon)

	orig, part = pair(t, 20, 10, labels(103, 97, 0))
	_, err = partition.Verify(orig, part)
	assert.ErrorIs(t, err, partition.ErrTooImbalanced)

	orig, part = pair(t, 20, 10, labels(102, 98, 0))
	_, err = partition.Verify(orig, part)
	assert.NoError(t, err)
}

// TestVerify_SubsetViolation rejects a labelled position missing from the
// original even when the labels are balanced.
func TestVerify_SubsetViolation(t *testing.T) {
	t.Parallel()

	orig := mustParse(t, "%%MatrixMarket matrix coordinate real general\n2 2 2\n1 1 1.0\n1 2 1.0")
	part := mustParse(t, "%%MatrixMarket matrix coordinate integer general\n2 2 2\n1 1 1\n2 2 2")

	_, err := partition.Verify(orig, part)
	require.ErrorIs(t, err, partition.ErrNotSubset)

	var ve *partition.VerificationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, partition.ErrNotSubset, ve.Err)
	assert.Contains(t, ve.Detail, "(2,2)")
}

// TestVerify_SizeMismatch covers rows, cols and NNZ.
func TestVerify_SizeMismatch(t *testing.T) {
	t.Parallel()

	orig, _ := pair(t, 2, 2, labels(2, 2, 0))
	tests := []struct {
		name string
		rows int
		cols int
		lbl  []string
	}{
		{"rows", 3, 2, labels(2, 2, 0)},
		{"cols", 2, 3, labels(2, 2, 0)},
		{"nnz", 2, 2, labels(2, 1, 0)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, part := pair(t, tc.rows, tc.cols, tc.lbl)
			_, err := partition.Verify(orig, part)
			require.ErrorIs(t, err, partition.ErrSizeMismatch)
			assert.ErrorIs(t, err, partition.ErrVerification)
		})
	}
}

// TestVerify_InvalidLabel rejects out-of-range labels and wrong widths.
func TestVerify_InvalidLabel(t *testing.T) {
	t.Parallel()

	orig := mustParse(t, "%%MatrixMarket matrix coordinate real general\n1 2 2\n1 1 1.0\n1 2 1.0")
	docs := map[string]string{
		"label 4":       "%%MatrixMarket matrix coordinate integer general\n1 2 2\n1 1 1\n1 2 4",
		"label 0":       "%%MatrixMarket matrix coordinate integer general\n1 2 2\n1 1 0\n1 2 2",
		"non-integer":   "%%MatrixMarket matrix coordinate real general\n1 2 2\n1 1 1.5\n1 2 2",
		"pattern":       "%%MatrixMarket matrix coordinate pattern general\n1 2 2\n1 1\n1 2",
		"complex pairs": "%%MatrixMarket matrix coordinate complex general\n1 2 2\n1 1 1 0\n1 2 2 0",
	}
	for name, doc := range docs {
		doc := doc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := partition.Verify(orig, mustParse(t, doc))
			assert.ErrorIs(t, err, partition.ErrInvalidLabel)
		})
	}
}

// TestVerify_PositionCount detects row listings with duplicate positions.
func TestVerify_PositionCount(t *testing.T) {
	t.Parallel()

	two := []matrix.Entry{{Col: 0, Value: matrix.NewValue("1")}, {Col: 1, Value: matrix.NewValue("2")}}
	dup := []matrix.Entry{{Col: 0, Value: matrix.NewValue("1")}, {Col: 0, Value: matrix.NewValue("2")}}

	good := fakeMatrix{rows: 1, cols: 2, nnz: 2, data: [][]matrix.Entry{two}}
	bad := fakeMatrix{rows: 1, cols: 2, nnz: 2, data: [][]matrix.Entry{dup}}

	_, err := partition.Verify(good, bad)
	require.ErrorIs(t, err, partition.ErrPositionCount)
	assert.Contains(t, err.Error(), "partitioned")

	_, err = partition.Verify(bad, good)
	require.ErrorIs(t, err, partition.ErrPositionCount)
	assert.Contains(t, err.Error(), "original")

	_, err = partition.Verify(good, good)
	assert.NoError(t, err)
}

// TestVerify_Empty treats a matrix without nonzeros as balanced.
func TestVerify_Empty(t *testing.T) {
	t.Parallel()

	orig, part := pair(t, 3, 3, nil)
	rep, err := partition.Verify(orig, part)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rep.Imbalance)
	assert.False(t, math.IsNaN(rep.Imbalance))
}

// TestVerify_HugeShape scans only the rows that hold entries.
func TestVerify_HugeShape(t *testing.T) {
	t.Parallel()

	orig := mustParse(t, "%%MatrixMarket matrix coordinate pattern general\n1000000000000 1000000000000 2\n1 1\n1000000000000 7")
	part := mustParse(t, "%%MatrixMarket matrix coordinate integer general\n1000000000000 1000000000000 2\n1 1 1\n1000000000000 7 2")

	rep, err := partition.Verify(orig, part)
	require.NoError(t, err)
	assert.Equal(t, partition.Counts{Red: 1, Blue: 1}, rep.Raw)
}

// TestVerify_SymmetricPartition verifies a partition of a symmetric original
// stored in expanded general form.
func TestVerify_SymmetricPartition(t *testing.T) {
	t.Parallel()

	orig := mustParse(t, "%%MatrixMarket matrix coordinate real symmetric\n3 3 2\n2 1 0.5\n3 2 0.5")
	part := mustParse(t, "%%MatrixMarket matrix coordinate integer general\n3 3 4\n1 2 1\n2 1 1\n2 3 2\n3 2 2")

	rep, err := partition.Verify(orig, part)
	require.NoError(t, err)
	assert.Equal(t, 4, rep.NNZ)
}

// TestVerify_Logger emits the diagnostics at debug level.
func TestVerify_Logger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	orig, part := pair(t, 10, 10, labels(40, 40, 20))
	_, err := partition.Verify(orig, part, partition.WithLogger(logger), partition.WithLogger(nil))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "nonzeros=100")
	assert.Contains(t, out, "unassigned=20")
	assert.Contains(t, out, "after redistribution")
	assert.Contains(t, out, "red=50")
}

// TestWithEpsilon_Panics rejects nonsensical tolerances.
func TestWithEpsilon_Panics(t *testing.T) {
	t.Parallel()

	for _, eps := range []float64{-0.1, math.NaN(), math.Inf(1)} {
		eps := eps
		assert.Panics(t, func() { partition.WithEpsilon(eps) }, "eps=%v", eps)
	}
	assert.NotPanics(t, func() { partition.WithEpsilon(0) })
}

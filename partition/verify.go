// SPDX-License-Identifier: MIT

package partition

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/mmpart/matrix"
)

// Report holds the diagnostic numbers of a successful verification. They
// are informational and not part of the pass/fail decision.
type Report struct {
	Rows      int     `json:"rows" yaml:"rows"`
	Cols      int     `json:"cols" yaml:"cols"`
	NNZ       int     `json:"nonzeros" yaml:"nonzeros"`
	Raw       Counts  `json:"raw" yaml:"raw"`
	Balanced  Counts  `json:"balanced" yaml:"balanced"`
	Imbalance float64 `json:"imbalance" yaml:"imbalance"`
	Epsilon   float64 `json:"epsilon" yaml:"epsilon"`
}

type position struct {
	r int
	c int
}

// Verify decides whether partitioned is an acceptably balanced labelling of
// original. See the package documentation for the algorithm.
//
// Returns the Report on success, or the zero Report and a *VerificationError
// naming the first failed check.
func Verify(original, partitioned Matrix, opts ...Option) (Report, error) {
	o := gatherOptions(opts...)
	ctx := context.Background()

	// Both matrices must declare the same shape.
	if err := matrix.ValidateSameShape(original, partitioned); err != nil {
		return Report{}, &VerificationError{Err: ErrSizeMismatch, Detail: err.Error()}
	}
	o.logger.DebugContext(ctx, "read matrix",
		slog.Int("rows", original.Rows()), slog.Int("cols", original.Cols()), slog.Int("nonzeros", original.NNZ()))

	// Collect both position sets and the raw label counts in one pass over partitioned.
	oi := positions(original)
	pi := make(map[position]struct{}, partitioned.NNZ())
	var raw Counts
	for _, r := range partitioned.RowIndices() {
		for _, e := range partitioned.Row(r) {
			pi[position{r, e.Col}] = struct{}{}
			l, err := labelOf(r, e)
			if err != nil {
				return Report{}, err
			}
			raw.Add(l)
		}
	}

	// A row listing a column twice makes the set smaller than the NNZ.
	if len(pi) != partitioned.NNZ() {
		return Report{}, failf(ErrPositionCount, "partitioned matrix lists %d positions, declares %d", len(pi), partitioned.NNZ())
	}
	if len(oi) != original.NNZ() {
		return Report{}, failf(ErrPositionCount, "original matrix lists %d positions, declares %d", len(oi), original.NNZ())
	}
	// Every labelled position must be a nonzero of the original.
	for _, r := range partitioned.RowIndices() {
		for _, e := range partitioned.Row(r) {
			if _, ok := oi[position{r, e.Col}]; !ok {
				return Report{}, failf(ErrNotSubset, "(%d,%d) is not a nonzero of the original", r+1, e.Col+1)
			}
		}
	}
	o.logger.DebugContext(ctx, "partition sizes",
		slog.Int("red", raw.Red), slog.Int("blue", raw.Blue), slog.Int("unassigned", raw.Unassigned))

	// Assign the unassigned entries, then measure.
	balanced := raw.Redistribute()
	imb := Imbalance(balanced, original.NNZ())
	o.logger.DebugContext(ctx, "after redistribution",
		slog.Int("red", balanced.Red), slog.Int("blue", balanced.Blue), slog.Float64("imbalance", imb))

	if imb > o.eps {
		return Report{}, failf(ErrTooImbalanced, "eps=%g exceeds %g (%d vs %d)", imb, o.eps, balanced.Red, balanced.Blue)
	}

	return Report{
		Rows:      original.Rows(),
		Cols:      original.Cols(),
		NNZ:       original.NNZ(),
		Raw:       raw,
		Balanced:  balanced,
		Imbalance: imb,
		Epsilon:   o.eps,
	}, nil
}

// positions collects the (row, col) set of m.
func positions(m Matrix) map[position]struct{} {
	set := make(map[position]struct{}, m.NNZ())
	for _, r := range m.RowIndices() {
		for _, e := range m.Row(r) {
			set[position{r, e.Col}] = struct{}{}
		}
	}

	return set
}

// SPDX-License-Identifier: MIT

package partition

import (
	"errors"
	"fmt"
)

var (
	// ErrVerification is the umbrella matched by every verification failure.
	ErrVerification = errors.New("partition: verification failed")

	// ErrSizeMismatch indicates the two matrices differ in rows, cols or NNZ.
	ErrSizeMismatch = fmt.Errorf("%w: matrices have different sizes", ErrVerification)

	// ErrInvalidLabel indicates a partitioned value that is not exactly one
	// token among "1", "2", "3".
	ErrInvalidLabel = fmt.Errorf("%w: invalid label", ErrVerification)

	// ErrPositionCount indicates a position set whose size disagrees with the
	// matrix NNZ (duplicate positions in a row listing).
	ErrPositionCount = fmt.Errorf("%w: position count mismatch", ErrVerification)

	// ErrNotSubset indicates a labelled position missing from the original.
	ErrNotSubset = fmt.Errorf("%w: positions not subset of original", ErrVerification)

	// ErrTooImbalanced indicates imbalance > epsilon after redistribution.
	ErrTooImbalanced = fmt.Errorf("%w: partition too imbalanced", ErrVerification)
)

// VerificationError names the failed check and carries a human-readable
// detail (offending position, counts, ratio).
type VerificationError struct {
	Err    error
	Detail string
}

// Error implements error.
func (e *VerificationError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}

	return e.Err.Error() + ": " + e.Detail
}

// Unwrap exposes the sentinel for errors.Is.
func (e *VerificationError) Unwrap() error { return e.Err }

func failf(sentinel error, format string, args ...any) error {
	return &VerificationError{Err: sentinel, Detail: fmt.Sprintf(format, args...)}
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Shape guards shared with consumers comparing two matrices side by side.
//  - Return wrapped sentinels so call sites can match with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch indicates two matrices differ in rows, columns or NNZ.
var ErrShapeMismatch = errors.New("matrix: shape mismatch")

// Shape is the part of a matrix the guards need.
type Shape interface {
	Rows() int
	Cols() int
	NNZ() int
}

// ValidateSameShape ensures a and b agree on Rows, Cols and NNZ, checked in
// that order. Complexity: O(1).
func ValidateSameShape(a, b Shape) error {
	switch {
	case a.Rows() != b.Rows():
		return fmt.Errorf("%w: rows %d vs %d", ErrShapeMismatch, a.Rows(), b.Rows())
	case a.Cols() != b.Cols():
		return fmt.Errorf("%w: cols %d vs %d", ErrShapeMismatch, a.Cols(), b.Cols())
	case a.NNZ() != b.NNZ():
		return fmt.Errorf("%w: nonzeros %d vs %d", ErrShapeMismatch, a.NNZ(), b.NNZ())
	}

	return nil
}

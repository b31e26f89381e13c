// SPDX-License-Identifier: MIT

// Package partition verifies that a red/blue labelling of a sparse matrix's
// nonzeros is balanced.
//
// A partitioned matrix has the same shape and positions as its original, with
// every value replaced by one label token: 1 (red), 2 (blue) or 3 (unassigned).
//
// Algorithm Outline:
//  1. Shape check: rows, cols and NNZ must agree.
//  2. Build the position sets of both matrices; label every partitioned value.
//  3. Re-check position counts and require partitioned ⊆ original.
//  4. Redistribute unassigned entries: first to the smaller side, up to the
//     difference; then split the rest, ceil to red and floor to blue.
//  5. imbalance = max(red, blue) / ceil(NNZ/2) - 1; fail when > eps.
//
// All arithmetic in step 4 is exact integer arithmetic.
//
// Complexity:
//
//	Time   = O(NZ)
//	Memory = O(NZ) for the two position sets
//
// Errors:
//   - ErrSizeMismatch, ErrInvalidLabel, ErrPositionCount, ErrNotSubset,
//     ErrTooImbalanced, each wrapped in *VerificationError and matching
//     ErrVerification.
package partition

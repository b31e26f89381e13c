// SPDX-License-Identifier: MIT

// Package matrix reads MatrixMarket coordinate files into a canonical,
// immutable sparse representation.
//
// The matrix package provides:
//
//   - Parse, Read and ReadFile for the "%%MatrixMarket matrix coordinate"
//     format with real, integer, complex and pattern fields.
//   - Symmetry expansion: symmetric, hermitian and skew-symmetric files have
//     every off-diagonal entry (r,c) mirrored to (c,r) with the SAME value
//     tokens. This is a structural mirror; no sign flip or conjugation.
//   - De-duplication: a later line for the same (row, col) overwrites the
//     earlier one (last-write-wins, mirrors included).
//   - Write, which emits the canonical form back as a general coordinate file.
//
// Values are kept as raw string tokens. No arithmetic is ever performed on
// them; consumers such as the partition package interpret them.
//
// Complexity:
//
//	Parse runs in O(L + NZ log NZ) time for L lines and NZ distinct positions,
//	with O(NZ) memory. Only non-empty rows are stored, so the declared shape
//	never drives allocation.
//
// A *Sparse is never mutated after construction and is safe for concurrent
// readers.
package matrix

// SPDX-License-Identifier: MIT

// Package matrix: domain types for the canonical sparse representation.
// This file contains ONLY value types (field, symmetry, header, value tuple,
// entry). The Sparse container lives in sparse.go, errors in errors.go.
package matrix

import "strings"

// Banner tokens of a MatrixMarket header.
const (
	// Magic is the mandatory first header field.
	Magic = "%%MatrixMarket"

	objectMatrix     = "matrix"
	formatCoordinate = "coordinate"
)

// Field is the element kind declared in header field 3.
// Unknown kinds are kept verbatim and carry one token per entry.
type Field string

// Known fields.
const (
	FieldReal    Field = "real"
	FieldInteger Field = "integer"
	FieldComplex Field = "complex"
	FieldPattern Field = "pattern"
)

// Width returns the number of value tokens per entry: 0 for pattern,
// 2 for complex, 1 for everything else.
func (f Field) Width() int {
	switch f {
	case FieldComplex:
		return 2
	case FieldPattern:
		return 0
	default:
		return 1
	}
}

// Symmetry is the structure qualifier declared in header field 4.
type Symmetry string

// Known symmetry qualifiers.
const (
	General       Symmetry = "general"
	Symmetric     Symmetry = "symmetric"
	Hermitian     Symmetry = "hermitian"
	SkewSymmetric Symmetry = "skew-symmetric"
)

// Mirrored reports whether entries must be mirrored across the diagonal.
// Only the three symmetric qualifiers do; "general" and unknown values don't.
func (s Symmetry) Mirrored() bool {
	return s == Symmetric || s == Hermitian || s == SkewSymmetric
}

// Header holds what the banner and size line declared.
// DeclaredNNZ is advisory; Sparse.NNZ is authoritative.
type Header struct {
	Field       Field
	Symmetry    Symmetry
	DeclaredNNZ int
}

// maxValueWidth is the widest tuple any field produces (complex).
const maxValueWidth = 2

// Value is an immutable tuple of 0..2 raw string tokens.
// Values are comparable with ==.
type Value struct {
	n   uint8
	tok [maxValueWidth]string
}

// NewValue builds a Value from tokens. It panics on more than two tokens,
// which no MatrixMarket field can produce.
func NewValue(tokens ...string) Value {
	if len(tokens) > maxValueWidth {
		panic("matrix: NewValue: at most 2 tokens")
	}
	var v Value
	v.n = uint8(len(tokens))
	copy(v.tok[:], tokens)

	return v
}

// Len returns the number of tokens.
func (v Value) Len() int { return int(v.n) }

// Token returns token i. It panics when i is out of range.
func (v Value) Token(i int) string {
	if i < 0 || i >= int(v.n) {
		panic("matrix: Value.Token: index out of range")
	}

	return v.tok[i]
}

// Tokens returns a fresh slice with the tokens.
func (v Value) Tokens() []string {
	out := make([]string, v.n)
	copy(out, v.tok[:v.n])

	return out
}

// String joins tokens with a single space.
func (v Value) String() string {
	return strings.Join(v.tok[:v.n], " ")
}

// Entry is one nonzero of a row: its 0-based column and value.
type Entry struct {
	Col   int
	Value Value
}

// key is a (row, col) position used by the ingestion index.
type key struct {
	r int
	c int
}

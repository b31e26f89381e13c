// SPDX-License-Identifier: MIT

package matrix

import (
	"slices"
	"sort"
)

// Sparse is the canonical, de-duplicated form of a coordinate matrix.
//
// Only non-empty rows are stored, so memory is O(NNZ) whatever the declared
// shape.
//
// Invariants:
//   - each (row, col) appears at most once;
//   - rowIdx is strictly ascending and rowData[i] belongs to row rowIdx[i];
//   - every rowData[i] is non-empty and sorted by ascending Col;
//   - nnz == Σ len(rowData[i]);
//   - every Value has Header().Field.Width() tokens.
//
// A Sparse is immutable; all accessors return copies.
type Sparse struct {
	r, c    int
	nnz     int
	header  Header
	rowIdx  []int
	rowData [][]Entry
}

// Rows returns the declared row count.
func (m *Sparse) Rows() int { return m.r }

// Cols returns the declared column count.
func (m *Sparse) Cols() int { return m.c }

// NNZ returns the number of distinct stored positions.
func (m *Sparse) NNZ() int { return m.nnz }

// Header returns the parsed banner and size-line metadata.
func (m *Sparse) Header() Header { return m.header }

// RowIndices returns the ascending indices of the rows holding at least one
// entry. Iterating them instead of [0, Rows()) keeps scans O(NNZ).
func (m *Sparse) RowIndices() []int { return slices.Clone(m.rowIdx) }

// Row returns a copy of row r's entries sorted by column. It returns nil for
// an empty row or when r is outside [0, Rows()).
func (m *Sparse) Row(r int) []Entry {
	i, ok := slices.BinarySearch(m.rowIdx, r)
	if !ok {
		return nil
	}

	return slices.Clone(m.rowData[i])
}

// At looks up (r, c). Complexity: O(log R' + log k) for R' non-empty rows
// and k entries in row r.
func (m *Sparse) At(r, c int) (Value, bool) {
	i, ok := slices.BinarySearch(m.rowIdx, r)
	if !ok {
		return Value{}, false
	}
	row := m.rowData[i]
	j := sort.Search(len(row), func(j int) bool { return row[j].Col >= c })
	if j < len(row) && row[j].Col == c {
		return row[j].Value, true
	}

	return Value{}, false
}

// Equal reports value equality of shape, NNZ and every row. The header is
// ignored so a re-written general file equals its symmetric source.
func (m *Sparse) Equal(o *Sparse) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c || m.nnz != o.nnz {
		return false
	}
	if !slices.Equal(m.rowIdx, o.rowIdx) {
		return false
	}
	// Same non-empty rows; compare contents.
	for i := range m.rowData {
		if !slices.Equal(m.rowData[i], o.rowData[i]) {
			return false
		}
	}

	return true
}

// Builder accumulates entries into the last-write-wins position index and
// freezes them into a *Sparse. A Builder is single-use and not safe for
// concurrent use.
type Builder struct {
	header Header
	r, c   int
	index  map[key]Value
}

// NewBuilder starts an r×c matrix with the given header. Field and
// Symmetry of h drive value-width checks and mirroring.
// It panics on negative dimensions (programmer error).
func NewBuilder(r, c int, h Header) *Builder {
	if r < 0 || c < 0 {
		panic("matrix: NewBuilder: negative dimensions")
	}
	if h.Field == "" {
		h.Field = FieldReal
	}
	if h.Symmetry == "" {
		h.Symmetry = General
	}

	return &Builder{header: h, r: r, c: c, index: make(map[key]Value)}
}

// Set stores v at 0-based (r, c), overwriting any previous value. For
// mirrored symmetries the value is also stored at (c, r).
//
// Errors: ErrValueWidth, ErrOutOfRange (plain sentinels; Parse adds the line).
func (b *Builder) Set(r, c int, v Value) error {
	if v.Len() != b.header.Field.Width() {
		return ErrValueWidth
	}
	if !b.inRange(r, c) {
		return ErrOutOfRange
	}
	// The mirror must fit too, or nothing is stored.
	mirror := b.header.Symmetry.Mirrored()
	if mirror && !b.inRange(c, r) {
		return ErrOutOfRange
	}

	b.index[key{r, c}] = v
	if mirror {
		b.index[key{c, r}] = v
	}

	return nil
}

func (b *Builder) inRange(r, c int) bool {
	return r >= 0 && r < b.r && c >= 0 && c < b.c
}

// Build groups the index by row and sorts every row by column.
// Complexity: O(NZ log NZ) time, O(NZ) memory.
func (b *Builder) Build() *Sparse {
	// Bucket entries by row; only rows that received a value get a bucket.
	byRow := make(map[int][]Entry)
	for k, v := range b.index {
		byRow[k.r] = append(byRow[k.r], Entry{Col: k.c, Value: v})
	}

	// Order the rows, then the columns inside each row.
	rowIdx := make([]int, 0, len(byRow))
	for r := range byRow {
		rowIdx = append(rowIdx, r)
	}
	slices.Sort(rowIdx)
	rowData := make([][]Entry, len(rowIdx))
	for i, r := range rowIdx {
		row := byRow[r]
		slices.SortFunc(row, func(x, y Entry) int { return x.Col - y.Col })
		rowData[i] = row
	}

	m := &Sparse{r: b.r, c: b.c, nnz: len(b.index), header: b.header, rowIdx: rowIdx, rowData: rowData}
	b.index = nil

	return m
}

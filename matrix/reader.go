// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Indices of the five banner fields.
const (
	hdrMagic = iota
	hdrObject
	hdrFormat
	hdrField
	hdrSymmetry
	hdrFields
)

// Parse builds the canonical matrix from the lines of a MatrixMarket
// coordinate file.
//
// Implementation:
//   - Stage 1: validate the banner (5 fields, magic, "matrix coordinate").
//   - Stage 2: skip the '%' comment block; read "R C NZ" (NZ advisory).
//   - Stage 3: feed every data line to a Builder (last-write-wins, mirrors).
//   - Stage 4: freeze into sorted rows; NNZ = distinct positions.
//
// Blank lines are ignored everywhere. A '%' line after the size line is
// treated as data and fails.
//
// Errors: *FormatError wrapping ErrBadHeader, ErrNotSparse, ErrBadDimensions,
// ErrBadEntry, ErrValueWidth or ErrOutOfRange. No partial matrix is returned.
func Parse(lines []string) (*Sparse, error) {
	if len(lines) == 0 {
		return nil, &FormatError{Err: ErrBadHeader}
	}

	// Banner.
	header := strings.Fields(lines[0])
	if len(header) != hdrFields || header[hdrMagic] != Magic {
		return nil, formatErrorf(0, ErrBadHeader, "")
	}
	if header[hdrObject] != objectMatrix || header[hdrFormat] != formatCoordinate {
		return nil, formatErrorf(0, ErrNotSparse, "%s %s", header[hdrObject], header[hdrFormat])
	}
	h := Header{Field: Field(header[hdrField]), Symmetry: Symmetry(header[hdrSymmetry])}

	// Skip the comment block up to the size line.
	i := 1
	for i < len(lines) && skippable(lines[i], true) {
		i++
	}
	if i == len(lines) {
		return nil, &FormatError{Err: ErrBadDimensions}
	}
	r, c, nz, err := parseSize(lines[i])
	if err != nil {
		return nil, formatErrorf(i, ErrBadDimensions, "%v", err)
	}
	h.DeclaredNNZ = nz

	// Data lines; a failing line aborts the whole parse.
	b := NewBuilder(r, c, h)
	for i++; i < len(lines); i++ {
		if skippable(lines[i], false) {
			continue
		}
		if err = parseEntry(b, lines[i]); err != nil {
			return nil, formatErrorf(i, err, "")
		}
	}

	return b.Build(), nil
}

// Read parses a MatrixMarket stream. See Parse.
func Read(rd io.Reader, opts ...Option) (*Sparse, error) {
	o := gatherOptions(opts...)

	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, min(minLineBytes, o.maxLineBytes)), o.maxLineBytes)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("matrix: read: %w", err)
	}

	return Parse(lines)
}

// ReadFile parses the MatrixMarket file at path. See Parse.
func ReadFile(path string, opts ...Option) (*Sparse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrix: open: %w", err)
	}
	defer f.Close()

	m, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// skippable reports blank lines, and comment lines while still in the
// comment block.
func skippable(line string, inComments bool) bool {
	t := strings.TrimSpace(line)
	if t == "" {
		return true
	}

	return inComments && t[0] == '%'
}

func parseSize(line string) (r, c, nz int, err error) {
	f := strings.Fields(line)
	if len(f) != 3 {
		return 0, 0, 0, fmt.Errorf("want 3 fields, got %d", len(f))
	}
	dims := [3]int{}
	for i, s := range f {
		if dims[i], err = strconv.Atoi(s); err != nil {
			return 0, 0, 0, fmt.Errorf("field %d: %q is not an integer", i+1, s)
		}
		if dims[i] < 0 {
			return 0, 0, 0, fmt.Errorf("field %d: negative value %d", i+1, dims[i])
		}
	}

	return dims[0], dims[1], dims[2], nil
}

// parseEntry decodes "row col [tokens...]" (1-based) into b.
func parseEntry(b *Builder, line string) error {
	tok := strings.Fields(line)
	if len(tok) < 2 {
		return ErrBadEntry
	}
	r, errR := strconv.Atoi(tok[0])
	c, errC := strconv.Atoi(tok[1])
	if errR != nil || errC != nil {
		return ErrBadEntry
	}
	if len(tok)-2 != b.header.Field.Width() {
		return ErrValueWidth
	}

	return b.Set(r-1, c-1, NewValue(tok[2:]...))
}

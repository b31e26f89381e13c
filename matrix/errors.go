// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set for MatrixMarket ingestion.
// Every parse failure is returned as *FormatError wrapping exactly one of the
// sentinels below; tests and callers match with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Each
// specific sentinel wraps ErrFormat, so errors.Is(err, ErrFormat) is true for
// every ingestion failure while errors.Is(err, ErrBadHeader) etc. still
// identifies the failed check.

var (
	// ErrFormat is the umbrella for all malformed-input failures.
	ErrFormat = errors.New("matrix: format error")

	// ErrBadHeader is returned when line 0 is not a five-field
	// "%%MatrixMarket ..." banner.
	ErrBadHeader = fmt.Errorf("%w: bad header", ErrFormat)

	// ErrNotSparse is returned when the banner does not describe a
	// "matrix coordinate" object (dense array formats are unsupported).
	ErrNotSparse = fmt.Errorf("%w: not a sparse matrix", ErrFormat)

	// ErrBadDimensions is returned when the size line is missing or is not
	// three non-negative integers.
	ErrBadDimensions = fmt.Errorf("%w: bad dimension line", ErrFormat)

	// ErrBadEntry is returned when a data line lacks integer row/col indices.
	ErrBadEntry = fmt.Errorf("%w: bad entry line", ErrFormat)

	// ErrValueWidth is returned when a data line carries a number of value
	// tokens different from the width implied by the header field.
	ErrValueWidth = fmt.Errorf("%w: wrong value width", ErrFormat)

	// ErrOutOfRange indicates an index (or its symmetric mirror) outside the
	// declared dimensions.
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrFormat)
)

// FormatError reports where ingestion failed. Line is 1-based; 0 means the
// failure is not tied to a specific line (e.g. empty input).
type FormatError struct {
	Line int
	Err  error
}

// Error implements error.
func (e *FormatError) Error() string {
	if e.Line == 0 {
		return e.Err.Error()
	}

	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *FormatError) Unwrap() error { return e.Err }

// formatErrorf builds a *FormatError at line (0-based input index) with an
// optional detail appended to the sentinel message.
func formatErrorf(line int, sentinel error, format string, args ...any) error {
	err := sentinel
	if format != "" {
		err = fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
	}

	return &FormatError{Line: line + 1, Err: err}
}

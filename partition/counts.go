// SPDX-License-Identifier: MIT

package partition

import "github.com/katalvlaran/mmpart/matrix"

// Matrix is the read-only view Verify needs. *matrix.Sparse satisfies it.
//
// RowIndices lists the rows that hold entries, in ascending order; scans
// walk it instead of [0, Rows()) so a huge declared shape costs nothing.
type Matrix interface {
	matrix.Shape
	RowIndices() []int
	Row(r int) []matrix.Entry
}

// Counts is the number of entries per label.
type Counts struct {
	Red        int `json:"red" yaml:"red"`
	Blue       int `json:"blue" yaml:"blue"`
	Unassigned int `json:"unassigned" yaml:"unassigned"`
}

// Add increments the counter of l. Unknown labels are ignored.
func (c *Counts) Add(l Label) {
	switch l {
	case Red:
		c.Red++
	case Blue:
		c.Blue++
	case Unassigned:
		c.Unassigned++
	}
}

// Total returns Red + Blue + Unassigned.
func (c Counts) Total() int { return c.Red + c.Blue + c.Unassigned }

// Redistribute assigns every unassigned entry deterministically.
//
// Implementation:
//   - Stage 1: move up to |Red-Blue| unassigned entries to the smaller side.
//   - Stage 2: split the remainder, (rem+1)/2 to red and rem/2 to blue.
//
// The result always has Unassigned == 0 and the same Total.
func (c Counts) Redistribute() Counts {
	toRed := max(0, min(c.Unassigned, c.Blue-c.Red))
	toBlue := max(0, min(c.Unassigned, c.Red-c.Blue))

	red := c.Red + toRed
	blue := c.Blue + toBlue
	rem := c.Unassigned - toRed - toBlue

	return Counts{Red: red + (rem+1)/2, Blue: blue + rem/2}
}

// MinDifference returns the smallest |Red-Blue| reachable by assigning the
// unassigned entries: d-f when d >= f, else (f-d) mod 2, with d = |Red-Blue|
// and f = Unassigned.
func (c Counts) MinDifference() int {
	d := c.Red - c.Blue
	if d < 0 {
		d = -d
	}
	f := c.Unassigned
	if d >= f {
		return d - f
	}

	return (f - d) % 2
}

// Imbalance returns max(Red, Blue) / ceil(nnz/2) - 1 for already
// redistributed counts. An empty matrix (nnz == 0) is perfectly balanced.
func Imbalance(balanced Counts, nnz int) float64 {
	half := (nnz + 1) / 2
	if half == 0 {
		return 0
	}

	return float64(max(balanced.Red, balanced.Blue))/float64(half) - 1.0
}

// CountLabels labels every value of m.
//
// Errors: *VerificationError wrapping ErrInvalidLabel at the first
// offending position in row-major order.
func CountLabels(m Matrix) (Counts, error) {
	var c Counts
	for _, r := range m.RowIndices() {
		for _, e := range m.Row(r) {
			l, err := labelOf(r, e)
			if err != nil {
				return Counts{}, err
			}
			c.Add(l)
		}
	}

	return c, nil
}

// labelOf parses the label of entry e in row r; positions in the error are
// 1-based like the file.
func labelOf(r int, e matrix.Entry) (Label, error) {
	l, ok := ParseLabel(e.Value)
	if !ok {
		return 0, failf(ErrInvalidLabel, "(%d,%d)=%q", r+1, e.Col+1, e.Value.String())
	}

	return l, nil
}

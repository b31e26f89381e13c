// SPDX-License-Identifier: MIT

package partition

import (
	"strconv"

	"github.com/katalvlaran/mmpart/matrix"
)

// Label is the closed set of partition categories.
type Label int

// Labels as encoded in partitioned files.
const (
	Red        Label = 1
	Blue       Label = 2
	Unassigned Label = 3
)

// String returns the lower-case category name.
func (l Label) String() string {
	switch l {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Unassigned:
		return "unassigned"
	default:
		return "label(" + strconv.Itoa(int(l)) + ")"
	}
}

// ParseLabel decodes a partitioned value: exactly one token whose integer
// value is 1, 2 or 3. ok is false for anything else.
func ParseLabel(v matrix.Value) (l Label, ok bool) {
	if v.Len() != 1 {
		return 0, false
	}
	n, err := strconv.Atoi(v.Token(0))
	if err != nil || n < int(Red) || n > int(Unassigned) {
		return 0, false
	}

	return Label(n), true
}

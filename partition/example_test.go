// SPDX-License-Identifier: MIT
package partition_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mmpart/matrix"
	"github.com/katalvlaran/mmpart/partition"
)

// ExampleVerify checks a partition of a small symmetric matrix where one
// unassigned entry is given to the smaller side.
func ExampleVerify() {
	orig, _ := matrix.Parse(strings.Split(`%%MatrixMarket matrix coordinate real symmetric
3 3 3
1 1 4.0
2 1 -1.0
3 3 2.0`, "\n"))
	part, _ := matrix.Parse(strings.Split(`%%MatrixMarket matrix coordinate integer general
3 3 4
1 1 1
1 2 1
2 1 2
3 3 3`, "\n"))

	rep, err := partition.Verify(orig, part, partition.WithEpsilon(0.1))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("raw %d/%d/%d -> %d vs %d, eps=%.2f\n",
		rep.Raw.Red, rep.Raw.Blue, rep.Raw.Unassigned, rep.Balanced.Red, rep.Balanced.Blue, rep.Imbalance)

	// Output:
	// raw 2/1/1 -> 2 vs 2, eps=0.00
}

// ExampleVerify_imbalanced shows how callers match the failed check.
func ExampleVerify_imbalanced() {
	orig, _ := matrix.Parse(strings.Split("%%MatrixMarket matrix coordinate pattern general\n1 4 4\n1 1\n1 2\n1 3\n1 4", "\n"))
	part, _ := matrix.Parse(strings.Split("%%MatrixMarket matrix coordinate integer general\n1 4 4\n1 1 1\n1 2 1\n1 3 1\n1 4 2", "\n"))

	_, err := partition.Verify(orig, part)
	fmt.Println(errors.Is(err, partition.ErrTooImbalanced))

	// Output:
	// true
}

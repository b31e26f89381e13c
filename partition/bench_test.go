// SPDX-License-Identifier: MIT
package partition_test

import (
	"testing"

	"github.com/katalvlaran/mmpart/partition"
)

// BenchmarkVerify_1M measures a full verification over 10^6 nonzeros.
func BenchmarkVerify_1M(b *testing.B) {
	orig, part := pair(b, 1000, 1000, labels(400_000, 400_000, 200_000))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := partition.Verify(orig, part); err != nil {
			b.Fatalf("Verify failed: %v", err)
		}
	}
}

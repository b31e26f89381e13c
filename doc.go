// Package mmpart verifies red/blue partitions of sparse matrices stored in
// MatrixMarket coordinate format.
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/    — MatrixMarket reader/writer and the canonical Sparse type
//	partition/ — labels, redistribution of unassigned entries, Verify
//	render/    — SVG, PNG and ASCII drawings of a partitioned matrix
//	config/    — viper-backed settings for the CLI
//
// and one command:
//
//	cmd/mmpart — verify, render, info, canonicalize
//
// Quick example:
//
//	orig, _ := matrix.ReadFile("A.mtx")
//	part, _ := matrix.ReadFile("A-partitioned.mtx")
//	rep, err := partition.Verify(orig, part, partition.WithEpsilon(0.03))
//
//	go install github.com/katalvlaran/mmpart/cmd/mmpart@latest
package mmpart

// Package orbit maintains automorphism group state: the generators
// captured during search (autogrp), the running orbit partition they
// induce (theta), and the sorted minimum-cell-representative list derived
// from it (mcr).
//
// theta is tracked internally as a disjoint-set forest over {0,...,n-1}
// (union by rank, path compression) rather than a parallel-array ptn/lab
// pair: merging two orbits on every new generator is the hot path, and
// union-find gives amortized-constant merges where splicing a
// partition.Partition cell on each union would cost O(n) per merge.
// Group.Theta converts to a partition.Partition on demand for callers that
// need a partition-shaped view.
//
// Errors: none; every operation here is total over a fixed universe size.
package orbit

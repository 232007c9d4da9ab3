package refine

import "github.com/DireMonarch/graph-canonical-relabel/partition"

// TargetCell returns the cell index of the smallest non-trivial cell of pi
// (the cell to individualize next), breaking ties in favor of the
// first-occurring cell and exiting early the moment a cell of size 2 is
// found, since no cell can ever be smaller (_target_cell). It returns -1 if
// pi is discrete.
// Complexity: O(len(pi.Ptn)), O(1) when a size-2 cell exists early in pi.
func TargetCell(pi *partition.Partition) int {
	cellIdx := 0
	start := 0
	bestIdx := -1
	bestSize := len(pi.Ptn) + 1

	for i := 0; i < len(pi.Ptn); i++ {
		if pi.Ptn[i] != 0 {
			continue
		}

		size := i - start + 1
		if size > 1 {
			if size == 2 {
				return cellIdx
			}
			if size < bestSize {
				bestSize = size
				bestIdx = cellIdx
			}
		}

		start = i + 1
		cellIdx++
	}

	return bestIdx
}

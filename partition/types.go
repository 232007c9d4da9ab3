package partition

import "errors"

// ErrLengthMismatch indicates the two partitions passed to
// GeneratePermutation disagree on the number of elements they partition.
var ErrLengthMismatch = errors.New("partition: length mismatch")

// Partition is an ordered partition of {0,...,len(Lab)-1}, represented as
// two parallel slices.
//
// Lab is a permutation of {0,...,n-1}: the elements in cell order.
// Ptn carries cell-end flags: Ptn[i]==0 ends a cell, Ptn[i]==1 continues it.
// Ptn[len(Ptn)-1] is always 0 for a full-universe partition; for a growable
// worklist partition (the "active" set alpha used inside Refine) the slice
// itself may represent only a subset of the universe and grows via
// AppendCellFrom/OverwriteCellFrom as refinement proceeds, realized here as
// ordinary Go slice growth rather than a fixed-capacity array.
type Partition struct {
	Lab []int
	Ptn []int
}

// Unit returns the unit partition of {0,...,n-1}: a single cell containing
// every element in natural order (generate_unit_partition).
// Complexity: O(n).
func Unit(n int) *Partition {
	lab := make([]int, n)
	ptn := make([]int, n)
	for i := 0; i < n; i++ {
		lab[i] = i
		if i < n-1 {
			ptn[i] = 1
		}
	}

	return &Partition{Lab: lab, Ptn: ptn}
}

// Copy returns a deep copy of pi (copy_partition).
// Complexity: O(len(pi.Lab)).
func Copy(pi *Partition) *Partition {
	lab := make([]int, len(pi.Lab))
	ptn := make([]int, len(pi.Ptn))
	copy(lab, pi.Lab)
	copy(ptn, pi.Ptn)

	return &Partition{Lab: lab, Ptn: ptn}
}

// IsDiscrete reports whether every cell of pi has size 1, i.e. every Ptn
// entry is 0 (is_partition_discrete).
// Complexity: O(len(pi.Ptn)).
func IsDiscrete(pi *Partition) bool {
	for _, p := range pi.Ptn {
		if p != 0 {
			return false
		}
	}

	return true
}

// CellCount returns the number of cells in pi (partition_cell_count): the
// number of Ptn entries equal to 0.
// Complexity: O(len(pi.Ptn)).
func CellCount(pi *Partition) int {
	count := 0
	for _, p := range pi.Ptn {
		if p == 0 {
			count++
		}
	}

	return count
}

package partition

// CellByIndex returns the start position (in Lab) and size of the k-th cell
// of pi, 0-indexed in cell order (get_partition_cell_by_index). Callers must
// ensure 0 <= k < CellCount(pi); out-of-range k returns (len(pi.Lab), 0).
// Complexity: O(len(pi.Ptn)) worst case.
func CellByIndex(pi *Partition, k int) (start, size int) {
	cell := 0
	cellStart := 0
	for i := 0; i < len(pi.Ptn); i++ {
		if pi.Ptn[i] == 0 {
			if cell == k {
				return cellStart, i - cellStart + 1
			}
			cell++
			cellStart = i + 1
		}
	}

	return len(pi.Lab), 0
}

// PartialCellCount returns the number of cells contained in the Lab-position
// range [cellStart, cellStart+cellSize) (partial_partition_cell_count): the
// count of Ptn==0 entries within that range.
// Complexity: O(cellSize).
func PartialCellCount(pi *Partition, cellStart, cellSize int) int {
	count := 0
	for i := cellStart; i < cellStart+cellSize; i++ {
		if pi.Ptn[i] == 0 {
			count++
		}
	}

	return count
}

// FirstIndexOfMaxCellSize returns the cell index (within the cell-index
// range [lo, hi)) of the largest cell, ties broken by the smallest index
// (first_index_of_max_cell_size_of_partition).
// Complexity: O(hi-lo).
func FirstIndexOfMaxCellSize(pi *Partition, lo, hi int) int {
	best := -1
	bestSize := -1
	for k := lo; k < hi; k++ {
		_, size := CellByIndex(pi, k)
		if size > bestSize {
			bestSize = size
			best = k
		}
	}

	return best
}

// cellSet returns the set of elements (as a map for O(1) membership tests)
// in pi's cell at cell index k, and that cell's size.
func cellSet(pi *Partition, k int) (map[int]struct{}, int) {
	start, size := CellByIndex(pi, k)
	set := make(map[int]struct{}, size)
	for i := start; i < start+size; i++ {
		set[pi.Lab[i]] = struct{}{}
	}

	return set, size
}

// IndexOfCellFrom returns the cell index within alpha whose element set
// equals pi's p-th cell's element set, or -1 if no such cell exists
// (get_index_of_cell_from_another_partition).
// Complexity: O(CellCount(alpha) * cellSize).
func IndexOfCellFrom(alpha, pi *Partition, p int) int {
	target, targetSize := cellSet(pi, p)

	n := CellCount(alpha)
	for k := 0; k < n; k++ {
		start, size := CellByIndex(alpha, k)
		if size != targetSize {
			continue
		}
		match := true
		for i := start; i < start+size; i++ {
			if _, ok := target[alpha.Lab[i]]; !ok {
				match = false
				break
			}
		}
		if match {
			return k
		}
	}

	return -1
}

// cellPtnPattern returns the Ptn pattern for a standalone cell of size size:
// size-1 entries of 1 followed by a single 0.
func cellPtnPattern(size int) []int {
	p := make([]int, size)
	for i := 0; i < size-1; i++ {
		p[i] = 1
	}

	return p
}

// AppendCellFrom appends src's i-th cell onto dst as a brand-new trailing
// cell (append_cell_to_partition_from_another_partition). dst grows by the
// size of the appended cell.
// Complexity: O(cell size).
func AppendCellFrom(src *Partition, i int, dst *Partition) {
	start, size := CellByIndex(src, i)
	lab := make([]int, size)
	copy(lab, src.Lab[start:start+size])

	dst.Lab = append(dst.Lab, lab...)
	dst.Ptn = append(dst.Ptn, cellPtnPattern(size)...)
}

// OverwriteCellFrom replaces dst's j-th cell with src's t-th cell
// (overwrite_partition_cell_with_cell_from_another_partition). The
// replacement cell may differ in size from the cell it replaces; dst's
// backing slices are spliced accordingly, leaving every other cell of dst
// untouched and in its original relative order.
// Complexity: O(len(dst.Lab)) worst case (slice splice).
func OverwriteCellFrom(src *Partition, t int, dst *Partition, j int) {
	srcStart, srcSize := CellByIndex(src, t)
	dstStart, dstSize := CellByIndex(dst, j)

	replacement := make([]int, srcSize)
	copy(replacement, src.Lab[srcStart:srcStart+srcSize])

	newLab := make([]int, 0, len(dst.Lab)-dstSize+srcSize)
	newLab = append(newLab, dst.Lab[:dstStart]...)
	newLab = append(newLab, replacement...)
	newLab = append(newLab, dst.Lab[dstStart+dstSize:]...)

	newPtn := make([]int, 0, len(dst.Ptn)-dstSize+srcSize)
	newPtn = append(newPtn, dst.Ptn[:dstStart]...)
	newPtn = append(newPtn, cellPtnPattern(srcSize)...)
	newPtn = append(newPtn, dst.Ptn[dstStart+dstSize:]...)

	dst.Lab = newLab
	dst.Ptn = newPtn
}

// GeneratePermutation returns the permutation taking labeling a to labeling
// b: for every position i, the result maps a.Lab[i] to b.Lab[i]
// (generate_permutation). Both a and b must be discrete partitions (bare
// permutations) of the same universe size.
// Complexity: O(n).
func GeneratePermutation(a, b *Partition) (*Partition, error) {
	if len(a.Lab) != len(b.Lab) {
		return nil, ErrLengthMismatch
	}
	n := len(a.Lab)
	lab := make([]int, n)
	for i := 0; i < n; i++ {
		lab[a.Lab[i]] = b.Lab[i]
	}

	return &Partition{Lab: lab, Ptn: make([]int, n)}, nil
}

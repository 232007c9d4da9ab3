package refine

import (
	"math/bits"
	"sort"

	"github.com/DireMonarch/graph-canonical-relabel/core"
	"github.com/DireMonarch/graph-canonical-relabel/partition"
)

// Refine computes the coarsest partition that refines pi and is equitable
// with respect to the active worklist active (refine). pi and active are
// read-only; both are copied before any mutation.
//
// The algorithm walks active as a FIFO worklist of "scope" cells. For each
// scope cell, every current cell of the working partition is split by
// scoped degree (the count of each vertex's neighbors lying in the scope
// cell). A cell that does not split is left alone; a cell that splits into
// k>1 fragments is replaced in place by those fragments, in ascending
// scoped-degree order. If the original cell itself was present in active
// (by element-set identity), the largest fragment overwrites that slot in
// active and every other fragment is appended to active; otherwise every
// fragment, largest included, is appended to active. This feeds new splits back into
// the worklist, so active grows across the pass and the outer loop keeps
// consuming it until every cell has been used as a scope or pi has become
// discrete.
// Complexity: O(n^2) worst case.
func Refine(g *core.Graph, pi, active *partition.Partition) *partition.Partition {
	piHat := partition.Copy(pi)
	alpha := partition.Copy(active)

	a := 0
	for a < partition.CellCount(alpha) && !partition.IsDiscrete(piHat) {
		scopeStart, scopeSize := partition.CellByIndex(alpha, a)
		// alpha is spliced as cells split below, so take the scope cell's
		// members now rather than re-reading them by position.
		scope := &partition.Partition{Lab: append([]int(nil), alpha.Lab[scopeStart:scopeStart+scopeSize]...)}

		p := 0
		for p < partition.CellCount(piHat) {
			alphaIdx := partition.IndexOfCellFrom(alpha, piHat, p)
			cellStart, cellSize := partition.CellByIndex(piHat, p)

			splitByScopedDegree(g, piHat, cellStart, cellSize, scope, 0, scopeSize)
			newSize := partition.PartialCellCount(piHat, cellStart, cellSize)

			if newSize == 1 {
				p++
				continue
			}

			t := partition.FirstIndexOfMaxCellSize(piHat, p, p+newSize)
			if alphaIdx > -1 {
				partition.OverwriteCellFrom(piHat, t, alpha, alphaIdx)
				for i := p; i < p+newSize; i++ {
					if i != t {
						partition.AppendCellFrom(piHat, i, alpha)
					}
				}
			} else {
				for i := p; i < p+newSize; i++ {
					partition.AppendCellFrom(piHat, i, alpha)
				}
			}

			p += newSize
		}

		a++
	}

	return piHat
}

// scopeBitset builds a words-wide bitset containing exactly the vertices
// named in scope, so scopedDegree can test an entire row against it a word
// at a time instead of calling Adjacent once per scope vertex.
func scopeBitset(g *core.Graph, scope []int) []uint64 {
	bitset := make([]uint64, g.Words())
	for _, u := range scope {
		bitset[u/64] |= uint64(1) << (uint(u) % 64)
	}

	return bitset
}

// scopedDegree returns the number of neighbors v has among the vertices
// named in scope (_scoped_degree), via v's raw adjacency row ANDed against
// scope's bitset.
// Complexity: O(words).
func scopedDegree(row, scope []uint64) int {
	d := 0
	for i, w := range row {
		d += bits.OnesCount64(w & scope[i])
	}

	return d
}

// degreeSplit pairs a vertex with its scoped degree for the stable sort in
// splitByScopedDegree.
type degreeSplit struct {
	vertex int
	degree int
}

type byDegree []degreeSplit

func (s byDegree) Len() int           { return len(s) }
func (s byDegree) Less(i, j int) bool { return s[i].degree < s[j].degree }
func (s byDegree) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// splitByScopedDegree splits pi's cell [cellStart, cellStart+cellSize) into
// contiguous runs of equal scoped degree, ordered by ascending degree, and
// rewrites pi's Lab/Ptn in place over that range
// (_partition_by_scoped_degree).
// Complexity: O(cellSize*words + cellSize*log(cellSize)).
func splitByScopedDegree(g *core.Graph, pi *partition.Partition, cellStart, cellSize int, scope *partition.Partition, scopeStart, scopeSize int) {
	scopeVerts := scope.Lab[scopeStart : scopeStart+scopeSize]
	scopeSet := scopeBitset(g, scopeVerts)

	rows := make(byDegree, cellSize)
	for i := 0; i < cellSize; i++ {
		v := pi.Lab[cellStart+i]
		rows[i] = degreeSplit{vertex: v, degree: scopedDegree(g.Row(v), scopeSet)}
	}

	sort.Stable(rows)

	for i, r := range rows {
		pi.Lab[cellStart+i] = r.vertex
	}
	for i := 0; i < cellSize; i++ {
		pos := cellStart + i
		if i == cellSize-1 {
			pi.Ptn[pos] = 0
			continue
		}
		if rows[i].degree == rows[i+1].degree {
			pi.Ptn[pos] = 1
		} else {
			pi.Ptn[pos] = 0
		}
	}
}

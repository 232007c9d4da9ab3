package orbit

import "github.com/DireMonarch/graph-canonical-relabel/partition"

// Theta is the running orbit partition θ under the automorphisms captured
// so far. It starts as the discrete partition (every vertex its own orbit)
// and coarsens monotonically as generators are merged in.
type Theta struct {
	uf *unionFind
}

// NewTheta returns the orbit partition of the trivial group on {0,...,n-1}:
// n singleton orbits.
func NewTheta(n int) *Theta {
	return &Theta{uf: newUnionFind(n)}
}

// MergePermutation folds a newly discovered automorphism into θ
// (automorphisms_merge_perm_into_orbit): every vertex and its image under
// aut are unioned into the same orbit, which transitively unions every
// element along aut's cycles.
// Complexity: O(n * α(n)).
func (t *Theta) MergePermutation(aut *partition.Partition) {
	for v, image := range aut.Lab {
		t.uf.union(v, image)
	}
}

// MCR returns the minimum cell representatives of θ: the smallest element
// of each orbit, ascending (automorphisms_calculate_mcr).
// Complexity: O(n log n).
func (t *Theta) MCR() []int {
	cells := t.uf.cells()
	mcr := make([]int, len(cells))
	for i, c := range cells {
		mcr[i] = c[0]
	}

	return mcr
}

// Partition renders θ as an ordered partition.Partition, cells laid out in
// ascending order of their minimum element, each cell's members ascending.
func (t *Theta) Partition() *partition.Partition {
	cells := t.uf.cells()
	n := len(t.uf.parent)
	lab := make([]int, 0, n)
	ptn := make([]int, 0, n)
	for _, c := range cells {
		lab = append(lab, c...)
		for i := range c {
			if i == len(c)-1 {
				ptn = append(ptn, 0)
			} else {
				ptn = append(ptn, 1)
			}
		}
	}

	return &partition.Partition{Lab: lab, Ptn: ptn}
}

// Group is the automorphism group discovered so far: an ordered sequence of
// generating permutations plus the orbit state they induce.
type Group struct {
	Generators []*partition.Partition
	Theta      *Theta
}

// NewGroup returns the trivial group on n points: no generators, θ discrete.
func NewGroup(n int) *Group {
	return &Group{Theta: NewTheta(n)}
}

// AddGenerator appends aut to the group's generating set and merges it into
// θ.
func (g *Group) AddGenerator(aut *partition.Partition) {
	g.Generators = append(g.Generators, aut)
	g.Theta.MergePermutation(aut)
}

// MCR returns the group's minimum cell representatives, ascending.
func (g *Group) MCR() []int {
	return g.Theta.MCR()
}

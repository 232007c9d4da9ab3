package canon_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DireMonarch/graph-canonical-relabel/builder"
	"github.com/DireMonarch/graph-canonical-relabel/canon"
	"github.com/DireMonarch/graph-canonical-relabel/core"
)

// relabel builds the graph obtained by applying perm to g: perm[v] names
// the vertex v is renamed to. Used to construct π(G) for the
// cl(G) == cl(π(G)) property below.
func relabel(t *testing.T, g *core.Graph, perm []int) *core.Graph {
	t.Helper()
	n := g.N()
	out, err := core.NewGraph(n)
	require.NoError(t, err)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if g.Adjacent(u, v) {
				require.NoError(t, out.AddEdge(perm[u], perm[v]))
			}
		}
	}
	return out
}

// canonicalEdgeSet relabels g through result.CL and returns its edges as a
// set of ascending (min,max) pairs, so two canonical forms can be compared
// for set equality regardless of how Run ordered its internal labeling.
func canonicalEdgeSet(g *core.Graph, result *canon.Result) map[[2]int]bool {
	out := make(map[[2]int]bool)
	n := g.N()
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if !g.Adjacent(u, v) {
				continue
			}
			a, b := result.CL.Lab[u], result.CL.Lab[v]
			if a > b {
				a, b = b, a
			}
			out[[2]int{a, b}] = true
		}
	}
	return out
}

// countAutomorphisms brute-forces |Aut(G)| by checking every permutation of
// [0,n) for adjacency preservation. Only used on graphs small enough (n<=8)
// for this to be tractable; it is independent of canon/orbit so it serves
// as an outside check on the |AutoGroup| >= log2|Aut(G)| property.
func countAutomorphisms(g *core.Graph) int {
	n := g.N()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	count := 0
	var permute func(k int)
	permute = func(k int) {
		if k == n {
			if isAutomorphism(g, perm) {
				count++
			}
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			permute(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	permute(0)
	return count
}

func isAutomorphism(g *core.Graph, perm []int) bool {
	n := g.N()
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if g.Adjacent(u, v) != g.Adjacent(perm[u], perm[v]) {
				return false
			}
		}
	}
	return true
}

// randomGraphs builds a small table of random graphs (n <= 8) via builder's
// stochastic constructors, each with a fixed seed for reproducibility.
func randomGraphs(t *testing.T) []*core.Graph {
	t.Helper()
	var graphs []*core.Graph

	sparseCases := []struct {
		n    int
		p    float64
		seed int64
	}{
		{5, 0.3, 1}, {6, 0.5, 2}, {7, 0.4, 3}, {8, 0.2, 4},
	}
	for _, c := range sparseCases {
		g, err := builder.RandomSparse(c.n, c.p, builder.WithSeed(c.seed))
		require.NoError(t, err)
		graphs = append(graphs, g)
	}

	regularCases := []struct {
		n, d int
		seed int64
	}{
		{6, 3, 11}, {8, 3, 12}, {8, 4, 13},
	}
	for _, c := range regularCases {
		g, err := builder.RandomRegular(c.n, c.d, builder.WithSeed(c.seed))
		require.NoError(t, err)
		graphs = append(graphs, g)
	}

	return graphs
}

// TestRun_CanonicalFormInvariantUnderRelabeling checks spec's property-based
// requirement: for random small graphs (n<=8), cl(G) must equal cl(π(G))
// for any permutation π.
func TestRun_CanonicalFormInvariantUnderRelabeling(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i, g := range randomGraphs(t) {
		perm := rng.Perm(g.N())
		g2 := relabel(t, g, perm)

		r1, err := canon.Run(g)
		require.NoError(t, err)
		r2, err := canon.Run(g2)
		require.NoError(t, err)

		assert.Equal(t, canonicalEdgeSet(g, r1), canonicalEdgeSet(g2, r2),
			"graph %d (n=%d): cl(G) must equal cl(pi(G)) under permutation %v", i, g.N(), perm)
	}
}

// TestRun_AutomorphismGroupSizeBound checks spec's second property: the
// number of recorded generators is at least log2 of the true automorphism
// group order. Run expands every leaf (no orbit pruning), and every leaf
// whose invariant ties the final best records a generator, so
// |AutoGroup| >= |Aut(G)|-1 >= log2|Aut(G)|.
func TestRun_AutomorphismGroupSizeBound(t *testing.T) {
	for i, g := range randomGraphs(t) {
		result, err := canon.Run(g)
		require.NoError(t, err)

		autOrder := countAutomorphisms(g)
		bound := math.Log2(float64(autOrder))

		assert.GreaterOrEqual(t, float64(len(result.AutoGroup)), bound,
			"graph %d (n=%d): |AutoGroup|=%d must be >= log2(|Aut(G)|=%d)=%.3f",
			i, g.N(), len(result.AutoGroup), autOrder, bound)
	}
}

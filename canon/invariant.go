package canon

import (
	"github.com/DireMonarch/graph-canonical-relabel/core"
	"github.com/DireMonarch/graph-canonical-relabel/partition"
)

// invariant is the serialized adjacency matrix of a graph under some
// labeling: every row's bitset words, concatenated vertex 0..n-1
// (calculate_invariant). Two invariants compare equal iff the underlying
// labeled graphs are bitwise identical.
type invariant []uint64

// calculateInvariant returns the invariant of G relabeled by perm: vertex v
// of G becomes vertex perm.Lab[v] in the result.
// Complexity: O(n^2).
func calculateInvariant(g *core.Graph, perm *partition.Partition) invariant {
	n := g.N()
	relabeled, err := core.NewGraph(n)
	if err != nil {
		panic(err) // n came from an already-valid graph; cannot fail here
	}

	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if g.Adjacent(u, v) {
				_ = relabeled.AddEdge(perm.Lab[u], perm.Lab[v])
			}
		}
	}

	out := make(invariant, 0, n*relabeled.Words())
	for v := 0; v < n; v++ {
		out = append(out, relabeled.Row(v)...)
	}

	return out
}

// compareInvariants returns -1, 0, or 1 as x is less than, equal to, or
// greater than y in the total order over serialized invariants
// (compare_invariants). Equal-length invariants (the only case Run ever
// compares, since both come from the same n-vertex graph) compare
// word-by-word in row-major order.
func compareInvariants(x, y invariant) int {
	for i := 0; i < len(x) && i < len(y); i++ {
		if x[i] < y[i] {
			return -1
		}
		if x[i] > y[i] {
			return 1
		}
	}
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	default:
		return 0
	}
}

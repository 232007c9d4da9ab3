package canon

import (
	"testing"

	"github.com/DireMonarch/graph-canonical-relabel/core"
	"github.com/DireMonarch/graph-canonical-relabel/partition"
)

func mustGraph(t *testing.T, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}
	return g
}

func TestCalculateInvariant_IdentityMatchesGraph(t *testing.T) {
	g := mustGraph(t, 3, [][2]int{{0, 1}, {1, 2}})
	identity := &partition.Partition{Lab: []int{0, 1, 2}}
	invar := calculateInvariant(g, identity)

	if len(invar) != 3*g.Words() {
		t.Fatalf("unexpected invariant length: %d", len(invar))
	}
	for v := 0; v < 3; v++ {
		for w, word := range g.Row(v) {
			if invar[v*g.Words()+w] != word {
				t.Fatalf("row %d word %d: got %d, want %d", v, w, invar[v*g.Words()+w], word)
			}
		}
	}
}

func TestCompareInvariants_Equal(t *testing.T) {
	g := mustGraph(t, 3, [][2]int{{0, 1}, {1, 2}})
	identity := &partition.Partition{Lab: []int{0, 1, 2}}
	a := calculateInvariant(g, identity)
	b := calculateInvariant(g, identity)

	if compareInvariants(a, b) != 0 {
		t.Fatal("identical invariants must compare equal")
	}
}

func TestCalculateInvariant_PermutationChangesSerialization(t *testing.T) {
	// P3: 0-1-2. Permuting so the high-degree vertex lands at index 0
	// instead of index 1 must change the serialized invariant.
	g := mustGraph(t, 3, [][2]int{{0, 1}, {1, 2}})
	identity := &partition.Partition{Lab: []int{0, 1, 2}}
	swapped := &partition.Partition{Lab: []int{1, 0, 2}} // vertex1 -> position0

	a := calculateInvariant(g, identity)
	b := calculateInvariant(g, swapped)

	if compareInvariants(a, b) == 0 {
		t.Fatal("expected different invariants under a non-automorphism relabeling")
	}
}

func TestCalculateInvariant_AutomorphismMatches(t *testing.T) {
	// P3 has automorphism swapping the two leaves (0 2); the invariant
	// should be identical since swapped(G) == G.
	g := mustGraph(t, 3, [][2]int{{0, 1}, {1, 2}})
	identity := &partition.Partition{Lab: []int{0, 1, 2}}
	leafSwap := &partition.Partition{Lab: []int{2, 1, 0}}

	a := calculateInvariant(g, identity)
	b := calculateInvariant(g, leafSwap)

	if compareInvariants(a, b) != 0 {
		t.Fatal("expected the leaf-swap automorphism to preserve the invariant")
	}
}

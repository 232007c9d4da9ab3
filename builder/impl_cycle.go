package builder

import (
	"fmt"

	"github.com/DireMonarch/graph-canonical-relabel/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle builds an n-vertex simple cycle C_n (n >= 3): edges i -> (i+1)%n
// for i = 0..n-1.
// Complexity: O(n).
func Cycle(n int) (*core.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCycle, err)
	}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if err := g.AddEdge(i, j); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCycle, i, j, err)
		}
	}

	return g, nil
}

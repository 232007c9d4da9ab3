package builder

import (
	"fmt"

	"github.com/DireMonarch/graph-canonical-relabel/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star builds a star graph S_n (n >= 2): vertex 0 is the hub, adjacent to
// every spoke vertex 1..n-1.
// Complexity: O(n).
func Star(n int) (*core.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodStar, err)
	}

	for i := 1; i < n; i++ {
		if err := g.AddEdge(0, i); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodStar, 0, i, err)
		}
	}

	return g, nil
}

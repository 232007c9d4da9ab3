package builder

import (
	"fmt"

	"github.com/DireMonarch/graph-canonical-relabel/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds a simple path P_n (n >= 2): edges (i-1) -> i for i = 1..n-1.
// Complexity: O(n).
func Path(n int) (*core.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPath, err)
	}

	for i := 1; i < n; i++ {
		if err := g.AddEdge(i-1, i); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodPath, i-1, i, err)
		}
	}

	return g, nil
}

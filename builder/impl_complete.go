package builder

import (
	"fmt"

	"github.com/DireMonarch/graph-canonical-relabel/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds the complete simple graph K_n (n >= 1): every pair of
// distinct vertices is adjacent.
// Complexity: O(n^2).
func Complete(n int) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodComplete, err)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, i, j, err)
			}
		}
	}

	return g, nil
}

package builder

import (
	"fmt"
	"math/rand"

	"github.com/DireMonarch/graph-canonical-relabel/core"
)

// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//   - Stable trial order: i asc, then j asc (j>i), so a fixed seed always
//     reproduces the same edge set.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices).
//   - 0 <= p <= 1 (else ErrInvalidProbability).
//   - A nil rng (no WithRand/WithSeed option given) falls back to a fixed
//     default seed, so calls without an explicit RNG are still reproducible.
//
// Complexity: O(n^2) Bernoulli trials.
const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse builds an Erdős–Rényi-style simple graph over n vertices,
// including each edge independently with probability p.
func RandomSparse(n int, p float64, opts ...BuilderOption) (*core.Graph, error) {
	if n < minRandomSparseVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
	}

	cfg := newBuilderConfig(opts...)
	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, err)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			switch {
			case p == probMax:
			case p == probMin:
				continue
			case rng.Float64() >= p:
				continue
			}
			if err := g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomSparse, i, j, err)
			}
		}
	}

	return g, nil
}

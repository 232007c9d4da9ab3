package builder

import (
	"fmt"
	"math/rand"

	"github.com/DireMonarch/graph-canonical-relabel/core"
)

// Canonical model:
//   - d-regular simple graph via stub-matching (pairing) with bounded
//     retries: build a stub list of length n*d (each vertex repeated d
//     times), shuffle, and pair consecutive stubs. A pairing is rejected
//     and reshuffled if it would create a self-loop or a duplicate edge,
//     since the target graph is simple.
//
// Contract:
//   - n >= 1; 0 <= d < n; n*d must be even (else ErrInvalidDegree).
//   - A nil rng (no WithRand/WithSeed option) falls back to a fixed
//     default seed, so calls without an explicit RNG are reproducible.
//   - Gives up after a small bounded number of attempts (ErrConstructFailed).
//
// Complexity: O(n*d) per attempt, constant-bounded attempts.
const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 100
)

// RandomRegular builds a d-regular simple graph on n vertices using
// stub-matching with bounded retries.
func RandomRegular(n, d int, opts ...BuilderOption) (*core.Graph, error) {
	if n < minRRVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
	}
	if d < 0 || d >= n {
		return nil, fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", methodRandomRegular, n, d, ErrInvalidDegree)
	}
	if (n*d)%2 != 0 {
		return nil, fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", methodRandomRegular, n, d, ErrInvalidDegree)
	}

	cfg := newBuilderConfig(opts...)
	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomRegular, err)
	}

	stubCount := n * d
	if stubCount == 0 {
		return g, nil
	}
	stubs := make([]int, stubCount)
	for i, pos := 0, 0; i < n; i++ {
		for k := 0; k < d; k++ {
			stubs[pos] = i
			pos++
		}
	}

	for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
		rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		valid := true
		seen := make(map[[2]int]struct{}, stubCount/2)
		for i := 0; i < stubCount; i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				valid = false
				break
			}
			if u > v {
				u, v = v, u
			}
			key := [2]int{u, v}
			if _, dup := seen[key]; dup {
				valid = false
				break
			}
			seen[key] = struct{}{}
		}
		if !valid {
			continue
		}

		for i := 0; i < stubCount; i += 2 {
			u, v := stubs[i], stubs[i+1]
			if err := g.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomRegular, u, v, err)
			}
		}
		return g, nil
	}

	return nil, fmt.Errorf("%s: failed to construct after %d attempts: %w", methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
}

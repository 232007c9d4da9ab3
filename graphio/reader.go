package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/DireMonarch/graph-canonical-relabel/core"
)

// ReadAdjacencyMatrix parses a plain-text adjacency matrix (the format
// WriteAdjacencyMatrix produces: one row per line, space-separated 0/1
// entries) and builds the corresponding core.Graph.
//
// The matrix must be square, symmetric, and have a zero diagonal; any
// other shape is rejected rather than silently coerced into a graph.
// Complexity: O(n^2).
func ReadAdjacencyMatrix(r io.Reader) (*core.Graph, error) {
	var rows [][]byte
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var width int
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tokens := strings.Fields(line)
		if rows == nil {
			width = len(tokens)
		} else if len(tokens) != width {
			return nil, fmt.Errorf("graphio: row %d has %d entries, want %d: %w", len(rows), len(tokens), width, ErrRaggedRow)
		}

		row := make([]byte, width)
		for j, tok := range tokens {
			switch tok {
			case "0":
				row[j] = 0
			case "1":
				row[j] = 1
			default:
				return nil, fmt.Errorf("graphio: row %d col %d: %q: %w", len(rows), j, tok, ErrInvalidToken)
			}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	if len(rows) != width {
		return nil, fmt.Errorf("graphio: %d rows, %d columns: %w", len(rows), width, ErrAsymmetric)
	}

	n := len(rows)
	for i := 0; i < n; i++ {
		if rows[i][i] != 0 {
			return nil, fmt.Errorf("graphio: nonzero diagonal at %d: %w", i, ErrAsymmetric)
		}
		for j := i + 1; j < n; j++ {
			if rows[i][j] != rows[j][i] {
				return nil, fmt.Errorf("graphio: entries (%d,%d) and (%d,%d) disagree: %w", i, j, j, i, ErrAsymmetric)
			}
		}
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rows[i][j] == 1 {
				if err := g.AddEdge(i, j); err != nil {
					return nil, fmt.Errorf("graphio: AddEdge(%d,%d): %w", i, j, err)
				}
			}
		}
	}

	return g, nil
}

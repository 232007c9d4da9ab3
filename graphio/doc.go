// Package graphio reads and writes core.Graph as a plain-text adjacency
// matrix: one line per row, space-separated 0/1 entries, in the style of
// nauty's putam (print adjacency matrix) and a row-per-line Dense.String()
// convention.
//
// Both directions go through core.Graph's public constructor surface
// (NewGraph/AddEdge/Adjacent) only; graphio never reaches into refine,
// partition, or canon internals.
//
// Errors:
//
//	ErrEmptyInput   - ReadAdjacencyMatrix given a reader with no rows.
//	ErrRaggedRow    - a row has a different entry count than the first row.
//	ErrInvalidToken - an entry is not "0" or "1".
//	ErrAsymmetric   - the matrix is not symmetric, or has a nonzero diagonal.
package graphio

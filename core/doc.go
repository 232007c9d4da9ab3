// Package core defines Graph, the fixed-size adjacency representation that
// the refine, partition, canon, and orbit packages operate over.
//
// A Graph is a simple undirected graph on vertices {0, ..., n-1}: no
// self-loops, no parallel edges, no direction. Internally each vertex's
// neighborhood is stored as a bitset packed into 64-bit words (m words per
// row), so adjacency tests and scoped-degree counts are a handful of word
// operations rather than a map lookup.
//
// A Graph is built once via NewGraph/AddEdge and is read-only for the
// remainder of its lifetime: every search node produced by canon.Run shares
// the same *Graph without copying it.
//
// Errors:
//
//	ErrInvalidSize        - NewGraph called with n < 0.
//	ErrVertexOutOfRange   - AddEdge given a vertex outside [0,n).
//	ErrSelfLoop           - AddEdge called with u == v.
//	ErrDuplicateEdge      - AddEdge called twice for the same unordered pair.
package core

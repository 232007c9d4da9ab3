// Package canon implements the search driver, leaf processing, and the
// public Run entrypoint that ties refine, partition, and orbit together
// into a canonical labeling and automorphism group for a graph.
//
// Run seeds an explicit stack from the refinement of the unit partition,
// then repeatedly pops a node, individualizes its last chosen vertex,
// refines again, and either processes a leaf (discrete partition) or
// pushes one child per vertex of the new target cell, in reverse order so
// the stack emits them ascending. Leaf processing computes a graph
// invariant under the leaf's labeling, compares it against the best
// invariant seen so far, and either adopts a new canonical label or records
// an automorphism.
//
// Errors:
//
//	ErrNilGraph - Run was called with a nil *core.Graph.
//
// Complexity: exponential in the worst case (the search tree itself), but
// bounded in practice by the branching the refinement step prunes away.
package canon

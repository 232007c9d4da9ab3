// Package refine implements equitable partition refinement and target-cell
// selection, the two primitives the canon search driver calls at every
// node.
//
// Refine computes the coarsest partition that both refines a starting
// partition and is equitable with respect to an active set of cells, by
// repeatedly splitting cells on scoped degree (the count of neighbors each
// vertex has inside an active cell) and feeding newly created fragments back
// into the active worklist, following a "largest fragment replaces, others
// append" rule.
//
// TargetCell picks the smallest non-trivial cell (first occurrence, with an
// early exit on size 2) to individualize next.
//
// Complexity: Refine is O(n^2) per call in the worst case (each of up to n
// active-cell passes may re-scan all n vertices); TargetCell is O(n).
package refine

// Package builder provides deterministic graph-topology constructors over
// core.Graph: Complete, Cycle, Path, Star, and the stochastic RandomSparse
// and RandomRegular, used to build fixtures for end-to-end scenarios and
// property-based tests.
//
// Unlike a general-purpose multigraph builder, core.Graph fixes its vertex
// count at construction (NewGraph(n)); there is no incremental AddVertex to
// compose against, so each topology constructor here returns a freshly
// built *core.Graph rather than mutating a shared one through a
// Constructor/BuildGraph pipeline. The functional-options shape
// (BuilderOption, WithSeed/WithRand) and the sentinel-error policy are
// unchanged from that wider convention.
//
// Errors:
//
//	ErrTooFewVertices - n is smaller than the topology's minimum.
//	ErrInvalidProbability - RandomSparse's p is outside [0,1].
//	ErrInvalidDegree - RandomRegular's d is outside [0,n) or n*d is odd.
//	ErrConstructFailed - RandomRegular exhausted its retry budget.
package builder

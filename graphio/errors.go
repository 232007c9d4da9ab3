package graphio

import "errors"

// ErrEmptyInput indicates ReadAdjacencyMatrix was given a reader with no
// rows at all.
var ErrEmptyInput = errors.New("graphio: empty input")

// ErrRaggedRow indicates a row's entry count disagrees with the first row's.
var ErrRaggedRow = errors.New("graphio: ragged row")

// ErrInvalidToken indicates a matrix entry was not "0" or "1".
var ErrInvalidToken = errors.New("graphio: invalid entry, want 0 or 1")

// ErrAsymmetric indicates the parsed matrix is not symmetric with a zero
// diagonal, so it cannot represent a simple undirected graph.
var ErrAsymmetric = errors.New("graphio: matrix is not a valid simple-graph adjacency matrix")

package builder

import "errors"

// ErrTooFewVertices indicates n is smaller than the minimum a topology
// constructor requires.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates RandomSparse's p lies outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidDegree indicates RandomRegular's d is outside [0,n) or that
// n*d is odd (a d-regular simple graph on n vertices cannot exist).
var ErrInvalidDegree = errors.New("builder: invalid degree")

// ErrConstructFailed indicates RandomRegular exhausted its bounded
// stub-matching retries without finding a valid pairing.
var ErrConstructFailed = errors.New("builder: construction failed")

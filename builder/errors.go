// Package: lvsteiner/builder
//
// errors.go — sentinel errors. Callers branch with errors.Is; constructors
// add context with fmt.Errorf("%s: ...: %w", method, ...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil RNG (see WithSeed).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction failure such as a nil
// constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

package steiner

import (
	"errors"
	"math"
)

// Sentinel errors returned by the solvers. Context is added with %w.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("steiner: graph is nil")

	// ErrInvalidGraph indicates a directed or unweighted graph.
	ErrInvalidGraph = errors.New("steiner: graph must be undirected and weighted")

	// ErrNegativeWeight indicates an edge with a negative weight.
	ErrNegativeWeight = errors.New("steiner: negative edge weight")

	// ErrNoTerminals indicates an empty terminal list.
	ErrNoTerminals = errors.New("steiner: no terminals")

	// ErrUnknownTerminal indicates a terminal that is not a vertex of the graph.
	ErrUnknownTerminal = errors.New("steiner: terminal not in graph")

	// ErrDuplicateTerminal indicates a terminal listed twice.
	ErrDuplicateTerminal = errors.New("steiner: duplicate terminal")

	// ErrTerminalFlags indicates a terminal flag map that disagrees with the
	// terminal list.
	ErrTerminalFlags = errors.New("steiner: terminal flags disagree with terminal list")

	// ErrDisconnected indicates that some terminals cannot reach each other.
	ErrDisconnected = errors.New("steiner: terminals are not connected")

	// ErrComponentSize indicates a maximum component size larger than the
	// number of terminals.
	ErrComponentSize = errors.New("steiner: component size exceeds number of terminals")

	// ErrBadOption indicates an invalid option value.
	ErrBadOption = errors.New("steiner: invalid option")
)

// Inf is the saturating distance sentinel for unreachable pairs.
const Inf = int64(math.MaxInt64)

// addSat returns a+b, or Inf if either operand is Inf or the sum overflows.
func addSat(a, b int64) int64 {
	if a == Inf || b == Inf {
		return Inf
	}
	if s := a + b; s >= a {
		return s
	}

	return Inf
}

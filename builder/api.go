// Package: lvsteiner/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves
//     cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     graphs.
//   - Constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors and preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Constructors may be composed: later ones see the vertices and edges added
// by earlier ones (e.g. Path(n) followed by RandomSparse(n, p) yields a
// connected random graph).
//
// Errors:
//   - Constructor errors wrapped as "BuildGraph: %w"; branch with errors.Is
//     against ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//     ErrConstructFailed.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// nextWeight draws the weight of the next edge under the graph's weighting
// policy.
func nextWeight(g *core.Graph, cfg builderConfig) int64 {
	if !g.Weighted() {
		return 0
	}

	return cfg.weightFn(cfg.rng)
}

// addEdge adds u—v unless the graph forbids parallel edges and one exists
// already.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	if !g.Multigraph() && g.HasEdge(u, v) {
		return nil
	}
	w := nextWeight(g, cfg)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

// addVertices inserts cfg.idFn(0..n-1) in ascending order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

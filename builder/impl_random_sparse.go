// Package: lvsteiner/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like: each unordered pair {i,j}, i<j, is included
//     independently with probability p.
//   - Pairs already connected by an earlier constructor are skipped unless
//     the graph allows multi-edges.
//
// Contract:
//   - n ≥ 1 (ErrTooFewVertices), 0 ≤ p ≤ 1 (ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (ErrNeedRandSource).
//
// Determinism:
//   - Trial order i asc, j asc; fixed seed ⇒ identical graph.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random graph over n
// vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Vertices
		if err := addVertices(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}

		// 3) Trials
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				switch {
				case p == probMin:
					continue
				case p < probMax && rng.Float64() >= p:
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

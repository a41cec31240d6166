// Package: lvsteiner/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Path: n ≥ 2, edges (i-1)—i for i=1..n-1.
//   - Cycle: n ≥ 3, Path plus the closing edge (n-1)—0.
//   - Vertices via cfg.idFn in ascending index order.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return emitPath(g, cfg, methodPath, n)
	}
}

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := emitPath(g, cfg, methodCycle, n); err != nil {
			return err
		}

		return addEdge(g, cfg, methodCycle, cfg.idFn(n-1), cfg.idFn(0))
	}
}

func emitPath(g *core.Graph, cfg builderConfig, method string, n int) error {
	if err := addVertices(g, cfg, method, n); err != nil {
		return err
	}
	for i := 1; i < n; i++ {
		if err := addEdge(g, cfg, method, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
			return err
		}
	}

	return nil
}

package steiner

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/prim_kruskal"
)

// Kou returns the Kou–Markowsky–Berman 2(1-1/t) approximation of a minimum
// Steiner tree: the minimum spanning tree of the shortest-path distance
// graph on the terminals, expanded into paths, re-spanned and pruned.
//
// Errors: the validation errors of the input (see RZLoss.Call).
// Complexity: O(t·(V+E) log V + t²).
func Kou(g *core.Graph, terminals []string) (int64, *core.Graph, error) {
	p, err := newProblem(g, terminals, nil)
	if err != nil {
		return 0, nil, err
	}
	edges, err := kouEdges(p.inst, p.terminals, p.isTerm, newRowCache(p.inst))
	if err != nil {
		return 0, nil, err
	}

	return assemble(p, edges)
}

// kouEdges runs Kou over required and prunes every leaf not flagged in keep.
func kouEdges(inst *instance, required []int, keep []bool, rows *rowCache) ([]core.Edge, error) {
	if len(required) == 1 {
		return nil, nil
	}

	// 1) Distance-graph MST.
	parent, ok := densePrim(len(required), func(i, j int) int64 { return rows.d(required[i], required[j]) })
	if !ok {
		return nil, ErrDisconnected
	}

	// 2) Expand into shortest paths.
	var ids []string
	seen := make(map[string]bool)
	for i := 1; i < len(required); i++ {
		for _, h := range rows.path(required[parent[i]], required[i]) {
			if !seen[h.edge] {
				seen[h.edge] = true
				ids = append(ids, h.edge)
			}
		}
	}
	sub, err := core.EdgeSubgraph(inst.g, ids)
	if err != nil {
		return nil, fmt.Errorf("kou: %w", err)
	}

	// 3) Re-span and prune.
	mst, _, err := prim_kruskal.Kruskal(sub)
	if err != nil {
		return nil, fmt.Errorf("kou: %w", err)
	}

	return pruneLeaves(inst, mst, keep), nil
}

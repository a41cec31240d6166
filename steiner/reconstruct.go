package steiner

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvsteiner/core"
)

// reconstruct turns the terminal set extended by promoted Steiner points
// into a tree of the original graph. It evaluates, in order, Kou over all
// required vertices, Kou over the original terminals, and Takahashi over
// all required vertices from every original terminal, and returns the
// lightest tree. Ties keep the earlier candidate.
//
// Panics if a candidate fails IsSteinerTree.
func reconstruct(p *problem, tg *terminalGraph, rows *rowCache, log *slog.Logger) (int64, *core.Graph, error) {
	required, promoted := tg.required(), tg.promoted

	var (
		bestW    int64
		bestTree *core.Graph
		bestName string
	)
	consider := func(name string, edges []core.Edge, err error) error {
		if err != nil {
			return fmt.Errorf("reconstruction %s: %w", name, err)
		}
		w, tree, err := assemble(p, edges)
		if err != nil {
			return fmt.Errorf("reconstruction %s: %w", name, err)
		}
		if !IsSteinerTree(tree, terminalIDs(p)) {
			panic(fmt.Sprintf("steiner: reconstruction %s produced an invalid tree", name))
		}
		if bestTree == nil || w < bestW {
			bestW, bestTree, bestName = w, tree, name
		}

		return nil
	}

	edges, err := kouEdges(p.inst, required, p.isTerm, rows)
	if err = consider("kou(terminals+promoted)", edges, err); err != nil {
		return 0, nil, err
	}
	if len(promoted) > 0 {
		edges, err = kouEdges(p.inst, p.terminals, p.isTerm, rows)
		if err = consider("kou(terminals)", edges, err); err != nil {
			return 0, nil, err
		}
	}
	for _, root := range p.terminals {
		edges, err = takahashiEdges(p.inst, tg.isTerm, p.isTerm, len(required), root)
		if err = consider("takahashi", edges, err); err != nil {
			return 0, nil, err
		}
	}
	log.Debug("reconstruction done",
		slog.String("winner", bestName),
		slog.Int("promoted", len(promoted)),
		slog.Int64("weight", bestW))

	return bestW, bestTree, nil
}

// pruneLeaves repeatedly removes leaves that are not flagged in keep from
// the forest edges and returns the remaining edges in their original order.
func pruneLeaves(inst *instance, edges []core.Edge, keep []bool) []core.Edge {
	ends := make([][2]int, len(edges))
	inc := make(map[int][]int, 2*len(edges))
	deg := make(map[int]int, 2*len(edges))
	for i, e := range edges {
		u, v := inst.index[e.From], inst.index[e.To]
		ends[i] = [2]int{u, v}
		inc[u] = append(inc[u], i)
		inc[v] = append(inc[v], i)
		deg[u]++
		deg[v]++
	}

	removed := make([]bool, len(edges))
	var queue []int
	for v, d := range deg {
		if d == 1 && !keep[v] {
			queue = append(queue, v)
		}
	}
	var v, w int
	for len(queue) > 0 {
		v = queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if deg[v] != 1 {
			continue
		}
		for _, i := range inc[v] {
			if removed[i] {
				continue
			}
			removed[i] = true
			deg[v]--
			if w = ends[i][0]; w == v {
				w = ends[i][1]
			}
			if deg[w]--; deg[w] == 1 && !keep[w] {
				queue = append(queue, w)
			}
			break
		}
	}

	out := make([]core.Edge, 0, len(edges))
	for i, e := range edges {
		if !removed[i] {
			out = append(out, e)
		}
	}

	return out
}

// assemble materializes edges as a subgraph of the input graph. A tree
// without edges holds the single terminal.
func assemble(p *problem, edges []core.Edge) (int64, *core.Graph, error) {
	ids := make([]string, len(edges))
	var w int64
	for i, e := range edges {
		ids[i] = e.ID
		w += e.Weight
	}
	tree, err := core.EdgeSubgraph(p.inst.g, ids)
	if err != nil {
		return 0, nil, err
	}
	if len(edges) == 0 {
		if err = tree.AddVertex(p.inst.ids[p.terminals[0]]); err != nil {
			return 0, nil, err
		}
	}

	return w, tree, nil
}

func terminalIDs(p *problem) []string {
	out := make([]string, len(p.terminals))
	for i, v := range p.terminals {
		out[i] = p.inst.ids[v]
	}

	return out
}

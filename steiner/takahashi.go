package steiner

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/prim_kruskal"
)

// Takahashi returns the Takahashi–Matsuyama approximation of a minimum
// Steiner tree grown from root: starting with root alone, the closest
// terminal not yet connected is joined by its shortest path to the tree
// until every terminal is connected. root must be one of the terminals.
//
// Errors: the validation errors of the input (see RZLoss.Call); root not
// among the terminals yields ErrUnknownTerminal.
// Complexity: O(t·(V+E) log V) in the worst case.
func Takahashi(g *core.Graph, terminals []string, root string) (int64, *core.Graph, error) {
	p, err := newProblem(g, terminals, nil)
	if err != nil {
		return 0, nil, err
	}
	r, ok := p.inst.index[root]
	if !ok || !p.isTerm[r] {
		return 0, nil, fmt.Errorf("%w: root %q", ErrUnknownTerminal, root)
	}
	edges, err := takahashiEdges(p.inst, p.isTerm, p.isTerm, len(p.terminals), r)
	if err != nil {
		return 0, nil, err
	}

	return assemble(p, edges)
}

// takahashiEdges grows the tree with a single lazy Dijkstra: whenever a
// required vertex is settled outside the tree, its predecessor path is
// added and re-seeded at distance 0.
func takahashiEdges(inst *instance, isReq, keep []bool, nReq, root int) ([]core.Edge, error) {
	n := inst.n()
	dist := make([]int64, n)
	pred := make([]int, n)
	inTree := make([]bool, n)
	for v := range dist {
		dist[v] = Inf
		pred[v] = -1
	}
	dist[root] = 0
	inTree[root] = true
	remaining := nReq - 1

	pq := &distPQ{}
	heap.Push(pq, distItem{v: root})
	var it distItem
	var x int
	var nd int64
	for pq.Len() > 0 && remaining > 0 {
		it = heap.Pop(pq).(distItem)
		if it.d > dist[it.v] {
			continue
		}
		if isReq[it.v] && !inTree[it.v] {
			for x = it.v; !inTree[x]; x = pred[x] {
				inTree[x] = true
				dist[x] = 0
				heap.Push(pq, distItem{v: x})
			}
			remaining--
			continue
		}
		for _, a := range inst.adj[it.v] {
			if nd = addSat(dist[it.v], a.w); nd < dist[a.to] {
				dist[a.to] = nd
				pred[a.to] = it.v
				heap.Push(pq, distItem{v: a.to, d: nd})
			}
		}
	}
	if remaining > 0 {
		return nil, ErrDisconnected
	}

	in := make(map[string]bool)
	for v, ok := range inTree {
		if ok {
			in[inst.ids[v]] = true
		}
	}
	mst, _, err := prim_kruskal.Kruskal(core.InducedSubgraph(inst.g, in))
	if err != nil {
		return nil, fmt.Errorf("takahashi: %w", err)
	}

	return pruneLeaves(inst, mst, keep), nil
}

type distItem struct {
	v int
	d int64
}

// distPQ is a min-heap by distance, then vertex index.
type distPQ []distItem

func (pq distPQ) Len() int { return len(pq) }
func (pq distPQ) Less(i, j int) bool {
	if pq[i].d != pq[j].d {
		return pq[i].d < pq[j].d
	}

	return pq[i].v < pq[j].v
}
func (pq distPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(distItem)) }
func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

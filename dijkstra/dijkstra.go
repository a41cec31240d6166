package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of the weighted graph g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (Unreachable if not reachable).
//   - prev: predecessor map if ReturnPath was requested, nil otherwise.
//     prev[v] == u means the shortest path to v goes through u; prev[v] == ""
//     for the source and for unreachable vertices.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph) and weighted (ErrUnweightedGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No edge may have negative weight (ErrNegativeWeight), unless
//     WithTrustedWeights was given.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// 2) Fail fast on negative weights.
	if !cfg.SkipNegativeScan {
		var e *core.Edge
		for _, e = range g.Edges() {
			if e.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: edge %s–%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	// 3) Prepare state and run.
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(vertices))
	}
	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]int64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// init sets every distance to Unreachable and pushes the source with 0.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = Unreachable
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly settles the closest unvisited vertex until the heap is
// empty or the next distance exceeds MaxDistance.
func (r *runner) process() error {
	var item *nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the distances of u's neighbors. Undirected edges are walked
// from whichever endpoint u is.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	var (
		e       *core.Edge
		v       string
		w       int64
		newDist int64
	)
	for _, e = range neighbors {
		v = e.Other(u)
		w = e.Weight
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %s–%s weight=%d", ErrNegativeWeight, u, v, w)
		}
		if r.dist[u] > Unreachable-w {
			continue // saturated
		}
		newDist = r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// PathTo rebuilds the vertex sequence from the source to target out of a
// predecessor map returned with WithReturnPath. It returns nil when target is
// unreachable.
func PathTo(prev map[string]string, source, target string) []string {
	if target == source {
		return []string{source}
	}
	if prev[target] == "" {
		return nil
	}
	var rev []string
	for v := target; v != ""; v = prev[v] {
		rev = append(rev, v)
		if v == source {
			break
		}
	}
	if rev[len(rev)-1] != source {
		return nil
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// nodeItem represents a vertex and its tentative distance.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by ID for
// deterministic tie-breaking. Stale entries are skipped via visited.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// File: view.go
// Role: Derived graphs built without mutating the source.

package core

import "sync/atomic"

// InducedSubgraph returns a new Graph induced by the set keep: it contains
// the vertices v with keep[v] == true and every edge whose endpoints are both
// kept. Edge IDs are preserved and the source graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on g.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph(g.options()...)

	g.muVert.RLock()
	for id := range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: id}
			out.adjacencyList[id] = make(map[string]map[string]struct{})
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	var eid string
	var e, ne *Edge
	for eid, e = range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		ne = &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
		out.edges[eid] = ne
		linkAdjacency(out, ne)
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}

// EdgeSubgraph returns a new Graph containing copies of the edges whose IDs
// are listed in ids, together with their endpoints. Unknown IDs are reported
// with ErrEdgeNotFound.
//
// Complexity: O(len(ids)).
func EdgeSubgraph(g *Graph, ids []string) (*Graph, error) {
	out := NewGraph(g.options()...)
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, eid := range ids {
		e, ok := g.edges[eid]
		if !ok {
			return nil, ErrEdgeNotFound
		}
		for _, id := range [2]string{e.From, e.To} {
			if _, ok = out.vertices[id]; !ok {
				out.vertices[id] = &Vertex{ID: id}
				out.adjacencyList[id] = make(map[string]map[string]struct{})
			}
		}
		ne := &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
		out.edges[eid] = ne
		linkAdjacency(out, ne)
	}
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	return out, nil
}

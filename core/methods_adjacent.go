// File: methods_adjacent.go
// Role: Neighborhood queries (Neighbors, NeighborIDs) and the private
//       adjacency helpers shared by mutators.
// Concurrency:
//   - Queries take muVert then muEdgeAdj read locks.
//   - Helpers must be called under the muEdgeAdj write lock.

package core

import "sort"

// Neighbors returns the edges incident to id, sorted by insertion sequence.
// For directed edges only outgoing edges are returned. Use (*Edge).Other to
// obtain the neighbor on the far side.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	var eid string
	var e *Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid = range edgeSet {
			e = g.edges[eid]
			if e.IsNil() {
				continue
			}
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique adjacent vertex IDs of id in ascending order.
//
// Errors:
//   - Propagates ErrEmptyVertexID / ErrVertexNotFound from Neighbors.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		set[e.Other(id)] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for nb := range set {
		out = append(out, nb)
	}
	sort.Strings(out)

	return out, nil
}

// ensureAdjacency allocates the nested bucket adjacencyList[from][to].
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// linkAdjacency registers e in from→to and, for undirected non-loops, to→from.
func linkAdjacency(g *Graph, e *Edge) {
	ensureAdjacency(g, e.From, e.To)
	g.adjacencyList[e.From][e.To][e.ID] = struct{}{}
	if !e.Directed && e.From != e.To {
		ensureAdjacency(g, e.To, e.From)
		g.adjacencyList[e.To][e.From][e.ID] = struct{}{}
	}
}

// removeAdjacency unlinks e and prunes buckets that become empty.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if !e.Directed && e.From != e.To {
		if m := g.adjacencyList[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
	}
}

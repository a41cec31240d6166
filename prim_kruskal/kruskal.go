package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/lvsteiner/core"
)

// Kruskal computes the Minimum Spanning Tree of an undirected, weighted graph
// using a disjoint-set forest with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil, directed, or unweighted.
//   - ErrDisconnected : |V| == 0, or the graph is not connected.
//
// Steps:
//  1. Validate the graph.
//  2. Collect edges in insertion order, skipping self-loops.
//  3. Stable-sort by weight so ties keep insertion order.
//  4. Union-find over the sorted edges until |V|-1 edges are taken.
//
// Parallel edges are handled naturally: the lightest copy sorts first.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	// 1. Validate
	if graph == nil || !graph.Weighted() || graph.Directed() || graph.HasDirectedEdges() {
		return nil, 0, ErrInvalidGraph
	}
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	// 2. Collect edges, skipping self-loops.
	allEdges := graph.Edges()
	edges := make([]*core.Edge, 0, len(allEdges))
	for _, e := range allEdges {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	// 3. Stable sort by weight.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Union-find.
	dsu := newDisjointSet(vertices)
	var (
		mst         = make([]core.Edge, 0, len(vertices)-1)
		totalWeight int64
		numVerts    = len(vertices)
	)
	for _, e := range edges {
		if !dsu.union(e.From, e.To) {
			continue
		}
		mst = append(mst, *e)
		totalWeight += e.Weight
		if len(mst) == numVerts-1 {
			break
		}
	}
	if len(mst) < numVerts-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// disjointSet is a union-find forest keyed by vertex ID.
type disjointSet struct {
	parent map[string]string
	rank   map[string]int
}

func newDisjointSet(ids []string) *disjointSet {
	d := &disjointSet{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		d.parent[id] = id
	}

	return d
}

// find returns the representative of u, compressing the path on the way.
func (d *disjointSet) find(u string) string {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (d *disjointSet) union(u, v string) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	switch {
	case d.rank[ru] < d.rank[rv]:
		d.parent[ru] = rv
	case d.rank[ru] > d.rank[rv]:
		d.parent[rv] = ru
	default:
		d.parent[rv] = ru
		d.rank[ru]++
	}

	return true
}

package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/lvsteiner/core"
)

// Prim computes the Minimum Spanning Tree of an undirected, weighted graph by
// growing it from root with a min-heap of candidate edges.
//
// Error Conditions:
//   - ErrInvalidGraph       : graph is nil, directed, or unweighted.
//   - ErrEmptyRoot          : root == "".
//   - core.ErrVertexNotFound: root is not in the graph.
//   - ErrDisconnected       : |V| == 0 or the graph is not connected.
//
// Steps:
//  1. Validate the graph and root.
//  2. Mark root visited and push its incident edges.
//  3. Pop the lightest edge; skip it if its far endpoint is visited,
//     otherwise take it and push the new vertex's edges.
//  4. Fail with ErrDisconnected if fewer than |V|-1 edges were taken.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) ([]core.Edge, int64, error) {
	// 1. Validate
	if graph == nil || !graph.Weighted() || graph.Directed() || graph.HasDirectedEdges() {
		return nil, 0, ErrInvalidGraph
	}
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	// 2. Seed
	n := len(vertices)
	visited := make(map[string]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight int64
	pq := &edgePQ{}
	heap.Init(pq)
	if err := pushFrontier(graph, root, visited, pq); err != nil {
		return nil, 0, err
	}

	// 3. Grow
	for pq.Len() > 0 && len(mst) < n-1 {
		item := heap.Pop(pq).(edgeItem)
		if visited[item.to] {
			continue
		}
		mst = append(mst, *item.edge)
		totalWeight += item.edge.Weight
		if err := pushFrontier(graph, item.to, visited, pq); err != nil {
			return nil, 0, err
		}
	}

	// 4. Connectivity
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// pushFrontier marks v visited and pushes every edge leading to an unvisited
// vertex.
func pushFrontier(graph *core.Graph, v string, visited map[string]bool, pq *edgePQ) error {
	visited[v] = true
	neighbors, err := graph.Neighbors(v)
	if err != nil {
		return err
	}
	var e *core.Edge
	var to string
	for _, e = range neighbors {
		to = e.Other(v)
		if !visited[to] {
			heap.Push(pq, edgeItem{edge: e, to: to, seq: pq.next()})
		}
	}

	return nil
}

// edgeItem is a heap entry: the edge and the endpoint it would add.
type edgeItem struct {
	edge *core.Edge
	to   string
	seq  int
}

// edgePQ is a min-heap of edgeItem by weight; seq keeps ties in push order.
type edgePQ struct {
	items  []edgeItem
	pushed int
}

func (pq *edgePQ) next() int {
	pq.pushed++

	return pq.pushed
}

func (pq edgePQ) Len() int { return len(pq.items) }
func (pq edgePQ) Less(i, j int) bool {
	if pq.items[i].edge.Weight != pq.items[j].edge.Weight {
		return pq.items[i].edge.Weight < pq.items[j].edge.Weight
	}

	return pq.items[i].seq < pq.items[j].seq
}
func (pq edgePQ) Swap(i, j int)       { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }
func (pq *edgePQ) Push(x interface{}) { pq.items = append(pq.items, x.(edgeItem)) }
func (pq *edgePQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}

// Package core provides the thread-safe in-memory Graph used by every
// lvsteiner algorithm.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Monotonic textual edge IDs ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Deterministic iteration: Vertices() and NeighborIDs() are sorted by ID,
// Edges() and Neighbors() by insertion sequence.
//
// Derived graphs: Clone, CloneEmpty, InducedSubgraph and EdgeSubgraph build
// independent copies that preserve vertex and edge IDs. Steiner trees
// returned by package steiner are EdgeSubgraph copies of the input graph.
//
// Quick example:
//
//	g := core.NewGraph(core.WithWeighted())
//	_, _ = g.AddEdge("A", "B", 3)
//	_, _ = g.AddEdge("B", "C", 4)
//	nbrs, _ := g.NeighborIDs("B") // ["A" "C"]
package core

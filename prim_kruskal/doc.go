// Package prim_kruskal computes Minimum Spanning Trees of undirected,
// weighted core.Graph values.
//
// Algorithms:
//
//   - Kruskal(g) ([]core.Edge, int64, error)
//     Sort edges by weight (stable, insertion order breaks ties) and merge
//     components with a disjoint-set forest. O(E log E).
//
//   - Prim(g, root) ([]core.Edge, int64, error)
//     Grow the tree from root with a min-heap of frontier edges. O(E log E).
//
//   - Compute(g, opts...) dispatches on WithMethod; Prim defaults to the
//     smallest vertex ID as root.
//
// Both reject directed or unweighted graphs with ErrInvalidGraph and
// disconnected graphs with ErrDisconnected. Parallel edges are allowed and
// self-loops ignored.
//
// Package steiner uses Kruskal to re-minimise its working Steiner tree after
// every contraction, to build the terminal spanning tree, and to extract the
// final tree from the union of expanded paths.
package prim_kruskal

// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm on weighted core.Graph values with non-negative edge weights.
//
// Overview:
//
//   - O((V + E) log V) with a lazy decrease-key min-heap.
//   - Undirected edges are traversed from either endpoint; directed edges
//     only forward.
//   - Ties between equal distances are broken by vertex ID, so results are
//     deterministic.
//
// Options:
//
//   - Source(id):              start vertex (required).
//   - WithReturnPath():        return the predecessor map (see PathTo).
//   - WithMaxDistance(d):      do not settle vertices farther than d.
//   - WithInfEdgeThreshold(t): treat edges with weight ≥ t as walls.
//   - WithTrustedWeights():    skip the negative-weight pre-scan.
//
// Package steiner uses Dijkstra for the terminal distance rows of the
// triple-contraction algorithm and for the path expansions of the Kou
// heuristic.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(dist["C"], dijkstra.PathTo(prev, "A", "C"))
package dijkstra

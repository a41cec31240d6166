package steiner

import "log/slog"

// hop is one original edge of a reconstructed shortest path.
type hop struct {
	u, v int
	w    int64
	edge string
}

// distanceMatrix holds all-pairs shortest distances in which only
// non-terminal vertices may relay. via[u][v] is the pivot that last improved
// the pair, or -1 when the pair is still served by its direct edge.
type distanceMatrix struct {
	inst *instance
	dist [][]int64
	via  [][]int32

	// complete is false if the time budget stopped the pivot loop early.
	complete bool
}

// computeAllPairs runs Floyd–Warshall restricted to non-terminal pivots.
//
// Contract:
//   - dist[u][u] = 0; unreachable pairs hold Inf; additions saturate.
//   - Pivots run in ascending index order; the budget is checked before
//     each pivot and, on expiry, the matrix computed so far is returned.
//     Completed entries are exact for the pivots processed.
//
// Complexity: O(n³) time, O(n²) memory.
func computeAllPairs(inst *instance, isTerm []bool, b *budget, log *slog.Logger) *distanceMatrix {
	n := inst.n()
	m := &distanceMatrix{
		inst:     inst,
		dist:     make([][]int64, n),
		via:      make([][]int32, n),
		complete: true,
	}

	// 1) Direct edges.
	var u, v, w int
	for u = 0; u < n; u++ {
		m.dist[u] = make([]int64, n)
		m.via[u] = make([]int32, n)
		for v = 0; v < n; v++ {
			m.dist[u][v] = Inf
			m.via[u][v] = -1
		}
		m.dist[u][u] = 0
		for _, a := range inst.adj[u] {
			m.dist[u][a.to] = a.w
		}
	}

	// 2) Relax through non-terminal pivots only.
	var duw, c int64
	var rowU, rowW []int64
	pivots := 0
	for w = 0; w < n; w++ {
		if isTerm[w] {
			continue
		}
		if b.expired("distance oracle") {
			m.complete = false
			break
		}
		pivots++
		rowW = m.dist[w]
		for u = 0; u < n; u++ {
			rowU = m.dist[u]
			if duw = rowU[w]; duw == Inf {
				continue
			}
			for v = 0; v < n; v++ {
				if rowW[v] == Inf {
					continue
				}
				if c = addSat(duw, rowW[v]); c < rowU[v] {
					rowU[v] = c
					m.via[u][v] = int32(w)
				}
			}
		}
	}
	log.Debug("distance oracle done",
		slog.Int("vertices", n),
		slog.Int("pivots", pivots),
		slog.Bool("complete", m.complete))

	return m
}

// d returns the restricted distance between u and v.
func (m *distanceMatrix) d(u, v int) int64 { return m.dist[u][v] }

// path returns the original edges of the representative u→v path in order.
// It returns nil for u == v and for unreachable pairs.
func (m *distanceMatrix) path(u, v int) []hop {
	if u == v || m.dist[u][v] == Inf {
		return nil
	}

	return m.appendPath(nil, u, v)
}

func (m *distanceMatrix) appendPath(out []hop, u, v int) []hop {
	if w := m.via[u][v]; w >= 0 {
		out = m.appendPath(out, u, int(w))

		return m.appendPath(out, int(w), v)
	}
	a, ok := m.inst.direct(u, v)
	if !ok {
		panic("steiner: distance oracle: finite pair without edge or pivot")
	}

	return append(out, hop{u: u, v: v, w: a.w, edge: a.edge})
}

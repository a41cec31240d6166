package steiner

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/lvsteiner/dijkstra"
)

// rowCacheSize bounds the number of single-source rows kept in memory.
const rowCacheSize = 1024

// row is one single-source shortest-path result in dense form.
type row struct {
	dist []int64           // by vertex index; Inf if unreachable
	prev map[string]string // dijkstra predecessor map
}

// rowCache serves unrestricted shortest-path rows computed with
// dijkstra.Dijkstra, evicting the least recently used ones.
type rowCache struct {
	inst  *instance
	cache *lru.Cache[int, *row]
}

func newRowCache(inst *instance) *rowCache {
	c, err := lru.New[int, *row](max(1, min(inst.n(), rowCacheSize)))
	if err != nil {
		panic(fmt.Sprintf("steiner: row cache: %v", err))
	}

	return &rowCache{inst: inst, cache: c}
}

// get returns the row of src, computing it on a miss.
func (rc *rowCache) get(src int) *row {
	if r, ok := rc.cache.Get(src); ok {
		return r
	}
	dist, prev, err := dijkstra.Dijkstra(rc.inst.g,
		dijkstra.Source(rc.inst.ids[src]),
		dijkstra.WithReturnPath(),
		dijkstra.WithTrustedWeights())
	if err != nil {
		panic(fmt.Sprintf("steiner: shortest paths from %q: %v", rc.inst.ids[src], err))
	}
	r := &row{dist: make([]int64, rc.inst.n()), prev: prev}
	for i, id := range rc.inst.ids {
		d, ok := dist[id]
		if !ok || d == dijkstra.Unreachable {
			d = Inf
		}
		r.dist[i] = d
	}
	rc.cache.Add(src, r)

	return r
}

// d returns the shortest distance between u and v.
func (rc *rowCache) d(u, v int) int64 { return rc.get(u).dist[v] }

// path returns the original edges of the shortest u→v path in order, or nil
// for u == v and unreachable pairs.
func (rc *rowCache) path(u, v int) []hop {
	if u == v {
		return nil
	}
	ids := dijkstra.PathTo(rc.get(u).prev, rc.inst.ids[u], rc.inst.ids[v])
	if len(ids) < 2 {
		return nil
	}
	out := make([]hop, 0, len(ids)-1)
	var a, b int
	for i := 1; i < len(ids); i++ {
		a, b = rc.inst.index[ids[i-1]], rc.inst.index[ids[i]]
		arc, ok := rc.inst.direct(a, b)
		if !ok {
			panic("steiner: shortest path step without an edge")
		}
		out = append(out, hop{u: a, v: b, w: arc.w, edge: arc.edge})
	}

	return out
}

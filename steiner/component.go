package steiner

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/prim_kruskal"
)

// fullComponent is a tree in the original graph whose leaves are terminals
// and whose inner nodes are Steiner points. Its loss is the cheapest forest
// connecting every Steiner point to some terminal of the component.
type fullComponent struct {
	nodes     []int
	edges     []hop
	terminals []int
	cost      int64

	loss   []bool      // parallel to edges
	lossW  int64       // summed weight of the loss edges
	paired map[int]int // node → terminal of its loss tree
}

// componentBuilder enumerates full components of up to k terminals against
// the restricted distance oracle and the initial save table.
type componentBuilder struct {
	inst      *instance
	dm        *distanceMatrix
	save      *staticTree
	terminals []int
	steiner   []int // original non-terminals, ascending
}

func newComponentBuilder(p *problem, dm *distanceMatrix, save *staticTree) *componentBuilder {
	cb := &componentBuilder{inst: p.inst, dm: dm, save: save, terminals: p.terminals}
	for v := 0; v < p.inst.n(); v++ {
		if !p.isTerm[v] {
			cb.steiner = append(cb.steiner, v)
		}
	}

	return cb
}

// generate adds every profitable full component with 3..k terminals to out.
// For each size the Steiner tuples (size-2 points) form the outer loop and
// the terminal subsets the inner loop. b is checked once per candidate; it
// stops early when b expires.
func (cb *componentBuilder) generate(k int, b *budget, out *pool[fullComponent], stats *Stats, log *slog.Logger) {
	var size, ns int
	var st, tt []int
	for size = 3; size <= k; size++ {
		ns = size - 2
		if len(cb.steiner) < ns || len(cb.terminals) < size {
			continue
		}
		st = firstTuple(ns)
		for {
			tt = firstTuple(size)
			for {
				if b.expired("component generation") {
					return
				}
				if c, ok := cb.candidate(st, tt); ok {
					out.add(c)
					stats.Generated++
				}
				if !nextTuple(tt, len(cb.terminals)) {
					break
				}
			}
			if !nextTuple(st, len(cb.steiner)) {
				break
			}
		}
		log.Debug("generation done", slog.Int("size", size), slog.Int("pool", out.len()))
	}
}

// candidate builds the component of one Steiner tuple and terminal subset
// and reports whether it is profitable.
func (cb *componentBuilder) candidate(st, tt []int) (fullComponent, bool) {
	points := make([]int, len(st))
	for i, x := range st {
		points[i] = cb.steiner[x]
	}
	terms := make([]int, len(tt))
	for i, x := range tt {
		terms[i] = cb.terminals[x]
	}

	// 1) Attach every terminal to its nearest Steiner point.
	attach := make([]int, len(terms))
	var best, d int64
	for i, t := range terms {
		best, attach[i] = Inf, -1
		for _, s := range points {
			if d = cb.dm.d(t, s); d < best {
				best, attach[i] = d, s
			}
		}
		if best == Inf {
			return fullComponent{}, false
		}
	}

	// 2) Skeleton over the Steiner points.
	parent, ok := densePrim(len(points), func(i, j int) int64 { return cb.dm.d(points[i], points[j]) })
	if !ok {
		return fullComponent{}, false
	}

	// 3) Expand into original edges.
	c := fullComponent{terminals: terms}
	seenNode := make(map[int]bool, len(points)+len(terms))
	seenEdge := make(map[int64]bool)
	addNode := func(v int) {
		if !seenNode[v] {
			seenNode[v] = true
			c.nodes = append(c.nodes, v)
		}
	}
	addPath := func(path []hop) {
		for _, h := range path {
			u, v := min(h.u, h.v), max(h.u, h.v)
			if seenEdge[pairKey(u, v)] {
				continue
			}
			seenEdge[pairKey(u, v)] = true
			addNode(h.u)
			addNode(h.v)
			c.edges = append(c.edges, h)
			c.cost += h.w
		}
	}
	for _, s := range points {
		addNode(s)
	}
	for i := 1; i < len(points); i++ {
		addPath(cb.dm.path(points[parent[i]], points[i]))
	}
	for i, t := range terms {
		addPath(cb.dm.path(t, attach[i]))
	}

	// 4) Profitability against the initial tree.
	if componentGain(&c, cb.save)-c.cost <= 0 {
		return fullComponent{}, false
	}
	cb.computeLoss(&c)

	return c, true
}

// componentGain sums the distinct save edges over all terminal pairs.
func componentGain(c *fullComponent, s *staticTree) int64 {
	seen := make(map[int]bool, len(c.terminals))
	var gain int64
	var i, j int
	for i = 0; i < len(c.terminals); i++ {
		for j = i + 1; j < len(c.terminals); j++ {
			e, w := s.query(c.terminals[i], c.terminals[j])
			if e.id == 0 || seen[e.id] {
				continue
			}
			seen[e.id] = true
			gain += w
		}
	}

	return gain
}

// computeLoss runs prim_kruskal.Prim over the component with every terminal
// tied to the first one at zero cost. The component edges of that tree are
// the loss; each node is paired with the terminal its loss tree hangs from.
func (cb *componentBuilder) computeLoss(c *fullComponent) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	for _, v := range c.nodes {
		if err := g.AddVertex(cb.inst.ids[v]); err != nil {
			panic(fmt.Sprintf("steiner: loss graph: %v", err))
		}
	}
	byID := make(map[string]int, len(c.edges))
	for i, h := range c.edges {
		eid, err := g.AddEdge(cb.inst.ids[h.u], cb.inst.ids[h.v], h.w)
		if err != nil {
			panic(fmt.Sprintf("steiner: loss graph: %v", err))
		}
		byID[eid] = i
	}
	root := c.terminals[0]
	for _, t := range c.terminals[1:] {
		if _, err := g.AddEdge(cb.inst.ids[root], cb.inst.ids[t], 0); err != nil {
			panic(fmt.Sprintf("steiner: loss graph: %v", err))
		}
	}
	mst, _, err := prim_kruskal.Prim(g, cb.inst.ids[root])
	if err != nil {
		panic(fmt.Sprintf("steiner: loss tree: %v", err))
	}

	// Loss flags and the rooted loss forest.
	c.loss = make([]bool, len(c.edges))
	adj := make(map[int][]int, len(c.nodes))
	var u, v int
	for _, e := range mst {
		u, v = cb.inst.index[e.From], cb.inst.index[e.To]
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
		if i, ok := byID[e.ID]; ok {
			c.loss[i] = true
			c.lossW += e.Weight
		}
	}
	pred := map[int]int{root: -1}
	queue := []int{root}
	for len(queue) > 0 {
		u = queue[0]
		queue = queue[1:]
		for _, v = range adj[u] {
			if _, ok := pred[v]; !ok {
				pred[v] = u
				queue = append(queue, v)
			}
		}
	}

	isTerm := make(map[int]bool, len(c.terminals))
	for _, t := range c.terminals {
		isTerm[t] = true
	}
	c.paired = make(map[int]int, len(c.nodes))
	for _, x := range c.nodes {
		y := x
		for !isTerm[y] {
			y = pred[y]
		}
		c.paired[x] = y
	}
}

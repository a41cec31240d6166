package steiner

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
)

// arc is one adjacency entry of the indexed graph: the lightest edge between
// two distinct vertices.
type arc struct {
	to   int
	w    int64
	edge string
}

// instance is a read-only dense view of a core.Graph. Vertex i is the i-th
// vertex in lexicographic ID order. Parallel edges collapse to the lightest
// one (first inserted wins ties); self-loops are dropped.
type instance struct {
	g     *core.Graph
	ids   []string
	index map[string]int
	adj   [][]arc

	// best[pairKey(u, v)] is the position of the u→v arc in adj[u].
	best map[int64]int
}

// problem bundles a validated instance with its terminal set.
type problem struct {
	inst      *instance
	terminals []int  // caller order
	isTerm    []bool // indexed by vertex
}

func pairKey(u, v int) int64 { return int64(u)<<32 | int64(uint32(v)) }

// newInstance validates g and indexes it.
//
// Errors: ErrNilGraph, ErrInvalidGraph, ErrNegativeWeight.
// Complexity: O(V log V + E).
func newInstance(g *core.Graph) (*instance, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() || g.Directed() || g.HasDirectedEdges() {
		return nil, ErrInvalidGraph
	}

	ids := g.Vertices()
	inst := &instance{
		g:     g,
		ids:   ids,
		index: make(map[string]int, len(ids)),
		adj:   make([][]arc, len(ids)),
		best:  make(map[int64]int),
	}
	for i, id := range ids {
		inst.index[id] = i
	}

	var u, v, pos int
	var ok bool
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s %s–%s weight=%d", ErrNegativeWeight, e.ID, e.From, e.To, e.Weight)
		}
		u, v = inst.index[e.From], inst.index[e.To]
		if u == v {
			continue
		}
		if pos, ok = inst.best[pairKey(u, v)]; ok {
			if e.Weight < inst.adj[u][pos].w {
				inst.adj[u][pos] = arc{to: v, w: e.Weight, edge: e.ID}
				inst.adj[v][inst.best[pairKey(v, u)]] = arc{to: u, w: e.Weight, edge: e.ID}
			}
			continue
		}
		inst.best[pairKey(u, v)] = len(inst.adj[u])
		inst.adj[u] = append(inst.adj[u], arc{to: v, w: e.Weight, edge: e.ID})
		inst.best[pairKey(v, u)] = len(inst.adj[v])
		inst.adj[v] = append(inst.adj[v], arc{to: u, w: e.Weight, edge: e.ID})
	}

	return inst, nil
}

func (in *instance) n() int { return len(in.ids) }

// direct returns the lightest edge between u and v.
func (in *instance) direct(u, v int) (arc, bool) {
	pos, ok := in.best[pairKey(u, v)]
	if !ok {
		return arc{}, false
	}

	return in.adj[u][pos], true
}

// newProblem validates the terminal list and the optional flag map against g.
//
// Errors: those of newInstance, plus ErrNoTerminals, ErrUnknownTerminal,
// ErrDuplicateTerminal, ErrTerminalFlags, ErrDisconnected.
func newProblem(g *core.Graph, terminals []string, isTerminal map[string]bool) (*problem, error) {
	inst, err := newInstance(g)
	if err != nil {
		return nil, err
	}
	if len(terminals) == 0 {
		return nil, ErrNoTerminals
	}

	p := &problem{
		inst:      inst,
		terminals: make([]int, 0, len(terminals)),
		isTerm:    make([]bool, inst.n()),
	}
	for _, id := range terminals {
		v, ok := inst.index[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTerminal, id)
		}
		if p.isTerm[v] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTerminal, id)
		}
		p.isTerm[v] = true
		p.terminals = append(p.terminals, v)
	}
	if isTerminal != nil {
		for id, flag := range isTerminal {
			v, ok := inst.index[id]
			if !ok {
				if flag {
					return nil, fmt.Errorf("%w: %q flagged but not in graph", ErrTerminalFlags, id)
				}
				continue
			}
			if flag != p.isTerm[v] {
				return nil, fmt.Errorf("%w: %q flagged %t", ErrTerminalFlags, id, flag)
			}
		}
		for _, v := range p.terminals {
			if !isTerminal[inst.ids[v]] {
				return nil, fmt.Errorf("%w: %q not flagged", ErrTerminalFlags, inst.ids[v])
			}
		}
	}
	if !inst.connects(p.terminals) {
		return nil, ErrDisconnected
	}

	return p, nil
}

// connects reports whether all vertices in set lie in one component.
func (in *instance) connects(set []int) bool {
	seen := make([]bool, in.n())
	stack := []int{set[0]}
	seen[set[0]] = true
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, a := range in.adj[u] {
			if !seen[a.to] {
				seen[a.to] = true
				stack = append(stack, a.to)
			}
		}
	}
	for _, v := range set {
		if !seen[v] {
			return false
		}
	}

	return true
}

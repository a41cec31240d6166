package steiner

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/prim_kruskal"
)

// treeEdge is an edge of a working tree. IDs are unique within one tree and
// start at 1; the zero value means "no edge". Weight-tree nodes that stand
// for contracted connections carry negative IDs.
type treeEdge struct {
	id   int
	u, v int // vertex indices
	w    int64
}

// workingTree is a tree (or, between a merge and minimize, a multigraph)
// over a subset of vertices. Vertices are addressed by instance index.
type workingTree struct {
	inst   *instance
	nodes  []int // insertion order
	pos    []int // vertex index → position in nodes, or -1
	edges  []treeEdge
	nextID int
}

func newWorkingTree(inst *instance, nodes []int) *workingTree {
	t := &workingTree{inst: inst, pos: make([]int, inst.n()), nextID: 1}
	for i := range t.pos {
		t.pos[i] = -1
	}
	for _, v := range nodes {
		t.addNode(v)
	}

	return t
}

func (t *workingTree) addNode(v int) {
	if t.pos[v] >= 0 {
		return
	}
	t.pos[v] = len(t.nodes)
	t.nodes = append(t.nodes, v)
}

func (t *workingTree) has(v int) bool { return t.pos[v] >= 0 }

func (t *workingTree) addEdge(u, v int, w int64) treeEdge {
	if !t.has(u) || !t.has(v) {
		panic("steiner: working tree: edge endpoint missing")
	}
	e := treeEdge{id: t.nextID, u: u, v: v, w: w}
	t.nextID++
	t.edges = append(t.edges, e)

	return e
}

// find returns the index in t.edges of the first u–v edge, or -1.
func (t *workingTree) find(u, v int) int {
	for i, e := range t.edges {
		if (e.u == u && e.v == v) || (e.u == v && e.v == u) {
			return i
		}
	}

	return -1
}

func (t *workingTree) removeID(id int) {
	for i, e := range t.edges {
		if e.id == id {
			t.edges = append(t.edges[:i], t.edges[i+1:]...)
			return
		}
	}
	panic(fmt.Sprintf("steiner: working tree: edge %d not found", id))
}

// mergeMin adds u–v with weight w, or lowers the weight of an existing u–v
// edge. Self-loops are ignored.
func (t *workingTree) mergeMin(u, v int, w int64) {
	if u == v {
		return
	}
	if i := t.find(u, v); i >= 0 {
		if w < t.edges[i].w {
			t.edges[i].w = w
		}
		return
	}
	t.addEdge(u, v, w)
}

func (t *workingTree) weight() int64 {
	var s int64
	for _, e := range t.edges {
		s += e.w
	}

	return s
}

func (t *workingTree) clone() *workingTree {
	c := &workingTree{
		inst:   t.inst,
		nodes:  append([]int(nil), t.nodes...),
		pos:    append([]int(nil), t.pos...),
		edges:  append([]treeEdge(nil), t.edges...),
		nextID: t.nextID,
	}

	return c
}

// adjEntry is one incidence of a tree position.
type adjEntry struct {
	to   int // position
	edge int // index into t.edges
}

// adjacency returns incidence lists by position, in edge order.
func (t *workingTree) adjacency() [][]adjEntry {
	adj := make([][]adjEntry, len(t.nodes))
	var pu, pv int
	for i, e := range t.edges {
		pu, pv = t.pos[e.u], t.pos[e.v]
		adj[pu] = append(adj[pu], adjEntry{to: pv, edge: i})
		adj[pv] = append(adj[pv], adjEntry{to: pu, edge: i})
	}

	return adj
}

// minimize replaces the edges with a minimum spanning tree computed by
// prim_kruskal.Kruskal; ties keep the earlier edge.
//
// Errors: prim_kruskal.ErrDisconnected if the edges do not span the nodes.
func (t *workingTree) minimize() error {
	if len(t.nodes) <= 1 {
		t.edges = t.edges[:0]
		return nil
	}
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	byID := make(map[string]treeEdge, len(t.edges))
	for _, v := range t.nodes {
		if err := g.AddVertex(t.inst.ids[v]); err != nil {
			return err
		}
	}
	for _, e := range t.edges {
		eid, err := g.AddEdge(t.inst.ids[e.u], t.inst.ids[e.v], e.w)
		if err != nil {
			return err
		}
		byID[eid] = e
	}
	mst, _, err := prim_kruskal.Kruskal(g)
	if err != nil {
		return err
	}
	keep := make(map[int]bool, len(mst))
	for _, me := range mst {
		keep[byID[me.ID].id] = true
	}
	kept := t.edges[:0]
	for _, e := range t.edges {
		if keep[e.id] {
			kept = append(kept, e)
		}
	}
	t.edges = kept

	return nil
}

// isDisconnected reports whether err stems from a tree that could not span
// its nodes.
func isDisconnected(err error) bool { return errors.Is(err, prim_kruskal.ErrDisconnected) }

// terminalGraph is the complete terminal graph: the current terminal set,
// including promoted Steiner points, with min-merged pair weights between
// the original terminals.
type terminalGraph struct {
	inst      *instance
	terminals []int // original terminals, caller order
	isTerm    []bool
	promoted  []int
	weight    map[int64]int64
}

func newTerminalGraph(inst *instance, terminals []int, d func(u, v int) int64) *terminalGraph {
	tg := &terminalGraph{
		inst:      inst,
		terminals: terminals,
		isTerm:    make([]bool, inst.n()),
		weight:    make(map[int64]int64),
	}
	for _, v := range terminals {
		tg.isTerm[v] = true
	}
	var i, j int
	for i = 0; i < len(terminals); i++ {
		for j = i + 1; j < len(terminals); j++ {
			tg.merge(terminals[i], terminals[j], d(terminals[i], terminals[j]))
		}
	}

	return tg
}

// promote adds v to the terminal set and reports whether it was new.
func (tg *terminalGraph) promote(v int) bool {
	if tg.isTerm[v] {
		return false
	}
	tg.isTerm[v] = true
	tg.promoted = append(tg.promoted, v)

	return true
}

// merge lowers the u–v weight to w if w is smaller.
func (tg *terminalGraph) merge(u, v int, w int64) {
	if u == v {
		return
	}
	if u > v {
		u, v = v, u
	}
	k := pairKey(u, v)
	if old, ok := tg.weight[k]; !ok || w < old {
		tg.weight[k] = w
	}
}

func (tg *terminalGraph) pairWeight(u, v int) int64 {
	if u > v {
		u, v = v, u
	}
	if w, ok := tg.weight[pairKey(u, v)]; ok {
		return w
	}

	return Inf
}

// required returns the original terminals followed by the promoted points.
func (tg *terminalGraph) required() []int {
	out := make([]int, 0, len(tg.terminals)+len(tg.promoted))
	out = append(out, tg.terminals...)

	return append(out, tg.promoted...)
}

// spanningTree returns the minimum spanning tree of the graph on the
// original terminals, omitting Inf pairs.
//
// Errors: prim_kruskal.ErrDisconnected if the finite pairs do not connect
// the terminals (only possible after an early oracle stop).
func (tg *terminalGraph) spanningTree() (*workingTree, error) {
	t := newWorkingTree(tg.inst, tg.terminals)
	var i, j int
	var w int64
	for i = 0; i < len(tg.terminals); i++ {
		for j = i + 1; j < len(tg.terminals); j++ {
			if w = tg.pairWeight(tg.terminals[i], tg.terminals[j]); w == Inf {
				continue
			}
			t.addEdge(tg.terminals[i], tg.terminals[j], w)
		}
	}
	if err := t.minimize(); err != nil {
		return nil, fmt.Errorf("terminal tree: %w", err)
	}

	return t, nil
}

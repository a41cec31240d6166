package steiner

import "sort"

// wtNode is a node of a weight tree. Leaves stand for working-tree nodes and
// have no edge; an inner node stands for one working-tree edge (or, after a
// dynamic update, a zero-weight connection with a negative ID).
type wtNode struct {
	parent      int
	left, right int // -1 for leaves
	edge        treeEdge
}

// weightTree is the Kruskal reconstruction tree of a working tree: inserting
// the edges by ascending weight, each edge becomes the parent of the two
// subtrees it joins. The save edge of two nodes is the edge of their leaves'
// lowest common ancestor.
type weightTree struct {
	nodes    []wtNode
	leaf     []int // tree position → leaf node
	root     int
	nextZero int
}

// newWeightTree builds the weight tree of t. Edge ties keep insertion order.
// Panics if t is not a spanning tree of its nodes.
func newWeightTree(t *workingTree) *weightTree {
	m := len(t.nodes)
	wt := &weightTree{
		nodes:    make([]wtNode, 0, 2*m),
		leaf:     make([]int, m),
		root:     -1,
		nextZero: -1,
	}
	for p := 0; p < m; p++ {
		wt.leaf[p] = wt.add(treeEdge{}, -1, -1)
	}
	if len(t.edges) != max(m-1, 0) {
		panic("steiner: weight tree: working tree is not a spanning tree")
	}

	order := make([]int, len(t.edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return t.edges[order[a]].w < t.edges[order[b]].w })

	uf := newUnionFind(m)
	top := append([]int(nil), wt.leaf...) // set representative → subtree root
	var ru, rv, r int
	for _, i := range order {
		e := t.edges[i]
		ru, rv = uf.find(t.pos[e.u]), uf.find(t.pos[e.v])
		if ru == rv {
			panic("steiner: weight tree: working tree has a cycle")
		}
		n := wt.add(e, top[ru], top[rv])
		r = uf.union(ru, rv)
		top[r] = n
	}
	if m > 0 {
		wt.root = top[uf.find(0)]
	}

	return wt
}

func (wt *weightTree) add(e treeEdge, left, right int) int {
	idx := len(wt.nodes)
	wt.nodes = append(wt.nodes, wtNode{parent: -1, left: left, right: right, edge: e})
	if left >= 0 {
		wt.nodes[left].parent = idx
	}
	if right >= 0 {
		wt.nodes[right].parent = idx
	}

	return idx
}

// zero appends a zero-weight inner node joining left and right.
func (wt *weightTree) zero(left, right int) int {
	e := treeEdge{id: wt.nextZero}
	wt.nextZero--

	return wt.add(e, left, right)
}

// unionFind is a disjoint-set forest over dense indices with union by size.
type unionFind struct {
	parent []int
	size   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), size: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}

	return x
}

// union merges the sets of the representatives a and b and returns the new
// representative.
func (uf *unionFind) union(a, b int) int {
	if uf.size[a] < uf.size[b] {
		a, b = b, a
	}
	uf.parent[b] = a
	uf.size[a] += uf.size[b]

	return a
}

package steiner

import "fmt"

// saver answers save-edge queries over a working tree: the heaviest tree
// edge on the path between two terminals, and the gain of contracting a
// triple. Vertices are instance indices of tree nodes.
type saver interface {
	// query returns the save edge of u and v and its weight. u == v yields
	// the zero edge and weight 0.
	query(u, v int) (treeEdge, int64)
	// gain returns the summed weight of the two distinct save edges among
	// the three pairs of u, v and w.
	gain(u, v, w int) int64
	// update contracts t: its two save edges are replaced by zero-weight
	// connections.
	update(t triple)
	// alreadyContracted reports whether some pair of t is joined at zero
	// cost.
	alreadyContracted(t triple) bool
}

// newSavers returns the save structures for generation and for contraction.
// They are the same value except for SaveHybrid.
func newSavers(kind SaveCalculation, tree *workingTree) (gen, con saver) {
	switch kind {
	case SaveStaticTree:
		s := newStaticTree(tree.clone())
		return s, s
	case SaveStaticLCATree:
		s := newStaticLCATree(tree.clone())
		return s, s
	case SaveDynamicLCATree:
		s := newDynamicLCATree(tree)
		return s, s
	case SaveHybrid:
		return newStaticTree(tree.clone()), newDynamicLCATree(tree)
	default:
		panic(fmt.Sprintf("steiner: unknown save calculation %d", kind))
	}
}

// contractInTree performs the tree surgery of a triple contraction on t,
// with save edges taken from s before the change.
func contractInTree(t *workingTree, s saver, tr triple) {
	e0, _ := s.query(tr.s0, tr.s1)
	e1, _ := s.query(tr.s1, tr.s2)
	e2, _ := s.query(tr.s0, tr.s2)
	if e0.id == e1.id {
		t.removeID(e1.id)
		t.removeID(e2.id)
	} else {
		t.removeID(e0.id)
		t.removeID(e1.id)
	}
	for _, p := range [3][2]int{{tr.s0, tr.s1}, {tr.s0, tr.s2}, {tr.s1, tr.s2}} {
		for i := t.find(p[0], p[1]); i >= 0; i = t.find(p[0], p[1]) {
			t.removeID(t.edges[i].id)
		}
	}
	t.addEdge(tr.s0, tr.s1, 0)
	t.addEdge(tr.s0, tr.s2, 0)
}

// pairGain is the gain rule shared by the LCA structures: the weights of
// lca(u,v) and lca(u,w), or lca(v,w) when the first two coincide.
func pairGain(s saver, u, v, w int) int64 {
	e1, w1 := s.query(u, v)
	e2, w2 := s.query(u, w)
	if e1.id == e2.id {
		_, w2 = s.query(v, w)
	}

	return w1 + w2
}

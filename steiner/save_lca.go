package steiner

import (
	"math/bits"
	"sort"
)

// staticLCATree answers save queries by binary-lifting LCA over a weight
// tree. Updates apply the tree surgery to the working tree and rebuild.
//
// Complexity: build O(m log m); query O(log m).
type staticLCATree struct {
	tree  *workingTree
	wt    *weightTree
	up    [][]int // up[k][x] is the 2^k-th ancestor of x (the root maps to itself)
	depth []int
}

func newStaticLCATree(t *workingTree) *staticLCATree {
	s := &staticLCATree{tree: t}
	s.rebuild()

	return s
}

func (s *staticLCATree) rebuild() {
	s.wt = newWeightTree(s.tree)
	n := len(s.wt.nodes)
	levels := max(bits.Len(uint(n)), 1)
	s.up = make([][]int, levels)
	s.depth = make([]int, n)

	// A freshly built weight tree creates parents after their children.
	s.up[0] = make([]int, n)
	var x int
	for x = n - 1; x >= 0; x-- {
		if p := s.wt.nodes[x].parent; p >= 0 {
			s.up[0][x] = p
			s.depth[x] = s.depth[p] + 1
		} else {
			s.up[0][x] = x
		}
	}
	for k := 1; k < levels; k++ {
		s.up[k] = make([]int, n)
		for x = 0; x < n; x++ {
			s.up[k][x] = s.up[k-1][s.up[k-1][x]]
		}
	}
}

func (s *staticLCATree) lca(a, b int) int {
	if s.depth[a] < s.depth[b] {
		a, b = b, a
	}
	k := 0
	for diff := s.depth[a] - s.depth[b]; diff > 0; diff >>= 1 {
		if diff&1 == 1 {
			a = s.up[k][a]
		}
		k++
	}
	if a == b {
		return a
	}
	for k = len(s.up) - 1; k >= 0; k-- {
		if s.up[k][a] != s.up[k][b] {
			a, b = s.up[k][a], s.up[k][b]
		}
	}

	return s.up[0][a]
}

func (s *staticLCATree) query(u, v int) (treeEdge, int64) {
	if u == v {
		return treeEdge{}, 0
	}
	e := s.wt.nodes[s.lca(leafOf(s.tree, s.wt, u), leafOf(s.tree, s.wt, v))].edge

	return e, e.w
}

func (s *staticLCATree) gain(u, v, w int) int64 { return pairGain(s, u, v, w) }

func (s *staticLCATree) update(t triple) {
	contractInTree(s.tree, s, t)
	s.rebuild()
}

func (s *staticLCATree) alreadyContracted(triple) bool { return false }

// dynamicLCATree keeps one weight tree and re-chains it on every update
// instead of rebuilding. LCAs are found by marking one root path and
// walking up the other.
//
// Complexity: query and update O(depth).
type dynamicLCATree struct {
	tree  *workingTree // positions only; never mutated
	wt    *weightTree
	mark  []int
	epoch int
}

func newDynamicLCATree(t *workingTree) *dynamicLCATree {
	return &dynamicLCATree{tree: t, wt: newWeightTree(t)}
}

func (s *dynamicLCATree) stampNext() {
	s.epoch++
	for len(s.mark) < len(s.wt.nodes) {
		s.mark = append(s.mark, 0)
	}
}

func (s *dynamicLCATree) lca(a, b int) int {
	s.stampNext()
	for x := a; x >= 0; x = s.wt.nodes[x].parent {
		s.mark[x] = s.epoch
	}
	for b >= 0 && s.mark[b] != s.epoch {
		b = s.wt.nodes[b].parent
	}
	if b < 0 {
		panic("steiner: weight tree: nodes in different trees")
	}

	return b
}

func (s *dynamicLCATree) query(u, v int) (treeEdge, int64) {
	if u == v {
		return treeEdge{}, 0
	}
	e := s.wt.nodes[s.lca(leafOf(s.tree, s.wt, u), leafOf(s.tree, s.wt, v))].edge

	return e, e.w
}

func (s *dynamicLCATree) gain(u, v, w int) int64 { return pairGain(s, u, v, w) }

// update joins the three leaves below two new zero nodes and stacks every
// other ancestor of the leaves above them in weight order. Each such
// ancestor keeps the child that lies off the three root paths; the two
// LCAs of the triple are dropped.
func (s *dynamicLCATree) update(t triple) {
	l0 := leafOf(s.tree, s.wt, t.s0)
	l1 := leafOf(s.tree, s.wt, t.s1)
	l2 := leafOf(s.tree, s.wt, t.s2)
	save1 := s.lca(l0, l1)
	save2 := s.lca(l0, l2)
	if save1 == save2 {
		save2 = s.lca(l1, l2)
	}

	// 1) Collect the union of the root paths.
	s.stampNext()
	nodes := s.wt.nodes
	var chain []int
	for _, l := range [3]int{l0, l1, l2} {
		s.mark[l] = s.epoch
	}
	for _, l := range [3]int{l0, l1, l2} {
		for x := nodes[l].parent; x >= 0 && s.mark[x] != s.epoch; x = nodes[x].parent {
			s.mark[x] = s.epoch
			if x != save1 && x != save2 {
				chain = append(chain, x)
			}
		}
	}

	// 2) Off-path children, taken before any rewiring.
	off := make([]int, len(chain))
	for i, x := range chain {
		switch {
		case s.mark[nodes[x].left] != s.epoch:
			off[i] = nodes[x].left
		case s.mark[nodes[x].right] != s.epoch:
			off[i] = nodes[x].right
		default:
			panic("steiner: weight tree: path node without off-path child")
		}
	}
	for _, x := range [2]int{save1, save2} {
		s.wt.nodes[x] = wtNode{parent: -1, left: -1, right: -1}
	}

	// 3) Rebuild the spine.
	z1 := s.wt.zero(l0, l1)
	cur := s.wt.zero(z1, l2)
	idx := make([]int, len(chain))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		xa, xb := chain[idx[a]], chain[idx[b]]
		if wa, wb := s.wt.nodes[xa].edge.w, s.wt.nodes[xb].edge.w; wa != wb {
			return wa < wb
		}

		return xa < xb
	})
	for _, i := range idx {
		x := chain[i]
		s.wt.nodes[x].left, s.wt.nodes[x].right = cur, off[i]
		s.wt.nodes[cur].parent = x
		s.wt.nodes[off[i]].parent = x
		cur = x
	}
	s.wt.nodes[cur].parent = -1
	s.wt.root = cur
}

func (s *dynamicLCATree) alreadyContracted(t triple) bool {
	_, a := s.query(t.s0, t.s1)
	_, b := s.query(t.s0, t.s2)
	_, c := s.query(t.s1, t.s2)

	return a == 0 || b == 0 || c == 0
}

func leafOf(t *workingTree, wt *weightTree, v int) int {
	p := t.pos[v]
	if p < 0 {
		panic("steiner: save query on a vertex outside the tree")
	}

	return wt.leaf[p]
}

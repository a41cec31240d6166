package steiner

// staticTree precomputes the save edge of every pair of tree nodes.
//
// The table is filled by recursive heaviest-edge splitting: the heaviest
// edge of a component is the save edge of every pair it separates, so all
// nodes of one half are paired with all nodes of the other half before both
// halves are split again.
//
// Complexity: O(m²) memory; a build costs O(m²) for the pairing plus
// O(m · depth) for the component scans.
type staticTree struct {
	tree  *workingTree
	table [][]treeEdge // by tree position

	adj    [][]adjEntry
	hidden []bool // by edge index
	stamp  []int
	epoch  int
}

func newStaticTree(t *workingTree) *staticTree {
	s := &staticTree{tree: t}
	s.rebuild()

	return s
}

// rebuild recomputes the table from the current tree.
func (s *staticTree) rebuild() {
	m := len(s.tree.nodes)
	s.table = make([][]treeEdge, m)
	for i := range s.table {
		s.table[i] = make([]treeEdge, m)
	}
	s.adj = s.tree.adjacency()
	s.hidden = make([]bool, len(s.tree.edges))
	s.stamp = make([]int, m)
	s.epoch = 0
	if m > 1 {
		s.split(0)
	}
}

// component returns the positions reachable from root without crossing a
// hidden edge, and the index of the first strictly heaviest edge among
// them (-1 if there is none).
func (s *staticTree) component(root int) ([]int, int) {
	s.epoch++
	heavy, maxW := -1, int64(-1)
	nodes := []int{root}
	s.stamp[root] = s.epoch
	var w int64
	for i := 0; i < len(nodes); i++ {
		for _, a := range s.adj[nodes[i]] {
			if s.hidden[a.edge] || s.stamp[a.to] == s.epoch {
				continue
			}
			s.stamp[a.to] = s.epoch
			nodes = append(nodes, a.to)
			if w = s.tree.edges[a.edge].w; w > maxW {
				heavy, maxW = a.edge, w
			}
		}
	}

	return nodes, heavy
}

func (s *staticTree) split(root int) {
	_, heavy := s.component(root)
	if heavy < 0 {
		return
	}
	e := s.tree.edges[heavy]
	s.hidden[heavy] = true
	pu, pv := s.tree.pos[e.u], s.tree.pos[e.v]
	left, _ := s.component(pu)
	right, _ := s.component(pv)
	// TODO: pairing every node of both halves is quadratic per split; an LCA
	// over the split hierarchy would answer the same queries in O(m) memory.
	for _, a := range left {
		for _, b := range right {
			s.table[a][b] = e
			s.table[b][a] = e
		}
	}
	s.split(pu)
	s.split(pv)
	s.hidden[heavy] = false
}

func (s *staticTree) query(u, v int) (treeEdge, int64) {
	if u == v {
		return treeEdge{}, 0
	}
	pu, pv := s.tree.pos[u], s.tree.pos[v]
	if pu < 0 || pv < 0 {
		panic("steiner: save query on a vertex outside the tree")
	}
	e := s.table[pu][pv]

	return e, e.w
}

// gain is the heaviest plus the lightest of the three pair weights: in a
// tree the heaviest save edge is shared by two of the pairs.
func (s *staticTree) gain(u, v, w int) int64 {
	_, a := s.query(u, v)
	_, b := s.query(u, w)
	_, c := s.query(v, w)

	return max(a, b, c) + min(a, b, c)
}

func (s *staticTree) update(t triple) {
	contractInTree(s.tree, s, t)
	s.rebuild()
}

func (s *staticTree) alreadyContracted(triple) bool { return false }

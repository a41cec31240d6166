package steiner

import "github.com/katalvlaran/lvsteiner/core"

// IsSteinerTree reports whether tree is a Steiner tree for terminals: a
// connected acyclic graph that contains every terminal and whose leaves are
// all terminals. A single terminal vertex without edges qualifies.
//
// Complexity: O(V + E).
func IsSteinerTree(tree *core.Graph, terminals []string) bool {
	if tree == nil || len(terminals) == 0 {
		return false
	}
	vertices := tree.Vertices()
	if len(vertices) == 0 || tree.EdgeCount() != len(vertices)-1 {
		return false
	}

	isTerm := make(map[string]bool, len(terminals))
	for _, t := range terminals {
		if !tree.HasVertex(t) {
			return false
		}
		isTerm[t] = true
	}
	for _, v := range vertices {
		if isTerm[v] {
			continue
		}
		if d, err := tree.Degree(v); err != nil || d < 2 {
			return false
		}
	}

	// With |E| = |V|-1, connectivity rules out cycles.
	seen := map[string]bool{vertices[0]: true}
	stack := []string{vertices[0]}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nbs, err := tree.NeighborIDs(v)
		if err != nil {
			return false
		}
		for _, nb := range nbs {
			if !seen[nb] {
				seen[nb] = true
				stack = append(stack, nb)
			}
		}
	}

	return len(seen) == len(vertices)
}

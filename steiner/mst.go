package steiner

// densePrim computes a minimum spanning tree of the complete graph on
// {0, …, n-1} with weights w(i, j), grown from vertex 0. parent[0] == -1.
// It returns ok == false if some vertex can only be reached through Inf.
//
// Ties pick the lowest index.
// Complexity: O(n²) time, O(n) memory.
func densePrim(n int, w func(i, j int) int64) (parent []int, ok bool) {
	parent = make([]int, n)
	best := make([]int64, n)
	in := make([]bool, n)
	for v := range best {
		best[v] = Inf
		parent[v] = -1
	}
	if n == 0 {
		return parent, true
	}
	best[0] = 0

	var u, v, it int
	var c int64
	for it = 0; it < n; it++ {
		u = -1
		for v = 0; v < n; v++ {
			if !in[v] && (u < 0 || best[v] < best[u]) {
				u = v
			}
		}
		if best[u] == Inf {
			return nil, false
		}
		in[u] = true
		for v = 0; v < n; v++ {
			if in[v] {
				continue
			}
			if c = w(u, v); c < best[v] {
				best[v] = c
				parent[v] = u
			}
		}
	}

	return parent, true
}

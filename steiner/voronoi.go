package steiner

// voronoiRegions assigns every vertex to its nearest terminal and returns
// the regions by terminal rank, each in ascending vertex order. Ties go to
// the lower rank; vertices no terminal reaches belong to no region.
//
// Complexity: O(t·V) after the rows are computed.
func voronoiRegions(n int, terminals []int, rows *rowCache) [][]int {
	owner := make([]int, n)
	best := make([]int64, n)
	for v := range owner {
		owner[v] = -1
		best[v] = Inf
	}
	for i, t := range terminals {
		dist := rows.get(t).dist
		for v := 0; v < n; v++ {
			if dist[v] < best[v] {
				best[v], owner[v] = dist[v], i
			}
		}
	}

	regions := make([][]int, len(terminals))
	for v, i := range owner {
		if i >= 0 {
			regions[i] = append(regions[i], v)
		}
	}

	return regions
}

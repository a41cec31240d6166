package steiner

// nextTuple advances tuple to the lexicographically next k-subset of
// {0, …, n-1}, k = len(tuple), and reports whether one exists. A tuple must
// start as {0, 1, …, k-1}. The empty tuple (k = 0) has no successor.
//
// Panics if the tuple is not strictly increasing within [0, n).
//
// Complexity: O(k).
func nextTuple(tuple []int, n int) bool {
	k := len(tuple)
	if k == 0 {
		return false
	}
	if k > n || tuple[k-1] >= n {
		panic("steiner: nextTuple: index out of range")
	}

	i := k - 1
	for tuple[i] == i+n-k {
		if i == 0 {
			return false
		}
		i--
	}
	tuple[i]++
	for ; i < k-1; i++ {
		tuple[i+1] = tuple[i] + 1
	}

	return true
}

// firstTuple returns {0, 1, …, k-1}.
func firstTuple(k int) []int {
	t := make([]int, k)
	for i := range t {
		t[i] = i
	}

	return t
}

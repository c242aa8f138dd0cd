package puzzle

import "sort"

// IsSolvable reports whether state can reach the goal state by any
// sequence of legal blank moves.
//
// It computes a parity sum by scanning left-to-right while maintaining a
// sorted list of the non-blank tiles seen so far: each tile's contribution
// is the number of already-seen tiles smaller than it (its insertion
// index — this indirectly counts inversions), and the blank's
// contribution is its row index. The state is solvable iff the total is
// even; this single rule holds for both odd and even N.
func IsSolvable(s State) bool {
	n := s.Size()
	seen := make([]int, 0, len(s))
	sum := 0

	for i, v := range s {
		if v == 0 {
			sum += i / n
			continue
		}
		idx := sort.SearchInts(seen, v)
		sum += idx
		seen = append(seen, 0)
		copy(seen[idx+1:], seen[idx:])
		seen[idx] = v
	}

	return sum%2 == 0
}

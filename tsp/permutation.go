package tsp

import "math"

// nextPermutation rearranges a into the next lexicographic permutation and
// reports whether one existed. On false, a is left in its last order.
//
// Complexity: O(len(a)).
func nextPermutation(a []int) bool {
	var i, j int
	for i = len(a) - 2; i >= 0 && a[i] >= a[i+1]; i-- {
	}
	if i < 0 {
		return false
	}
	for j = len(a) - 1; a[j] <= a[i]; j-- {
	}
	a[i], a[j] = a[j], a[i]
	for l, r := i+1, len(a)-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
	}

	return true
}

// Permutations returns n!/(n−r)!, the number of ordered r-selections from n
// items. It saturates at math.MaxUint64 and returns 0 for r > n or negative input.
func Permutations(n, r int) uint64 {
	if n < 0 || r < 0 || r > n {
		return 0
	}
	var out uint64 = 1
	for k := n - r + 1; k <= n; k++ {
		if out > math.MaxUint64/uint64(k) {
			return math.MaxUint64
		}
		out *= uint64(k)
	}

	return out
}

// Combinations returns n!/(r!(n−r)!), saturating at math.MaxUint64.
func Combinations(n, r int) uint64 {
	if n < 0 || r < 0 || r > n {
		return 0
	}
	if r > n-r {
		r = n - r
	}
	var out uint64 = 1
	for k := 1; k <= r; k++ {
		// out*(n−r+k) is always divisible by k
		num := uint64(n - r + k)
		if out > math.MaxUint64/num {
			return math.MaxUint64
		}
		out = out * num / uint64(k)
	}

	return out
}

// TourCount returns the number of candidate tours SolveExact enumerates for
// n nodes: (n−1)! once the anchor is fixed.
func TourCount(n int) uint64 {
	if n < 1 {
		return 0
	}

	return Permutations(n-1, n-1)
}

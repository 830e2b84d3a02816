// Package tsp provides the exact Travelling Salesman solver of opentsp.
//
// SolveExact enumerates closed tours over the nodes of a core.Instance:
//
//   - The highest-index node is the fixed anchor.
//
//   - The remaining n−1 nodes are permuted in lexicographic index order and
//     each permutation p forms the tour anchor, p[0], …, p[n−2], anchor.
//
//   - Edge lengths are accumulated left to right and a candidate is abandoned
//     as soon as its partial sum exceeds the best complete tour so far.
//
//   - A strictly shorter complete tour replaces the incumbent, so among equal
//     optimal tours the first one found wins.
//
//   - Complexity: O((n−1)!·n) time, O(n) space per worker.
//
// n == 3 is answered in closed form; n < 3 is rejected with core.ErrInvalidInput.
//
// Size guard: beyond DefaultSizeGuard (11) nodes the search takes hours.
// SolveExact refuses such instances with ErrSizeGuardExceeded unless
// Options.AllowLarge is set; ExceedsSizeGuard lets a caller ask first.
//
// Cancellation: the context is checked every 4096 permutations.
//
// Parallelism: Options.Workers > 1 splits the search into blocks by the first
// permuted node and reduces the block winners in block order, which yields the
// same tour as the sequential search.
//
// Tours: ValidateTour checks the Hamiltonian-cycle invariants of a path,
// TourOrder maps it to 1-based node indices and TourCost sums a distance
// matrix along such an order.
package tsp

// Package solve runs the opentsp algorithms against an instance and records
// their results on it.
//
// Run executes, in order and as requested by Options:
//
//   - the convex hull, recorded under core.ResultConvexHull;
//   - the exact solver, recorded under core.ResultBruteForce and
//     core.ResultOptimalSolution, with the search time stored via
//     Instance.SetSolveTime;
//   - the diamond pruner, whose report is returned in the Summary.
//
// The algorithms never call each other; Run only sequences them.
package solve

// Package builder creates opentsp instances from point sources.
//
// A Source produces node coordinates; NewInstance turns them into a
// core.Instance, fills its edge store and, on request, its distance matrix
// and node densities:
//
//	inst, err := builder.NewInstance(builder.SeedSource(8, 12345678),
//		builder.WithRelativeEdges(true),
//		builder.WithDistanceMatrix(true))
//
// Sources:
//   - RandomSource(n): n integer points drawn uniformly from [lower, upper)²
//     with a fresh eight-digit seed, recorded on the instance.
//   - SeedSource(n, seed): the same draw from a caller-chosen seed, so any
//     earlier instance can be recreated from its recorded seed.
//   - CSVSource(path) / ReaderSource(r): one point per row of a CSV file with
//     an x and a y column.
//   - ListSource(points): points supplied by the caller.
//
// Options are functional (BuilderOption). Option constructors panic on
// meaningless values; sources and NewInstance return sentinel errors.
//
// Determinism: the same seed, bounds and node count always give the same
// points. Duplicate draws are redrawn, so every instance has distinct nodes.
package builder

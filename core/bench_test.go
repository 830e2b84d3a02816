// Package core_test provides benchmarks for core.Instance operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/opentsp/core"
)

func grid(side int) []core.Point {
	out := make([]core.Point, 0, side*side)
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			out = append(out, core.NewPoint(float64(i)*10, float64(j)*10+float64(i)))
		}
	}

	return out
}

// BenchmarkPopulateEdges_Relative measures building the n(n−1) directed store.
func BenchmarkPopulateEdges_Relative(b *testing.B) {
	pts := grid(10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		in, _ := core.NewInstance(pts, core.WithRelativeEdges(true))
		in.PopulateEdges()
	}
}

// BenchmarkPopulateDistanceMatrix measures the pairwise matrix for 100 nodes.
func BenchmarkPopulateDistanceMatrix(b *testing.B) {
	pts := grid(10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		in, _ := core.NewInstance(pts)
		_ = in.PopulateDistanceMatrix()
	}
}

// BenchmarkPathEqual compares a 100-point tour with its rotation.
func BenchmarkPathEqual(b *testing.B) {
	pts := grid(10)
	p := core.NewPath(append(pts, pts[0])...)
	rot := append(append([]core.Point{}, pts[50:]...), pts[:50]...)
	q := core.NewPath(append(rot, rot[0])...)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Equal(q)
	}
}

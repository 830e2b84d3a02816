package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/opentsp/matrix"
)

func benchDist(i, j int) float64 {
	return math.Hypot(float64(i-j), float64(i*j%7))
}

// BenchmarkPairwise_Symmetric fills only the upper triangle and mirrors it.
func BenchmarkPairwise_Symmetric(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.Pairwise(100, benchDist, true)
	}
}

// BenchmarkPairwise_Asymmetric evaluates every ordered pair.
func BenchmarkPairwise_Asymmetric(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.Pairwise(100, benchDist, false)
	}
}

// BenchmarkDenseAt measures bounds-checked reads over a 100×100 matrix.
func BenchmarkDenseAt(b *testing.B) {
	m, _ := matrix.Pairwise(100, benchDist, true)
	b.ReportAllocs()
	b.ResetTimer()
	var sum float64
	for i := 0; i < b.N; i++ {
		v, _ := m.At(i%100, (i/100)%100)
		sum += v
	}
	_ = sum
}

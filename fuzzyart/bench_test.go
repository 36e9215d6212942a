package fuzzyart_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/artkit/core"
	"github.com/katalvlaran/artkit/fuzzyart"
)

// trainedEngine builds an engine holding roughly n categories over d raw
// features, from a fixed random stream.
func trainedEngine(b *testing.B, n, d int, rho float64) *fuzzyart.FuzzyART {
	b.Helper()
	opts := fuzzyart.DefaultOptions()
	opts.Rho = rho
	art, err := fuzzyart.New(opts)
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	mins := make([]float64, d)
	maxs := make([]float64, d)
	for i := range maxs {
		maxs[i] = 1
	}
	bounds, err := core.NewBounds(mins, maxs)
	if err != nil {
		b.Fatalf("NewBounds: %v", err)
	}
	if err = art.SetBounds(bounds); err != nil {
		b.Fatalf("SetBounds: %v", err)
	}

	rnd := rand.New(rand.NewSource(42))
	x := make([]float64, d)
	for art.CategoryCount() < n {
		for j := range x {
			x[j] = rnd.Float64()
		}
		if _, err = art.Train(x, core.NoLabel); err != nil {
			b.Fatalf("Train: %v", err)
		}
	}
	return art
}

// BenchmarkFuzzyART_Train measures one find-and-learn step against a
// store of 100 categories.
func BenchmarkFuzzyART_Train(b *testing.B) {
	const d = 8
	art := trainedEngine(b, 100, d, 0.92)
	x := make([]float64, d)
	for j := range x {
		x[j] = 0.5
	}

	b.ReportAllocs()
	b.SetBytes(int64(2 * d * 8))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = art.Train(x, core.NoLabel)
	}
}

// BenchmarkFuzzyART_Classify measures the pure inference walk.
func BenchmarkFuzzyART_Classify(b *testing.B) {
	const d = 8
	art := trainedEngine(b, 100, d, 0.92)
	x := make([]float64, d)
	for j := range x {
		x[j] = 0.5
	}

	b.ReportAllocs()
	b.SetBytes(int64(2 * d * 8))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = art.Classify(x, true)
	}
}

// BenchmarkFuzzyART_ScoresCoded isolates the per-category arithmetic
// without the preprocessing allocation.
func BenchmarkFuzzyART_ScoresCoded(b *testing.B) {
	const d = 8
	art := trainedEngine(b, 100, d, 0.92)
	xc := make([]float64, 2*d)
	for j := 0; j < d; j++ {
		xc[j] = 0.5
		xc[d+j] = 0.5
	}

	b.ReportAllocs()
	b.SetBytes(int64(2 * d * 8))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, _ = art.Scores(xc)
	}
}

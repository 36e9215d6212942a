// File: artscene/bench_test.go
package artscene_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/artkit/artscene"
)

// noisyPlane builds an h×w plane of deterministic pseudo-random
// intensities in [0, 1).
func noisyPlane(h, w int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	p := mat.NewDense(h, w, nil)
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			p.Set(i, j, rng.Float64())
		}
	}
	return p
}

// BenchmarkFilter runs the full six-stage pipeline over a 64×64 RGB
// image with default tunables.
func BenchmarkFilter(b *testing.B) {
	const side = 64
	r := noisyPlane(side, side, 42)
	g := noisyPlane(side, side, 43)
	bl := noisyPlane(side, side, 44)

	b.ReportAllocs()
	b.SetBytes(int64(3 * side * side * 8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := artscene.Filter(r, g, bl, artscene.DefaultOptions()); err != nil {
			b.Fatalf("Filter failed: %v", err)
		}
	}
}

// BenchmarkOrientedContrast isolates the dominant stage: four oriented
// convolution pairs over a 64×64 plane.
func BenchmarkOrientedContrast(b *testing.B) {
	const side = 64
	x := noisyPlane(side, side, 7)

	b.ReportAllocs()
	b.SetBytes(int64(side * side * 8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := artscene.OrientedContrast(x, artscene.DefaultOptions()); err != nil {
			b.Fatalf("OrientedContrast failed: %v", err)
		}
	}
}

// Package dataset - Ring: area-uniform samples over a planar annulus.
package dataset

import "math"

// Ring draws n points uniformly by area from the annulus with the given
// inner and outer radii, centered at (0.5, 0.5). inner==0 degenerates to
// a full disc, inner==outer to a circle. All points carry label 1; demos
// that want concentric multi-ring sets call Ring once per band with
// distinct seeds and relabel.
//
// Area uniformity uses the inverse-CDF radius r = √(inner² + u·(outer²−inner²)),
// which avoids the center-crowding of naive uniform-radius sampling.
//
// Contract:
//   - n ≥ 1; 0 ≤ inner ≤ outer; outer > 0.
//   - Radii up to 0.5 keep the set inside the unit square; larger radii
//     are permitted and simply extend the bounding box.
//   - Draw order is stable: per point, radius first, then angle.
//
// Complexity: O(n) time, O(n) space.
func Ring(n int, inner, outer float64, seed int64) ([][]float64, []int, error) {
	if n < 1 {
		return nil, nil, ErrSampleCount
	}
	if inner < 0 || outer < inner || outer == 0 {
		return nil, nil, ErrRadiusRange
	}

	rng := deriveRNG(seed, 0)
	X := make([][]float64, n)
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		u := rng.Float64()
		r := math.Sqrt(inner*inner + u*(outer*outer-inner*inner))
		theta := 2 * math.Pi * rng.Float64()
		X[i] = []float64{
			planeCenter + r*math.Cos(theta),
			planeCenter + r*math.Sin(theta),
		}
		labels[i] = 1
	}
	return X, labels, nil
}

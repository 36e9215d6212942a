// Package dataset - TwoSpirals: the interlocking two-arm spiral benchmark.
package dataset

import "math"

// TwoSpirals draws perArm points along each of two point-symmetric spiral
// arms centered at (0.5, 0.5). Arm radii grow linearly from 0.05 to 0.45
// over the given number of full turns; the second arm is the first rotated
// by π. Arm a (0-based) receives label a+1 and its own derived RNG stream.
// Gaussian jitter with standard deviation noise perturbs each coordinate;
// noise==0 yields the noise-free backbone.
//
// The interlocked arms are not linearly separable, which makes the set a
// standard stress case for category proliferation under tight vigilance.
//
// Contract:
//   - perArm ≥ 1; turns > 0; noise ≥ 0.
//   - Emission order is stable: arm asc, sample asc along the arm; the
//     per-point jitter draws x first, then y.
//
// Complexity: O(n) time, O(n) space.
func TwoSpirals(perArm int, turns, noise float64, seed int64) ([][]float64, []int, error) {
	if perArm < 1 {
		return nil, nil, ErrSampleCount
	}
	if turns <= 0 {
		return nil, nil, ErrTurnsRange
	}
	if noise < 0 {
		return nil, nil, ErrSpreadRange
	}

	X := make([][]float64, 0, 2*perArm)
	labels := make([]int, 0, 2*perArm)
	for arm := 0; arm < 2; arm++ {
		rng := deriveRNG(seed, uint64(arm))
		sign := 1.0
		if arm == 1 {
			sign = -1.0
		}
		for i := 0; i < perArm; i++ {
			t := float64(i) / float64(perArm)
			r := spiralRMin + (spiralRMax-spiralRMin)*t
			theta := 2 * math.Pi * turns * t
			X = append(X, []float64{
				planeCenter + sign*r*math.Cos(theta) + noise*rng.NormFloat64(),
				planeCenter + sign*r*math.Sin(theta) + noise*rng.NormFloat64(),
			})
			labels = append(labels, arm+1)
		}
	}
	return X, labels, nil
}

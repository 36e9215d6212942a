// Package artscene - Gaussian kernel construction and clamped convolution.
package artscene

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// gaussianKernel builds an isotropic (2r+1)×(2r+1) Gaussian normalized to
// unit sum, so convolving a constant plane reproduces the constant.
//
// Complexity: O(r²).
func gaussianKernel(radius int, sigma float64) *mat.Dense {
	n := 2*radius + 1
	k := mat.NewDense(n, n, nil)
	sum := 0.0
	for a := 0; a < n; a++ {
		dy := float64(a - radius)
		for b := 0; b < n; b++ {
			dx := float64(b - radius)
			v := math.Exp(-(dx*dx + dy*dy) / (2 * sigma * sigma))
			k.Set(a, b, v)
			sum += v
		}
	}
	k.Scale(1/sum, k)
	return k
}

// orientedLobes builds the excitatory/inhibitory lobe pair of the oriented
// filter for edge-line angle theta (radians from horizontal). The lobes
// are isotropic Gaussians displaced by ±offset along the edge normal
// (−sin θ, cos θ) and are normalized to unit sum each, which zeroes the
// filter's response to uniform input.
//
// Complexity: O(r²).
func orientedLobes(theta float64, radius int, sigma, offset float64) (pos, neg *mat.Dense) {
	dx := -offset * math.Sin(theta)
	dy := offset * math.Cos(theta)
	pos = lobe(radius, sigma, dx, dy)
	neg = lobe(radius, sigma, -dx, -dy)
	return pos, neg
}

// lobe renders one unit-sum Gaussian centered at (dx, dy) pixels off the
// kernel midpoint, with dx along columns and dy along rows.
func lobe(radius int, sigma, dx, dy float64) *mat.Dense {
	n := 2*radius + 1
	k := mat.NewDense(n, n, nil)
	sum := 0.0
	for a := 0; a < n; a++ {
		y := float64(a-radius) - dy
		for b := 0; b < n; b++ {
			x := float64(b-radius) - dx
			v := math.Exp(-(x*x + y*y) / (2 * sigma * sigma))
			k.Set(a, b, v)
			sum += v
		}
	}
	k.Scale(1/sum, k)
	return k
}

// convolve correlates plane x with kernel k under the clamp border
// policy: out-of-range taps replicate the nearest edge pixel, so edges
// neither darken nor wrap.
//
// Complexity: O(H·W·K²) time, O(H·W) space for the result.
func convolve(x, k *mat.Dense) *mat.Dense {
	h, w := x.Dims()
	kh, kw := k.Dims()
	rr, rc := kh/2, kw/2
	out := mat.NewDense(h, w, nil)
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			s := 0.0
			for a := 0; a < kh; a++ {
				ii := clampIndex(i+a-rr, h)
				for b := 0; b < kw; b++ {
					s += k.At(a, b) * x.At(ii, clampIndex(j+b-rc, w))
				}
			}
			out.Set(i, j, s)
		}
	}
	return out
}

// clampIndex confines i to [0, n).
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

package core

import "gonum.org/v1/gonum/floats"

// Fuzzy vector arithmetic on []float64. All norms are L1; min is
// element-wise. These helpers sit on every engine's hot path, so the
// norm-of-minimum is fused (AndNorm1) to avoid a temporary per category.

// FuzzyAnd writes the element-wise minimum of a and b into dst and returns
// it. If dst is nil a new slice is allocated; otherwise len(dst) must equal
// len(a). a and b must be the same length; dst may alias either input.
// Complexity: O(d).
func FuzzyAnd(dst, a, b []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(a))
	}
	for i := range a {
		if a[i] < b[i] {
			dst[i] = a[i]
		} else {
			dst[i] = b[i]
		}
	}
	return dst
}

// AndNorm1 returns ‖a ∧ b‖₁, the L1 norm of the element-wise minimum,
// without allocating. a and b must be the same length.
// Complexity: O(d).
func AndNorm1(a, b []float64) float64 {
	var sum float64
	for i := range a {
		if a[i] < b[i] {
			sum += a[i]
		} else {
			sum += b[i]
		}
	}
	return sum
}

// Norm1 returns the L1 norm of v.
// Complexity: O(d).
func Norm1(v []float64) float64 {
	return floats.Norm(v, 1)
}

// Complement returns the complement coding of a unit vector x:
// [x, 1−x] of length 2·len(x). The caller guarantees x ∈ [0,1]^d.
// Complexity: O(d).
func Complement(x []float64) []float64 {
	d := len(x)
	out := make([]float64, 2*d)
	copy(out, x)
	for i, v := range x {
		out[d+i] = 1 - v
	}
	return out
}

// Learn applies the fuzzy-AND learning rule to w in place:
//
//	w ← β·(x ∧ w) + (1−β)·w, β ∈ (0,1].
//
// β=1 is fast commit: the prototype becomes the fuzzy AND of itself and
// the sample in one step. Smaller β blends slowly, averaging history.
// w and x must be the same length; the caller validates β.
// Complexity: O(d).
func Learn(w, x []float64, beta float64) {
	if beta == 1 {
		FuzzyAnd(w, x, w)
		return
	}
	for i := range w {
		m := w[i]
		if x[i] < m {
			m = x[i]
		}
		w[i] = beta*m + (1-beta)*w[i]
	}
}

// EqualWeights reports whether two weight snapshots are identical: same
// category count and bitwise-equal vectors slot by slot. Used by epoch
// convergence checks.
// Complexity: O(n·d).
func EqualWeights(a, b [][]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !floats.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

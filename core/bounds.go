package core

// Bounds is the data-bounds descriptor: per-feature minima and maxima plus
// the raw feature count. It is the contract between raw feature space and
// the unit-hypercube representation consumed by the engines: every engine
// sizes its prototypes (2·Dim) and its vigilance threshold from a Bounds,
// and refuses incremental training before one is established.
//
// A Bounds is immutable once constructed. The zero value is "not set";
// use Set to distinguish it.
type Bounds struct {
	mins []float64
	maxs []float64
}

// NewBounds constructs a Bounds from explicit per-feature minima and maxima.
// Returns ErrBoundsInvalid if the slices are empty, differ in length, or
// min > max for any feature. Inputs are deep-copied.
// Complexity: O(d).
func NewBounds(mins, maxs []float64) (Bounds, error) {
	if len(mins) == 0 || len(mins) != len(maxs) {
		return Bounds{}, ErrBoundsInvalid
	}
	for i := range mins {
		if mins[i] > maxs[i] {
			return Bounds{}, ErrBoundsInvalid
		}
	}
	b := Bounds{
		mins: make([]float64, len(mins)),
		maxs: make([]float64, len(maxs)),
	}
	copy(b.mins, mins)
	copy(b.maxs, maxs)

	return b, nil
}

// BoundsOf derives a Bounds from a batch of raw samples, one sample per row.
// Returns ErrEmptyBatch for an empty batch and ErrDimMismatch if rows have
// differing lengths.
// Complexity: O(n·d).
func BoundsOf(X [][]float64) (Bounds, error) {
	if len(X) == 0 || len(X[0]) == 0 {
		return Bounds{}, ErrEmptyBatch
	}
	d := len(X[0])
	mins := make([]float64, d)
	maxs := make([]float64, d)
	copy(mins, X[0])
	copy(maxs, X[0])
	for _, row := range X[1:] {
		if len(row) != d {
			return Bounds{}, ErrDimMismatch
		}
		for j, v := range row {
			if v < mins[j] {
				mins[j] = v
			}
			if v > maxs[j] {
				maxs[j] = v
			}
		}
	}
	return Bounds{mins: mins, maxs: maxs}, nil
}

// Set reports whether the descriptor has been established.
// Complexity: O(1).
func (b Bounds) Set() bool { return len(b.mins) > 0 }

// Dim returns the raw feature count (before complement coding).
// Complexity: O(1).
func (b Bounds) Dim() int { return len(b.mins) }

// CodedDim returns the complement-coded vector length, 2·Dim.
// Complexity: O(1).
func (b Bounds) CodedDim() int { return 2 * len(b.mins) }

// Min returns the recorded minimum of feature j.
func (b Bounds) Min(j int) float64 { return b.mins[j] }

// Max returns the recorded maximum of feature j.
func (b Bounds) Max(j int) float64 { return b.maxs[j] }

// Normalize maps a raw vector into [0,1] per feature by linear min–max
// scaling. Values outside the recorded bounds clamp to the boundary, so
// unseen data still yields a valid unit vector. Features with zero range
// normalize to 0. Returns ErrBoundsNotSet or ErrDimMismatch.
// Complexity: O(d).
func (b Bounds) Normalize(x []float64) ([]float64, error) {
	if !b.Set() {
		return nil, ErrBoundsNotSet
	}
	if len(x) != len(b.mins) {
		return nil, ErrDimMismatch
	}
	out := make([]float64, len(x))
	for j, v := range x {
		span := b.maxs[j] - b.mins[j]
		if span == 0 {
			out[j] = 0
			continue
		}
		u := (v - b.mins[j]) / span
		if u < 0 {
			u = 0
		} else if u > 1 {
			u = 1
		}
		out[j] = u
	}
	return out, nil
}

// Code normalizes a raw vector and complement-codes it to length 2·Dim:
// the first half is the normalized feature, the second its complement 1−x.
// Complement coding keeps ‖coded‖₁ == Dim, which the match computation
// relies on. Returns ErrBoundsNotSet or ErrDimMismatch.
// Complexity: O(d).
func (b Bounds) Code(x []float64) ([]float64, error) {
	u, err := b.Normalize(x)
	if err != nil {
		return nil, err
	}
	return Complement(u), nil
}

// CheckCoded verifies that xc is a plausible complement-coded vector for
// this descriptor: length 2·Dim with every component in [0,1]. Engines call
// it at the pre-coded entry points before trusting the input.
// Returns ErrBoundsNotSet, ErrDimMismatch or ErrUnitInterval.
// Complexity: O(d).
func (b Bounds) CheckCoded(xc []float64) error {
	if !b.Set() {
		return ErrBoundsNotSet
	}
	if len(xc) != b.CodedDim() {
		return ErrDimMismatch
	}
	for _, v := range xc {
		if v < 0 || v > 1 {
			return ErrUnitInterval
		}
	}
	return nil
}

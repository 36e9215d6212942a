// Package core defines the category store, data bounds, preprocessing and
// fuzzy vector math shared by every artkit learner.
package core

import "errors"

// Reserved label sentinels. Real category labels are always ≥ 1.
const (
	// NoLabel marks an unsupervised call: the engine assigns the label itself.
	NoLabel = 0
	// Mismatch is returned by classification when no category resonates.
	Mismatch = -1
)

// Sentinel errors for bounds, preprocessing and store operations.
var (
	// ErrBoundsInvalid indicates empty bounds or min > max for some feature.
	ErrBoundsInvalid = errors.New("core: bounds must be non-empty with min ≤ max per feature")
	// ErrBoundsNotSet indicates preprocessing was requested before bounds were established.
	ErrBoundsNotSet = errors.New("core: data bounds not set")
	// ErrDimMismatch indicates a vector length that disagrees with the bounds dimension.
	ErrDimMismatch = errors.New("core: vector length does not match bounds dimension")
	// ErrUnitInterval indicates a coded component outside [0,1].
	ErrUnitInterval = errors.New("core: coded vector components must lie in [0,1]")
	// ErrEmptyBatch indicates bounds derivation over an empty sample batch.
	ErrEmptyBatch = errors.New("core: batch must contain at least one sample")
	// ErrIndexRange indicates a category index outside [0, Len).
	ErrIndexRange = errors.New("core: category index out of range")
	// ErrWeightDim indicates an appended weight whose length differs from existing slots.
	ErrWeightDim = errors.New("core: weight length differs from existing categories")
	// ErrStoreCorrupt indicates the parallel store slices diverged in length.
	ErrStoreCorrupt = errors.New("core: store slices diverged in length")
)

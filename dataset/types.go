// Package dataset - sentinel errors and shared geometry constants.
package dataset

import "errors"

// Sentinel errors returned by the generators. All validation failures
// wrap nothing and carry no context beyond the condition itself.
var (
	// ErrNoCenters reports an empty center list passed to Blobs.
	ErrNoCenters = errors.New("dataset: centers must not be empty")

	// ErrCenterDim reports centers of unequal or zero dimension.
	ErrCenterDim = errors.New("dataset: centers must share one positive dimension")

	// ErrSampleCount reports a non-positive per-cluster or per-arm sample count.
	ErrSampleCount = errors.New("dataset: sample count must be positive")

	// ErrSpreadRange reports a negative Gaussian spread or noise level.
	ErrSpreadRange = errors.New("dataset: spread must be non-negative")

	// ErrRadiusRange reports ring radii outside 0 ≤ inner ≤ outer with outer > 0.
	ErrRadiusRange = errors.New("dataset: ring radii must satisfy 0 ≤ inner ≤ outer and outer > 0")

	// ErrTurnsRange reports a non-positive spiral winding count.
	ErrTurnsRange = errors.New("dataset: turns must be positive")
)

// planeCenter anchors the two-dimensional generators. Ring and TwoSpirals
// emit points around (planeCenter, planeCenter) so that radii up to 0.5
// keep the whole set inside the unit square.
const planeCenter = 0.5

// Spiral extent - the arms grow linearly from spiralRMin out to
// spiralRMax so that a noise-free instance fits the unit square.
const (
	spiralRMin = 0.05
	spiralRMax = 0.45
)

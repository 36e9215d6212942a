// Package artscene - sentinel errors, tunables and their defaults.
package artscene

import "errors"

// Sentinel errors returned by the pipeline stages.
var (
	// ErrEmptyPlane indicates a nil or zero-sized image plane.
	ErrEmptyPlane = errors.New("artscene: image plane must be non-empty")
	// ErrPlaneShape indicates planes of differing dimensions in one call.
	ErrPlaneShape = errors.New("artscene: image planes must share identical dimensions")
	// ErrNotFinite indicates a NaN or Inf entry in an input plane.
	ErrNotFinite = errors.New("artscene: image plane contains a non-finite value")
	// ErrKernelParam indicates a non-positive kernel radius, sigma or lobe offset.
	ErrKernelParam = errors.New("artscene: kernel radii must be at least 1 and sigmas and offset positive")
	// ErrPatchGrid indicates a patch grid that is non-positive or finer than the image.
	ErrPatchGrid = errors.New("artscene: patch grid must be at least 1×1 and no finer than the image")
	// ErrPlaneCount indicates an orientation plane list of the wrong length.
	ErrPlaneCount = errors.New("artscene: expected one plane per orientation")
)

// Orientations is the number of oriented filter channels. The edge-line
// angles are k·45° from horizontal for k = 0..3, so index 2 is the
// vertical-edge channel.
const Orientations = 4

// Default tunables. Radii are kernel half-widths in pixels; a radius r
// spans a (2r+1)×(2r+1) window.
const (
	DefaultCenterRadius   = 2
	DefaultCenterSigma    = 1.0
	DefaultSurroundRadius = 4
	DefaultSurroundSigma  = 3.0
	DefaultOrientRadius   = 3
	DefaultOrientSigma    = 1.5
	DefaultOrientOffset   = 1.5
	DefaultPatchRows      = 4
	DefaultPatchCols      = 4
)

// Options collects the pipeline tunables:
//   - CenterRadius/CenterSigma — on-center Gaussian of the shunting ground.
//   - SurroundRadius/SurroundSigma — off-surround Gaussian; wider than the
//     center so their difference passes local contrast only.
//   - OrientRadius/OrientSigma — window and spread of each oriented lobe.
//   - OrientOffset — displacement of the two lobes along the edge normal,
//     in pixels.
//   - PatchRows/PatchCols — pooling grid of stage 6; the image is split
//     into PatchRows×PatchCols patches of near-equal size.
type Options struct {
	CenterRadius   int
	CenterSigma    float64
	SurroundRadius int
	SurroundSigma  float64
	OrientRadius   int
	OrientSigma    float64
	OrientOffset   float64
	PatchRows      int
	PatchCols      int
}

// DefaultOptions returns the canonical tunables used by Filter when
// callers have no reason to deviate.
func DefaultOptions() Options {
	return Options{
		CenterRadius:   DefaultCenterRadius,
		CenterSigma:    DefaultCenterSigma,
		SurroundRadius: DefaultSurroundRadius,
		SurroundSigma:  DefaultSurroundSigma,
		OrientRadius:   DefaultOrientRadius,
		OrientSigma:    DefaultOrientSigma,
		OrientOffset:   DefaultOrientOffset,
		PatchRows:      DefaultPatchRows,
		PatchCols:      DefaultPatchCols,
	}
}

// validateShunting checks the stage-2 kernel parameters.
func (o Options) validateShunting() error {
	if o.CenterRadius < 1 || o.SurroundRadius < 1 || o.CenterSigma <= 0 || o.SurroundSigma <= 0 {
		return ErrKernelParam
	}
	return nil
}

// validateOriented checks the stage-3 kernel parameters.
func (o Options) validateOriented() error {
	if o.OrientRadius < 1 || o.OrientSigma <= 0 || o.OrientOffset <= 0 {
		return ErrKernelParam
	}
	return nil
}

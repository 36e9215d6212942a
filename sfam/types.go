// Package sfam defines options and sentinel errors for Simplified Fuzzy
// ARTMAP.
package sfam

import "errors"

// Sentinel errors for supervised training.
var (
	// ErrLabelRequired indicates a Train call without a positive label.
	ErrLabelRequired = errors.New("sfam: supervised training requires a positive label")
	// ErrEpsilonRange indicates a non-positive match-tracking increment.
	ErrEpsilonRange = errors.New("sfam: epsilon must be positive")
)

// Default option values.
const (
	// DefaultRho is the default baseline vigilance.
	DefaultRho = 0.75
	// DefaultAlpha is the default choice parameter. Near-zero keeps the
	// choice ratio close to the pure containment fraction.
	DefaultAlpha = 1e-7
	// DefaultBeta is the default learning rate (fast commit).
	DefaultBeta = 1.0
	// DefaultEpsilon is the default match-tracking increment. It must be
	// large enough that match+Epsilon strictly exceeds match in float64.
	DefaultEpsilon = 1e-3
)

// Options configures an SFAM learner. Validated once by New; immutable
// afterwards.
//
// Fields:
//   - Rho     — baseline vigilance ρ ∈ [0,1].
//   - Alpha   — choice parameter α > 0.
//   - Beta    — learning rate β ∈ (0,1].
//   - Epsilon — match-tracking increment ε > 0 added to a conflicting
//     candidate's match when raising the effective vigilance.
type Options struct {
	Rho     float64
	Alpha   float64
	Beta    float64
	Epsilon float64
}

// DefaultOptions returns the canonical supervised configuration:
// ρ=0.75, α=1e-7, β=1, ε=1e-3.
func DefaultOptions() Options {
	return Options{
		Rho:     DefaultRho,
		Alpha:   DefaultAlpha,
		Beta:    DefaultBeta,
		Epsilon: DefaultEpsilon,
	}
}

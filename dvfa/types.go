// Package dvfa defines options and sentinel errors for dual-vigilance
// Fuzzy ART.
package dvfa

import "errors"

// Sentinel errors for configuration and training.
var (
	// ErrVigilanceRange indicates an upper vigilance outside [0,1].
	ErrVigilanceRange = errors.New("dvfa: upper vigilance outside [0,1]")
	// ErrVigilanceOrder indicates a lower vigilance above the upper one.
	ErrVigilanceOrder = errors.New("dvfa: lower vigilance must not exceed upper")
	// ErrLabelRange indicates a negative training label.
	ErrLabelRange = errors.New("dvfa: label must be core.NoLabel or positive")
)

// Default option values.
const (
	// DefaultRhoLB is the default lower vigilance, the cluster boundary.
	DefaultRhoLB = 0.7
	// DefaultRhoUB is the default upper vigilance, the prototype-refinement
	// gate.
	DefaultRhoUB = 0.85
	// DefaultAlpha is the default choice parameter.
	DefaultAlpha = 1e-3
	// DefaultBeta is the default learning rate (fast commit).
	DefaultBeta = 1.0
)

// Options configures a DVFA learner. Validated once by New; immutable
// afterwards.
//
// Fields:
//   - RhoLB — lower vigilance ρ_lb ∈ [0,1]. Matches at or above it join
//     the winner's cluster; below it the candidate is shut off.
//   - RhoUB — upper vigilance ρ_ub ∈ [ρ_lb,1]. Matches at or above it
//     refine the winning prototype in place; the band between the bounds
//     admits the sample as a new same-cluster category.
//   - Alpha — choice parameter α > 0.
//   - Beta  — learning rate β ∈ (0,1]; β=1 is fast commit.
type Options struct {
	RhoLB float64
	RhoUB float64
	Alpha float64
	Beta  float64
}

// DefaultOptions returns the canonical dual-vigilance configuration:
// ρ_lb=0.7, ρ_ub=0.85, α=1e-3, β=1.
func DefaultOptions() Options {
	return Options{
		RhoLB: DefaultRhoLB,
		RhoUB: DefaultRhoUB,
		Alpha: DefaultAlpha,
		Beta:  DefaultBeta,
	}
}

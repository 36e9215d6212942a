// Package ddvfa defines options, linkage strategies and sentinel errors
// for the distributed dual-vigilance aggregator.
package ddvfa

import "errors"

// Sentinel errors for configuration and the aggregator life cycle.
var (
	// ErrVigilanceRange indicates a vigilance bound outside [0,1].
	ErrVigilanceRange = errors.New("ddvfa: vigilance bounds must lie in [0,1]")
	// ErrVigilanceOrder indicates a lower vigilance above the upper one.
	ErrVigilanceOrder = errors.New("ddvfa: lower vigilance must not exceed upper")
	// ErrLinkageUnknown indicates a linkage outside the defined strategies.
	ErrLinkageUnknown = errors.New("ddvfa: unknown linkage")
	// ErrEpsilonRange indicates a non-positive match-tracking increment.
	ErrEpsilonRange = errors.New("ddvfa: epsilon must be positive")
	// ErrLabelRange indicates a negative training label.
	ErrLabelRange = errors.New("ddvfa: label must be core.NoLabel or positive")
	// ErrBoundsFrozen indicates a second SetBounds call.
	ErrBoundsFrozen = errors.New("ddvfa: bounds are already established")
	// ErrNoClusters indicates classification before any training.
	ErrNoClusters = errors.New("ddvfa: no clusters learned yet")
)

// Linkage selects how the per-prototype scores of one nested engine
// reduce to a single activation/match pair for its cluster.
//
//   - Single   — the maximum (nearest prototype speaks for the cluster).
//   - Complete — the minimum (farthest prototype speaks).
//   - Average  — the unweighted mean over all prototypes.
//   - Median   — the empirical median over all prototypes.
//   - Weighted — the mean weighted by per-prototype instance counts.
//   - Centroid — rescore the query against the virtual merged prototype,
//     the element-wise minimum of all nested prototypes.
type Linkage int

const (
	Single Linkage = iota
	Complete
	Average
	Median
	Weighted
	Centroid
)

// ParseLinkage maps a lower-case strategy name to its Linkage value.
// Returns ErrLinkageUnknown for anything else.
func ParseLinkage(name string) (Linkage, error) {
	switch name {
	case "single":
		return Single, nil
	case "complete":
		return Complete, nil
	case "average":
		return Average, nil
	case "median":
		return Median, nil
	case "weighted":
		return Weighted, nil
	case "centroid":
		return Centroid, nil
	}
	return 0, ErrLinkageUnknown
}

// Default option values.
const (
	// DefaultRhoLB is the default lower vigilance, the outer admission gate.
	DefaultRhoLB = 0.7
	// DefaultRhoUB is the default upper vigilance, the nested engines' ρ.
	DefaultRhoUB = 0.85
	// DefaultAlpha is the default choice parameter of the nested engines.
	DefaultAlpha = 1e-3
	// DefaultBeta is the default learning rate (fast commit).
	DefaultBeta = 1.0
	// DefaultGamma is the default activation power of the nested engines.
	DefaultGamma = 3.0
	// DefaultGammaRef is the default normalization exponent.
	DefaultGammaRef = 1.0
	// DefaultEpsilon is the default outer match-tracking increment.
	DefaultEpsilon = 1e-3
)

// DefaultLinkage is the default reduction strategy.
const DefaultLinkage = Single

// Options configures the aggregator. Validated once by New; immutable
// afterwards.
//
// Fields:
//   - RhoLB   — lower vigilance ρ_lb ∈ [0,1]; the outer threshold derives
//     from it (ρ_lb·dim^γref under gamma normalization, plain ρ_lb
//     otherwise).
//   - RhoUB   — upper vigilance ρ_ub ∈ [ρ_lb,1]; every nested engine runs
//     at it.
//   - Alpha   — choice parameter α > 0 of the nested engines.
//   - Beta    — learning rate β ∈ (0,1] of the nested engines.
//   - Gamma   — activation power γ ≥ 1 of the nested Gamma activation.
//   - GammaRef — normalization exponent γref ≥ 0.
//   - GammaNormalization — scale nested matches by ‖w‖₁^γref and the
//     outer threshold by dim^γref. Off by default: the plain match keeps
//     an identical resample at an aggregated match of exactly 1 under
//     Single linkage.
//   - Linkage — the per-cluster reduction strategy.
//   - Epsilon — outer match-tracking increment ε > 0.
type Options struct {
	RhoLB              float64
	RhoUB              float64
	Alpha              float64
	Beta               float64
	Gamma              float64
	GammaRef           float64
	GammaNormalization bool
	Linkage            Linkage
	Epsilon            float64
}

// DefaultOptions returns the canonical hierarchy configuration:
// ρ_lb=0.7, ρ_ub=0.85, α=1e-3, β=1, γ=3, γref=1, plain match,
// Single linkage, ε=1e-3.
func DefaultOptions() Options {
	return Options{
		RhoLB:    DefaultRhoLB,
		RhoUB:    DefaultRhoUB,
		Alpha:    DefaultAlpha,
		Beta:     DefaultBeta,
		Gamma:    DefaultGamma,
		GammaRef: DefaultGammaRef,
		Linkage:  DefaultLinkage,
		Epsilon:  DefaultEpsilon,
	}
}

// Package fuzzyart defines options, activation rules, and sentinel errors
// for the Fuzzy ART resonance engine.
package fuzzyart

import "errors"

// Sentinel errors for engine construction and queries.
var (
	// ErrVigilanceRange indicates a vigilance parameter outside [0,1].
	ErrVigilanceRange = errors.New("fuzzyart: vigilance must lie in [0,1]")
	// ErrChoiceParam indicates a non-positive choice parameter alpha.
	ErrChoiceParam = errors.New("fuzzyart: choice parameter alpha must be positive")
	// ErrLearningRate indicates a learning rate beta outside (0,1].
	ErrLearningRate = errors.New("fuzzyart: learning rate beta must lie in (0,1]")
	// ErrGammaRange indicates gamma < 1 or gamma_ref < 0.
	ErrGammaRange = errors.New("fuzzyart: gamma must be ≥ 1 and gamma_ref ≥ 0")
	// ErrActivationMode indicates an unknown activation selector.
	ErrActivationMode = errors.New("fuzzyart: unknown activation mode")
	// ErrOptionCombo indicates gamma normalization with a non-gamma activation.
	ErrOptionCombo = errors.New("fuzzyart: gamma normalization requires the Gamma activation")
	// ErrLabelRange indicates a negative training label.
	ErrLabelRange = errors.New("fuzzyart: label must be core.NoLabel or positive")
	// ErrBoundsFrozen indicates an attempt to re-establish bounds after first use.
	ErrBoundsFrozen = errors.New("fuzzyart: bounds already established; dimensions are fixed")
	// ErrNoCategories indicates a query against an engine that never learned.
	ErrNoCategories = errors.New("fuzzyart: no categories learned yet")
)

// Activation selects the per-category activation rule. The set is closed;
// the rule is resolved once at construction, never re-dispatched per sample.
//
//   - Choice              — T = ‖x∧w‖₁ / (α + ‖w‖₁). The classic choice
//     function; α > 0 keeps the ratio finite for a zero prototype.
//
//   - Gamma               — T = (‖x∧w‖₁ / (α + ‖w‖₁))^γ. Monotone in
//     Choice, so the ranking agrees; the power sharpens contrast between
//     close candidates. Under Options.GammaNormalization the match becomes
//     M = ‖w‖₁^γref · T and the vigilance threshold scales to ρ·dim^γref.
//
//   - ChoiceByDifference  — T = ‖x∧w‖₁ + (1−α)·(dim − ‖w‖₁), requires
//     α < 1. Trades the ratio for an additive form that favors small
//     prototypes less aggressively.
type Activation int

const (
	// Choice uses the basic ratio activation.
	Choice Activation = iota
	// Gamma raises the ratio to the power γ.
	Gamma
	// ChoiceByDifference uses the additive activation form.
	ChoiceByDifference
)

// ParseActivation maps a lower-case rule name ("choice", "gamma",
// "difference") onto its Activation value, for config surfaces; unknown
// names yield ErrActivationMode.
func ParseActivation(name string) (Activation, error) {
	switch name {
	case "choice":
		return Choice, nil
	case "gamma":
		return Gamma, nil
	case "difference":
		return ChoiceByDifference, nil
	}
	return 0, ErrActivationMode
}

// Default option values. Single source of truth; DefaultOptions and the
// overlay packages reference these constants rather than repeating values.
const (
	// DefaultRho is the default vigilance.
	DefaultRho = 0.6
	// DefaultAlpha is the default choice parameter.
	DefaultAlpha = 1e-3
	// DefaultBeta is the default learning rate (fast commit).
	DefaultBeta = 1.0
	// DefaultGamma is the default activation power for the Gamma rule.
	DefaultGamma = 3.0
	// DefaultGammaRef is the default normalization exponent.
	DefaultGammaRef = 1.0
)

// Options configures a FuzzyART engine. The struct is validated once by
// New and copied into the engine; mutating it afterwards has no effect.
//
// Fields:
//   - Rho        — vigilance ρ ∈ [0,1]; higher ρ admits less, creating
//     more and smaller categories.
//   - Alpha      — choice parameter α > 0 (α < 1 for ChoiceByDifference).
//   - Beta       — learning rate β ∈ (0,1]; β=1 is fast commit.
//   - Gamma      — activation power γ ≥ 1 (Gamma rule only).
//   - GammaRef   — normalization exponent γref ≥ 0.
//   - GammaNormalization — scale the match by ‖w‖₁^γref and the threshold
//     by dim^γref; valid only with the Gamma activation.
//   - Activation — one of Choice, Gamma, ChoiceByDifference.
type Options struct {
	Rho                float64
	Alpha              float64
	Beta               float64
	Gamma              float64
	GammaRef           float64
	GammaNormalization bool
	Activation         Activation
}

// DefaultOptions returns the canonical unsupervised configuration:
// ρ=0.6, α=1e-3, β=1, γ=3, γref=1, plain Choice activation, no
// gamma normalization.
func DefaultOptions() Options {
	return Options{
		Rho:        DefaultRho,
		Alpha:      DefaultAlpha,
		Beta:       DefaultBeta,
		Gamma:      DefaultGamma,
		GammaRef:   DefaultGammaRef,
		Activation: Choice,
	}
}

// validate checks every field range once, at construction.
func (o Options) validate() error {
	if o.Rho < 0 || o.Rho > 1 {
		return ErrVigilanceRange
	}
	if o.Alpha <= 0 {
		return ErrChoiceParam
	}
	if o.Activation == ChoiceByDifference && o.Alpha >= 1 {
		return ErrChoiceParam
	}
	if o.Beta <= 0 || o.Beta > 1 {
		return ErrLearningRate
	}
	if o.Gamma < 1 || o.GammaRef < 0 {
		return ErrGammaRange
	}
	switch o.Activation {
	case Choice, Gamma, ChoiceByDifference:
	default:
		return ErrActivationMode
	}
	if o.GammaNormalization && o.Activation != Gamma {
		return ErrOptionCombo
	}
	return nil
}

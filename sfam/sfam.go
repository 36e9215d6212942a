package sfam

import (
	"github.com/katalvlaran/artkit/core"
	"github.com/katalvlaran/artkit/fuzzyart"
)

// SFAM wraps a plain-choice fuzzyart engine with match tracking. The
// engine owns the category store and the scoring; the overlay owns the
// effective-vigilance loop and drives the engine's exported primitives.
// Not safe for concurrent use.
type SFAM struct {
	opts Options
	eng  *fuzzyart.FuzzyART
}

// New constructs an SFAM learner. The inner engine uses the basic Choice
// activation with an unnormalized match at vigilance Rho; range violations
// surface as fuzzyart sentinel errors.
func New(opts Options) (*SFAM, error) {
	if opts.Epsilon <= 0 {
		return nil, ErrEpsilonRange
	}
	inner := fuzzyart.DefaultOptions()
	inner.Rho = opts.Rho
	inner.Alpha = opts.Alpha
	inner.Beta = opts.Beta
	eng, err := fuzzyart.New(inner)
	if err != nil {
		return nil, err
	}
	return &SFAM{opts: opts, eng: eng}, nil
}

// SetBounds establishes the data-bounds descriptor on the inner engine.
func (m *SFAM) SetBounds(b core.Bounds) error { return m.eng.SetBounds(b) }

// Bounds returns the established descriptor (zero value if unset).
func (m *SFAM) Bounds() core.Bounds { return m.eng.Bounds() }

// Options returns a copy of the construction options.
func (m *SFAM) Options() Options { return m.opts }

// CategoryCount returns the number of learned categories.
func (m *SFAM) CategoryCount() int { return m.eng.CategoryCount() }

// Labels returns a copy of the per-category class labels.
func (m *SFAM) Labels() []int { return m.eng.Labels() }

// InstanceCounts returns a copy of the per-category instance counts.
func (m *SFAM) InstanceCounts() []int { return m.eng.InstanceCounts() }

// WeightSnapshot returns a deep copy of all prototypes, for epoch
// convergence checks.
func (m *SFAM) WeightSnapshot() [][]float64 { return m.eng.WeightSnapshot() }

// Train preprocesses a raw sample and runs one supervised step. The label
// must be positive; the returned label always equals it.
func (m *SFAM) Train(x []float64, label int) (int, error) {
	xc, err := m.eng.Bounds().Code(x)
	if err != nil {
		return 0, err
	}
	return m.TrainCoded(xc, label)
}

// TrainCoded runs one supervised step on an already complement-coded
// sample, with match tracking:
//
//	ρ_eff ← ρ
//	scan the activation ranking from the top:
//	  match < ρ_eff            → next candidate
//	  resonant, same label     → learn, done
//	  resonant, label conflict → ρ_eff ← match+ε, restart from the top
//	ranking exhausted          → found a new category with the label
//
// Every conflict strictly raises ρ_eff above that candidate's match, so at
// most n_categories+1 scans run before the loop resolves.
func (m *SFAM) TrainCoded(xc []float64, label int) (int, error) {
	if label <= core.NoLabel {
		return 0, ErrLabelRequired
	}
	if err := m.eng.Bounds().CheckCoded(xc); err != nil {
		return 0, err
	}

	if m.eng.CategoryCount() == 0 {
		if _, err := m.eng.Append(xc, label); err != nil {
			return 0, err
		}
		return label, nil
	}

	T, M, err := m.eng.Scores(xc)
	if err != nil {
		return 0, err
	}
	order := fuzzyart.Rank(T)

	rhoEff := m.opts.Rho
	for scan := 0; scan <= len(order); scan++ {
		i, ok := fuzzyart.FindResonant(order, M, rhoEff)
		if !ok {
			break // ranking exhausted without resonance
		}
		lbl, lerr := m.eng.Label(i)
		if lerr != nil {
			return 0, lerr
		}
		if lbl == label {
			if lerr = m.eng.Learn(i, xc); lerr != nil {
				return 0, lerr
			}
			return lbl, nil
		}
		// Match tracking: rule this candidate out for the rest of the
		// query and rescan the same ranking.
		rhoEff = M[i] + m.opts.Epsilon
	}

	if _, err = m.eng.Append(xc, label); err != nil {
		return 0, err
	}
	return label, nil
}

// Classify runs the inner engine's pure inference walk at the baseline
// vigilance: core.Mismatch when nothing resonates, or the best-activation
// label under fallback.
func (m *SFAM) Classify(x []float64, fallback bool) (int, error) {
	return m.eng.Classify(x, fallback)
}

// ClassifyCoded is Classify for an already complement-coded query.
func (m *SFAM) ClassifyCoded(xc []float64, fallback bool) (int, error) {
	return m.eng.ClassifyCoded(xc, fallback)
}

package dvfa

import (
	"github.com/katalvlaran/artkit/core"
	"github.com/katalvlaran/artkit/fuzzyart"
)

// DVFA wraps a plain-choice fuzzyart engine with a second, upper
// vigilance bound. The engine owns the category store and the scoring at
// threshold RhoLB; the overlay owns the band dispatch between refining a
// prototype and admitting a new same-cluster category. Not safe for
// concurrent use.
type DVFA struct {
	opts Options
	eng  *fuzzyart.FuzzyART
}

// New constructs a DVFA learner. The inner engine uses the basic Choice
// activation with an unnormalized match at vigilance RhoLB; Alpha and
// Beta range violations surface as fuzzyart sentinel errors.
func New(opts Options) (*DVFA, error) {
	if opts.RhoUB < 0 || opts.RhoUB > 1 {
		return nil, ErrVigilanceRange
	}
	if opts.RhoLB > opts.RhoUB {
		return nil, ErrVigilanceOrder
	}
	inner := fuzzyart.DefaultOptions()
	inner.Rho = opts.RhoLB
	inner.Alpha = opts.Alpha
	inner.Beta = opts.Beta
	eng, err := fuzzyart.New(inner)
	if err != nil {
		return nil, err
	}
	return &DVFA{opts: opts, eng: eng}, nil
}

// SetBounds establishes the data-bounds descriptor on the inner engine.
func (m *DVFA) SetBounds(b core.Bounds) error { return m.eng.SetBounds(b) }

// Bounds returns the established descriptor (zero value if unset).
func (m *DVFA) Bounds() core.Bounds { return m.eng.Bounds() }

// Options returns a copy of the construction options.
func (m *DVFA) Options() Options { return m.opts }

// CategoryCount returns the number of learned categories. Several
// categories may share one cluster label.
func (m *DVFA) CategoryCount() int { return m.eng.CategoryCount() }

// Labels returns a copy of the per-category cluster labels.
func (m *DVFA) Labels() []int { return m.eng.Labels() }

// InstanceCounts returns a copy of the per-category instance counts.
func (m *DVFA) InstanceCounts() []int { return m.eng.InstanceCounts() }

// WeightSnapshot returns a deep copy of all prototypes, for epoch
// convergence checks.
func (m *DVFA) WeightSnapshot() [][]float64 { return m.eng.WeightSnapshot() }

// Train preprocesses a raw sample through the established bounds and runs
// one dual-vigilance step. Pass core.NoLabel for unsupervised training.
// Returns the cluster label the sample landed in.
func (m *DVFA) Train(x []float64, label int) (int, error) {
	xc, err := m.eng.Bounds().Code(x)
	if err != nil {
		return 0, err
	}
	return m.TrainCoded(xc, label)
}

// TrainCoded runs one dual-vigilance step on an already complement-coded
// sample. The ranked walk decides per candidate:
//
//	match < RhoLB              → next candidate
//	label conflict             → next candidate (supervised only)
//	match ≥ RhoUB              → learn into the winner
//	RhoLB ≤ match < RhoUB      → append a new category carrying the
//	                             winner's cluster label
//	ranking exhausted          → found a new cluster
//
// A never-seen supervised label short-circuits to a new category, as in
// fuzzyart.
//
// Complexity: O(n·d + n·log n) per call.
func (m *DVFA) TrainCoded(xc []float64, label int) (int, error) {
	if label < core.NoLabel {
		return 0, ErrLabelRange
	}
	if err := m.eng.Bounds().CheckCoded(xc); err != nil {
		return 0, err
	}

	if m.eng.CategoryCount() == 0 {
		return m.found(xc, label)
	}
	if label != core.NoLabel && !m.eng.HasLabel(label) {
		return m.found(xc, label)
	}

	T, M, err := m.eng.Scores(xc)
	if err != nil {
		return 0, err
	}

	for _, i := range fuzzyart.Rank(T) {
		if M[i] < m.opts.RhoLB {
			continue
		}
		lbl, lerr := m.eng.Label(i)
		if lerr != nil {
			return 0, lerr
		}
		if label != core.NoLabel && lbl != label {
			continue
		}
		if M[i] >= m.opts.RhoUB {
			if lerr = m.eng.Learn(i, xc); lerr != nil {
				return 0, lerr
			}
			return lbl, nil
		}
		// Mid band: the sample joins the winner's cluster as a fresh
		// prototype instead of inflating the winner's box.
		if _, lerr = m.eng.Append(xc, lbl); lerr != nil {
			return 0, lerr
		}
		return lbl, nil
	}

	return m.found(xc, label)
}

// found appends a new category for xc: with core.NoLabel the next free
// cluster label, otherwise the requested one. Returns the label used.
func (m *DVFA) found(xc []float64, label int) (int, error) {
	i, err := m.eng.Append(xc, label)
	if err != nil {
		return 0, err
	}
	return m.eng.Label(i)
}

// Classify runs the inner engine's pure inference walk gated at RhoLB:
// core.Mismatch when no category clears the cluster boundary, or the
// best-activation label under fallback.
func (m *DVFA) Classify(x []float64, fallback bool) (int, error) {
	return m.eng.Classify(x, fallback)
}

// ClassifyCoded is Classify for an already complement-coded query.
func (m *DVFA) ClassifyCoded(xc []float64, fallback bool) (int, error) {
	return m.eng.ClassifyCoded(xc, fallback)
}

package fuzzyart

import (
	"math"
	"sort"

	"github.com/katalvlaran/artkit/core"
)

// scoreFn computes one category's activation and match for a coded query.
// Resolved once at construction from Options.Activation.
type scoreFn func(xc, w []float64, dim int) (t, m float64)

// FuzzyART is the resonance engine: a category store, a fixed vigilance
// threshold, and the activation/match rule resolved at construction.
// The per-category score slices T and M are caches of the most recent
// query, recomputed from scratch on each call.
//
// A FuzzyART is not safe for concurrent use: one query must be fully
// resolved before the next is admitted, because the ranking is computed
// from a store snapshot that learning then mutates.
type FuzzyART struct {
	opts      Options
	bounds    core.Bounds
	threshold float64
	store     *core.Store
	score     scoreFn
	T, M      []float64
}

// New constructs an engine from validated options. The engine cannot train
// until SetBounds establishes the data dimensions.
func New(opts Options) (*FuzzyART, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	f := &FuzzyART{
		opts:  opts,
		store: core.NewStore(),
	}
	f.score = resolveScore(opts)

	return f, nil
}

// resolveScore maps the activation selector to its implementation.
func resolveScore(o Options) scoreFn {
	switch o.Activation {
	case Gamma:
		if o.GammaNormalization {
			return func(xc, w []float64, dim int) (float64, float64) {
				num := core.AndNorm1(xc, w)
				wn := core.Norm1(w)
				t := math.Pow(num/(o.Alpha+wn), o.Gamma)
				return t, math.Pow(wn, o.GammaRef) * t
			}
		}
		return func(xc, w []float64, dim int) (float64, float64) {
			num := core.AndNorm1(xc, w)
			t := math.Pow(num/(o.Alpha+core.Norm1(w)), o.Gamma)
			return t, num / float64(dim)
		}
	case ChoiceByDifference:
		return func(xc, w []float64, dim int) (float64, float64) {
			num := core.AndNorm1(xc, w)
			t := num + (1-o.Alpha)*(float64(dim)-core.Norm1(w))
			return t, num / float64(dim)
		}
	default: // Choice
		return func(xc, w []float64, dim int) (float64, float64) {
			num := core.AndNorm1(xc, w)
			return num / (o.Alpha + core.Norm1(w)), num / float64(dim)
		}
	}
}

// SetBounds establishes the data-bounds descriptor and fixes the vigilance
// threshold: ρ·dim^γref under gamma normalization, plain ρ otherwise.
// Bounds are immutable for the life of the engine; a second call returns
// ErrBoundsFrozen, and an unset descriptor returns core.ErrBoundsNotSet.
func (f *FuzzyART) SetBounds(b core.Bounds) error {
	if !b.Set() {
		return core.ErrBoundsNotSet
	}
	if f.bounds.Set() {
		return ErrBoundsFrozen
	}
	f.bounds = b
	if f.opts.GammaNormalization {
		f.threshold = f.opts.Rho * math.Pow(float64(b.Dim()), f.opts.GammaRef)
	} else {
		f.threshold = f.opts.Rho
	}
	return nil
}

// Bounds returns the established data-bounds descriptor (zero value if unset).
func (f *FuzzyART) Bounds() core.Bounds { return f.bounds }

// Options returns a copy of the validated construction options.
func (f *FuzzyART) Options() Options { return f.opts }

// Threshold returns the fixed vigilance threshold. Zero until bounds are set.
func (f *FuzzyART) Threshold() float64 { return f.threshold }

// CategoryCount returns the number of learned categories.
func (f *FuzzyART) CategoryCount() int { return f.store.Len() }

// Labels returns a copy of the per-category labels in creation order.
func (f *FuzzyART) Labels() []int { return f.store.Labels() }

// InstanceCounts returns a copy of the per-category instance counts.
func (f *FuzzyART) InstanceCounts() []int { return f.store.Counts() }

// Label returns the label of category i.
func (f *FuzzyART) Label(i int) (int, error) { return f.store.Label(i) }

// Weight returns the live prototype of category i. Callers other than the
// owning engine and its overlays must treat it as read-only.
func (f *FuzzyART) Weight(i int) ([]float64, error) { return f.store.Weight(i) }

// HasLabel reports whether any category carries the given label.
func (f *FuzzyART) HasLabel(label int) bool { return f.store.HasLabel(label) }

// WeightSnapshot returns a deep copy of all prototypes, for epoch
// convergence checks.
func (f *FuzzyART) WeightSnapshot() [][]float64 { return f.store.Snapshot() }

// Train preprocesses a raw sample through the established bounds
// (normalize + complement-code) and runs one find-and-learn step.
// Pass core.NoLabel for unsupervised training, or a positive label for
// simple supervised mode. Returns the assigned label.
//
// Returns core.ErrBoundsNotSet before SetBounds, ErrLabelRange for a
// negative label, or core.ErrDimMismatch for a wrong-length sample.
func (f *FuzzyART) Train(x []float64, label int) (int, error) {
	xc, err := f.bounds.Code(x)
	if err != nil {
		return 0, err
	}
	return f.TrainCoded(xc, label)
}

// TrainCoded runs one find-and-learn step on an already complement-coded
// query. This is the entry point for callers that preprocess externally
// and for nested engines driven by an aggregator.
//
// The algorithm:
//  1. Empty store: the query founds category 1 (or the given label).
//  2. Supervised and label unseen: found its category directly, no search.
//  3. Score every category, rank descending by activation (stable ties).
//  4. Walk the ranking; the first candidate whose match clears the
//     threshold learns — unless supervised and its label conflicts, in
//     which case that candidate alone fails and the walk continues.
//  5. Exhausted ranking: the query founds a new category.
//
// Complexity: O(n·d + n·log n) per call.
func (f *FuzzyART) TrainCoded(xc []float64, label int) (int, error) {
	if err := f.bounds.CheckCoded(xc); err != nil {
		return 0, err
	}
	if err := f.store.Check(); err != nil {
		return 0, err
	}
	if label < core.NoLabel {
		return 0, ErrLabelRange
	}

	// First category: no search possible.
	if f.store.Len() == 0 {
		lbl := label
		if lbl == core.NoLabel {
			lbl = 1
		}
		if _, err := f.store.Append(xc, lbl); err != nil {
			return 0, err
		}
		return lbl, nil
	}

	// Supervised short-circuit: a never-seen label wins immediately.
	if label != core.NoLabel && !f.store.HasLabel(label) {
		if _, err := f.store.Append(xc, label); err != nil {
			return 0, err
		}
		return label, nil
	}

	f.compute(xc)
	order := Rank(f.T)

	for _, i := range order {
		if f.M[i] < f.threshold {
			continue
		}
		lbl, err := f.store.Label(i)
		if err != nil {
			return 0, err
		}
		if label != core.NoLabel && lbl != label {
			// Resonant but wrongly labeled: this candidate fails, the
			// search goes on down the ranking.
			continue
		}
		if err = f.learn(i, xc); err != nil {
			return 0, err
		}
		return lbl, nil
	}

	// Total mismatch: found a new category.
	lbl := label
	if lbl == core.NoLabel {
		lbl = f.store.NextLabel()
	}
	if _, err := f.store.Append(xc, lbl); err != nil {
		return 0, err
	}
	return lbl, nil
}

// Classify preprocesses a raw query and reports the label of the first
// ranked category whose match clears the threshold, without mutating any
// weight. With no resonant category it returns core.Mismatch, or under
// fallback the label of the single highest-activation category regardless
// of its match.
func (f *FuzzyART) Classify(x []float64, fallback bool) (int, error) {
	xc, err := f.bounds.Code(x)
	if err != nil {
		return 0, err
	}
	return f.ClassifyCoded(xc, fallback)
}

// ClassifyCoded is Classify for an already complement-coded query.
// Returns ErrNoCategories on an engine that never learned.
func (f *FuzzyART) ClassifyCoded(xc []float64, fallback bool) (int, error) {
	if err := f.bounds.CheckCoded(xc); err != nil {
		return 0, err
	}
	if err := f.store.Check(); err != nil {
		return 0, err
	}
	if f.store.Len() == 0 {
		return 0, ErrNoCategories
	}

	f.compute(xc)
	order := Rank(f.T)

	if i, ok := FindResonant(order, f.M, f.threshold); ok {
		return f.store.Label(i)
	}
	if fallback {
		return f.store.Label(order[0])
	}
	return core.Mismatch, nil
}

// Scores computes and returns the per-category activation and match
// vectors for a coded query. The returned slices are the engine's own
// caches: valid until the next query, read-only for callers. Aggregators
// reduce them to scalars per linkage.
func (f *FuzzyART) Scores(xc []float64) (T, M []float64, err error) {
	if err = f.bounds.CheckCoded(xc); err != nil {
		return nil, nil, err
	}
	if f.store.Len() == 0 {
		return nil, nil, ErrNoCategories
	}
	f.compute(xc)
	return f.T, f.M, nil
}

// Score evaluates the activation and match an arbitrary prototype w would
// receive for a coded query, under this engine's activation rule. The
// aggregator's centroid linkage scores virtual merged prototypes with it;
// Train callers never need it.
func (f *FuzzyART) Score(xc, w []float64) (t, m float64, err error) {
	if err = f.bounds.CheckCoded(xc); err != nil {
		return 0, 0, err
	}
	if err = f.bounds.CheckCoded(w); err != nil {
		return 0, 0, err
	}
	t, m = f.score(xc, w, f.bounds.Dim())
	return t, m, nil
}

// compute fills the T and M caches for xc, reusing their backing arrays.
func (f *FuzzyART) compute(xc []float64) {
	n := f.store.Len()
	if cap(f.T) < n {
		f.T = make([]float64, n)
		f.M = make([]float64, n)
	} else {
		f.T = f.T[:n]
		f.M = f.M[:n]
	}
	dim := f.bounds.Dim()
	for i := 0; i < n; i++ {
		w, _ := f.store.Weight(i)
		f.T[i], f.M[i] = f.score(xc, w, dim)
	}
}

// learn applies the learning rule to category i in place and bumps its
// instance count.
func (f *FuzzyART) learn(i int, xc []float64) error {
	w, err := f.store.Weight(i)
	if err != nil {
		return err
	}
	core.Learn(w, xc, f.opts.Beta)
	return f.store.Bump(i)
}

// Learn applies the learning rule to category i for a coded query and
// bumps its instance count. Exported for overlay builders that run their
// own winner selection; Train callers never need it.
func (f *FuzzyART) Learn(i int, xc []float64) error {
	if err := f.bounds.CheckCoded(xc); err != nil {
		return err
	}
	return f.learn(i, xc)
}

// Append founds a new category from a coded query and returns its index.
// With core.NoLabel the next free positive label is assigned. Exported for
// overlay builders; Train callers never need it.
func (f *FuzzyART) Append(xc []float64, label int) (int, error) {
	if err := f.bounds.CheckCoded(xc); err != nil {
		return 0, err
	}
	if label < core.NoLabel {
		return 0, ErrLabelRange
	}
	lbl := label
	if lbl == core.NoLabel {
		lbl = f.store.NextLabel()
	}
	return f.store.Append(xc, lbl)
}

// Rank returns category indices ordered by descending activation. Ties
// preserve creation order (stable sort), keeping whole runs deterministic
// for a fixed activation vector.
func Rank(T []float64) []int {
	order := make([]int, len(T))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return T[order[a]] > T[order[b]]
	})
	return order
}

// FindResonant walks a ranking and returns the store index of the first
// category whose match clears the threshold, or false when none does.
// Together with Rank and Scores this is the search surface the overlay
// packages compose their own vigilance policies from.
func FindResonant(order []int, M []float64, threshold float64) (int, bool) {
	for _, i := range order {
		if M[i] >= threshold {
			return i, true
		}
	}
	return 0, false
}

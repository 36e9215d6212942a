package ddvfa

import (
	"math"

	"github.com/katalvlaran/artkit/core"
	"github.com/katalvlaran/artkit/fuzzyart"
)

// cluster is one outer category: a cluster label, the number of samples
// routed into it, and an exclusively-owned nested engine whose prototypes
// make up the cluster. Nested category labels are engine-internal and
// carry no meaning at this level.
type cluster struct {
	label int
	count int
	eng   *fuzzyart.FuzzyART
}

// DDVFA is the distributed dual-vigilance aggregator. It owns the outer
// cluster list and the aggregated score caches; each cluster owns its
// nested engine. Not safe for concurrent use.
type DDVFA struct {
	opts      Options
	nested    fuzzyart.Options
	bounds    core.Bounds
	threshold float64
	clusters  []*cluster
	T, M      []float64
}

// New constructs an aggregator from validated options. Nested parameter
// ranges (α, β, γ, γref) are validated through a probe construction of
// the nested engine options and surface as fuzzyart sentinel errors.
func New(opts Options) (*DDVFA, error) {
	if opts.RhoLB < 0 || opts.RhoLB > 1 || opts.RhoUB < 0 || opts.RhoUB > 1 {
		return nil, ErrVigilanceRange
	}
	if opts.RhoLB > opts.RhoUB {
		return nil, ErrVigilanceOrder
	}
	if opts.Linkage < Single || opts.Linkage > Centroid {
		return nil, ErrLinkageUnknown
	}
	if opts.Epsilon <= 0 {
		return nil, ErrEpsilonRange
	}
	nested := fuzzyart.Options{
		Rho:                opts.RhoUB,
		Alpha:              opts.Alpha,
		Beta:               opts.Beta,
		Gamma:              opts.Gamma,
		GammaRef:           opts.GammaRef,
		GammaNormalization: opts.GammaNormalization,
		Activation:         fuzzyart.Gamma,
	}
	if _, err := fuzzyart.New(nested); err != nil {
		return nil, err
	}
	return &DDVFA{opts: opts, nested: nested}, nil
}

// SetBounds establishes the data-bounds descriptor and fixes the outer
// threshold: ρ_lb·dim^γref under gamma normalization, plain ρ_lb
// otherwise. Bounds are immutable for the life of the aggregator and are
// handed down to every nested engine it creates.
func (g *DDVFA) SetBounds(b core.Bounds) error {
	if !b.Set() {
		return core.ErrBoundsNotSet
	}
	if g.bounds.Set() {
		return ErrBoundsFrozen
	}
	g.bounds = b
	if g.opts.GammaNormalization {
		g.threshold = g.opts.RhoLB * math.Pow(float64(b.Dim()), g.opts.GammaRef)
	} else {
		g.threshold = g.opts.RhoLB
	}
	return nil
}

// Bounds returns the established data-bounds descriptor (zero value if unset).
func (g *DDVFA) Bounds() core.Bounds { return g.bounds }

// Options returns a copy of the validated construction options.
func (g *DDVFA) Options() Options { return g.opts }

// Threshold returns the fixed outer threshold. Zero until bounds are set.
func (g *DDVFA) Threshold() float64 { return g.threshold }

// ClusterCount returns the number of outer clusters.
func (g *DDVFA) ClusterCount() int { return len(g.clusters) }

// CategoryCount returns the total prototype count across all clusters.
func (g *DDVFA) CategoryCount() int {
	n := 0
	for _, c := range g.clusters {
		n += c.eng.CategoryCount()
	}
	return n
}

// Labels returns a copy of the per-cluster labels in creation order.
func (g *DDVFA) Labels() []int {
	out := make([]int, len(g.clusters))
	for i, c := range g.clusters {
		out[i] = c.label
	}
	return out
}

// InstanceCounts returns a copy of the per-cluster sample counts.
func (g *DDVFA) InstanceCounts() []int {
	out := make([]int, len(g.clusters))
	for i, c := range g.clusters {
		out[i] = c.count
	}
	return out
}

// PrototypeCounts returns a copy of the per-cluster nested prototype
// counts.
func (g *DDVFA) PrototypeCounts() []int {
	out := make([]int, len(g.clusters))
	for i, c := range g.clusters {
		out[i] = c.eng.CategoryCount()
	}
	return out
}

// WeightSnapshot returns a deep copy of every nested prototype, clusters
// in creation order and prototypes in nested creation order, for epoch
// convergence checks.
func (g *DDVFA) WeightSnapshot() [][]float64 {
	var out [][]float64
	for _, c := range g.clusters {
		out = append(out, c.eng.WeightSnapshot()...)
	}
	return out
}

// Train preprocesses a raw sample through the established bounds and runs
// one aggregated find-and-learn step. Pass core.NoLabel for unsupervised
// training. Returns the cluster label the sample landed in.
func (g *DDVFA) Train(x []float64, label int) (int, error) {
	xc, err := g.bounds.Code(x)
	if err != nil {
		return 0, err
	}
	return g.TrainCoded(xc, label)
}

// TrainCoded runs one aggregated find-and-learn step on an already
// complement-coded sample:
//
//  1. Empty aggregator: the sample founds cluster 1 (or the given label).
//  2. Supervised and label unseen: found its cluster directly, no search.
//  3. Aggregate every cluster's scores per the linkage, rank descending
//     by aggregated activation (stable ties).
//  4. Walk the ranking at the effective outer threshold; the first
//     cluster whose aggregated match clears it wins and its nested
//     engine trains on the sample at ρ_ub. A supervised label conflict
//     raises the effective threshold to that match plus Epsilon and
//     rescans from the top (outer match tracking, ≤ n_clusters+1 scans).
//  5. Exhausted ranking: the sample founds a new cluster.
//
// Complexity: O(N·d) per scan, N the total prototype count.
func (g *DDVFA) TrainCoded(xc []float64, label int) (int, error) {
	if err := g.bounds.CheckCoded(xc); err != nil {
		return 0, err
	}
	if label < core.NoLabel {
		return 0, ErrLabelRange
	}

	if len(g.clusters) == 0 {
		lbl := label
		if lbl == core.NoLabel {
			lbl = 1
		}
		return lbl, g.newCluster(xc, lbl)
	}
	if label != core.NoLabel && !g.hasLabel(label) {
		return label, g.newCluster(xc, label)
	}

	if err := g.aggregate(xc); err != nil {
		return 0, err
	}
	order := fuzzyart.Rank(g.T)

	rhoEff := g.threshold
	for scan := 0; scan <= len(order); scan++ {
		i, ok := fuzzyart.FindResonant(order, g.M, rhoEff)
		if !ok {
			break
		}
		c := g.clusters[i]
		if label == core.NoLabel || c.label == label {
			if _, err := c.eng.TrainCoded(xc, core.NoLabel); err != nil {
				return 0, err
			}
			c.count++
			return c.label, nil
		}
		// Outer match tracking: rule this cluster out for the rest of
		// the query and rescan the ranking.
		rhoEff = g.M[i] + g.opts.Epsilon
	}

	lbl := label
	if lbl == core.NoLabel {
		lbl = g.nextLabel()
	}
	return lbl, g.newCluster(xc, lbl)
}

// Classify preprocesses a raw query and reports the label of the first
// ranked cluster whose aggregated match clears the outer threshold,
// without mutating anything. With no resonant cluster it returns
// core.Mismatch, or under fallback the label of the single
// highest-activation cluster.
func (g *DDVFA) Classify(x []float64, fallback bool) (int, error) {
	xc, err := g.bounds.Code(x)
	if err != nil {
		return 0, err
	}
	return g.ClassifyCoded(xc, fallback)
}

// ClassifyCoded is Classify for an already complement-coded query.
// Returns ErrNoClusters on an aggregator that never trained.
func (g *DDVFA) ClassifyCoded(xc []float64, fallback bool) (int, error) {
	if err := g.bounds.CheckCoded(xc); err != nil {
		return 0, err
	}
	if len(g.clusters) == 0 {
		return 0, ErrNoClusters
	}
	if err := g.aggregate(xc); err != nil {
		return 0, err
	}
	order := fuzzyart.Rank(g.T)
	if i, ok := fuzzyart.FindResonant(order, g.M, g.threshold); ok {
		return g.clusters[i].label, nil
	}
	if fallback {
		return g.clusters[order[0]].label, nil
	}
	return core.Mismatch, nil
}

// Scores computes and returns the aggregated per-cluster activation and
// match vectors for a coded query. The returned slices are the
// aggregator's own caches: valid until the next query, read-only for
// callers.
func (g *DDVFA) Scores(xc []float64) (T, M []float64, err error) {
	if err = g.bounds.CheckCoded(xc); err != nil {
		return nil, nil, err
	}
	if len(g.clusters) == 0 {
		return nil, nil, ErrNoClusters
	}
	if err = g.aggregate(xc); err != nil {
		return nil, nil, err
	}
	return g.T, g.M, nil
}

// aggregate fills the outer T and M caches for xc, reusing their backing
// arrays: one linkage reduction per cluster.
func (g *DDVFA) aggregate(xc []float64) error {
	n := len(g.clusters)
	if cap(g.T) < n {
		g.T = make([]float64, n)
		g.M = make([]float64, n)
	} else {
		g.T = g.T[:n]
		g.M = g.M[:n]
	}
	for i, c := range g.clusters {
		t, m, err := g.reduce(c, xc)
		if err != nil {
			return err
		}
		g.T[i], g.M[i] = t, m
	}
	return nil
}

// newCluster founds an outer cluster for xc: a fresh nested engine over
// the aggregator's bounds, seeded with the sample as its first prototype.
func (g *DDVFA) newCluster(xc []float64, label int) error {
	eng, err := fuzzyart.New(g.nested)
	if err != nil {
		return err
	}
	if err = eng.SetBounds(g.bounds); err != nil {
		return err
	}
	if _, err = eng.TrainCoded(xc, core.NoLabel); err != nil {
		return err
	}
	g.clusters = append(g.clusters, &cluster{label: label, count: 1, eng: eng})
	return nil
}

// hasLabel reports whether any cluster carries the given label.
func (g *DDVFA) hasLabel(label int) bool {
	for _, c := range g.clusters {
		if c.label == label {
			return true
		}
	}
	return false
}

// nextLabel returns the next free cluster label: one past the maximum in
// use, and at least 1.
func (g *DDVFA) nextLabel() int {
	max := 0
	for _, c := range g.clusters {
		if c.label > max {
			max = c.label
		}
	}
	if max < 1 {
		return 1
	}
	return max + 1
}

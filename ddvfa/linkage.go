package ddvfa

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/artkit/core"
)

// reduce collapses one cluster's per-prototype scores into a single
// activation/match pair per the configured linkage. The nested Scores
// slices are the engine's live caches, so every strategy consumes them
// before returning.
func (g *DDVFA) reduce(c *cluster, xc []float64) (t, m float64, err error) {
	if g.opts.Linkage == Centroid {
		return g.centroid(c, xc)
	}
	T, M, err := c.eng.Scores(xc)
	if err != nil {
		return 0, 0, err
	}
	switch g.opts.Linkage {
	case Complete:
		return floats.Min(T), floats.Min(M), nil
	case Average:
		return stat.Mean(T, nil), stat.Mean(M, nil), nil
	case Median:
		return median(T), median(M), nil
	case Weighted:
		w := instanceWeights(c.eng.InstanceCounts())
		return stat.Mean(T, w), stat.Mean(M, w), nil
	default: // Single
		return floats.Max(T), floats.Max(M), nil
	}
}

// centroid rescoring: the virtual merged prototype is the element-wise
// minimum of every prototype in the cluster, and the query is scored
// against it with the nested engine's own activation rule.
func (g *DDVFA) centroid(c *cluster, xc []float64) (float64, float64, error) {
	w0, err := c.eng.Weight(0)
	if err != nil {
		return 0, 0, err
	}
	merged := append([]float64(nil), w0...)
	for i := 1; i < c.eng.CategoryCount(); i++ {
		wi, werr := c.eng.Weight(i)
		if werr != nil {
			return 0, 0, werr
		}
		core.FuzzyAnd(merged, merged, wi)
	}
	return c.eng.Score(xc, merged)
}

// median returns the empirical median: the middle element for odd
// counts, the lower of the middle pair for even ones.
func median(v []float64) float64 {
	s := append([]float64(nil), v...)
	sort.Float64s(s)
	return stat.Quantile(0.5, stat.Empirical, s, nil)
}

// instanceWeights widens per-prototype instance counts to the weight
// vector stat.Mean expects.
func instanceWeights(counts []int) []float64 {
	w := make([]float64, len(counts))
	for i, n := range counts {
		w[i] = float64(n)
	}
	return w
}

package dvfa_test

import (
	"testing"

	"github.com/katalvlaran/artkit/core"
	"github.com/katalvlaran/artkit/dvfa"
	"github.com/katalvlaran/artkit/fuzzyart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newLearner builds a DVFA over [0,1]^d bounds.
func newLearner(t *testing.T, opts dvfa.Options, d int) *dvfa.DVFA {
	t.Helper()
	m, err := dvfa.New(opts)
	require.NoError(t, err)
	mins := make([]float64, d)
	maxs := make([]float64, d)
	for i := range maxs {
		maxs[i] = 1
	}
	b, err := core.NewBounds(mins, maxs)
	require.NoError(t, err)
	require.NoError(t, m.SetBounds(b))
	return m
}

// bandOpts is the configuration most scenario tests share: a wide band
// between the cluster boundary and the refinement gate.
func bandOpts() dvfa.Options {
	opts := dvfa.DefaultOptions()
	opts.RhoLB = 0.5
	opts.RhoUB = 0.8
	return opts
}

// TestNew_Validation covers the overlay's own checks and the delegated ones.
func TestNew_Validation(t *testing.T) {
	opts := dvfa.DefaultOptions()
	opts.RhoUB = 1.2
	_, err := dvfa.New(opts)
	assert.ErrorIs(t, err, dvfa.ErrVigilanceRange)

	opts = dvfa.DefaultOptions()
	opts.RhoLB = 0.9
	opts.RhoUB = 0.5
	_, err = dvfa.New(opts)
	assert.ErrorIs(t, err, dvfa.ErrVigilanceOrder)

	opts = dvfa.DefaultOptions()
	opts.RhoLB = -0.1
	opts.RhoUB = 0.5
	_, err = dvfa.New(opts)
	assert.ErrorIs(t, err, fuzzyart.ErrVigilanceRange, "lower bound range is validated through the engine")

	opts = dvfa.DefaultOptions()
	opts.Alpha = 0
	_, err = dvfa.New(opts)
	assert.ErrorIs(t, err, fuzzyart.ErrChoiceParam)

	opts = dvfa.DefaultOptions()
	opts.Beta = 1.5
	_, err = dvfa.New(opts)
	assert.ErrorIs(t, err, fuzzyart.ErrLearningRate)
}

// TestTrain_Guards rejects negative labels and unbound engines.
func TestTrain_Guards(t *testing.T) {
	m, err := dvfa.New(dvfa.DefaultOptions())
	require.NoError(t, err)
	_, err = m.Train([]float64{0.5}, core.NoLabel)
	assert.ErrorIs(t, err, core.ErrBoundsNotSet)

	m = newLearner(t, dvfa.DefaultOptions(), 1)
	_, err = m.TrainCoded([]float64{0.5, 0.5}, -1)
	assert.ErrorIs(t, err, dvfa.ErrLabelRange)
	_, err = m.TrainCoded([]float64{0.5}, core.NoLabel)
	assert.ErrorIs(t, err, core.ErrDimMismatch)
}

// TestTrain_FirstSampleFoundsCluster: cluster 1 unsupervised, the given
// label otherwise.
func TestTrain_FirstSampleFoundsCluster(t *testing.T) {
	m := newLearner(t, dvfa.DefaultOptions(), 1)
	lbl, err := m.Train([]float64{0.4}, core.NoLabel)
	require.NoError(t, err)
	assert.Equal(t, 1, lbl)

	m = newLearner(t, dvfa.DefaultOptions(), 1)
	lbl, err = m.TrainCoded([]float64{0.4, 0.6}, 9)
	require.NoError(t, err)
	assert.Equal(t, 9, lbl)
}

// TestTrain_UpperBandRefinesPrototype: a match at or above RhoUB shrinks
// the winning prototype in place, no new category.
func TestTrain_UpperBandRefinesPrototype(t *testing.T) {
	m := newLearner(t, bandOpts(), 1)

	lbl, err := m.Train([]float64{0.875}, core.NoLabel)
	require.NoError(t, err)
	require.Equal(t, 1, lbl)

	// Coded [0.8125 0.1875] vs prototype [0.875 0.125]: match 0.9375 ≥ 0.8.
	lbl, err = m.Train([]float64{0.8125}, core.NoLabel)
	require.NoError(t, err)
	assert.Equal(t, 1, lbl)
	assert.Equal(t, 1, m.CategoryCount())
	assert.Equal(t, []int{2}, m.InstanceCounts())
	assert.Equal(t, [][]float64{{0.8125, 0.125}}, m.WeightSnapshot())
}

// TestTrain_MidBandAdmitsNewCategoryWithWinnersLabel: a match inside the
// band appends a fresh prototype under the winner's cluster label and
// leaves the winner untouched.
func TestTrain_MidBandAdmitsNewCategoryWithWinnersLabel(t *testing.T) {
	m := newLearner(t, bandOpts(), 1)

	_, err := m.Train([]float64{0.875}, core.NoLabel)
	require.NoError(t, err)

	// Coded [0.625 0.375] vs [0.875 0.125]: match 0.75, inside [0.5, 0.8).
	lbl, err := m.Train([]float64{0.625}, core.NoLabel)
	require.NoError(t, err)
	assert.Equal(t, 1, lbl, "admitted into the winner's cluster")
	assert.Equal(t, 2, m.CategoryCount())
	assert.Equal(t, []int{1, 1}, m.Labels())
	assert.Equal(t, []int{1, 1}, m.InstanceCounts())
	assert.Equal(t, [][]float64{{0.875, 0.125}, {0.625, 0.375}}, m.WeightSnapshot())
}

// TestTrain_BelowLowerFoundsNewCluster: below RhoLB every candidate is
// shut off and the sample founds cluster 2.
func TestTrain_BelowLowerFoundsNewCluster(t *testing.T) {
	m := newLearner(t, bandOpts(), 1)

	_, err := m.Train([]float64{0.875}, core.NoLabel)
	require.NoError(t, err)

	// Coded [0.1875 0.8125] vs [0.875 0.125]: match 0.3125 < 0.5.
	lbl, err := m.Train([]float64{0.1875}, core.NoLabel)
	require.NoError(t, err)
	assert.Equal(t, 2, lbl)
	assert.Equal(t, []int{1, 2}, m.Labels())
}

// TestTrain_WalkFollowsActivationRanking: the band decision applies to
// the best-ranked candidate that clears the boundary, not to an arbitrary
// one.
func TestTrain_WalkFollowsActivationRanking(t *testing.T) {
	opts := dvfa.DefaultOptions()
	opts.RhoLB = 0.5
	opts.RhoUB = 0.9
	m := newLearner(t, opts, 1)

	_, err := m.Train([]float64{1}, core.NoLabel) // cluster 1, [1 0]
	require.NoError(t, err)
	_, err = m.Train([]float64{0}, core.NoLabel) // cluster 2, [0 1]
	require.NoError(t, err)

	// Coded [0.75 0.25]: matches 0.75 vs cluster 1, 0.25 vs cluster 2.
	// Cluster 1 ranks first and its match is mid-band.
	lbl, err := m.Train([]float64{0.75}, core.NoLabel)
	require.NoError(t, err)
	assert.Equal(t, 1, lbl)
	assert.Equal(t, []int{1, 2, 1}, m.Labels())
}

// TestTrain_MidBandChainCoversElongatedCluster: successive boundary
// samples extend one cluster label across a region no single box could
// cover, while every prototype stays a point box.
func TestTrain_MidBandChainCoversElongatedCluster(t *testing.T) {
	opts := dvfa.DefaultOptions()
	opts.RhoLB = 0.5
	opts.RhoUB = 0.95
	m := newLearner(t, opts, 1)

	for _, x := range []float64{1.0, 0.75, 0.5, 0.25} {
		lbl, err := m.Train([]float64{x}, core.NoLabel)
		require.NoError(t, err)
		assert.Equal(t, 1, lbl, "sample %v chains into cluster 1", x)
	}
	assert.Equal(t, []int{1, 1, 1, 1}, m.Labels())
	assert.Equal(t, [][]float64{
		{1, 0}, {0.75, 0.25}, {0.5, 0.5}, {0.25, 0.75},
	}, m.WeightSnapshot(), "no prototype box inflated")
}

// TestTrain_SupervisedRouting: unseen labels short-circuit, conflicts
// skip the candidate, and same-label candidates follow the band rules.
func TestTrain_SupervisedRouting(t *testing.T) {
	m := newLearner(t, bandOpts(), 1)

	lbl, err := m.TrainCoded([]float64{0.9, 0.1}, 3)
	require.NoError(t, err)
	require.Equal(t, 3, lbl)

	// Label 4 never seen: founds its category without a search.
	lbl, err = m.TrainCoded([]float64{0.2, 0.8}, 4)
	require.NoError(t, err)
	require.Equal(t, 4, lbl)

	// Coded [0.85 0.15]: match 0.95 vs the label-3 winner, but the caller
	// says 4, so that candidate is skipped; nothing else clears the
	// boundary and the sample founds a third category under label 4.
	lbl, err = m.TrainCoded([]float64{0.85, 0.15}, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, lbl)
	assert.Equal(t, []int{3, 4, 4}, m.Labels())
	assert.Equal(t, [][]float64{
		{0.9, 0.1}, {0.2, 0.8}, {0.85, 0.15},
	}, m.WeightSnapshot(), "conflicting winner left untouched")

	// Coded [0.88 0.12]: match 0.98 vs the label-3 category clears RhoUB
	// and the labels agree, so it learns in place.
	lbl, err = m.TrainCoded([]float64{0.88, 0.12}, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, lbl)
	assert.Equal(t, 3, m.CategoryCount())
	assert.Equal(t, []float64{0.88, 0.1}, m.WeightSnapshot()[0])
}

// TestClassify_GatesAtClusterBoundary: inference accepts anything above
// RhoLB even when it would not clear RhoUB, and mismatches below.
func TestClassify_GatesAtClusterBoundary(t *testing.T) {
	opts := dvfa.DefaultOptions()
	opts.RhoLB = 0.5
	opts.RhoUB = 0.9
	m := newLearner(t, opts, 1)

	_, err := m.Train([]float64{1}, core.NoLabel)
	require.NoError(t, err)

	lbl, err := m.Classify([]float64{0.6}, false) // match 0.6: in-cluster
	require.NoError(t, err)
	assert.Equal(t, 1, lbl)

	lbl, err = m.Classify([]float64{0.3}, false) // match 0.3: outside
	require.NoError(t, err)
	assert.Equal(t, core.Mismatch, lbl)

	lbl, err = m.Classify([]float64{0.3}, true)
	require.NoError(t, err)
	assert.Equal(t, 1, lbl, "fallback picks the best activation")

	snap := m.WeightSnapshot()
	assert.Equal(t, [][]float64{{1, 0}}, snap, "classification never learns")
}

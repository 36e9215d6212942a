package train

import (
	"fmt"

	"github.com/katalvlaran/artkit/core"
)

// Fit runs up to opts.MaxEpochs full passes of X through the model,
// strictly in sample order. With nil labels every sample trains
// unsupervised; otherwise labels must be parallel to X and each value is
// handed to the model as is.
//
// When the model has no bounds yet, they are derived from the batch via
// core.BoundsOf. Convergence is checked after every epoch: the run stops
// early once an epoch leaves the weight snapshot identical to the one
// before it, category count included.
//
// Complexity: O(epochs·|X|) model steps plus one snapshot per epoch.
func Fit(m Model, X [][]float64, labels []int, opts Options) (Result, error) {
	if m == nil {
		return Result{}, ErrNilModel
	}
	if opts.MaxEpochs < 1 {
		return Result{}, ErrMaxEpochs
	}
	if len(X) == 0 {
		return Result{}, core.ErrEmptyBatch
	}
	if labels != nil && len(labels) != len(X) {
		return Result{}, ErrLabelCount
	}

	if !m.Bounds().Set() {
		b, err := core.BoundsOf(X)
		if err != nil {
			return Result{}, err
		}
		if err = m.SetBounds(b); err != nil {
			return Result{}, err
		}
	}

	res := Result{Assignments: make([]int, len(X))}
	prev := m.WeightSnapshot()
	for epoch := 1; epoch <= opts.MaxEpochs; epoch++ {
		for i, x := range X {
			label := core.NoLabel
			if labels != nil {
				label = labels[i]
			}
			got, err := m.Train(x, label)
			if err != nil {
				return Result{}, err
			}
			res.Assignments[i] = got
		}

		snap := m.WeightSnapshot()
		res.Epochs = epoch
		res.Converged = core.EqualWeights(prev, snap)
		if opts.Verbose {
			fmt.Printf("Fit: epoch %d, %d categories, converged %v\n",
				epoch, len(snap), res.Converged)
		}
		if opts.OnEpoch != nil {
			opts.OnEpoch(epoch, len(snap), res.Converged)
		}
		if res.Converged {
			break
		}
		prev = snap
	}
	return res, nil
}

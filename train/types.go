// Package train defines the Model contract, options and sentinel errors
// for the epoch loop.
package train

import (
	"errors"

	"github.com/katalvlaran/artkit/core"
)

// Sentinel errors for the driving loop.
var (
	// ErrNilModel indicates a Fit call without a model.
	ErrNilModel = errors.New("train: model must not be nil")
	// ErrMaxEpochs indicates a non-positive epoch budget.
	ErrMaxEpochs = errors.New("train: MaxEpochs must be at least 1")
	// ErrLabelCount indicates a labels slice not parallel to the samples.
	ErrLabelCount = errors.New("train: labels length must match sample count")
)

// Model is the contract every category learner satisfies: one-sample
// training, bounds management and a deep weight snapshot for the
// convergence check.
type Model interface {
	Train(x []float64, label int) (int, error)
	Bounds() core.Bounds
	SetBounds(core.Bounds) error
	WeightSnapshot() [][]float64
}

// DefaultMaxEpochs is the default epoch budget.
const DefaultMaxEpochs = 10

// Options configures Fit.
//
// Fields:
//   - MaxEpochs — upper bound on full passes over the batch, ≥ 1.
//   - Verbose   — print a per-epoch summary line via fmt.Printf.
//   - OnEpoch   — optional hook invoked after every epoch with the epoch
//     number (1-based), the current category count and whether that epoch
//     converged.
type Options struct {
	MaxEpochs int
	Verbose   bool
	OnEpoch   func(epoch, categories int, converged bool)
}

// DefaultOptions returns the canonical loop configuration: 10 epochs,
// quiet, no hook.
func DefaultOptions() Options {
	return Options{MaxEpochs: DefaultMaxEpochs}
}

// Result reports one Fit run.
//
// Fields:
//   - Assignments — the label every sample received during the final
//     epoch, parallel to the input batch.
//   - Epochs      — number of full passes actually run.
//   - Converged   — whether the last epoch changed nothing.
type Result struct {
	Assignments []int
	Epochs      int
	Converged   bool
}

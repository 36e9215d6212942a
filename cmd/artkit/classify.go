package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/artkit/core"
	"github.com/katalvlaran/artkit/train"
)

// newClassifyCmd builds the supervised train-and-score command.
func newClassifyCmd() *cobra.Command {
	var configPath, trainPath, testPath string
	var strict bool
	cmd := &cobra.Command{
		Use:   "classify -c experiment.yaml -i train.csv -t test.csv",
		Short: "Train on labeled samples, then score a labeled test set",
		Long: `classify fits the configured engine to a labeled training CSV (last
column = positive integer label) and reports accuracy over a labeled
test CSV. By default an unresonant test sample falls back to the
best-activation label; with --strict it counts as a vigilance mismatch
and scores as an error.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runClassify(configPath, trainPath, testPath, strict)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "experiment YAML file")
	cmd.Flags().StringVarP(&trainPath, "input", "i", "", "labeled training CSV")
	cmd.Flags().StringVarP(&testPath, "test", "t", "", "labeled test CSV")
	cmd.Flags().BoolVar(&strict, "strict", false, "no fallback: below-vigilance samples score as errors")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("test")
	return cmd
}

func runClassify(configPath, trainPath, testPath string, strict bool) error {
	cfg, err := loadExperiment(configPath)
	if err != nil {
		return err
	}
	m, err := newModel(cfg)
	if err != nil {
		return err
	}
	Xtr, ytr, err := readSamples(trainPath, true)
	if err != nil {
		return err
	}
	Xte, yte, err := readSamples(testPath, true)
	if err != nil {
		return err
	}

	res, err := train.Fit(m, Xtr, ytr, trainOptions(cfg))
	if err != nil {
		return err
	}
	correct, mismatches, err := evaluate(m, Xte, yte, strict)
	if err != nil {
		return err
	}

	fmt.Printf("%s: trained on %d samples in %d epochs (converged %v)\n",
		cfg.Engine, len(Xtr), res.Epochs, res.Converged)
	fmt.Printf("accuracy: %.4f (%d/%d)\n", float64(correct)/float64(len(Xte)), correct, len(Xte))
	if strict {
		fmt.Printf("vigilance mismatches: %d\n", mismatches)
	}
	return nil
}

// evaluate scores a fitted model over a labeled set. With strict set,
// classification refuses fallback, so below-vigilance samples return
// core.Mismatch and never match a ground-truth label.
func evaluate(m classifier, X [][]float64, labels []int, strict bool) (correct, mismatches int, err error) {
	for i, x := range X {
		pred, cerr := m.Classify(x, !strict)
		if cerr != nil {
			return 0, 0, cerr
		}
		if pred == core.Mismatch {
			mismatches++
		}
		if pred == labels[i] {
			correct++
		}
	}
	return correct, mismatches, nil
}

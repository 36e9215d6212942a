package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/artkit/train"
)

// newClusterCmd builds the unsupervised fit command.
func newClusterCmd() *cobra.Command {
	var configPath, inputPath, outputPath string
	cmd := &cobra.Command{
		Use:   "cluster -c experiment.yaml -i samples.csv [-o labeled.csv]",
		Short: "Fit the configured engine to unlabeled samples and report the partition",
		Long: `cluster runs epoch-based unsupervised training of the configured engine
over a CSV sample set and prints the resulting per-cluster sizes. With
--output, every input row is written back with its assigned cluster
label appended as a final column.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runCluster(configPath, inputPath, outputPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "experiment YAML file")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "samples CSV, one sample per row")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write samples with assigned labels to this CSV")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func runCluster(configPath, inputPath, outputPath string) error {
	cfg, err := loadExperiment(configPath)
	if err != nil {
		return err
	}
	m, err := newModel(cfg)
	if err != nil {
		return err
	}
	X, _, err := readSamples(inputPath, false)
	if err != nil {
		return err
	}

	res, err := train.Fit(m, X, nil, trainOptions(cfg))
	if err != nil {
		return err
	}

	sizes := make(map[int]int)
	for _, lbl := range res.Assignments {
		sizes[lbl]++
	}
	order := make([]int, 0, len(sizes))
	for lbl := range sizes {
		order = append(order, lbl)
	}
	sort.Ints(order)

	fmt.Printf("%s: %d samples into %d clusters after %d epochs (converged %v)\n",
		cfg.Engine, len(X), len(sizes), res.Epochs, res.Converged)
	for _, lbl := range order {
		fmt.Printf("  cluster %d: %d samples\n", lbl, sizes[lbl])
	}

	if outputPath == "" {
		return nil
	}
	rows := make([][]string, len(X))
	for i, x := range X {
		rows[i] = append(featureRow(x), strconv.Itoa(res.Assignments[i]))
	}
	return writeCSV(outputPath, rows)
}

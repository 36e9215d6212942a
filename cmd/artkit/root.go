package main

import "github.com/spf13/cobra"

// newRootCmd assembles the artkit command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "artkit",
		Short: "Adaptive resonance clustering, classification and scene filtering",
		Long: `artkit fits adaptive resonance engines (fuzzyart, sfam, dvfa, ddvfa)
to CSV sample sets and filters PNG images into ART-ready feature vectors.

Experiments are described by a YAML file naming the engine and its
parameters; every omitted parameter keeps its library default. Sample
files are plain numeric CSV, one sample per row, with an optional
trailing integer label column for the supervised commands.`,
		SilenceUsage: true,
	}
	root.AddCommand(newClusterCmd(), newClassifyCmd(), newFilterCmd())
	return root
}

// Command artkit drives the ART learners from the terminal: unsupervised
// clustering of CSV samples, supervised train-and-score classification,
// and the artscene pipeline turning PNG images into patch feature vectors.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

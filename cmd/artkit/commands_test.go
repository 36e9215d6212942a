package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/artkit/sfam"
	"github.com/katalvlaran/artkit/train"
)

// TestRunCluster_EndToEnd drives the cluster command through real files:
// two one-dimensional blobs under loose vigilance must come back as two
// clusters of two, with the labeled CSV reproducing the inputs exactly.
func TestRunCluster_EndToEnd(t *testing.T) {
	config := writeConfig(t, "engine: fuzzyart\nfuzzyart:\n  rho: 0.5\n")
	input := writeFile(t, "data.csv", "0.1\n0.12\n0.9\n0.88\n")
	output := filepath.Join(t.TempDir(), "labeled.csv")

	require.NoError(t, runCluster(config, input, output))

	X, labels, err := readSamples(output, true)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.1}, {0.12}, {0.9}, {0.88}}, X)
	assert.Equal(t, []int{1, 1, 2, 2}, labels)
}

func TestRunCluster_BadInputs(t *testing.T) {
	config := writeConfig(t, "engine: fuzzyart\n")
	input := writeFile(t, "data.csv", "0.1\n0.9\n")

	err := runCluster(filepath.Join(t.TempDir(), "missing.yaml"), input, "")
	assert.ErrorContains(t, err, "read config")

	err = runCluster(config, filepath.Join(t.TempDir(), "missing.csv"), "")
	assert.ErrorContains(t, err, "open samples")
}

// TestEvaluate pins the fallback/strict split: a between-categories
// query falls back to the best-activation label by default, but scores
// as a vigilance mismatch under strict classification.
func TestEvaluate(t *testing.T) {
	m, err := sfam.New(sfam.DefaultOptions())
	require.NoError(t, err)

	X := [][]float64{{0.9}, {0.1}, {0.85}, {0.15}}
	y := []int{1, 2, 1, 2}
	res, err := train.Fit(m, X, y, train.DefaultOptions())
	require.NoError(t, err)
	require.True(t, res.Converged)

	correct, mismatches, err := evaluate(m, X, y, false)
	require.NoError(t, err)
	assert.Equal(t, 4, correct)
	assert.Equal(t, 0, mismatches)

	// Normalized midpoint: both categories match at 0.5, below ρ=0.75.
	mid := [][]float64{{0.5}}
	correct, mismatches, err = evaluate(m, mid, []int{1}, true)
	require.NoError(t, err)
	assert.Equal(t, 0, correct)
	assert.Equal(t, 1, mismatches)

	correct, mismatches, err = evaluate(m, mid, []int{1}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, correct)
	assert.Equal(t, 0, mismatches)
}

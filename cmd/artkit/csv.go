package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// readSamples loads one sample per row from a plain numeric CSV file
// (no header). With labeled true the last column is consumed as a
// positive integer ground-truth label and returned separately. The csv
// reader already rejects ragged rows, so every sample shares one width.
func readSamples(path string, labeled bool) ([][]float64, []int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open samples: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read samples: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("samples %s: file is empty", path)
	}

	minCols := 1
	if labeled {
		minCols = 2
	}
	X := make([][]float64, 0, len(rows))
	var labels []int
	for n, row := range rows {
		if len(row) < minCols {
			return nil, nil, fmt.Errorf("samples %s row %d: want at least %d columns", path, n+1, minCols)
		}
		cols := row
		if labeled {
			raw := strings.TrimSpace(row[len(row)-1])
			lbl, lerr := strconv.Atoi(raw)
			if lerr != nil || lbl < 1 {
				return nil, nil, fmt.Errorf("samples %s row %d: label %q must be a positive integer", path, n+1, raw)
			}
			labels = append(labels, lbl)
			cols = row[:len(row)-1]
		}
		vec := make([]float64, len(cols))
		for i, cell := range cols {
			v, perr := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if perr != nil {
				return nil, nil, fmt.Errorf("samples %s row %d column %d: %w", path, n+1, i+1, perr)
			}
			vec[i] = v
		}
		X = append(X, vec)
	}
	return X, labels, nil
}

// writeCSV writes rows to path, or to stdout when path is empty.
func writeCSV(path string, rows [][]string) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	w := csv.NewWriter(out)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// featureRow renders one sample as CSV cells with round-trip precision.
func featureRow(x []float64) []string {
	row := make([]string, len(x))
	for i, v := range x {
		row[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return row
}

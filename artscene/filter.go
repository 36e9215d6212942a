// Package artscene - the end-to-end pipeline entry point.
package artscene

import "gonum.org/v1/gonum/mat"

// Filter runs all six stages over an RGB image and returns one feature
// vector per patch, PatchRows×PatchCols rows of Orientations entries
// each, in row-major patch order. All tunables are validated before any
// convolution starts, so an oversized patch grid fails fast.
//
// Complexity: O(H·W·(Rc²+Rs²+Orientations·Ro²)).
func Filter(r, g, b *mat.Dense, o Options) ([][]float64, error) {
	if err := o.validateShunting(); err != nil {
		return nil, err
	}
	if err := o.validateOriented(); err != nil {
		return nil, err
	}

	gray, err := Grayscale(r, g, b)
	if err != nil {
		return nil, err
	}
	if h, w := gray.Dims(); o.PatchRows < 1 || o.PatchCols < 1 || o.PatchRows > h || o.PatchCols > w {
		return nil, ErrPatchGrid
	}

	norm, err := Normalize(gray, o)
	if err != nil {
		return nil, err
	}
	on, off, err := OrientedContrast(norm, o)
	if err != nil {
		return nil, err
	}
	z, err := CombinePolarities(on, off)
	if err != nil {
		return nil, err
	}
	s, err := OrientationCompetition(z)
	if err != nil {
		return nil, err
	}
	return PatchFeatures(s, o)
}

// Package dataset - Blobs: isotropic Gaussian clusters around given centers.
package dataset

// Blobs draws perCluster points around each center from an isotropic
// Gaussian with standard deviation spread. Cluster k (0-based) receives
// ground-truth label k+1 and its own derived RNG stream, so appending a
// center leaves every earlier cluster's points bit-identical.
//
// Contract:
//   - centers must be non-empty and share one positive dimension.
//   - perCluster ≥ 1; spread ≥ 0 (spread==0 repeats each center exactly).
//   - Emission order is stable: cluster asc, sample asc, coordinate asc.
//
// Complexity: O(k·n·d) time, O(k·n·d) space for the returned samples.
func Blobs(centers [][]float64, perCluster int, spread float64, seed int64) ([][]float64, []int, error) {
	if len(centers) == 0 {
		return nil, nil, ErrNoCenters
	}
	dim := len(centers[0])
	if dim == 0 {
		return nil, nil, ErrCenterDim
	}
	for _, c := range centers[1:] {
		if len(c) != dim {
			return nil, nil, ErrCenterDim
		}
	}
	if perCluster < 1 {
		return nil, nil, ErrSampleCount
	}
	if spread < 0 {
		return nil, nil, ErrSpreadRange
	}

	X := make([][]float64, 0, len(centers)*perCluster)
	labels := make([]int, 0, len(centers)*perCluster)
	for k, c := range centers {
		rng := deriveRNG(seed, uint64(k))
		for i := 0; i < perCluster; i++ {
			p := make([]float64, dim)
			for d := 0; d < dim; d++ {
				p[d] = c[d] + spread*rng.NormFloat64()
			}
			X = append(X, p)
			labels = append(labels, k+1)
		}
	}
	return X, labels, nil
}

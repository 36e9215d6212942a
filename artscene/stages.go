// Package artscene - the six exported pipeline stages.
package artscene

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// checkPlane validates one plane: non-nil, non-empty and fully finite.
func checkPlane(p *mat.Dense) error {
	if p == nil {
		return ErrEmptyPlane
	}
	h, w := p.Dims()
	if h == 0 || w == 0 {
		return ErrEmptyPlane
	}
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			if v := p.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNotFinite
			}
		}
	}
	return nil
}

// checkPlanes validates a full orientation set: exactly Orientations
// planes, each finite and all of one shape. Returns the common shape.
func checkPlanes(planes []*mat.Dense) (h, w int, err error) {
	if len(planes) != Orientations {
		return 0, 0, ErrPlaneCount
	}
	for i, p := range planes {
		if err = checkPlane(p); err != nil {
			return 0, 0, err
		}
		ph, pw := p.Dims()
		if i == 0 {
			h, w = ph, pw
			continue
		}
		if ph != h || pw != w {
			return 0, 0, ErrPlaneShape
		}
	}
	return h, w, nil
}

// Grayscale fuses three color planes into one intensity plane by the
// arithmetic mean. All planes must be non-empty, finite and of one shape.
//
// Complexity: O(H·W).
func Grayscale(r, g, b *mat.Dense) (*mat.Dense, error) {
	for _, p := range []*mat.Dense{r, g, b} {
		if err := checkPlane(p); err != nil {
			return nil, err
		}
	}
	h, w := r.Dims()
	if gh, gw := g.Dims(); gh != h || gw != w {
		return nil, ErrPlaneShape
	}
	if bh, bw := b.Dims(); bh != h || bw != w {
		return nil, ErrPlaneShape
	}

	out := mat.NewDense(h, w, nil)
	out.Add(r, g)
	out.Add(out, b)
	out.Apply(func(_, _ int, v float64) float64 { return v / 3 }, out)
	return out, nil
}

// Normalize applies shunting on-center/off-surround contrast
// normalization: with C the center-Gaussian and E the wider
// surround-Gaussian convolution of x, each pixel becomes
//
//	(C − E) / (1 + C + E).
//
// Uniform regions collapse to zero and local contrast is compressed into
// (−1, 1). Intensities in [0, 1] keep the denominator at least 1.
//
// Complexity: O(H·W·(Rc²+Rs²)).
func Normalize(x *mat.Dense, o Options) (*mat.Dense, error) {
	if err := checkPlane(x); err != nil {
		return nil, err
	}
	if err := o.validateShunting(); err != nil {
		return nil, err
	}

	center := convolve(x, gaussianKernel(o.CenterRadius, o.CenterSigma))
	surround := convolve(x, gaussianKernel(o.SurroundRadius, o.SurroundSigma))
	h, w := x.Dims()
	out := mat.NewDense(h, w, nil)
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			c, e := center.At(i, j), surround.At(i, j)
			out.Set(i, j, (c-e)/(1+c+e))
		}
	}
	return out, nil
}

// OrientedContrast runs the contrast-sensitive oriented filters over a
// normalized plane. For each of the four edge-line angles k·45° the two
// offset Gaussian lobes yield excitatory and inhibitory drives C and E,
// shunted into y = (C−E)/(1+|C|+|E|); the signed response is rectified
// into an on-polarity plane [y]⁺ and an off-polarity plane [−y]⁺.
// Magnitudes in the denominator keep it at least 1 on the signed
// stage-2 output.
//
// Complexity: O(Orientations·H·W·Ro²).
func OrientedContrast(x *mat.Dense, o Options) (on, off []*mat.Dense, err error) {
	if err = checkPlane(x); err != nil {
		return nil, nil, err
	}
	if err = o.validateOriented(); err != nil {
		return nil, nil, err
	}

	h, w := x.Dims()
	on = make([]*mat.Dense, Orientations)
	off = make([]*mat.Dense, Orientations)
	for k := 0; k < Orientations; k++ {
		pos, neg := orientedLobes(float64(k)*math.Pi/4, o.OrientRadius, o.OrientSigma, o.OrientOffset)
		exc := convolve(x, pos)
		inh := convolve(x, neg)
		on[k] = mat.NewDense(h, w, nil)
		off[k] = mat.NewDense(h, w, nil)
		for i := 0; i < h; i++ {
			for j := 0; j < w; j++ {
				c, e := exc.At(i, j), inh.At(i, j)
				y := (c - e) / (1 + math.Abs(c) + math.Abs(e))
				if y >= 0 {
					on[k].Set(i, j, y)
				} else {
					off[k].Set(i, j, -y)
				}
			}
		}
	}
	return on, off, nil
}

// CombinePolarities merges the rectified on/off planes of each
// orientation into one contrast-insensitive plane, z = on + off, so
// edge strength no longer depends on which side is brighter.
//
// Complexity: O(Orientations·H·W).
func CombinePolarities(on, off []*mat.Dense) ([]*mat.Dense, error) {
	h, w, err := checkPlanes(on)
	if err != nil {
		return nil, err
	}
	oh, ow, err := checkPlanes(off)
	if err != nil {
		return nil, err
	}
	if oh != h || ow != w {
		return nil, ErrPlaneShape
	}

	z := make([]*mat.Dense, Orientations)
	for k := 0; k < Orientations; k++ {
		z[k] = mat.NewDense(h, w, nil)
		z[k].Add(on[k], off[k])
	}
	return z, nil
}

// OrientationCompetition sharpens the dominant orientation at every
// pixel: each plane keeps what exceeds the mean of the other three,
//
//	s_k = [ z_k − mean_{m≠k} z_m ]⁺,
//
// so ambiguous responses cancel and clear edges survive in exactly the
// winning channel.
//
// Complexity: O(Orientations·H·W).
func OrientationCompetition(z []*mat.Dense) ([]*mat.Dense, error) {
	h, w, err := checkPlanes(z)
	if err != nil {
		return nil, err
	}

	s := make([]*mat.Dense, Orientations)
	for k := range s {
		s[k] = mat.NewDense(h, w, nil)
	}
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			tot := 0.0
			for k := 0; k < Orientations; k++ {
				tot += z[k].At(i, j)
			}
			for k := 0; k < Orientations; k++ {
				v := z[k].At(i, j)
				if rest := v - (tot-v)/(Orientations-1); rest > 0 {
					s[k].Set(i, j, rest)
				}
			}
		}
	}
	return s, nil
}

// PatchFeatures pools each plane over a PatchRows×PatchCols grid of
// near-equal patches and emits one feature vector per patch: entry m of
// a vector is the mean activity of plane m inside that patch. Patches
// are emitted row-major (grid row ascending, then grid column), matching
// the reading order of the image.
//
// The plane list is not restricted to Orientations entries here, so the
// pooling stage can serve single-plane diagnostics as well.
//
// Complexity: O(len(planes)·H·W).
func PatchFeatures(planes []*mat.Dense, o Options) ([][]float64, error) {
	if len(planes) == 0 {
		return nil, ErrEmptyPlane
	}
	h, w := 0, 0
	for i, p := range planes {
		if err := checkPlane(p); err != nil {
			return nil, err
		}
		ph, pw := p.Dims()
		if i == 0 {
			h, w = ph, pw
			continue
		}
		if ph != h || pw != w {
			return nil, ErrPlaneShape
		}
	}
	if o.PatchRows < 1 || o.PatchCols < 1 || o.PatchRows > h || o.PatchCols > w {
		return nil, ErrPatchGrid
	}

	features := make([][]float64, 0, o.PatchRows*o.PatchCols)
	for pr := 0; pr < o.PatchRows; pr++ {
		r0, r1 := pr*h/o.PatchRows, (pr+1)*h/o.PatchRows
		for pc := 0; pc < o.PatchCols; pc++ {
			c0, c1 := pc*w/o.PatchCols, (pc+1)*w/o.PatchCols
			vec := make([]float64, len(planes))
			for m, p := range planes {
				sum := 0.0
				for i := r0; i < r1; i++ {
					for j := c0; j < c1; j++ {
						sum += p.At(i, j)
					}
				}
				vec[m] = sum / float64((r1-r0)*(c1-c0))
			}
			features = append(features, vec)
		}
	}
	return features, nil
}

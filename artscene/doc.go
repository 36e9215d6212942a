// Package artscene turns raw RGB image planes into compact, ART-ready
// feature vectors through a six-stage biologically inspired filter
// pipeline:
//
//  1. Grayscale - fuses the three color planes into one intensity plane.
//  2. Normalize - shunting on-center/off-surround contrast normalization,
//     x = (C−E)/(1+C+E), which discounts the illuminant and silences
//     uniform regions.
//  3. OrientedContrast - contrast-sensitive filtering with paired offset
//     Gaussian lobes at four orientations (0°, 45°, 90°, 135° edge
//     lines), emitting rectified on/off polarity planes per orientation.
//  4. CombinePolarities - contrast-insensitive merge of the opposite
//     polarities, so a dark→bright edge scores like a bright→dark one.
//  5. OrientationCompetition - per-pixel winner sharpening across the
//     four orientation planes.
//  6. PatchFeatures - a coarse grid of patches, pooling mean oriented
//     activity per orientation into one feature vector per patch.
//
// Filter chains all six stages; the individual stages are exported for
// composition and inspection. Planes are gonum mat.Dense matrices with
// row = image row; intensities are expected in [0, 1]. Convolutions
// replicate the border pixel (clamp policy) and every stage allocates
// its outputs, leaving inputs untouched.
//
// Execution is sequential and deterministic. The produced patch vectors
// feed the engines directly: normalize with core.BoundsOf, or hand them
// to train.Fit, which derives bounds on its own.
package artscene

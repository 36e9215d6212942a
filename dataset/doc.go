// Package dataset generates small synthetic sample sets for the ART
// learners: Gaussian blobs, annular rings and the interlocking
// two-spirals benchmark.
//
// Every generator is fully deterministic: equal arguments and an equal
// seed reproduce bit-identical samples on every platform, and seed==0
// selects a fixed default stream instead of a time-based source. Blobs
// draws each cluster from an independently derived stream, so extending
// the center list never disturbs the points of earlier clusters.
//
// Samples are emitted in raw feature space without clamping. Feed them
// to train.Fit, which derives bounds automatically, or normalize against
// core.BoundsOf before complement coding by hand.
//
// Ground-truth labels are positive integers starting at 1, matching the
// label convention of the engines; they are suitable both as supervised
// training targets and as reference partitions for clustering demos.
package dataset

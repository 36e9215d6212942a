// Package train drives any of the category learners over a whole batch
// for multiple epochs until the weights stop moving.
//
// The learners train one sample at a time; this package owns the outer
// loop: derive data bounds when the model has none, feed every sample in
// order (ordering is part of the semantics, so there is no shuffling and
// no concurrency), snapshot the weights after each epoch and stop as soon
// as an epoch leaves every prototype bit-identical and the category count
// unchanged, or when MaxEpochs runs out.
//
// Anything implementing Model fits: the fuzzyart engine, the sfam and
// dvfa overlays and the ddvfa hierarchy all do. Supervised runs pass a
// labels slice parallel to the samples; nil labels mean unsupervised
// throughout.
package train

// Package sfam provides Simplified Fuzzy ARTMAP: a supervised overlay on
// the fuzzyart resonance engine with match tracking.
//
// SFAM trains on (sample, label) pairs. The underlying engine ranks
// categories by activation as usual, but the overlay maintains an
// effective vigilance ρ_eff that starts at ρ and rises during a single
// query: whenever the best resonant candidate carries the wrong label,
// ρ_eff is raised just above that candidate's match (by Epsilon) and the
// scan restarts from the top of the same ranking. Because ρ_eff strictly
// increases on every conflict, the search terminates in at most
// n_categories+1 scans — either finding a same-label resonant category or
// founding a new category with the requested label. The returned label
// therefore always equals the supplied one.
//
// Classification is the plain unsupervised inference walk of the inner
// engine at the base vigilance.
//
// Errors: ErrLabelRequired for training without a positive label,
// ErrEpsilonRange for a non-positive match-tracking increment; option
// range violations surface as the fuzzyart sentinel errors and bounds
// violations as the core ones.
package sfam

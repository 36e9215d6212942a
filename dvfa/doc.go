// Package dvfa provides dual-vigilance Fuzzy ART: an unsupervised overlay
// on the fuzzyart resonance engine with two vigilance bounds instead of
// one.
//
// A single-vigilance engine equates "cluster" with "one prototype box":
// every admitted sample inflates the winner's box, so elongated or curved
// groups either shatter into many labels (high ρ) or merge into one
// bloated box (low ρ). DVFA splits the roles. The upper bound RhoUB keeps
// prototype refinement tight: only a sample whose match clears it shrinks
// the winning prototype. The lower bound RhoLB draws the cluster
// boundary: a sample that falls between the bounds is appended as a NEW
// category carrying the winner's cluster label, so the cluster grows by
// gaining prototypes rather than by inflating one. Chains of such
// admissions let one label cover shapes no single box could, while every
// individual box stays small.
//
// Training is unsupervised (pass core.NoLabel) or simple supervised: a
// never-seen label founds its own category immediately, and a resonant
// candidate with a conflicting label fails that candidate only. There is
// no match tracking here; that lives in sfam.
//
// Classification is the inner engine's pure inference walk gated at
// RhoLB, the cluster boundary.
package dvfa

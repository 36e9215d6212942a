// Package fuzzyart implements the Fuzzy ART resonance engine: online
// prototype clustering that decides, one sample at a time, whether the
// sample resonates with an existing category or founds a new one.
//
// 🚀 What is Fuzzy ART?
//
//	Fuzzy ART maintains a set of prototype vectors ("categories") in the
//	unit hypercube. For each complement-coded query x it computes, per
//	category j with weight w_j:
//	  activation  T_j = ‖x ∧ w_j‖₁ / (α + ‖w_j‖₁)
//	  match       M_j = ‖x ∧ w_j‖₁ / dim
//	(∧ is the element-wise minimum, all norms L1.) Categories are ranked
//	by activation, best first, and the first one whose match clears the
//	vigilance threshold wins and learns:
//	  w_j ← β·(x ∧ w_j) + (1−β)·w_j
//	If no category clears the threshold, the query becomes a brand-new
//	category. Ranking by activation but gating by match is intentional:
//	the two orderings disagree in general, and the search is
//	best-activation-first, not best-match-first.
//
// ✨ Key features:
//   - Three activation rules selected at construction: Choice (basic
//     ratio), Gamma (ratio raised to γ, with optional gamma-normalized
//     match M_j = ‖w_j‖₁^γref·T_j), and ChoiceByDifference
//     (‖x∧w‖₁ + (1−α)(dim − ‖w‖₁)).
//   - Vigilance threshold fixed once the data bounds are established:
//     ρ·dim^γref under gamma normalization, plain ρ otherwise.
//   - Simple supervised mode: pass a positive label to Train and the
//     engine only learns into same-label categories; a never-seen label
//     short-circuits the search and founds its category directly.
//   - Deterministic ranking: ties in activation preserve creation order.
//   - Classification never mutates; mismatch is the core.Mismatch
//     sentinel, or the best-activation label under fallback.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/artkit/core"
//	  "github.com/katalvlaran/artkit/fuzzyart"
//	)
//
//	opts := fuzzyart.DefaultOptions()
//	opts.Rho = 0.75                      // stricter admission
//	art, err := fuzzyart.New(opts)
//	if err != nil { ... }
//
//	b, _ := core.BoundsOf(rawSamples)    // or core.NewBounds(mins, maxs)
//	_ = art.SetBounds(b)
//
//	for _, x := range rawSamples {
//	  label, err := art.Train(x, core.NoLabel) // unsupervised
//	  ...
//	}
//	got, _ := art.Classify(query, false) // core.Mismatch if nothing resonates
//
// Performance:
//
//   - Train/Classify: O(n·d) per query (n categories, d coded length),
//     one ranking sort O(n·log n), no allocations beyond the score caches.
//   - Memory: O(n·d) prototypes plus two length-n score caches reused
//     across queries.
//
// Overlay builders (supervised match tracking, dual vigilance,
// hierarchical aggregation) drive the exported primitives Scores, Rank,
// FindResonant, Learn and Append instead of Train; see the sfam, dvfa and
// ddvfa packages.
package fuzzyart

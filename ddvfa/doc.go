// Package ddvfa implements distributed dual-vigilance Fuzzy ART: a
// two-level aggregator in which every outer cluster owns a nested
// fuzzyart engine, so one cluster is represented by many prototypes
// instead of one ever-growing box.
//
// 🚀 What is DDVFA?
//
//	The aggregator keeps a list of clusters. Each cluster wraps its own
//	resonance engine running at the upper vigilance ρ_ub with the Gamma
//	activation; the outer admission gate derives from the lower vigilance
//	ρ_lb. For a query x every nested engine scores all of its prototypes,
//	and a linkage strategy reduces those per-prototype scores to a single
//	activation and match per cluster. The clusters are ranked by the
//	aggregated activation, the first whose aggregated match clears the
//	outer threshold wins, and the winner's nested engine trains on x at
//	ρ_ub: either refining one of its prototypes or growing a fresh one.
//	If no cluster clears the outer gate, x founds a new cluster seeded
//	with a single-prototype engine.
//
//	Splitting the vigilances this way makes cluster granularity and
//	prototype granularity independent: ρ_lb decides how far a cluster
//	reaches, ρ_ub how tight each of its prototypes stays.
//
// ✨ Key features:
//   - Six linkage strategies, chosen at construction: Single (max),
//     Complete (min), Average (mean), Median, Weighted
//     (instance-count-weighted mean) and Centroid (rescore against the
//     element-wise minimum of all nested prototypes).
//   - Supervised mode with outer match tracking: a resonant cluster with
//     a conflicting label raises the effective outer threshold just above
//     its aggregated match and the cluster ranking is rescanned from the
//     top, terminating within n_clusters+1 scans.
//   - Optional gamma-normalized nested match (off by default, so an
//     identical resample reports an aggregated match of exactly 1 under
//     Single linkage).
//   - Deterministic end to end: stable ranking ties, no randomness, no
//     goroutines.
//
// ⚙️ Usage:
//
//	opts := ddvfa.DefaultOptions()
//	opts.RhoLB, opts.RhoUB = 0.55, 0.8
//	opts.Linkage = ddvfa.Average
//	agg, err := ddvfa.New(opts)
//	if err != nil { ... }
//
//	b, _ := core.BoundsOf(rawSamples)
//	_ = agg.SetBounds(b)
//	for _, x := range rawSamples {
//	  cl, _ := agg.Train(x, core.NoLabel) // cl is the cluster label
//	  ...
//	}
//	got, _ := agg.Classify(query, false)
//
// Performance: Train/Classify score every prototype of every cluster,
// O(N·d) with N the total prototype count, plus the outer ranking sort.
// The per-cluster reductions reuse the nested engines' score caches; only
// Median and Centroid copy (sorting, the merged prototype).
package ddvfa

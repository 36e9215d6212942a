// Package artkit is your in-memory toolbox for Adaptive Resonance Theory
// category learning — online clustering and classification that grows its
// own prototypes, from the flat Fuzzy ART engine to distributed
// dual-vigilance hierarchies.
//
// 🚀 What is artkit?
//
//	A modern, deterministic, library-first implementation that brings together:
//		• Core primitives: append-only category store, data bounds, fuzzy vector math
//		• Resonance engine: Fuzzy ART with Choice / Gamma / Choice-by-Difference activations
//		• Supervised overlay: Simplified Fuzzy ARTMAP with match tracking
//		• Dual vigilance: flat DVFA band admission and the distributed DDVFA hierarchy
//		• Linkage statistics: single, complete, average, median, weighted, centroid
//		• Batch driver: epoch loop with bit-exact convergence detection
//		• Scene features: the 6-stage ARTSCENE oriented-contrast filter bank
//		• Synthetic data: seeded blob, ring and spiral generators
//
// ✨ Why choose artkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – stable rankings, seeded generators, no wall-clock randomness
//   - Pure Go – no cgo; numerics on gonum, nothing hidden
//   - Extensible – exported search primitives (Rank, FindResonant, Scores)
//     let you compose your own vigilance policies
//
// Under the hood, everything is organized per concern:
//
//	core/     — category store, bounds descriptor, complement coding, learning rule
//	fuzzyart/ — the resonance engine: activation strategies, ranked vigilance walk
//	sfam/     — supervised overlay (match tracking)
//	dvfa/     — dual-vigilance Fuzzy ART (flat)
//	ddvfa/    — distributed dual-vigilance hierarchy (nested engines + linkage)
//	train/    — batch fit loop, convergence semantics
//	dataset/  — deterministic synthetic instances
//	artscene/ — image-to-feature filter pipeline
//	cmd/      — the artkit CLI (cluster, classify, filter)
//
// Quick ASCII example:
//
//	    x ──▶ [normalize + complement-code] ──▶ rank by activation
//	              │                                    │
//	              ▼                                    ▼
//	        match ≥ ρ ? ──yes──▶ learn (fuzzy AND)   no ──▶ new category
//
//	one pass per sample; categories only grow, never shrink in number.
//
// Dive into the per-package docs for full examples, the parameter
// glossary, and the exact search semantics each variant guarantees.
//
//	go get github.com/katalvlaran/artkit
package artkit

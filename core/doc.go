// Package core provides the shared foundation of the artkit learners:
// the category store, the data-bounds descriptor with its preprocessing
// helpers, and the fuzzy vector arithmetic every engine is built on.
//
// The three pieces fit together like this:
//
//   - Bounds records per-feature minima/maxima and the feature count.
//     It turns raw feature vectors into the unit-hypercube representation
//     the engines consume: linear min–max normalization followed by
//     complement coding ([x, 1−x], length 2·Dim). Engines size their
//     prototypes and thresholds from Bounds and refuse to run before one
//     is established.
//
//   - Store is an append-only, index-stable collection of prototypes.
//     Each slot carries a weight vector, an integer label, and an
//     instance count, kept in three parallel slices. Slots are never
//     deleted, never reordered, and never relabeled; the only in-place
//     mutations are Replace/learning writes to an existing weight and
//     Bump on its instance count. Index stability is what lets the
//     engines rank categories once and then address them by index.
//
//   - The fuzzy math helpers implement the element-wise minimum
//     ("fuzzy AND"), its L1 norm, and the learning rule
//     w ← β·(x ∧ w) + (1−β)·w, all alloc-free on the hot path.
//
// Labels:
//
//	Cluster/class labels are positive integers assigned at category
//	creation. Two sentinels are reserved:
//	  NoLabel  (0)  — passed by callers to request unsupervised treatment.
//	  Mismatch (−1) — returned by classification when no category resonates.
//
// Core Methods:
//
//	// Bounds
//	NewBounds(mins, maxs []float64) (Bounds, error) // O(d)
//	BoundsOf(X [][]float64) (Bounds, error)         // O(n·d)
//	(Bounds) Normalize(x []float64) ([]float64, error) // O(d)
//	(Bounds) Code(x []float64) ([]float64, error)      // O(d), returns length 2d
//	(Bounds) CheckCoded(xc []float64) error            // O(d)
//
//	// Store
//	NewStore() *Store
//	(s *Store) Append(w []float64, label int) (int, error) // O(d), copies w
//	(s *Store) Weight(i int) ([]float64, error)            // O(1), live slice
//	(s *Store) Replace(i int, w []float64) error           // O(d)
//	(s *Store) Bump(i int) error                           // O(1)
//	(s *Store) Len/Label/Count/HasLabel/NextLabel/Check
//
//	// Fuzzy math
//	FuzzyAnd(dst, a, b []float64) []float64 // element-wise min
//	AndNorm1(a, b []float64) float64        // ‖a ∧ b‖₁ without allocating
//	Norm1(v []float64) float64              // L1 norm
//	Complement(x []float64) []float64       // [x, 1−x]
//	Learn(w, x []float64, beta float64)     // in-place β-blend update
//
// Errors:
//
//	ErrBoundsInvalid – empty bounds or min > max for some feature
//	ErrBoundsNotSet  – preprocessing requested before bounds exist
//	ErrDimMismatch   – vector length disagrees with the bounds dimension
//	ErrUnitInterval  – coded component outside [0,1]
//	ErrEmptyBatch    – bounds derivation over zero samples
//	ErrIndexRange    – category index out of range
//	ErrWeightDim     – appended weight length differs from existing slots
//	ErrStoreCorrupt  – parallel slices diverged (caller bug, not recoverable)
//
// All operations are single-threaded by contract: a Store is exclusively
// owned by one engine, and one query is fully resolved before the next is
// admitted. Nothing in this package locks.
package core

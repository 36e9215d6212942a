package core

// Store is an append-only, index-stable collection of category prototypes.
// Weights, labels and instance counts live in three parallel slices whose
// lengths are identical by invariant. Insertion order equals creation order
// equals category index; nothing is ever deleted, reordered or relabeled.
//
// A Store is exclusively owned by one engine and is not safe for
// concurrent use.
type Store struct {
	weights [][]float64
	labels  []int
	counts  []int
	dim     int // weight length, fixed by the first Append
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Len returns the number of categories.
// Complexity: O(1).
func (s *Store) Len() int { return len(s.weights) }

// Dim returns the weight length fixed by the first Append, or 0 when empty.
// Complexity: O(1).
func (s *Store) Dim() int { return s.dim }

// Append adds a new category with a deep copy of w and the given label,
// instance count 1, and returns its index. The first Append fixes the
// weight length; later appends with a different length return ErrWeightDim.
// Complexity: O(d) amortized.
func (s *Store) Append(w []float64, label int) (int, error) {
	if len(w) == 0 {
		return 0, ErrWeightDim
	}
	if s.dim == 0 {
		s.dim = len(w)
	} else if len(w) != s.dim {
		return 0, ErrWeightDim
	}
	cp := make([]float64, len(w))
	copy(cp, w)
	s.weights = append(s.weights, cp)
	s.labels = append(s.labels, label)
	s.counts = append(s.counts, 1)

	return len(s.weights) - 1, nil
}

// Weight returns the live prototype at index i. The slice is the stored
// weight itself, not a copy: engines mutate it in place through the
// learning rule. Callers outside the owning engine must treat it as
// read-only. Returns ErrIndexRange.
// Complexity: O(1).
func (s *Store) Weight(i int) ([]float64, error) {
	if i < 0 || i >= len(s.weights) {
		return nil, ErrIndexRange
	}
	return s.weights[i], nil
}

// Replace overwrites the prototype at index i with a copy of w.
// The slot keeps its label and instance count. Returns ErrIndexRange or
// ErrWeightDim.
// Complexity: O(d).
func (s *Store) Replace(i int, w []float64) error {
	if i < 0 || i >= len(s.weights) {
		return ErrIndexRange
	}
	if len(w) != s.dim {
		return ErrWeightDim
	}
	copy(s.weights[i], w)
	return nil
}

// Label returns the label of category i. Returns ErrIndexRange.
// Complexity: O(1).
func (s *Store) Label(i int) (int, error) {
	if i < 0 || i >= len(s.labels) {
		return 0, ErrIndexRange
	}
	return s.labels[i], nil
}

// Count returns the instance count of category i. Returns ErrIndexRange.
// Complexity: O(1).
func (s *Store) Count(i int) (int, error) {
	if i < 0 || i >= len(s.counts) {
		return 0, ErrIndexRange
	}
	return s.counts[i], nil
}

// Bump increments the instance count of category i by one. Called on every
// learning update to that category. Returns ErrIndexRange.
// Complexity: O(1).
func (s *Store) Bump(i int) error {
	if i < 0 || i >= len(s.counts) {
		return ErrIndexRange
	}
	s.counts[i]++
	return nil
}

// Labels returns a copy of the label slice, index-aligned with categories.
// Complexity: O(n).
func (s *Store) Labels() []int {
	out := make([]int, len(s.labels))
	copy(out, s.labels)
	return out
}

// Counts returns a copy of the instance-count slice.
// Complexity: O(n).
func (s *Store) Counts() []int {
	out := make([]int, len(s.counts))
	copy(out, s.counts)
	return out
}

// Snapshot returns a deep copy of all weights in creation order. Used by
// epoch convergence checks, which compare snapshots across a full pass.
// Complexity: O(n·d).
func (s *Store) Snapshot() [][]float64 {
	out := make([][]float64, len(s.weights))
	for i, w := range s.weights {
		cp := make([]float64, len(w))
		copy(cp, w)
		out[i] = cp
	}
	return out
}

// HasLabel reports whether any category carries the given label.
// Complexity: O(n).
func (s *Store) HasLabel(label int) bool {
	for _, l := range s.labels {
		if l == label {
			return true
		}
	}
	return false
}

// NextLabel returns the next free positive label: one past the maximum
// assigned label, or 1 for an empty store.
// Complexity: O(n).
func (s *Store) NextLabel() int {
	next := 1
	for _, l := range s.labels {
		if l >= next {
			next = l + 1
		}
	}
	return next
}

// Check verifies the parallel-slice invariant. A non-nil ErrStoreCorrupt
// indicates a caller bug (the slices are never exposed for reslicing) and
// is not recoverable.
// Complexity: O(1).
func (s *Store) Check() error {
	if len(s.weights) != len(s.labels) || len(s.labels) != len(s.counts) {
		return ErrStoreCorrupt
	}
	return nil
}

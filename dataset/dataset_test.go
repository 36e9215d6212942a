// File: dataset/dataset_test.go
package dataset_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/artkit/dataset"
)

// testCenters is the shared two-cluster layout used across Blobs tests.
var testCenters = [][]float64{{0.2, 0.3}, {0.8, 0.7}}

// TestBlobs_Validation exercises every argument guard of Blobs and
// checks that each rejection maps onto its dedicated sentinel.
func TestBlobs_Validation(t *testing.T) {
	cases := []struct {
		name    string
		centers [][]float64
		per     int
		spread  float64
		want    error
	}{
		{"empty centers", nil, 3, 0.1, dataset.ErrNoCenters},
		{"zero-dim center", [][]float64{{}}, 3, 0.1, dataset.ErrCenterDim},
		{"ragged centers", [][]float64{{0.1, 0.2}, {0.3}}, 3, 0.1, dataset.ErrCenterDim},
		{"zero per-cluster", testCenters, 0, 0.1, dataset.ErrSampleCount},
		{"negative spread", testCenters, 3, -0.5, dataset.ErrSpreadRange},
	}
	for _, tc := range cases {
		if _, _, err := dataset.Blobs(tc.centers, tc.per, tc.spread, 1); !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v; want %v", tc.name, err, tc.want)
		}
	}
}

// TestBlobs_ShapeAndLabels verifies sample count, dimensionality and the
// cluster-major label layout for a small two-cluster instance.
func TestBlobs_ShapeAndLabels(t *testing.T) {
	X, labels, err := dataset.Blobs(testCenters, 3, 0.01, 7)
	if err != nil {
		t.Fatalf("Blobs failed: %v", err)
	}
	if len(X) != 6 || len(labels) != 6 {
		t.Fatalf("got %d samples / %d labels; want 6 / 6", len(X), len(labels))
	}
	for i, p := range X {
		if len(p) != 2 {
			t.Fatalf("sample %d has dimension %d; want 2", i, len(p))
		}
	}
	if want := []int{1, 1, 1, 2, 2, 2}; !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v; want %v", labels, want)
	}
}

// TestBlobs_ZeroSpreadRepeatsCenters pins the spread==0 degenerate case:
// every emitted point must equal its cluster center exactly.
func TestBlobs_ZeroSpreadRepeatsCenters(t *testing.T) {
	X, labels, err := dataset.Blobs(testCenters, 2, 0, 9)
	if err != nil {
		t.Fatalf("Blobs failed: %v", err)
	}
	for i, p := range X {
		c := testCenters[labels[i]-1]
		for d := range p {
			if p[d] != c[d] {
				t.Fatalf("sample %d coordinate %d = %v; want %v", i, d, p[d], c[d])
			}
		}
	}
}

// TestBlobs_DeterministicAndPrefixStable checks the three reproducibility
// contracts: equal seeds reproduce bit-identical output, seed==0 selects
// the fixed default stream (seed 1), and appending a center never moves
// the points of earlier clusters.
func TestBlobs_DeterministicAndPrefixStable(t *testing.T) {
	a, la, err := dataset.Blobs(testCenters, 4, 0.05, 42)
	if err != nil {
		t.Fatalf("Blobs failed: %v", err)
	}
	b, lb, _ := dataset.Blobs(testCenters, 4, 0.05, 42)
	if !reflect.DeepEqual(a, b) || !reflect.DeepEqual(la, lb) {
		t.Fatal("equal seeds must reproduce bit-identical output")
	}

	z, _, _ := dataset.Blobs(testCenters, 4, 0.05, 0)
	d, _, _ := dataset.Blobs(testCenters, 4, 0.05, 1)
	if !reflect.DeepEqual(z, d) {
		t.Fatal("seed 0 must select the default stream (seed 1)")
	}

	solo, _, _ := dataset.Blobs(testCenters[:1], 4, 0.05, 42)
	if !reflect.DeepEqual(solo, a[:4]) {
		t.Fatal("first cluster must be unchanged by appending a center")
	}
}

// TestRing_Validation exercises the radius and count guards of Ring.
func TestRing_Validation(t *testing.T) {
	cases := []struct {
		name         string
		n            int
		inner, outer float64
		want         error
	}{
		{"zero count", 0, 0.1, 0.3, dataset.ErrSampleCount},
		{"negative inner", 10, -0.1, 0.3, dataset.ErrRadiusRange},
		{"outer below inner", 10, 0.3, 0.1, dataset.ErrRadiusRange},
		{"zero outer", 10, 0, 0, dataset.ErrRadiusRange},
	}
	for _, tc := range cases {
		if _, _, err := dataset.Ring(tc.n, tc.inner, tc.outer, 1); !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v; want %v", tc.name, err, tc.want)
		}
	}
}

// TestRing_RadiiWithinBand draws a mid-width annulus and confirms every
// point's distance from the (0.5, 0.5) anchor stays inside [inner, outer].
func TestRing_RadiiWithinBand(t *testing.T) {
	const inner, outer = 0.1, 0.3
	X, labels, err := dataset.Ring(200, inner, outer, 3)
	if err != nil {
		t.Fatalf("Ring failed: %v", err)
	}
	for i, p := range X {
		r := math.Hypot(p[0]-0.5, p[1]-0.5)
		if r < inner-1e-9 || r > outer+1e-9 {
			t.Fatalf("point %d has radius %v outside [%v, %v]", i, r, inner, outer)
		}
		if labels[i] != 1 {
			t.Fatalf("point %d has label %d; want 1", i, labels[i])
		}
	}
}

// TestRing_DegenerateShapes covers the two documented degenerations:
// inner==0 gives a full disc, inner==outer a pure circle.
func TestRing_DegenerateShapes(t *testing.T) {
	disc, _, err := dataset.Ring(100, 0, 0.25, 5)
	if err != nil {
		t.Fatalf("disc: %v", err)
	}
	for i, p := range disc {
		if r := math.Hypot(p[0]-0.5, p[1]-0.5); r > 0.25+1e-9 {
			t.Fatalf("disc point %d has radius %v > 0.25", i, r)
		}
	}

	circle, _, err := dataset.Ring(100, 0.25, 0.25, 5)
	if err != nil {
		t.Fatalf("circle: %v", err)
	}
	for i, p := range circle {
		if r := math.Hypot(p[0]-0.5, p[1]-0.5); math.Abs(r-0.25) > 1e-9 {
			t.Fatalf("circle point %d has radius %v; want 0.25", i, r)
		}
	}
}

// TestTwoSpirals_Validation exercises the count, winding and noise guards.
func TestTwoSpirals_Validation(t *testing.T) {
	if _, _, err := dataset.TwoSpirals(0, 2, 0, 1); !errors.Is(err, dataset.ErrSampleCount) {
		t.Errorf("zero per-arm: got %v; want ErrSampleCount", err)
	}
	if _, _, err := dataset.TwoSpirals(10, 0, 0, 1); !errors.Is(err, dataset.ErrTurnsRange) {
		t.Errorf("zero turns: got %v; want ErrTurnsRange", err)
	}
	if _, _, err := dataset.TwoSpirals(10, 2, -0.1, 1); !errors.Is(err, dataset.ErrSpreadRange) {
		t.Errorf("negative noise: got %v; want ErrSpreadRange", err)
	}
}

// TestTwoSpirals_BackboneGeometry checks the noise-free arms: arm-major
// labels, point symmetry of the second arm through the anchor, the 0.05
// starting radius and monotone radial growth along each arm.
func TestTwoSpirals_BackboneGeometry(t *testing.T) {
	const perArm = 50
	X, labels, err := dataset.TwoSpirals(perArm, 1.5, 0, 11)
	if err != nil {
		t.Fatalf("TwoSpirals failed: %v", err)
	}
	if len(X) != 2*perArm || len(labels) != 2*perArm {
		t.Fatalf("got %d samples / %d labels; want %d each", len(X), len(labels), 2*perArm)
	}
	for i := 0; i < perArm; i++ {
		if labels[i] != 1 || labels[perArm+i] != 2 {
			t.Fatalf("label layout broken at index %d: %d / %d", i, labels[i], labels[perArm+i])
		}
		// Second arm is the first rotated by π around (0.5, 0.5).
		if math.Abs(X[i][0]+X[perArm+i][0]-1) > 1e-12 || math.Abs(X[i][1]+X[perArm+i][1]-1) > 1e-12 {
			t.Fatalf("arm symmetry broken at index %d: %v vs %v", i, X[i], X[perArm+i])
		}
	}

	r0 := math.Hypot(X[0][0]-0.5, X[0][1]-0.5)
	if math.Abs(r0-0.05) > 1e-9 {
		t.Fatalf("first radius = %v; want 0.05", r0)
	}
	prev := r0
	for i := 1; i < perArm; i++ {
		r := math.Hypot(X[i][0]-0.5, X[i][1]-0.5)
		if r <= prev {
			t.Fatalf("radius not growing at index %d: %v after %v", i, r, prev)
		}
		prev = r
	}
}

// TestTwoSpirals_Determinism confirms bit-identical reproduction for equal
// seeds and distinct jitter for distinct seeds.
func TestTwoSpirals_Determinism(t *testing.T) {
	a, _, err := dataset.TwoSpirals(40, 2, 0.02, 5)
	if err != nil {
		t.Fatalf("TwoSpirals failed: %v", err)
	}
	b, _, _ := dataset.TwoSpirals(40, 2, 0.02, 5)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("equal seeds must reproduce bit-identical output")
	}
	c, _, _ := dataset.TwoSpirals(40, 2, 0.02, 6)
	if reflect.DeepEqual(a, c) {
		t.Fatal("distinct seeds must produce distinct jitter")
	}
}

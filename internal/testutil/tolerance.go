package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-wavelet/dsp/core"
)

// nearly reports whether got matches want within eps, absolute for small
// magnitudes and relative otherwise. eps == 0 demands exact equality.
func nearly(got, want, eps float64) bool {
	if eps == 0 {
		return got == want
	}
	return core.NearlyEqual(got, want, eps)
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair differs by more than eps.
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !nearly(got[i], want[i], eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v, eps %v)", i, got[i], want[i], math.Abs(got[i]-want[i]), eps)
		}
	}
}

// RequireGridNearlyEqual fails t if got and want differ in shape or if any
// element pair differs by more than eps.
func RequireGridNearlyEqual(t testing.TB, got, want [][]float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("row count mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("row %d length mismatch: got %d, want %d", i, len(got[i]), len(want[i]))
		}
		for j := range got[i] {
			if !nearly(got[i][j], want[i][j], eps) {
				t.Fatalf("[%d][%d]: got %v, want %v (diff %v, eps %v)",
					i, j, got[i][j], want[i][j], math.Abs(got[i][j]-want[i][j]), eps)
			}
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// MaxAbsGridDiff returns the maximum absolute difference between two grids.
func MaxAbsGridDiff(a, b [][]float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("row count mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d, err := MaxAbsDiff(a[i], b[i])
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", i, err)
		}
		maxDiff = math.Max(maxDiff, d)
	}
	return maxDiff, nil
}

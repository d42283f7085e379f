// Package testutil provides shared fixtures and assertions for reduction
// package tests.
package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireFrameNearlyEqual fails t if got and want differ in length or if any
// pixel pair exceeds eps (absolute tolerance). Pixels are reported as
// (row, col) of a frame with the given number of columns.
func RequireFrameNearlyEqual(t *testing.T, got, want []float64, cols int, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	if cols <= 0 {
		cols = len(got)
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps || math.IsNaN(diff) {
			t.Fatalf("pixel (%d,%d): got %v, want %v (diff %v > eps %v)", i/cols, i%cols, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any pixel is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two frames.
// Returns an error if the frames differ in length.
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

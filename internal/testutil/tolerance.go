package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireBlockNearlyEqual applies RequireSliceNearlyEqual channel by channel.
func RequireBlockNearlyEqual(t *testing.T, got, want [][]float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("channel count mismatch: got %d, want %d", len(got), len(want))
	}

	for ch := range got {
		if len(got[ch]) != len(want[ch]) {
			t.Fatalf("channel %d: length mismatch: got %d, want %d", ch, len(got[ch]), len(want[ch]))
		}

		for i := range got[ch] {
			if diff := math.Abs(got[ch][i] - want[ch][i]); diff > eps {
				t.Fatalf("channel %d index %d: got %v, want %v (diff %v > eps %v)",
					ch, i, got[ch][i], want[ch][i], diff, eps)
			}
		}
	}
}

// RequireBlockIdentical fails t unless got and want hold the same bit
// patterns, so that -0 and 0 or distinct NaN payloads count as different.
func RequireBlockIdentical(t *testing.T, got, want [][]float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("channel count mismatch: got %d, want %d", len(got), len(want))
	}

	for ch := range got {
		if len(got[ch]) != len(want[ch]) {
			t.Fatalf("channel %d: length mismatch: got %d, want %d", ch, len(got[ch]), len(want[ch]))
		}

		for i := range got[ch] {
			if math.Float64bits(got[ch][i]) != math.Float64bits(want[ch][i]) {
				t.Fatalf("channel %d index %d: got %v, want %v", ch, i, got[ch][i], want[ch][i])
			}
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
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
		maxDiff = math.Max(maxDiff, math.Abs(a[i]-b[i]))
	}

	return maxDiff, nil
}

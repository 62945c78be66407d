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
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
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

// RequirePeakAtMost fails t if any |data[i]| exceeds limit+eps.
func RequirePeakAtMost(t *testing.T, data []float64, limit, eps float64) {
	t.Helper()
	for i, v := range data {
		if math.Abs(v) > limit+eps {
			t.Fatalf("index %d: |%v| exceeds %v", i, v, limit)
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

// PeakAbs returns max |data[i]|, or 0 for an empty slice.
func PeakAbs(data []float64) float64 {
	peak := 0.0
	for _, v := range data {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}

// BestShift searches delays 0..maxShift and returns the shift d that
// minimizes max |got[i+d] - ref[i]| over the overlapping range starting at
// from, together with that error. It is used to compare signals that went
// through filters with a small, unknown group delay.
func BestShift(got, ref []float64, from, maxShift int) (shift int, maxErr float64) {
	maxErr = math.Inf(1)
	for d := 0; d <= maxShift; d++ {
		e := 0.0
		for i := from; i+d < len(got) && i < len(ref); i++ {
			if diff := math.Abs(got[i+d] - ref[i]); diff > e {
				e = diff
			}
		}
		if e < maxErr {
			maxErr = e
			shift = d
		}
	}
	return shift, maxErr
}

package testutil

import "testing"

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 2})
	if err != nil {
		t.Fatalf("MaxAbsDiff() error = %v", err)
	}
	if d != 1 {
		t.Fatalf("MaxAbsDiff() = %v, want 1", d)
	}
	if _, err := MaxAbsDiff([]float64{1}, nil); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestBestShift(t *testing.T) {
	ref := DeterministicSine(100, 8000, 1, 400)
	got := make([]float64, 400)
	copy(got[7:], ref[:393])

	shift, e := BestShift(got, ref, 0, 16)
	if shift != 7 {
		t.Fatalf("shift = %d, want 7", shift)
	}
	if e > 1e-15 {
		t.Fatalf("error = %v, want 0", e)
	}
}

func TestPeakAbs(t *testing.T) {
	if got := PeakAbs([]float64{0.2, -0.9, 0.5}); got != 0.9 {
		t.Fatalf("PeakAbs() = %v, want 0.9", got)
	}
	if PeakAbs(nil) != 0 {
		t.Fatal("expected 0 for empty input")
	}
}

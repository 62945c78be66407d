package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-kick/internal/testutil"
)

func TestPeakFrequency(t *testing.T) {
	const sr = 48000.0

	tests := []struct {
		name string
		freq float64
	}{
		{"low", 60},
		{"mid", 1000},
		{"high", 15000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := testutil.DeterministicSine(tt.freq, sr, 1, 8192)

			s, err := Analyze(sig, sr)
			if err != nil {
				t.Fatal(err)
			}

			got := s.PeakFrequency(20, 20000)
			if math.Abs(got-tt.freq) > s.BinHz() {
				t.Fatalf("peak at %.2f Hz, want %.2f Hz (bin %.2f Hz)", got, tt.freq, s.BinHz())
			}
		})
	}
}

func TestRejectionOfSecondTone(t *testing.T) {
	const sr = 48000.0

	a := testutil.DeterministicSine(1000, sr, 1, 8192)
	b := testutil.DeterministicSine(6000, sr, 0.01, 8192)
	for i := range a {
		a[i] += b[i]
	}

	s, err := Analyze(a, sr)
	if err != nil {
		t.Fatal(err)
	}

	if got := s.RejectionDB(1000, 6000, 50); math.Abs(got-40) > 1.5 {
		t.Fatalf("rejection = %.2f dB, want ~40", got)
	}
	if s.BandEnergy(0, sr/2) <= s.BandEnergy(900, 1100) {
		t.Fatal("full-band energy must exceed a sub-band")
	}
}

func TestAnalyzeErrors(t *testing.T) {
	if _, err := Analyze(nil, 48000); !errors.Is(err, ErrEmptySignal) {
		t.Fatalf("expected ErrEmptySignal, got %v", err)
	}
	if _, err := Analyze([]float64{1}, 0); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
}

func TestHann(t *testing.T) {
	w := Hann(5)
	want := []float64{0, 0.5, 1, 0.5, 0}
	testutil.RequireSliceNearlyEqual(t, w, want, 1e-12)

	if one := Hann(1); one[0] != 1 {
		t.Fatalf("Hann(1) = %v", one)
	}
}

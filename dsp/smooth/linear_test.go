package smooth

import (
	"math"
	"testing"
)

func newLinear(t *testing.T, sampleRate, ramp float64) *Linear {
	t.Helper()
	s := &Linear{}
	if err := s.Reset(sampleRate, ramp); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	return s
}

func TestLinearReachesTargetInRampTime(t *testing.T) {
	s := newLinear(t, 1000, 0.02) // 20 steps
	s.SetTarget(1)

	if s.Steps() != 20 {
		t.Fatalf("Steps() = %d, want 20", s.Steps())
	}

	var v float64
	for i := 0; i < 19; i++ {
		v = s.Next()
		if v >= 1 {
			t.Fatalf("reached target early at step %d", i)
		}
	}

	if v = s.Next(); v != 1 {
		t.Fatalf("Next() after full ramp = %v, want 1", v)
	}
	if s.IsSmoothing() {
		t.Fatal("expected ramp to be finished")
	}
}

func TestLinearStepBound(t *testing.T) {
	tests := []struct {
		name    string
		targets []float64
	}{
		{name: "single jump", targets: []float64{100}},
		{name: "reversal", targets: []float64{100, -100}},
		{name: "many small moves", targets: []float64{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newLinear(t, 48000, DefaultRampSeconds)
			prev := s.Current()

			for _, target := range tt.targets {
				maxStep := math.Abs(target-s.Current()) / float64(s.Steps())
				s.SetTarget(target)

				for i := 0; i < 200; i++ {
					v := s.Next()
					if d := math.Abs(v - prev); d > maxStep*(1+1e-9)+1e-12 {
						t.Fatalf("step %d moved %v, bound %v", i, d, maxStep)
					}
					prev = v
				}
			}
		})
	}
}

func TestLinearMonotonicTowardsTarget(t *testing.T) {
	s := newLinear(t, 44100, DefaultRampSeconds)
	s.SetCurrentAndTarget(5)
	s.SetTarget(-3)

	prev := s.Current()
	for i := 0; i < 2000; i++ {
		v := s.Next()
		if v > prev {
			t.Fatalf("value increased at %d: %v -> %v", i, prev, v)
		}
		if v < -3 {
			t.Fatalf("overshoot at %d: %v", i, v)
		}
		prev = v
	}

	if prev != -3 {
		t.Fatalf("final value = %v, want -3", prev)
	}
}

func TestLinearSameTargetKeepsRamp(t *testing.T) {
	s := newLinear(t, 1000, 0.01)
	s.SetTarget(1)
	s.Next()
	s.Next()
	s.SetTarget(1)

	remaining := 0
	for s.IsSmoothing() {
		s.Next()
		remaining++
	}

	if remaining != 8 {
		t.Fatalf("remaining steps = %d, want 8", remaining)
	}
}

func TestLinearZeroRampSnaps(t *testing.T) {
	s := newLinear(t, 1000, 0)
	s.SetTarget(3)
	if got := s.Next(); got != 3 {
		t.Fatalf("Next() = %v, want 3", got)
	}
}

func TestLinearResetValidation(t *testing.T) {
	s := &Linear{}
	if err := s.Reset(0, 0.02); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
	if err := s.Reset(44100, -1); err == nil {
		t.Fatal("expected error for negative ramp time")
	}
	if err := s.Reset(math.NaN(), 0.02); err == nil {
		t.Fatal("expected error for NaN sample rate")
	}
}

func TestLinearSkipMatchesNext(t *testing.T) {
	var a, b Linear
	if err := a.Reset(1000, 0.1); err != nil {
		t.Fatal(err)
	}
	if err := b.Reset(1000, 0.1); err != nil {
		t.Fatal(err)
	}

	a.SetTarget(1)
	b.SetTarget(1)

	for range 30 {
		a.Next()
	}
	b.Skip(30)

	if math.Abs(a.Current()-b.Current()) > 1e-12 {
		t.Fatalf("Skip(30) = %v, 30x Next = %v", b.Current(), a.Current())
	}

	b.Skip(1000)
	if b.Current() != 1 || b.IsSmoothing() {
		t.Fatalf("Skip past the ramp should land on target, got %v", b.Current())
	}
}

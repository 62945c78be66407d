package smooth

import (
	"fmt"
	"math"
)

// DefaultRampSeconds is the ramp duration used by the kick renderer.
const DefaultRampSeconds = 0.02

// Linear interpolates towards a target in a fixed number of equal steps.
//
// A new target restarts the ramp from the current value, so the total ramp
// time stays constant no matter how often the target moves. The output never
// changes by more than one step per sample.
type Linear struct {
	current   float64
	target    float64
	step      float64
	steps     int
	countdown int
}

// Reset configures the ramp length for sampleRate and rampSeconds and snaps
// the current value to the target.
func (s *Linear) Reset(sampleRate, rampSeconds float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("smooth: sample rate must be positive and finite: %f", sampleRate)
	}
	if rampSeconds < 0 || math.IsNaN(rampSeconds) || math.IsInf(rampSeconds, 0) {
		return fmt.Errorf("smooth: ramp time must be non-negative and finite: %f", rampSeconds)
	}

	s.steps = int(math.Floor(rampSeconds * sampleRate))
	s.current = s.target
	s.countdown = 0

	return nil
}

// SetTarget starts a ramp from the current value to target. Setting the same
// target again leaves a running ramp untouched.
func (s *Linear) SetTarget(target float64) {
	if target == s.target {
		return
	}

	s.target = target
	if s.steps <= 0 {
		s.current = target
		s.countdown = 0
		return
	}

	s.countdown = s.steps
	s.step = (s.target - s.current) / float64(s.steps)
}

// SetCurrentAndTarget jumps to v without ramping.
func (s *Linear) SetCurrentAndTarget(v float64) {
	s.current = v
	s.target = v
	s.countdown = 0
}

// Next advances one sample and returns the new value.
func (s *Linear) Next() float64 {
	if s.countdown <= 0 {
		return s.target
	}

	s.countdown--
	if s.countdown == 0 {
		s.current = s.target
	} else {
		s.current += s.step
	}

	return s.current
}

// Skip advances n samples at once.
func (s *Linear) Skip(n int) {
	if n <= 0 || s.countdown <= 0 {
		return
	}

	if n >= s.countdown {
		s.current = s.target
		s.countdown = 0

		return
	}

	s.countdown -= n
	s.current += s.step * float64(n)
}

// Current returns the value produced by the last call to Next.
func (s *Linear) Current() float64 {
	if s.countdown <= 0 {
		return s.target
	}

	return s.current
}

// Target returns the value the ramp is heading to.
func (s *Linear) Target() float64 { return s.target }

// IsSmoothing reports whether a ramp is in progress.
func (s *Linear) IsSmoothing() bool { return s.countdown > 0 }

// Steps returns the configured ramp length in samples.
func (s *Linear) Steps() int { return s.steps }

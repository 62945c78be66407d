// Package envelope maps the time since a trigger to layer amplitudes and the
// swept body pitch of a kick voice.
package envelope

import "math"

// DecayFloor is added to every decay time so a zero decay cannot divide by zero.
const DecayFloor = 1e-4

// Attack returns max(0, 1 - t/decay)^curve. It reaches exact silence at
// t = decay + DecayFloor and stays there.
func Attack(t, decay, curve float64) float64 {
	lin := 1 - t/(decay+DecayFloor)
	if lin <= 0 {
		return 0
	}

	return math.Pow(lin, curve)
}

// Exponential returns exp(-t/decay)^curve, used for the body and sub
// amplitudes and for the pitch sweep shape.
func Exponential(t, decay, curve float64) float64 {
	return math.Pow(math.Exp(-t/(decay+DecayFloor)), curve)
}

// PitchSweep returns the body frequency at time t. The exponential term
// pE = Exponential(t, decay, curve) is blended with a cubic tension term:
//
//	f = end + (start - end) * (pE + tension*pE^3)
func PitchSweep(t, start, end, decay, curve, tension float64) float64 {
	pE := Exponential(t, decay, curve)
	return end + (start-end)*(pE+tension*pE*pE*pE)
}

// AntiClick is a raised-cosine fade-in for the sub layer. Once the fade
// completes the gain is pinned at 1 until the next Reset.
type AntiClick struct {
	counter int
	done    bool
}

// Reset restarts the fade.
func (a *AntiClick) Reset() {
	a.counter = 0
	a.done = false
}

// Next returns the gain for the current sample and advances the counter.
// fadeMs is the fade length in milliseconds.
func (a *AntiClick) Next(fadeMs, sampleRate float64) float64 {
	if a.done {
		return 1
	}

	pos := float64(a.counter) / (fadeMs*0.001*sampleRate + 0.001)
	if pos >= 1 || pos < 0 || math.IsNaN(pos) {
		a.done = true
		return 1
	}

	a.counter++

	return 0.5 * (1 - math.Cos(math.Pi*pos))
}

// Counter returns the number of fade samples produced since the last Reset.
func (a *AntiClick) Counter() int { return a.counter }

package osc

import "math"

const (
	twoPi    = 2 * math.Pi
	invTwoPi = 1 / twoPi
)

// Phase is a wrapping phase accumulator in radians.
type Phase struct {
	value float64
}

// Reset sets the phase to offset, wrapped into [0, 2pi).
func (p *Phase) Reset(offset float64) {
	p.value = wrapTwoPi(offset)
}

// Radians returns the current phase in [0, 2pi).
func (p *Phase) Radians() float64 { return p.value }

// Normalized returns the current phase as a fraction of a cycle in [0, 1).
func (p *Phase) Normalized() float64 {
	t := p.value * invTwoPi
	if t >= 1 {
		return 0
	}

	return t
}

// Advance moves the phase by one sample at freqHz and keeps it in [0, 2pi).
func (p *Phase) Advance(freqHz, invSampleRate float64) {
	p.value += twoPi * freqHz * invSampleRate
	if p.value >= twoPi {
		p.value -= twoPi
		if p.value >= twoPi {
			p.value = wrapTwoPi(p.value)
		}
	} else if !(p.value >= 0) {
		// Negative frequencies and NaN both end up here.
		p.value = wrapTwoPi(p.value)
	}
}

func wrapTwoPi(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}

	x = math.Mod(x, twoPi)
	if x < 0 {
		x += twoPi
	}
	if x >= twoPi {
		x = 0
	}

	return x
}

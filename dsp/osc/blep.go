package osc

import "math"

// PolyBLEP returns the two-sample polynomial band-limited step residual for
// normalized phase t in [0, 1) and normalized frequency dt.
func PolyBLEP(t, dt float64) float64 {
	if dt <= 0 {
		return 0
	}

	if t < dt {
		t /= dt
		return t + t - t*t - 1
	}

	if t > 1-dt {
		t = (t - 1) / dt
		return t*t + t + t + 1
	}

	return 0
}

// Square returns a polyBLEP-corrected square wave with a rising edge at t=0
// and a falling edge at t=0.5.
func Square(t, dt float64) float64 {
	naive := -1.0
	if t < 0.5 {
		naive = 1
	}

	return naive + PolyBLEP(t, dt) - PolyBLEP(math.Mod(t+0.5, 1), dt)
}

// Saw returns a polyBLEP-corrected rising sawtooth.
func Saw(t, dt float64) float64 {
	return 2*t - 1 - PolyBLEP(t, dt)
}

// Pulse returns a polyBLEP-corrected pulse wave with duty cycle width.
func Pulse(t, dt, width float64) float64 {
	naive := -1.0
	if t < width {
		naive = 1
	}

	return naive + PolyBLEP(t, dt) - PolyBLEP(math.Mod(t+1-width, 1), dt)
}

// Triangle returns the naive triangle wave. Its harmonics fall off at
// 12 dB/octave, so it is left uncorrected.
func Triangle(t float64) float64 {
	return math.Abs(t-0.5)*4 - 1
}

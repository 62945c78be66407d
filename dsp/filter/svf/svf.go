// Package svf implements a topology-preserving-transform (TPT) state-variable
// filter. The trapezoidal integrators keep the filter stable and free of
// zipper noise under fast cutoff modulation, which makes it the per-layer
// tone filter of the kick voice.
package svf

import (
	"fmt"
	"math"
)

const (
	// DefaultQ is critically damped (no resonant peak).
	DefaultQ = 0.5

	minCutoffHz       = 1.0
	maxCutoffFraction = 0.49
)

// Type selects the filter response.
type Type int

const (
	// Lowpass passes content below the cutoff.
	Lowpass Type = iota
	// Highpass passes content above the cutoff.
	Highpass
)

// String returns the response name.
func (t Type) String() string {
	switch t {
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Filter is a single-channel 2-pole TPT state-variable filter.
type Filter struct {
	typ        Type
	sampleRate float64
	cutoff     float64
	q          float64

	g, r2, h float64
	s1, s2   float64
}

// New returns a filter of type typ at cutoffHz with quality factor q.
func New(typ Type, sampleRate, cutoffHz, q float64) (*Filter, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("svf: sample rate must be positive and finite: %f", sampleRate)
	}
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return nil, fmt.Errorf("svf: q must be positive and finite: %f", q)
	}
	if typ < Lowpass || typ > Highpass {
		return nil, fmt.Errorf("svf: unknown filter type %d", int(typ))
	}

	f := &Filter{typ: typ, sampleRate: sampleRate, q: q}
	f.SetCutoff(cutoffHz)

	return f, nil
}

// SetCutoff updates the cutoff frequency. Values are clamped to
// [1 Hz, 0.49*sampleRate]; the integrator state is kept.
func (f *Filter) SetCutoff(hz float64) {
	if math.IsNaN(hz) {
		hz = minCutoffHz
	}

	maxHz := maxCutoffFraction * f.sampleRate
	if hz < minCutoffHz {
		hz = minCutoffHz
	} else if hz > maxHz {
		hz = maxHz
	}

	f.cutoff = hz
	f.g = math.Tan(math.Pi * hz / f.sampleRate)
	f.r2 = 1 / f.q
	f.h = 1 / (1 + f.r2*f.g + f.g*f.g)
}

// Cutoff returns the effective (clamped) cutoff in Hz.
func (f *Filter) Cutoff() float64 { return f.cutoff }

// Type returns the filter response type.
func (f *Filter) Type() Type { return f.typ }

// ProcessSample filters one sample.
func (f *Filter) ProcessSample(x float64) float64 {
	hp := (x - f.s1*(f.g+f.r2) - f.s2) * f.h
	bp := hp*f.g + f.s1
	f.s1 = hp*f.g + bp
	lp := bp*f.g + f.s2
	f.s2 = bp*f.g + lp

	switch f.typ {
	case Highpass:
		return hp
	default:
		return lp
	}
}

// ProcessInPlace filters buf in place.
func (f *Filter) ProcessInPlace(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Reset clears the integrator state.
func (f *Filter) Reset() {
	f.s1 = 0
	f.s2 = 0
}

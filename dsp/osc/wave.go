package osc

import (
	"fmt"
	"strings"
)

// AttackWave selects the source of the transient (click) layer.
type AttackWave int

const (
	// AttackWhite is Gaussian white noise.
	AttackWhite AttackWave = iota
	// AttackPink is 1/f noise.
	AttackPink
	// AttackBrown is 1/f^2 noise.
	AttackBrown
	// AttackSquare is a polyBLEP square wave.
	AttackSquare
	// AttackSaw is a polyBLEP sawtooth.
	AttackSaw
	// AttackTriangle is a naive triangle.
	AttackTriangle
	// AttackPulse is a polyBLEP pulse with variable width.
	AttackPulse
	// AttackSine is the polynomial sine.
	AttackSine

	numAttackWaves
)

var attackWaveNames = [...]string{
	AttackWhite:    "white",
	AttackPink:     "pink",
	AttackBrown:    "brown",
	AttackSquare:   "square",
	AttackSaw:      "saw",
	AttackTriangle: "triangle",
	AttackPulse:    "pulse",
	AttackSine:     "sine",
}

// NumAttackWaves is the number of attack waveforms.
const NumAttackWaves = int(numAttackWaves)

// String returns the lower-case waveform name.
func (w AttackWave) String() string {
	if w < 0 || w >= numAttackWaves {
		return fmt.Sprintf("AttackWave(%d)", int(w))
	}

	return attackWaveNames[w]
}

// IsNoise reports whether the waveform is a noise source.
func (w AttackWave) IsNoise() bool {
	return w == AttackWhite || w == AttackPink || w == AttackBrown
}

// ParseAttackWave resolves a waveform name (case-insensitive).
func ParseAttackWave(s string) (AttackWave, error) {
	for i, name := range attackWaveNames {
		if strings.EqualFold(s, name) {
			return AttackWave(i), nil
		}
	}

	return 0, fmt.Errorf("osc: unknown attack waveform %q", s)
}

// BodyWave selects the waveform of the pitched body layer.
type BodyWave int

const (
	// BodySine is the polynomial sine.
	BodySine BodyWave = iota
	// BodyBessel is the three-partial inharmonic mix.
	BodyBessel
	// BodySaw is a polyBLEP sawtooth.
	BodySaw
	// BodySquare is a polyBLEP square wave.
	BodySquare
	// BodyTriangle is a naive triangle.
	BodyTriangle

	numBodyWaves
)

var bodyWaveNames = [...]string{
	BodySine:     "sine",
	BodyBessel:   "bessel",
	BodySaw:      "saw",
	BodySquare:   "square",
	BodyTriangle: "triangle",
}

// NumBodyWaves is the number of body waveforms.
const NumBodyWaves = int(numBodyWaves)

// String returns the lower-case waveform name.
func (w BodyWave) String() string {
	if w < 0 || w >= numBodyWaves {
		return fmt.Sprintf("BodyWave(%d)", int(w))
	}

	return bodyWaveNames[w]
}

// ParseBodyWave resolves a waveform name (case-insensitive).
func ParseBodyWave(s string) (BodyWave, error) {
	for i, name := range bodyWaveNames {
		if strings.EqualFold(s, name) {
			return BodyWave(i), nil
		}
	}

	return 0, fmt.Errorf("osc: unknown body waveform %q", s)
}

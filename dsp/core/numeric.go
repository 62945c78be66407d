package core

import "math"

const (
	defaultEpsilon = 1e-12

	// DenormalFloor is the magnitude below which FlushDenormals returns zero.
	DenormalFloor = 1e-30

	// ReferencePitchHz is the frequency of MIDI note 69 (A4).
	ReferencePitchHz = 440.0
	// ReferenceNote is the MIDI note number of ReferencePitchHz.
	ReferenceNote = 69
)

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps, using an
// absolute test first and a relative one for large magnitudes.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return false
	}

	return diff/largest <= eps
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FlushDenormals maps values whose magnitude is below DenormalFloor to zero.
// Recursive filter states decaying towards silence otherwise end up in the
// subnormal range where arithmetic gets very slow.
func FlushDenormals(x float64) float64 {
	if x > -DenormalFloor && x < DenormalFloor {
		return 0
	}

	return x
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// MIDINoteToHz returns the equal-tempered frequency of a (possibly
// fractional) MIDI note number.
func MIDINoteToHz(note float64) float64 {
	return ReferencePitchHz * math.Pow(2, (note-ReferenceNote)/12)
}

// DegreesToRadians converts a phase offset in degrees to radians.
func DegreesToRadians(deg float64) float64 {
	return deg / 360 * 2 * math.Pi
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

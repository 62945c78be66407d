package osc

import "math"

// Taylor/minimax coefficients of the odd sine polynomial on [-pi, pi].
const (
	sineC3  = 0.1666666667
	sineC5  = 0.0083333333
	sineC7  = 0.0001984127
	sineC9  = 0.0000027557
	sineC11 = 0.0000000209

	halfPi = math.Pi / 2
)

// Sine returns the kick's sine partial, -sin(phase). The polynomial is
// evaluated at phase - pi, so every sine-based layer starts falling from
// zero. Use [SinPoly] for the plain sine.
func Sine(phase float64) float64 {
	return SinPoly(phase - math.Pi)
}

// SinPoly returns sin(x) evaluated with an 11th-order odd polynomial.
// x may be any finite value; it is folded into [-pi, pi] and then mirrored
// into [-pi/2, pi/2], where the polynomial error stays below 1e-6.
func SinPoly(x float64) float64 {
	x = foldPi(x)
	if x > halfPi {
		x = math.Pi - x
	} else if x < -halfPi {
		x = -math.Pi - x
	}

	x2 := x * x

	return x * (1 - x2*(sineC3-x2*(sineC5-x2*(sineC7-x2*(sineC9-x2*sineC11)))))
}

// Bessel mixes three sine partials at 1, ratio and 2.135 times the
// fundamental phase, approximating the inharmonic modes of a drum membrane.
func Bessel(phase, ratio float64) float64 {
	return (Sine(phase) + 0.4*Sine(phase*ratio) + 0.2*Sine(phase*2.135)) / 1.7
}

func foldPi(x float64) float64 {
	if x > math.Pi {
		x -= twoPi
		if x > math.Pi {
			x = math.Mod(x+math.Pi, twoPi) - math.Pi
		}
	} else if x < -math.Pi {
		x += twoPi
		if x < -math.Pi {
			x = math.Mod(x-math.Pi, twoPi) + math.Pi
		}
	}

	return x
}

package oversample

import (
	"fmt"
	"math"
)

// Stage profiles. The outermost stage carries the full audio band and needs
// the narrow transition; inner stages only have to reject images of an
// already band-limited signal.
const (
	FirstStageCoefficients = 12
	FirstStageTransition   = 0.04
	InnerStageCoefficients = 6
	InnerStageTransition   = 0.12
)

// DesignCoefficients computes polyphase half-band allpass coefficients for
// the given number of coefficients and normalized transition bandwidth
// (relative to the oversampled rate).
func DesignCoefficients(numberOfCoeffs int, transition float64) ([]float64, error) {
	if err := validateDesignParams(numberOfCoeffs, transition); err != nil {
		return nil, err
	}

	k, q := transitionParams(transition)
	order := numberOfCoeffs*2 + 1

	coeffs := make([]float64, numberOfCoeffs)
	for i := range numberOfCoeffs {
		coeffs[i] = coefficient(i, k, q, order)
	}

	return coeffs, nil
}

// AttenuationFromOrderTBW returns the stopband attenuation in dB reached by
// a design with the given coefficient count and transition bandwidth.
func AttenuationFromOrderTBW(numberOfCoeffs int, transition float64) (float64, error) {
	if err := validateDesignParams(numberOfCoeffs, transition); err != nil {
		return 0, err
	}

	_, q := transitionParams(transition)
	order := numberOfCoeffs*2 + 1

	v := 4 * math.Exp(float64(order)*0.5*math.Log(q))

	return -10 * math.Log10(v/(1+v)), nil
}

// GroupDelay returns the low-frequency group delay, in samples at the lower
// rate, of an upsampler/downsampler pair built from coeffs.
func GroupDelay(coeffs []float64) float64 {
	d := 0.0
	for _, c := range coeffs {
		d += (1 - c) / (1 + c)
	}

	return d
}

func validateDesignParams(numberOfCoeffs int, transition float64) error {
	if numberOfCoeffs < 1 {
		return fmt.Errorf("oversample: number of coefficients must be >= 1: %d", numberOfCoeffs)
	}
	if math.IsNaN(transition) || math.IsInf(transition, 0) || transition <= 0 || transition >= 0.5 {
		return fmt.Errorf("oversample: transition must be finite and in (0, 0.5): %g", transition)
	}

	return nil
}

func validateCoefficients(coeffs []float64) error {
	if len(coeffs) < 1 {
		return fmt.Errorf("oversample: coefficients must not be empty")
	}

	for i, c := range coeffs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("oversample: coefficient[%d] is not finite", i)
		}
		if math.Abs(c) >= 1 {
			return fmt.Errorf("oversample: coefficient[%d] magnitude must be < 1 for stability: %g", i, c)
		}
	}

	return nil
}

// transitionParams maps the transition bandwidth to the elliptic modulus k
// and nome q.
func transitionParams(transition float64) (k, q float64) {
	k = math.Pow(math.Tan((1-transition*2)*math.Pi*0.25), 2)
	kksqrt := math.Pow(1-k*k, 0.25)
	e := 0.5 * (1 - kksqrt) / (1 + kksqrt)
	e4 := e * e * e * e
	q = e * (1 + e4*(2+e4*(15+150*e4)))

	return k, q
}

func coefficient(index int, k, q float64, order int) float64 {
	c := index + 1
	num := thetaNum(q, order, c) * math.Pow(q, 0.25)
	den := thetaDen(q, order, c) + 0.5
	ww := (num * num) / (den * den)

	r := math.Sqrt((1-ww*k)*(1-ww/k)) / (1 + ww)

	return (1 - r) / (1 + r)
}

// thetaNum and thetaDen evaluate the truncated theta-function series of the
// elliptic design until the terms vanish.
func thetaNum(q float64, order, c int) float64 {
	result := 0.0
	sign := 1.0

	for i := 0; ; i++ {
		term := math.Pow(q, float64(i*(i+1))) * math.Sin(float64(i*2+1)*float64(c)*math.Pi/float64(order)) * sign
		result += term
		sign = -sign

		if math.Abs(term) <= 1e-100 {
			break
		}
	}

	return result
}

func thetaDen(q float64, order, c int) float64 {
	result := 0.0
	sign := -1.0

	for i := 1; ; i++ {
		term := math.Pow(q, float64(i*i)) * math.Cos(2*float64(i)*float64(c)*math.Pi/float64(order)) * sign
		result += term
		sign = -sign

		if math.Abs(term) <= 1e-100 {
			break
		}
	}

	return result
}

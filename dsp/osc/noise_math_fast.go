//go:build fastmath

package osc

import "github.com/meko-christian/algo-approx"

// noiseLog computes ln(x) using fast approximation.
func noiseLog(x float64) float64 {
	return approx.FastLog(x)
}

// noiseSqrt computes sqrt(x) using fast approximation.
func noiseSqrt(x float64) float64 {
	return approx.FastSqrt(x)
}

// noiseSinCos evaluates the Box-Muller rotation with the polynomial sine;
// the cosine is the sine a quarter turn ahead.
func noiseSinCos(x float64) (sin, cos float64) {
	return SinPoly(x), SinPoly(x + twoPi/4)
}

//go:build !fastmath

package osc

import "math"

func noiseLog(x float64) float64 {
	return math.Log(x)
}

func noiseSqrt(x float64) float64 {
	return math.Sqrt(x)
}

func noiseSinCos(x float64) (sin, cos float64) {
	return math.Sincos(x)
}

// Package osc implements the oscillator primitives of the kick voice:
// a polynomial sine, polyBLEP-corrected square/saw/pulse waves, a naive
// triangle, an inharmonic "Bessel" partial mix, colored noise and a
// wrapping phase accumulator.
//
// Periodic generators are stateless. They take a phase (radians, or the
// normalized phase t in [0, 1) for the BLEP waves) and the normalized
// frequency dt = f/fs, which sizes the band-limiting correction.
package osc

// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Sections are cascaded via
// [Chain]; the kick renderer uses a four-section chain as its master
// low-pass, retuned while running without clearing the delay lines.
//
// Coefficient design lives in dsp/filter/design.
package biquad

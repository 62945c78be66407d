// Package spectrum measures one-sided power spectra of rendered audio.
//
// [Analyze] applies a Hann window, zero-pads to the next power of two and
// transforms with algo-fft. The resulting [Spectrum] answers the questions
// the kick renderer's tests and tools ask: where is the strongest partial,
// how much energy lies in a band, and how far below a reference a band sits.
package spectrum

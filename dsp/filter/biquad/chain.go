package biquad

import (
	"math"
	"math/cmplx"
)

// Chain is an ordered cascade of biquad sections processed in series.
type Chain struct {
	sections []Section
}

// NewUniformChain creates n identical sections, the layout of a
// repeated-stage filter such as a 4 x 12 dB/oct low-pass.
func NewUniformChain(n int, c Coefficients) *Chain {
	ch := &Chain{sections: make([]Section, n)}
	ch.SetUniform(c)

	return ch
}

// ProcessSample cascades input through all sections in order.
func (c *Chain) ProcessSample(x float64) float64 {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in place through the full cascade.
func (c *Chain) ProcessBlock(buf []float64) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// SetUniform assigns the same coefficients to every section. Delay-line
// state is preserved so a running filter can be retuned without a click.
// It does not allocate.
func (c *Chain) SetUniform(coeffs Coefficients) {
	for i := range c.sections {
		c.sections[i].Coefficients = coeffs
	}
}

// Reset clears all section states.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Section returns a pointer to the i-th section for inspection.
func (c *Chain) Section(i int) *Section {
	return &c.sections[i]
}

// Response returns the cascaded complex frequency response.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	h := complex(1, 0)
	for i := range c.sections {
		h *= c.sections[i].Response(freqHz, sampleRate)
	}

	return h
}

// MagnitudeDB returns the cascaded magnitude response in dB.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

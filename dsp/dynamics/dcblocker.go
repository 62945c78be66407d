package dynamics

import (
	"fmt"

	"github.com/cwbudde/algo-kick/dsp/core"
	"github.com/cwbudde/algo-kick/dsp/filter/design"
)

// DefaultDCCutoffHz is the corner frequency of the output DC blocker.
const DefaultDCCutoffHz = 13.0

// DCBlocker removes DC offset with y[n] = x[n] - x[n-1] + a*y[n-1].
type DCBlocker struct {
	alpha  float64
	lastIn float64
	last   float64
}

// NewDCBlocker creates a blocker with its corner at cutoffHz.
func NewDCBlocker(sampleRate, cutoffHz float64) (*DCBlocker, error) {
	if !(sampleRate > 0) || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("dc blocker sample rate must be positive and finite: %f", sampleRate)
	}
	if !(cutoffHz > 0) || cutoffHz >= sampleRate/2 {
		return nil, fmt.Errorf("dc blocker cutoff must be in (0, %g): %f", sampleRate/2, cutoffHz)
	}

	return &DCBlocker{alpha: design.DCBlockerPole(cutoffHz, sampleRate)}, nil
}

// Alpha returns the feedback coefficient.
func (d *DCBlocker) Alpha() float64 { return d.alpha }

// ProcessSample filters one sample.
func (d *DCBlocker) ProcessSample(x float64) float64 {
	y := x - d.lastIn + d.alpha*d.last
	d.lastIn = x
	d.last = core.FlushDenormals(y)

	return d.last
}

// ProcessInPlace filters buf in place.
func (d *DCBlocker) ProcessInPlace(buf []float64) {
	for i, x := range buf {
		buf[i] = d.ProcessSample(x)
	}
}

// Reset clears the filter memory.
func (d *DCBlocker) Reset() {
	d.lastIn = 0
	d.last = 0
}

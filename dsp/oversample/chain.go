package oversample

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRatio is returned for ratios other than 1, 2, 4 and 8.
var ErrInvalidRatio = errors.New("oversample: ratio must be 1, 2, 4 or 8")

// MaxRatio is the largest supported oversampling ratio.
const MaxRatio = 8

// NumChannels is the channel count a Chain is built for.
const NumChannels = 2

// Shaper is the per-sample nonlinearity run at the oversampled rate. ch is
// 0 for left and 1 for right; buf is modified in place.
type Shaper interface {
	ProcessBlock(ch int, buf []float64)
}

type channelStages struct {
	ups   []*Upsampler2x
	downs []*Downsampler2x
	// scratch[s] holds the signal at rate base*2^(s+1).
	scratch [][]float64
}

// Chain is a fixed-ratio stereo oversampling cascade.
type Chain struct {
	ratio     int
	blockSize int
	latency   int
	delay     float64
	channels  [NumChannels]channelStages
}

// StageDesign returns the coefficient count and transition for stage s,
// where stage 0 is the one adjacent to the base rate.
func StageDesign(s int) (numberOfCoeffs int, transition float64) {
	if s == 0 {
		return FirstStageCoefficients, FirstStageTransition
	}

	return InnerStageCoefficients, InnerStageTransition
}

// ValidRatio reports whether ratio is supported.
func ValidRatio(ratio int) bool {
	switch ratio {
	case 1, 2, 4, MaxRatio:
		return true
	default:
		return false
	}
}

// NewChain builds a chain for ratio and blocks of up to blockSize samples.
// Larger blocks are processed in chunks.
func NewChain(ratio, blockSize int) (*Chain, error) {
	if !ValidRatio(ratio) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRatio, ratio)
	}
	if blockSize < 1 {
		return nil, fmt.Errorf("oversample: block size must be >= 1: %d", blockSize)
	}

	c := &Chain{ratio: ratio, blockSize: blockSize}
	stages := stageCount(ratio)

	for s := range stages {
		n, tr := StageDesign(s)

		coeffs, err := DesignCoefficients(n, tr)
		if err != nil {
			return nil, fmt.Errorf("oversample: stage %d: %w", s, err)
		}

		c.delay += GroupDelay(coeffs) / float64(int(1)<<s)

		for ch := range c.channels {
			up, err := NewUpsampler2x(coeffs)
			if err != nil {
				return nil, fmt.Errorf("oversample: stage %d: %w", s, err)
			}

			down, err := NewDownsampler2x(coeffs)
			if err != nil {
				return nil, fmt.Errorf("oversample: stage %d: %w", s, err)
			}

			st := &c.channels[ch]
			st.ups = append(st.ups, up)
			st.downs = append(st.downs, down)
			st.scratch = append(st.scratch, make([]float64, blockSize<<(s+1)))
		}
	}

	c.latency = int(math.Round(c.delay))

	return c, nil
}

func stageCount(ratio int) int {
	n := 0
	for r := ratio; r > 1; r >>= 1 {
		n++
	}

	return n
}

// Ratio returns the oversampling ratio.
func (c *Chain) Ratio() int { return c.ratio }

// BlockSize returns the largest block processed without chunking.
func (c *Chain) BlockSize() int { return c.blockSize }

// Latency returns the added latency in base-rate samples, rounded.
func (c *Chain) Latency() int { return c.latency }

// GroupDelay returns the unrounded low-frequency delay in base-rate samples.
func (c *Chain) GroupDelay() float64 { return c.delay }

// Process upsamples left and right, runs shaper on each channel at the
// oversampled rate and downsamples back in place. With ratio 1 the shaper
// sees the base-rate buffers directly. Process does not allocate.
func (c *Chain) Process(left, right []float64, shaper Shaper) {
	if c.ratio == 1 {
		shaper.ProcessBlock(0, left)
		shaper.ProcessBlock(1, right)

		return
	}

	c.processChannel(0, left, shaper)
	c.processChannel(1, right, shaper)
}

func (c *Chain) processChannel(ch int, buf []float64, shaper Shaper) {
	st := &c.channels[ch]
	last := len(st.ups) - 1

	for start := 0; start < len(buf); start += c.blockSize {
		end := min(start+c.blockSize, len(buf))
		in := buf[start:end]
		n := len(in)

		cur := in
		for s, up := range st.ups {
			n *= 2
			dst := st.scratch[s][:n]
			up.ProcessBlock(dst, cur)
			cur = dst
		}

		shaper.ProcessBlock(ch, cur)

		for s := last; s >= 0; s-- {
			n /= 2

			var dst []float64
			if s == 0 {
				dst = in
			} else {
				dst = st.scratch[s-1][:n]
			}

			st.downs[s].ProcessBlock(dst, cur)
			cur = dst
		}
	}
}

// Reset clears the memory of every stage.
func (c *Chain) Reset() {
	for ch := range c.channels {
		st := &c.channels[ch]
		for _, up := range st.ups {
			up.Reset()
		}
		for _, down := range st.downs {
			down.Reset()
		}
	}
}

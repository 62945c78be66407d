package dynamics

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-kick/dsp/core"
)

const (
	defaultLimiterThresholdDB = 0.0
	defaultLimiterLookaheadMs = 1.0

	minLimiterThresholdDB = -60.0
	maxLimiterThresholdDB = 0.0
	minLimiterLookaheadMs = 0.0

	// minLimiterCapacity is the smallest delay ring allocated.
	minLimiterCapacity = 4096
)

// LimiterOption configures a LookaheadLimiter at construction.
type LimiterOption func(*LookaheadLimiter) error

// WithLimiterThreshold sets the threshold in dBFS, in [-60, 0].
func WithLimiterThreshold(dB float64) LimiterOption {
	return func(l *LookaheadLimiter) error { return l.SetThreshold(dB) }
}

// WithLimiterLookahead sets the lookahead in milliseconds.
func WithLimiterLookahead(ms float64) LimiterOption {
	return func(l *LookaheadLimiter) error { return l.SetLookahead(ms) }
}

// LookaheadLimiter bounds the peak of a stereo signal by delaying it and
// scaling the delayed sample by threshold/peak, where peak is the largest
// magnitude in the window of the last lookahead+1 frames. The emitted frame
// is the oldest one in the window, so its magnitude never exceeds the
// threshold.
//
// The window peak is cached: a louder incoming frame replaces it in O(1),
// and the window is rescanned only when the cached frame leaves it or the
// lookahead changes.
type LookaheadLimiter struct {
	sampleRate float64
	maxMs      float64

	thresholdDB  float64
	thresholdLin float64
	lookaheadMs  float64
	lookahead    int

	left, right []float64
	mask        int
	write       int

	peak      float64
	peakIndex int
	// active is the lookahead the cached peak was computed for.
	active int
}

// NewLookaheadLimiter creates a limiter able to look maxLookaheadMs ahead.
func NewLookaheadLimiter(sampleRate, maxLookaheadMs float64, opts ...LimiterOption) (*LookaheadLimiter, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("lookahead limiter sample rate must be positive and finite: %f", sampleRate)
	}
	if maxLookaheadMs < minLimiterLookaheadMs || !core.IsFinite(maxLookaheadMs) {
		return nil, fmt.Errorf("lookahead limiter max lookahead must be >= %g: %f", minLimiterLookaheadMs, maxLookaheadMs)
	}

	capacity := minLimiterCapacity
	need := int(math.Ceil(maxLookaheadMs*0.001*sampleRate)) + 2
	for capacity < need {
		capacity <<= 1
	}

	l := &LookaheadLimiter{
		sampleRate: sampleRate,
		maxMs:      maxLookaheadMs,
		left:       make([]float64, capacity),
		right:      make([]float64, capacity),
		mask:       capacity - 1,
	}

	if err := l.SetThreshold(defaultLimiterThresholdDB); err != nil {
		return nil, err
	}
	if err := l.SetLookahead(min(defaultLimiterLookaheadMs, maxLookaheadMs)); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// SetThreshold sets the limiting threshold in dBFS.
func (l *LookaheadLimiter) SetThreshold(dB float64) error {
	if dB < minLimiterThresholdDB || dB > maxLimiterThresholdDB || !core.IsFinite(dB) {
		return fmt.Errorf("lookahead limiter threshold must be in [%g, %g]: %f",
			minLimiterThresholdDB, maxLimiterThresholdDB, dB)
	}

	l.thresholdDB = dB
	l.thresholdLin = core.DBToLinear(dB)

	return nil
}

// SetLookahead sets the lookahead in milliseconds.
func (l *LookaheadLimiter) SetLookahead(ms float64) error {
	if ms < minLimiterLookaheadMs || ms > l.maxMs || !core.IsFinite(ms) {
		return fmt.Errorf("lookahead limiter lookahead must be in [%g, %g]: %f",
			minLimiterLookaheadMs, l.maxMs, ms)
	}

	l.lookaheadMs = ms
	l.lookahead = l.LookaheadSamples(ms)

	return nil
}

// LookaheadSamples converts ms to a clamped lookahead in samples.
func (l *LookaheadLimiter) LookaheadSamples(ms float64) int {
	n := int(ms * 0.001 * l.sampleRate)

	return max(0, min(n, len(l.left)-2))
}

// Threshold returns the threshold in dBFS.
func (l *LookaheadLimiter) Threshold() float64 { return l.thresholdDB }

// Lookahead returns the lookahead in milliseconds.
func (l *LookaheadLimiter) Lookahead() float64 { return l.lookaheadMs }

// Latency returns the configured delay in samples.
func (l *LookaheadLimiter) Latency() int { return l.lookahead }

// Capacity returns the ring size in frames.
func (l *LookaheadLimiter) Capacity() int { return len(l.left) }

// Process limits one frame using the configured threshold and lookahead.
func (l *LookaheadLimiter) Process(inL, inR float64) (float64, float64) {
	return l.ProcessStereo(inL, inR, l.thresholdLin, l.lookahead)
}

// ProcessStereo limits one frame with an explicit linear threshold and
// lookahead in samples, for callers that modulate both per sample.
// lookahead is clamped to the ring capacity.
func (l *LookaheadLimiter) ProcessStereo(inL, inR, thresholdLinear float64, lookahead int) (float64, float64) {
	lookahead = max(0, min(lookahead, len(l.left)-2))

	w := l.write
	l.left[w] = inL
	l.right[w] = inR

	tail := (w - lookahead) & l.mask
	cur := math.Max(math.Abs(inL), math.Abs(inR))

	switch {
	case lookahead != l.active:
		l.active = lookahead
		l.rescan(tail, w)
	case cur >= l.peak:
		l.peak = cur
		l.peakIndex = w
	case l.peakIndex == (tail-1)&l.mask:
		l.rescan(tail, w)
	}

	gain := 1.0
	if l.peak > thresholdLinear {
		gain = thresholdLinear / l.peak
	}

	l.write = (w + 1) & l.mask

	return l.left[tail] * gain, l.right[tail] * gain
}

// rescan finds the window maximum from tail to head, preferring the newest
// frame on ties so the cached peak stays valid as long as possible.
func (l *LookaheadLimiter) rescan(tail, head int) {
	l.peak = 0
	l.peakIndex = head

	for i := tail; ; i = (i + 1) & l.mask {
		p := math.Max(math.Abs(l.left[i]), math.Abs(l.right[i]))
		if p >= l.peak {
			l.peak = p
			l.peakIndex = i
		}

		if i == head {
			break
		}
	}
}

// ProcessInPlace limits left and right in place with the configured
// settings. Both slices must have the same length.
func (l *LookaheadLimiter) ProcessInPlace(left, right []float64) {
	if len(left) == 0 {
		return
	}

	_ = right[len(left)-1]
	for i := range left {
		left[i], right[i] = l.ProcessStereo(left[i], right[i], l.thresholdLin, l.lookahead)
	}
}

// Peak returns the cached window peak.
func (l *LookaheadLimiter) Peak() float64 { return l.peak }

// Reset clears the ring and the cached peak.
func (l *LookaheadLimiter) Reset() {
	clear(l.left)
	clear(l.right)
	l.write = 0
	l.peak = 0
	l.peakIndex = 0
	l.active = l.lookahead
}

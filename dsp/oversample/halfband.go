package oversample

// allpassPair holds the two polyphase branches. Even-indexed coefficients
// form branch 0, odd-indexed coefficients branch 1.
type allpassPair struct {
	coeffs []float64
	x      []float64
	y      []float64
}

func newAllpassPair(coeffs []float64) (allpassPair, error) {
	if err := validateCoefficients(coeffs); err != nil {
		return allpassPair{}, err
	}

	n := len(coeffs)
	p := allpassPair{
		coeffs: append([]float64(nil), coeffs...),
		x:      make([]float64, n),
		y:      make([]float64, n),
	}

	return p, nil
}

// run feeds s0 through branch 0 and s1 through branch 1.
func (p *allpassPair) run(s0, s1 float64) (float64, float64) {
	c, x, y := p.coeffs, p.x, p.y

	i := 0
	for ; i+1 < len(c); i += 2 {
		t0 := (s0-y[i])*c[i] + x[i]
		t1 := (s1-y[i+1])*c[i+1] + x[i+1]
		x[i], x[i+1] = s0, s1
		y[i], y[i+1] = t0, t1
		s0, s1 = t0, t1
	}

	if i < len(c) {
		t0 := (s0-y[i])*c[i] + x[i]
		x[i] = s0
		y[i] = t0
		s0 = t0
	}

	return s0, s1
}

func (p *allpassPair) reset() {
	clear(p.x)
	clear(p.y)
}

// Upsampler2x doubles the sample rate of a stream.
type Upsampler2x struct {
	ap allpassPair
}

// NewUpsampler2x creates an upsampler from designed coefficients.
func NewUpsampler2x(coeffs []float64) (*Upsampler2x, error) {
	ap, err := newAllpassPair(coeffs)
	if err != nil {
		return nil, err
	}

	return &Upsampler2x{ap: ap}, nil
}

// ProcessSample returns the two output samples for one input sample.
func (u *Upsampler2x) ProcessSample(x float64) (float64, float64) {
	return u.ap.run(x, x)
}

// ProcessBlock writes 2*len(src) samples to dst.
func (u *Upsampler2x) ProcessBlock(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	_ = dst[2*len(src)-1]
	for i, x := range src {
		dst[2*i], dst[2*i+1] = u.ap.run(x, x)
	}
}

// Reset clears the filter memory.
func (u *Upsampler2x) Reset() {
	u.ap.reset()
}

// Downsampler2x halves the sample rate of a stream.
type Downsampler2x struct {
	ap allpassPair
}

// NewDownsampler2x creates a downsampler from designed coefficients.
func NewDownsampler2x(coeffs []float64) (*Downsampler2x, error) {
	ap, err := newAllpassPair(coeffs)
	if err != nil {
		return nil, err
	}

	return &Downsampler2x{ap: ap}, nil
}

// ProcessSample consumes two consecutive input samples and returns one.
func (d *Downsampler2x) ProcessSample(in0, in1 float64) float64 {
	p0, p1 := d.ap.run(in1, in0)
	return 0.5 * (p0 + p1)
}

// ProcessBlock writes len(src)/2 samples to dst. dst may alias the first
// half of src.
func (d *Downsampler2x) ProcessBlock(dst, src []float64) {
	n := len(src) / 2
	if n == 0 {
		return
	}

	_ = dst[n-1]
	for i := 0; i < n; i++ {
		p0, p1 := d.ap.run(src[2*i+1], src[2*i])
		dst[i] = 0.5 * (p0 + p1)
	}
}

// Reset clears the filter memory.
func (d *Downsampler2x) Reset() {
	d.ap.reset()
}

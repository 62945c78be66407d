package smooth

import "fmt"

// Bank holds one Linear smoother per control, addressed by index.
type Bank struct {
	params []Linear
}

// NewBank allocates a bank of n smoothers configured for sampleRate and
// rampSeconds. All values start at zero.
func NewBank(n int, sampleRate, rampSeconds float64) (*Bank, error) {
	if n <= 0 {
		return nil, fmt.Errorf("smooth: bank size must be > 0: %d", n)
	}

	b := &Bank{params: make([]Linear, n)}
	if err := b.Reset(sampleRate, rampSeconds); err != nil {
		return nil, err
	}

	return b, nil
}

// Reset reconfigures every smoother and snaps it to its target.
func (b *Bank) Reset(sampleRate, rampSeconds float64) error {
	for i := range b.params {
		if err := b.params[i].Reset(sampleRate, rampSeconds); err != nil {
			return err
		}
	}

	return nil
}

// Len returns the number of smoothers.
func (b *Bank) Len() int { return len(b.params) }

// SetTarget sets the target of smoother id. Values are not validated.
func (b *Bank) SetTarget(id int, v float64) { b.params[id].SetTarget(v) }

// SetCurrentAndTarget snaps smoother id to v.
func (b *Bank) SetCurrentAndTarget(id int, v float64) { b.params[id].SetCurrentAndTarget(v) }

// Advance moves every smoother forward by one sample.
func (b *Bank) Advance() {
	for i := range b.params {
		b.params[i].Next()
	}
}

// AdvanceBy moves every smoother forward by n samples.
func (b *Bank) AdvanceBy(n int) {
	for i := range b.params {
		b.params[i].Skip(n)
	}
}

// Current returns the interpolated value of smoother id.
func (b *Bank) Current(id int) float64 { return b.params[id].Current() }

// Target returns the target value of smoother id.
func (b *Bank) Target(id int) float64 { return b.params[id].Target() }

// Snap finishes every running ramp immediately.
func (b *Bank) Snap() {
	for i := range b.params {
		b.params[i].SetCurrentAndTarget(b.params[i].Target())
	}
}

package kick

import (
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-kick/dsp/smooth"
)

func newRand(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

// snappedBank returns a bank holding the values of p without ramps.
func snappedBank(t *testing.T, p *Params, sampleRate float64) *smooth.Bank {
	t.Helper()

	b, err := smooth.NewBank(int(NumParams), sampleRate, defaultRampSeconds)
	if err != nil {
		t.Fatal(err)
	}
	for id := range NumParams {
		b.SetCurrentAndTarget(int(id), p.Value(id))
	}

	return b
}

func newPrepared(t testing.TB, p *Params, sampleRate float64, block int, opts ...Option) *Engine {
	t.Helper()

	e, err := New(p, opts...)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Prepare(sampleRate, block); err != nil {
		t.Fatal(err)
	}

	return e
}

// render runs n samples through e in blocks, with events on the first block.
func render(e *Engine, n, block int, events []NoteEvent) (left, right []float64) {
	left = make([]float64, n)
	right = make([]float64, n)

	for off := 0; off < n; off += block {
		end := min(off+block, n)
		e.Process(left[off:end], right[off:end], events)
		events = nil
	}

	return left, right
}

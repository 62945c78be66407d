package biquad

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-kick/internal/testutil"
)

// onePoleLike is a stable lowpass biquad used only for state tests.
var onePoleLike = Coefficients{B0: 0.2, B1: 0.2, B2: 0, A1: -0.6, A2: 0}

func TestSectionBlockMatchesSample(t *testing.T) {
	in := testutil.DeterministicNoise(1, 1, 257)

	ref := NewSection(onePoleLike)
	want := make([]float64, len(in))
	for i, x := range in {
		want[i] = ref.ProcessSample(x)
	}

	s := NewSection(onePoleLike)
	got := append([]float64(nil), in...)
	s.ProcessBlock(got)

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-14)
	if s.State() != ref.State() {
		t.Fatalf("state mismatch: %v vs %v", s.State(), ref.State())
	}
}

func TestSectionDCGain(t *testing.T) {
	s := NewSection(onePoleLike)
	y := 0.0
	for i := 0; i < 1000; i++ {
		y = s.ProcessSample(1)
	}
	if math.Abs(y-1) > 1e-9 {
		t.Fatalf("DC gain = %v, want 1", y)
	}
	if db := onePoleLike.MagnitudeDB(0, 48000); math.Abs(db) > 1e-9 {
		t.Fatalf("MagnitudeDB(0) = %v, want 0", db)
	}
}

func TestChainSetUniformKeepsState(t *testing.T) {
	c := NewUniformChain(4, onePoleLike)
	for i := 0; i < 10; i++ {
		c.ProcessSample(1)
	}
	before := c.Section(2).State()

	c.SetUniform(Coefficients{B0: 0.5, B1: 0.5, A1: 0})
	if c.Section(2).State() != before {
		t.Fatal("SetUniform cleared section state")
	}
	if c.Section(3).B0 != 0.5 {
		t.Fatalf("coefficients not applied: %+v", c.Section(3).Coefficients)
	}

	c.Reset()
	if c.Section(2).State() != [2]float64{} {
		t.Fatal("Reset did not clear state")
	}
}

func TestChainResponseIsProduct(t *testing.T) {
	c := NewUniformChain(3, onePoleLike)
	want := 3 * onePoleLike.MagnitudeDB(1000, 48000)
	if got := c.MagnitudeDB(1000, 48000); math.Abs(got-want) > 1e-9 {
		t.Fatalf("MagnitudeDB = %v, want %v", got, want)
	}
}

func BenchmarkChainProcessBlock(b *testing.B) {
	c := NewUniformChain(4, onePoleLike)
	buf := testutil.DeterministicNoise(3, 1, 512)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.ProcessBlock(buf)
	}
}

package kick

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-kick/dsp/core"
	"github.com/cwbudde/algo-kick/dsp/oversample"
	"github.com/cwbudde/algo-kick/dsp/saturation"
	"github.com/cwbudde/algo-kick/dsp/telemetry"
	"github.com/cwbudde/algo-kick/internal/testutil"
)

func TestNewValidation(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNilParams) {
		t.Errorf("expected ErrNilParams, got %v", err)
	}
	if _, err := New(NewParams(), WithScopeSize(1000)); err == nil {
		t.Error("expected error for non power-of-two scope size")
	}
	if _, err := New(NewParams(), WithRampTime(-1)); err == nil {
		t.Error("expected error for negative ramp time")
	}

	e, err := New(NewParams())
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Prepare(0, 256); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("expected ErrInvalidSampleRate, got %v", err)
	}
	if err := e.Prepare(44100, 0); !errors.Is(err, ErrInvalidBlockSize) {
		t.Errorf("expected ErrInvalidBlockSize, got %v", err)
	}
	if _, err := e.SampleRate(); !errors.Is(err, ErrNotPrepared) {
		t.Errorf("expected ErrNotPrepared, got %v", err)
	}
}

func TestProcessBeforePrepareIsSilent(t *testing.T) {
	e, err := New(NewParams())
	if err != nil {
		t.Fatal(err)
	}

	left := testutil.DC(1, 64)
	right := testutil.DC(-1, 64)
	e.Process(left, right, []NoteEvent{{Note: 36}})

	if testutil.PeakAbs(left) != 0 || testutil.PeakAbs(right) != 0 {
		t.Fatal("unprepared engine must render silence")
	}
	if e.State() != Idle {
		t.Errorf("state = %s, want idle", e.State())
	}
}

func TestIdleRendersSilence(t *testing.T) {
	e := newPrepared(t, NewParams(), testRate, 256)

	left := testutil.DC(0.5, 256)
	right := testutil.DC(0.5, 256)
	e.Process(left, right, nil)

	if testutil.PeakAbs(left) != 0 || testutil.PeakAbs(right) != 0 {
		t.Fatal("idle engine must render silence")
	}
	if e.Scope().Len() != 0 {
		t.Errorf("scope holds %d samples while idle", e.Scope().Len())
	}
}

func TestInvalidNoteIgnored(t *testing.T) {
	e := newPrepared(t, NewParams(), testRate, 256)

	left, right := render(e, 256, 256, []NoteEvent{{Note: 128}, {Note: -1}})
	if e.State() != Idle {
		t.Fatalf("state = %s, want idle", e.State())
	}
	if testutil.PeakAbs(left)+testutil.PeakAbs(right) != 0 {
		t.Fatal("out-of-range notes must not sound")
	}
}

// A note-on on the default kit must produce sound and leave the attack
// layer silent once the attack decay has passed.
func TestScenarioDefaultKick(t *testing.T) {
	p := NewParams()
	e := newPrepared(t, p, testRate, 512)

	left, right := render(e, 8192, 512, []NoteEvent{{Note: 36}})

	testutil.RequireFinite(t, left)
	testutil.RequireFinite(t, right)
	if testutil.PeakAbs(left) < 0.05 {
		t.Fatalf("peak = %g, kick too quiet", testutil.PeakAbs(left))
	}
	if e.State() != Sounding {
		t.Fatalf("state = %s, want sounding", e.State())
	}
	if e.LastNote() != 36 {
		t.Errorf("LastNote() = %d, want 36", e.LastNote())
	}

	atk := make([]float64, telemetry.SnapshotLength)
	n := e.Snapshot().CopyLayer(telemetry.LayerAttack, atk)
	if n != 8192 {
		t.Fatalf("snapshot holds %d samples, want 8192", n)
	}

	quietFrom := int((p.Value(AttackDecay) + 0.01) * testRate)
	for i := quietFrom; i < n; i++ {
		if math.Abs(atk[i]) >= 1e-4 {
			t.Fatalf("attack layer = %g at sample %d", atk[i], i)
		}
	}

	sub := make([]float64, telemetry.SnapshotLength)
	e.Snapshot().CopyLayer(telemetry.LayerSub, sub)
	if testutil.PeakAbs(sub[:n]) < 0.3 {
		t.Errorf("sub layer peak = %g", testutil.PeakAbs(sub[:n]))
	}
}

func TestScenarioKeyTrackedSub(t *testing.T) {
	p := NewParams()
	p.SetKeyTrack(true)
	p.Set(SubFine, 3)
	e := newPrepared(t, p, testRate, 256)

	render(e, 256, 256, []NoteEvent{{Note: 60}})

	want := 440*math.Pow(2, -9.0/12) + 3
	if got := e.SubFrequency(); math.Abs(got-want) > 1e-9 {
		t.Errorf("SubFrequency() = %.9f, want %.9f", got, want)
	}

	p.SetKeyTrack(false)
	render(e, 256, 256, nil)

	want = core.MIDINoteToHz(29) + 3
	if got := e.SubFrequency(); math.Abs(got-want) > 1e-9 {
		t.Errorf("untracked SubFrequency() = %.9f, want %.9f", got, want)
	}
}

// Two note-ons in one block behave as the last of them alone.
func TestScenarioSameBlockRetrigger(t *testing.T) {
	p := NewParams()

	a := newPrepared(t, p, testRate, 512)
	b := newPrepared(t, p, testRate, 512)

	la, ra := render(a, 4096, 512, []NoteEvent{{Offset: 0, Note: 40}, {Offset: 100, Note: 52}})
	lb, rb := render(b, 4096, 512, []NoteEvent{{Offset: 100, Note: 52}})

	testutil.RequireSliceNearlyEqual(t, la, lb, 0)
	testutil.RequireSliceNearlyEqual(t, ra, rb, 0)

	if a.LastNote() != 52 {
		t.Errorf("LastNote() = %d, want 52", a.LastNote())
	}
}

func TestRenderReproducible(t *testing.T) {
	p := NewParams()
	p.SetMode(ModeSaturation, 3)
	p.Set(MasterDrive, 6)

	a := newPrepared(t, p, testRate, 300, WithSeed(99))
	b := newPrepared(t, p, testRate, 300, WithSeed(99))

	events := []NoteEvent{{Note: 36}}
	la, _ := render(a, 6000, 300, events)
	lb, _ := render(b, 6000, 300, events)

	testutil.RequireSliceNearlyEqual(t, la, lb, 0)
}

// A retrigger after a finished note restarts every layer from scratch.
func TestRetriggerRestartsLayers(t *testing.T) {
	p := NewParams()
	p.SetMode(ModeAttackWave, 7)
	p.Set(BodyDecay, 0.05)
	p.Set(SubDecay, 0.1)
	p.Set(MasterRelease, 3)

	a := newPrepared(t, p, testRate, 1024)
	render(a, int(3.2*testRate), 1024, []NoteEvent{{Note: 36}})
	if a.State() != Idle {
		t.Fatalf("state = %s, want idle after the safety tail", a.State())
	}
	render(a, 4096, 1024, []NoteEvent{{Note: 36}})

	b := newPrepared(t, p, testRate, 1024)
	render(b, 4096, 1024, []NoteEvent{{Note: 36}})

	for l := range telemetry.NumLayers {
		got := make([]float64, 4096)
		want := make([]float64, 4096)
		a.Snapshot().CopyLayer(l, got)
		b.Snapshot().CopyLayer(l, want)
		testutil.RequireSliceNearlyEqual(t, got, want, 0)
	}
}

type passThrough struct{}

func (passThrough) ProcessBlock(int, []float64) {}

func TestRetriggerKeepsMasterLowpassState(t *testing.T) {
	p := NewParams()
	p.Set(MasterLPF, 300)
	p.Set(MasterDrive, 3)
	p.SetMode(ModeSaturation, int(saturation.SoftTanh))
	p.SetMode(ModeOversampling, 2)

	e := newPrepared(t, p, testRate, 256)
	render(e, 2048, 256, []NoteEvent{{Note: 36}})
	if e.State() != Sounding {
		t.Fatalf("state = %s, want sounding", e.State())
	}

	var before [2][masterLPFSections][2]float64
	for ch := range e.masterLP {
		for s := range masterLPFSections {
			before[ch][s] = e.masterLP[ch].Section(s).State()
		}
	}
	if before[0][masterLPFSections-1] == [2]float64{} {
		t.Fatal("master low-pass state is empty while sounding")
	}
	for ch := range e.sat.state {
		if !e.sat.state[ch].Primed() {
			t.Fatalf("saturation channel %d not primed while sounding", ch)
		}
	}

	e.trigger(40)

	for ch := range e.masterLP {
		for s := range masterLPFSections {
			if got := e.masterLP[ch].Section(s).State(); got != before[ch][s] {
				t.Errorf("master low-pass ch %d section %d state = %v, want %v kept", ch, s, got, before[ch][s])
			}
		}
	}
	for ch := range e.sat.state {
		if e.sat.state[ch] != (saturation.State{}) {
			t.Errorf("saturation channel %d state not cleared", ch)
		}
	}

	chain := e.os.Acquire()
	fresh, err := oversample.NewChain(chain.Ratio(), chain.BlockSize())
	if err != nil {
		t.Fatal(err)
	}

	gotL := testutil.DeterministicSine(220, testRate, 0.5, 256)
	gotR := testutil.DeterministicSine(330, testRate, 0.5, 256)
	wantL := append([]float64(nil), gotL...)
	wantR := append([]float64(nil), gotR...)

	chain.Process(gotL, gotR, passThrough{})
	fresh.Process(wantL, wantR, passThrough{})
	testutil.RequireSliceNearlyEqual(t, gotL, wantL, 0)
	testutil.RequireSliceNearlyEqual(t, gotR, wantR, 0)
}

func TestVoiceEndsAfterSafetyTail(t *testing.T) {
	p := NewParams()
	p.Set(BodyDecay, 0.05)
	p.Set(SubDecay, 0.1)
	p.Set(MasterRelease, 3)
	e := newPrepared(t, p, testRate, 512)

	render(e, int(2.9*testRate), 512, []NoteEvent{{Note: 36}})
	if e.State() != Sounding {
		t.Fatalf("state = %s before the safety tail elapsed", e.State())
	}

	render(e, int(0.2*testRate), 512, nil)
	if e.State() != Idle {
		t.Fatalf("state = %s after the safety tail", e.State())
	}

	left, right := render(e, 512, 512, nil)
	if testutil.PeakAbs(left)+testutil.PeakAbs(right) != 0 {
		t.Fatal("idle block after the tail must be silent")
	}
}

// Oversampling without drive only delays the signal.
func TestOversamplingTransparentWithoutDrive(t *testing.T) {
	base := NewParams()
	base.Set(AttackLevel, 0)
	base.SetMode(ModeOversampling, 0)

	over := NewParams()
	over.Set(AttackLevel, 0)
	over.SetMode(ModeOversampling, 1)

	ref := newPrepared(t, base, testRate, 512)
	got := newPrepared(t, over, testRate, 512)

	if ref.Latency() != 0 || got.Latency() != 5 {
		t.Fatalf("latencies = %d, %d, want 0, 5", ref.Latency(), got.Latency())
	}

	lr, _ := render(ref, 8192, 512, []NoteEvent{{Note: 36}})
	lg, _ := render(got, 8192, 512, []NoteEvent{{Note: 36}})

	shift, maxErr := testutil.BestShift(lg, lr, 0, 10)
	if shift != got.Latency() {
		t.Errorf("best shift = %d, want %d", shift, got.Latency())
	}
	if maxErr > 0.02 {
		t.Errorf("max error after alignment = %g", maxErr)
	}
}

func TestOversamplingModeSwitch(t *testing.T) {
	p := NewParams()
	e := newPrepared(t, p, testRate, 256)

	if e.OversamplingRatio() != 2 {
		t.Fatalf("ratio = %d, want 2", e.OversamplingRatio())
	}

	p.SetMode(ModeOversampling, 3)
	left, _ := render(e, 2048, 256, []NoteEvent{{Note: 36}})

	if e.OversamplingRatio() != 8 || e.Latency() != 7 {
		t.Errorf("ratio %d latency %d, want 8 and 7", e.OversamplingRatio(), e.Latency())
	}
	testutil.RequireFinite(t, left)
}

func TestLongBlockSplit(t *testing.T) {
	p := NewParams()

	a := newPrepared(t, p, testRate, 256)
	b := newPrepared(t, p, testRate, 256)

	la, ra := render(a, 1000, 1000, []NoteEvent{{Note: 36}})
	lb, rb := render(b, 1000, 256, []NoteEvent{{Note: 36}})

	testutil.RequireSliceNearlyEqual(t, la, lb, 0)
	testutil.RequireSliceNearlyEqual(t, ra, rb, 0)
}

func TestScopeReceivesOutput(t *testing.T) {
	e := newPrepared(t, NewParams(), testRate, 256, WithScopeSize(512))

	left, right := render(e, 256, 256, []NoteEvent{{Note: 36}})

	got := make([]float64, 512)
	n := e.Scope().Read(got)
	if n != 256 {
		t.Fatalf("scope read %d samples, want 256", n)
	}
	for i := range n {
		if want := 0.5 * (left[i] + right[i]); math.Abs(got[i]-want) > 1e-15 {
			t.Fatalf("scope[%d] = %g, want %g", i, got[i], want)
		}
	}
}

func TestWidthZeroIsMono(t *testing.T) {
	p := NewParams()
	p.Set(AttackPan, -0.8)
	p.Set(BodyPan, 0.6)
	p.Set(MasterWidth, 0)
	e := newPrepared(t, p, testRate, 256)

	left, right := render(e, 4096, 256, []NoteEvent{{Note: 36}})
	testutil.RequireSliceNearlyEqual(t, left, right, 1e-12)
}

func TestLimiterReducesPeak(t *testing.T) {
	peak := func(thresholdDB float64) float64 {
		p := NewParams()
		p.Set(MasterOut, 1)
		p.Set(BodyLevel, 1)
		p.Set(SubLevel, 1)
		p.Set(LimiterThreshold, thresholdDB)
		e := newPrepared(t, p, testRate, 256)

		left, _ := render(e, 4096, 256, []NoteEvent{{Note: 36}})

		return testutil.PeakAbs(left)
	}

	open, limited := peak(0), peak(-12)
	if open < 0.5 {
		t.Fatalf("unlimited peak = %g, expected a hot kick", open)
	}
	// The DC blocker after the limiter can push the peak past the threshold.
	if limited > 1.6*core.DBToLinear(-12) {
		t.Errorf("limited peak = %g, threshold %g", limited, core.DBToLinear(-12))
	}
}

func TestPresetsRenderFinite(t *testing.T) {
	n := 8192
	if testing.Short() {
		n = 1024
	}

	for _, pr := range Presets() {
		p := NewParams()
		pr.Apply(p)
		e := newPrepared(t, p, testRate, 512)

		left, right := render(e, n, 512, []NoteEvent{{Note: 36}})
		testutil.RequireFinite(t, left)
		testutil.RequireFinite(t, right)
	}
}

func TestProcessDoesNotAllocate(t *testing.T) {
	p := NewParams()
	p.SetMode(ModeSaturation, 3)
	p.Set(MasterDrive, 4)
	p.Set(MasterLPF, 5000)
	e := newPrepared(t, p, testRate, 256)

	left := make([]float64, 256)
	right := make([]float64, 256)
	events := []NoteEvent{{Note: 36}}

	allocs := testing.AllocsPerRun(50, func() {
		e.Process(left, right, events)
		e.Process(left, right, nil)
	})
	if allocs != 0 {
		t.Errorf("Process allocated %.1f times per run", allocs)
	}
}

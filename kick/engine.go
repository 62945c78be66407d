package kick

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-kick/dsp/core"
	"github.com/cwbudde/algo-kick/dsp/dynamics"
	"github.com/cwbudde/algo-kick/dsp/filter/biquad"
	"github.com/cwbudde/algo-kick/dsp/filter/design"
	"github.com/cwbudde/algo-kick/dsp/osc"
	"github.com/cwbudde/algo-kick/dsp/oversample"
	"github.com/cwbudde/algo-kick/dsp/saturation"
	"github.com/cwbudde/algo-kick/dsp/smooth"
	"github.com/cwbudde/algo-kick/dsp/telemetry"
)

const (
	// masterLPFSections is the number of cascaded low-pass sections.
	masterLPFSections = 4
	// masterLPFQ keeps each section critically damped.
	masterLPFQ = 0.5
	// masterLPFBypassHz disables the master low-pass at or above this cutoff.
	masterLPFBypassHz = 19950
	// maxCutoffFraction caps biquad design frequencies below Nyquist.
	maxCutoffFraction = 0.49
)

// saturator runs the selected saturation kind at the oversampled rate.
type saturator struct {
	kind  saturation.Kind
	drive float64
	state [oversample.NumChannels]saturation.State
}

func (s *saturator) ProcessBlock(ch int, buf []float64) {
	saturation.ProcessBlock(s.kind, s.drive, &s.state[ch], buf)
}

func (s *saturator) reset() {
	for i := range s.state {
		s.state[i].Reset()
	}
}

// Engine is a monophonic kick renderer. Process must be called from a
// single goroutine; parameters, telemetry and accessors are safe to use
// concurrently with it.
type Engine struct {
	params Snapshot
	cfg    config

	sampleRate float64
	maxBlock   int
	prepared   bool

	bank  *smooth.Bank
	noise *osc.Noise
	voice *Voice

	state    atomic.Int32
	lastNote atomic.Int32
	subHz    atomic.Uint64

	sat    saturator
	os     *oversample.Controller
	osMode int

	masterLP [2]*biquad.Chain
	limiter  *dynamics.LookaheadLimiter
	dc       [2]*dynamics.DCBlocker

	scope    *telemetry.Scope
	snapshot *telemetry.LayerSnapshot

	// Per-sample master controls captured while rendering the voice.
	outGain   []float64
	width     []float64
	threshold []float64
	cutoff    []float64
	retune    []bool
	mono      []float64
}

// New returns an engine reading its controls from params. Prepare must be
// called before Process renders anything.
func New(params Snapshot, opts ...Option) (*Engine, error) {
	if params == nil {
		return nil, ErrNilParams
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	scope, err := telemetry.NewScope(cfg.scopeSize)
	if err != nil {
		return nil, fmt.Errorf("kick: %w", err)
	}

	e := &Engine{
		params:   params,
		cfg:      cfg,
		noise:    osc.NewNoise(cfg.seed),
		os:       oversample.NewController(),
		osMode:   -1,
		scope:    scope,
		snapshot: telemetry.NewLayerSnapshot(),
	}
	e.lastNote.Store(int32(math.Round(paramSpecs[SubNote].Default)))

	return e, nil
}

// Prepare allocates every render resource for sampleRate and blocks of up
// to maxBlockSize samples. It may be called again to change either value;
// the engine returns to Idle.
func (e *Engine) Prepare(sampleRate float64, maxBlockSize int) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}
	if maxBlockSize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidBlockSize, maxBlockSize)
	}

	e.prepared = false

	bank, err := smooth.NewBank(int(NumParams), sampleRate, e.cfg.rampSeconds)
	if err != nil {
		return fmt.Errorf("kick: %w", err)
	}

	voice, err := NewVoice(sampleRate, e.noise)
	if err != nil {
		return err
	}

	limiter, err := dynamics.NewLookaheadLimiter(sampleRate, paramSpecs[LimiterLookahead].Max)
	if err != nil {
		return fmt.Errorf("kick: %w", err)
	}

	for ch := range e.dc {
		if e.dc[ch], err = dynamics.NewDCBlocker(sampleRate, dynamics.DefaultDCCutoffHz); err != nil {
			return fmt.Errorf("kick: %w", err)
		}
	}

	mode := e.params.Mode(ModeOversampling)
	if err := e.os.Reconfigure(OversamplingRatio(mode), maxBlockSize); err != nil {
		return fmt.Errorf("kick: oversampling: %w", err)
	}

	e.sampleRate = sampleRate
	e.maxBlock = maxBlockSize
	e.bank = bank
	e.voice = voice
	e.limiter = limiter
	e.osMode = mode

	e.loadTargets()
	e.bank.Snap()

	e.voice.SetCutoffs(e.current(AttackHPF), e.current(AttackTone), e.current(BodyFilter))

	lp := e.masterCoefficients(e.current(MasterLPF))
	for ch := range e.masterLP {
		e.masterLP[ch] = biquad.NewUniformChain(masterLPFSections, lp)
	}

	e.outGain = make([]float64, maxBlockSize)
	e.width = make([]float64, maxBlockSize)
	e.threshold = make([]float64, maxBlockSize)
	e.cutoff = make([]float64, maxBlockSize)
	e.retune = make([]bool, maxBlockSize)
	e.mono = make([]float64, maxBlockSize)

	e.sat.reset()
	e.noise.Reseed(e.cfg.seed)
	e.state.Store(int32(Idle))
	e.subHz.Store(math.Float64bits(core.MIDINoteToHz(e.current(SubNote)) + e.current(SubFine)))
	e.prepared = true

	return nil
}

// Process renders one block into left and right, overwriting both. Blocks
// longer than the prepared size are rendered in pieces; events apply to the
// first piece. Before Prepare the output is silent.
func (e *Engine) Process(left, right []float64, events []NoteEvent) {
	n := min(len(left), len(right))
	if !e.prepared {
		core.Zero(left)
		core.Zero(right)

		return
	}

	for off := 0; off < n; off += e.maxBlock {
		end := min(off+e.maxBlock, n)
		e.processBlock(left[off:end], right[off:end], events)
		events = nil
	}
}

func (e *Engine) processBlock(left, right []float64, events []NoteEvent) {
	n := len(left)

	e.loadTargets()

	if mode := e.params.Mode(ModeOversampling); mode != e.osMode {
		// A failed swap keeps the previous chain running.
		if err := e.os.Reconfigure(OversamplingRatio(mode), e.maxBlock); err == nil {
			e.osMode = mode
		}
	}

	lookahead := e.limiter.LookaheadSamples(e.params.Value(LimiterLookahead))

	for _, ev := range events {
		if validNote(ev.Note) {
			e.trigger(ev.Note)
		}
	}

	if State(e.state.Load()) == Idle {
		core.Zero(left)
		core.Zero(right)
		e.bank.AdvanceBy(n)

		return
	}

	atkWave := osc.AttackWave(e.params.Mode(ModeAttackWave))
	bodyWave := osc.BodyWave(e.params.Mode(ModeBodyWave))
	keyTrack := e.params.KeyTrack()
	note := float64(e.lastNote.Load())

	var subHz float64

	rendered := n
	for i := range n {
		e.bank.Advance()

		subNote := e.current(SubNote)
		if keyTrack {
			subNote = note
		}
		subHz = core.MIDINoteToHz(subNote) + e.current(SubFine)

		f := e.voice.Next(e.bank, atkWave, bodyWave, subHz)
		left[i], right[i] = f.Left, f.Right
		e.snapshot.Record(f.Attack, f.Body, f.Sub)

		e.outGain[i] = e.current(MasterOut)
		e.width[i] = e.current(MasterWidth)
		e.threshold[i] = core.DBToLinear(e.current(LimiterThreshold))
		e.cutoff[i] = e.current(MasterLPF)
		e.retune[i] = f.Retuned

		if voiceEnded(f, e.voice.Elapsed(), e.current(MasterRelease)) {
			e.state.Store(int32(Idle))
			rendered = i + 1

			break
		}
	}

	e.subHz.Store(math.Float64bits(subHz))

	if rendered < n {
		// The voice ended mid-block: hold the master controls for the tail.
		core.Zero(left[rendered:])
		core.Zero(right[rendered:])
		e.bank.AdvanceBy(n - rendered)

		last := rendered - 1
		for i := rendered; i < n; i++ {
			e.outGain[i] = e.outGain[last]
			e.width[i] = e.width[last]
			e.threshold[i] = e.threshold[last]
			e.cutoff[i] = e.cutoff[last]
			e.retune[i] = false
		}
	}

	e.sat.kind = saturation.Kind(e.params.Mode(ModeSaturation))
	e.sat.drive = e.current(MasterDrive)
	if chain := e.os.Acquire(); chain != nil {
		chain.Process(left, right, &e.sat)
	}

	e.master(left, right, lookahead)

	telemetry.MixDown(e.mono[:n], left, right)
	e.scope.Write(e.mono[:n])
}

// master runs gain, the low-pass cascade, width, the limiter and the DC
// blocker over a saturated block.
func (e *Engine) master(left, right []float64, lookahead int) {
	driveComp := 1 / math.Sqrt(math.Max(1, e.sat.drive))

	for i := range left {
		l := left[i] * driveComp * e.outGain[i]
		r := right[i] * driveComp * e.outGain[i]

		if e.retune[i] {
			lp := e.masterCoefficients(e.cutoff[i])
			e.masterLP[0].SetUniform(lp)
			e.masterLP[1].SetUniform(lp)
		}

		if e.cutoff[i] < masterLPFBypassHz {
			l = e.masterLP[0].ProcessSample(l)
			r = e.masterLP[1].ProcessSample(r)
		}

		mid := 0.5 * (l + r)
		side := 0.5 * (l - r) * e.width[i]
		l, r = e.limiter.ProcessStereo(mid+side, mid-side, e.threshold[i], lookahead)

		left[i] = e.dc[0].ProcessSample(l)
		right[i] = e.dc[1].ProcessSample(r)
	}
}

func (e *Engine) trigger(note int) {
	e.lastNote.Store(int32(note))

	e.voice.Trigger(e.target(MasterPhase), e.target(SubPhase))
	e.snapshot.Start()
	e.sat.reset()

	if chain := e.os.Acquire(); chain != nil {
		chain.Reset()
	}

	e.state.Store(int32(Sounding))
}

func (e *Engine) loadTargets() {
	for id := range NumParams {
		e.bank.SetTarget(int(id), e.params.Value(id))
	}
}

func (e *Engine) masterCoefficients(cutoff float64) biquad.Coefficients {
	return design.Lowpass(math.Min(cutoff, maxCutoffFraction*e.sampleRate), masterLPFQ, e.sampleRate)
}

func (e *Engine) current(id ParamID) float64 { return e.bank.Current(int(id)) }

func (e *Engine) target(id ParamID) float64 { return e.bank.Target(int(id)) }

// Latency returns the processing delay in samples introduced by the active
// oversampling chain.
func (e *Engine) Latency() int { return e.os.Latency() }

// OversamplingRatio returns the active oversampling ratio, or 0 before
// Prepare.
func (e *Engine) OversamplingRatio() int { return e.os.Ratio() }

// State returns the trigger state.
func (e *Engine) State() State { return State(e.state.Load()) }

// Scope returns the output scope ring. The caller is its only reader.
func (e *Engine) Scope() *telemetry.Scope { return e.scope }

// Snapshot returns the per-layer capture of the most recent note.
func (e *Engine) Snapshot() *telemetry.LayerSnapshot { return e.snapshot }

// LastNote returns the most recent note-on number.
func (e *Engine) LastNote() int { return int(e.lastNote.Load()) }

// SubFrequency returns the sub frequency in Hz of the last rendered sample.
func (e *Engine) SubFrequency() float64 { return math.Float64frombits(e.subHz.Load()) }

// SampleRate returns the prepared sample rate.
func (e *Engine) SampleRate() (float64, error) {
	if !e.prepared {
		return 0, ErrNotPrepared
	}

	return e.sampleRate, nil
}

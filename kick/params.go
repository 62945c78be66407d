package kick

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync/atomic"

	"github.com/cwbudde/algo-kick/dsp/core"
	"github.com/cwbudde/algo-kick/dsp/osc"
	"github.com/cwbudde/algo-kick/dsp/saturation"
)

// ErrUnknownParam is returned when a parameter name cannot be resolved.
var ErrUnknownParam = errors.New("kick: unknown parameter")

// ParamID identifies a continuous parameter.
type ParamID int

const (
	AttackDecay ParamID = iota
	AttackCurve
	AttackTone
	AttackLevel
	AttackPan
	AttackPitch
	AttackHPF
	AttackPulseWidth

	PitchStart
	PitchEnd
	PitchDecay
	PitchTension
	PitchCurve
	BodyDecay
	BodyCurve
	BodyLevel
	BodyPan
	BesselRatio
	BodyFilter

	SubNote
	SubFine
	SubDecay
	SubCurve
	SubLevel
	SubPhase
	SubAntiClick
	SubPan

	MasterDrive
	MasterOut
	MasterWidth
	MasterRelease
	MasterPhase
	LimiterThreshold
	LimiterLookahead
	MasterLPF

	// NumParams is the number of continuous parameters.
	NumParams
)

// ParamSpec declares a parameter's key, label, range and default.
type ParamSpec struct {
	Key     string
	Label   string
	Min     float64
	Max     float64
	Default float64
}

var paramSpecs = [NumParams]ParamSpec{
	AttackDecay:      {"atkDecay", "Atk Decay", 0.001, 0.2, 0.01},
	AttackCurve:      {"atkCurve", "Atk Decay Curve", 0.1, 10, 2},
	AttackTone:       {"atkTone", "Atk Tone (Hi-Cut)", 100, 20000, 20000},
	AttackLevel:      {"atkLevel", "Atk Level", 0, 1, 0.4},
	AttackPan:        {"atkPan", "Atk Panning", -1, 1, 0},
	AttackPitch:      {"atkPitch", "Atk Click Freq", 100, 15000, 3000},
	AttackHPF:        {"atkHPF", "Atk HighPass", 20, 2000, 200},
	AttackPulseWidth: {"atkPulseWidth", "Atk Pulse Width", 0.01, 0.99, 0.5},

	PitchStart:   {"pStart", "Body Pitch Start", 100, 2000, 350},
	PitchEnd:     {"pEnd", "Body Pitch End", 20, 150, 43.6},
	PitchDecay:   {"pDecay", "Body Pitch Decay", 0.01, 0.5, 0.07},
	PitchTension: {"pGlide", "Membrane Tension", 0, 5, 0.8},
	PitchCurve:   {"pCurve", "Body Pitch Curve", 0.1, 5, 1},
	BodyDecay:    {"bodyDecay", "Body Amp Decay", 0.05, 1.5, 0.35},
	BodyCurve:    {"bodyCurve", "Body Amp Curve", 0.1, 5, 1},
	BodyLevel:    {"bodyLevel", "Body Level", 0, 1, 0.75},
	BodyPan:      {"bodyPan", "Body Panning", -1, 1, 0},
	BesselRatio:  {"besselRatio", "Bessel Ratio", 1, 3, 1.593},
	BodyFilter:   {"bodyFilter", "Body LowPass", 100, 12000, 5000},

	SubNote:      {"subNote", "Sub Note (MIDI)", 24, 48, 29},
	SubFine:      {"subFine", "Sub Fine Tune (Hz)", -10, 10, 0},
	SubDecay:     {"subDecay", "Sub Amp Decay", 0.1, 5, 0.25},
	SubCurve:     {"subCurve", "Sub Decay Curve", 3, 10, 4},
	SubLevel:     {"subLevel", "Sub Level", 0, 1, 0.65},
	SubPhase:     {"subPhase", "Sub Phase Offset", 0, 360, 0},
	SubAntiClick: {"subAntiClick", "Sub Anti-Click (ms)", 0.1, 50, 5},
	SubPan:       {"subPan", "Sub Panning", -1, 1, 0},

	MasterDrive:      {"masterDrive", "Master Drive", 1, 25, 1},
	MasterOut:        {"masterOut", "Final Volume", 0, 1, 0.7},
	MasterWidth:      {"masterWidth", "Stereo Width", 0, 1, 1},
	MasterRelease:    {"masterRelease", "Note Safety Tail", 3, 20, 5},
	MasterPhase:      {"masterPhase", "Global Phase Reset", 0, 360, 0},
	LimiterThreshold: {"limThreshold", "Limiter Threshold (dB)", -12, 0, 0},
	LimiterLookahead: {"limLookahead", "Limiter Look-ahead (ms)", 0, 5, 1},
	MasterLPF:        {"masterLPF", "Master LowPass", 60, 20000, 20000},
}

// Spec returns the declaration of id.
func (id ParamID) Spec() ParamSpec {
	if id < 0 || id >= NumParams {
		return ParamSpec{}
	}

	return paramSpecs[id]
}

// Clamp limits v to the declared range of id.
func (id ParamID) Clamp(v float64) float64 {
	s := id.Spec()
	if math.IsNaN(v) {
		return s.Default
	}

	return core.Clamp(v, s.Min, s.Max)
}

func (id ParamID) String() string {
	if id < 0 || id >= NumParams {
		return fmt.Sprintf("ParamID(%d)", int(id))
	}

	return paramSpecs[id].Key
}

// ModeID identifies a discrete selector.
type ModeID int

const (
	ModeAttackWave ModeID = iota
	ModeBodyWave
	ModeSaturation
	ModeOversampling

	// NumModes is the number of discrete selectors.
	NumModes
)

type modeSpec struct {
	key     string
	count   int
	def     int
	display func(int) string
}

var modeSpecs = [NumModes]modeSpec{
	ModeAttackWave:   {"atkWave", osc.NumAttackWaves, 0, func(v int) string { return osc.AttackWave(v).String() }},
	ModeBodyWave:     {"bodyWave", osc.NumBodyWaves, 0, func(v int) string { return osc.BodyWave(v).String() }},
	ModeSaturation:   {"satType", int(saturation.NumKinds), 0, func(v int) string { return saturation.Kind(v).String() }},
	ModeOversampling: {"osMode", 4, 1, func(v int) string { return fmt.Sprintf("%dx", OversamplingRatio(v)) }},
}

func (m ModeID) String() string {
	if m < 0 || m >= NumModes {
		return fmt.Sprintf("ModeID(%d)", int(m))
	}

	return modeSpecs[m].key
}

// Count returns the number of choices of m.
func (m ModeID) Count() int {
	if m < 0 || m >= NumModes {
		return 0
	}

	return modeSpecs[m].count
}

// Default returns the default choice of m.
func (m ModeID) Default() int {
	if m < 0 || m >= NumModes {
		return 0
	}

	return modeSpecs[m].def
}

// Display returns the human-readable name of choice v.
func (m ModeID) Display(v int) string {
	if m < 0 || m >= NumModes {
		return ""
	}

	return modeSpecs[m].display(v)
}

// OversamplingRatio maps the oversampling selector (0..3) to a ratio.
func OversamplingRatio(mode int) int {
	return 1 << max(0, min(mode, 3))
}

// KeyTrackKey is the name of the key-tracking switch.
const KeyTrackKey = "subTrack"

// Snapshot is the render thread's view of the control plane.
type Snapshot interface {
	Value(id ParamID) float64
	Mode(id ModeID) int
	KeyTrack() bool
}

// Params is a lock-free parameter store. Setters may be called from any
// goroutine; the engine reads it once per block.
type Params struct {
	values   [NumParams]atomic.Uint64
	modes    [NumModes]atomic.Int32
	keyTrack atomic.Bool
}

// NewParams returns a store holding the declared defaults.
func NewParams() *Params {
	p := &Params{}
	p.Reset()

	return p
}

// Reset restores every parameter to its default.
func (p *Params) Reset() {
	for id := range NumParams {
		p.values[id].Store(math.Float64bits(paramSpecs[id].Default))
	}
	for m := range NumModes {
		p.modes[m].Store(int32(modeSpecs[m].def))
	}
	p.keyTrack.Store(false)
}

// Set stores v clamped to the declared range and returns the stored value.
func (p *Params) Set(id ParamID, v float64) float64 {
	if id < 0 || id >= NumParams {
		return 0
	}

	v = id.Clamp(v)
	p.values[id].Store(math.Float64bits(v))

	return v
}

// Value returns the stored value of id.
func (p *Params) Value(id ParamID) float64 {
	if id < 0 || id >= NumParams {
		return 0
	}

	return math.Float64frombits(p.values[id].Load())
}

// SetMode stores choice v of m, clamped to the valid choices, and returns it.
func (p *Params) SetMode(m ModeID, v int) int {
	if m < 0 || m >= NumModes {
		return 0
	}

	v = max(0, min(v, modeSpecs[m].count-1))
	p.modes[m].Store(int32(v))

	return v
}

// Mode returns the stored choice of m.
func (p *Params) Mode(m ModeID) int {
	if m < 0 || m >= NumModes {
		return 0
	}

	return int(p.modes[m].Load())
}

// SetKeyTrack switches sub-layer key tracking.
func (p *Params) SetKeyTrack(on bool) { p.keyTrack.Store(on) }

// KeyTrack reports whether the sub layer follows the played note.
func (p *Params) KeyTrack() bool { return p.keyTrack.Load() }

// ParseParam resolves a continuous parameter key (case-insensitive).
func ParseParam(key string) (ParamID, error) {
	for id := range NumParams {
		if strings.EqualFold(key, paramSpecs[id].Key) {
			return id, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownParam, key)
}

// ParseMode resolves a selector key (case-insensitive).
func ParseMode(key string) (ModeID, error) {
	for m := range NumModes {
		if strings.EqualFold(key, modeSpecs[m].key) {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownParam, key)
}

// SetByName sets a continuous parameter, selector or the key-track switch
// by key. Selector and switch values are rounded.
func (p *Params) SetByName(key string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("kick: value for %s must be finite: %g", key, v)
	}

	if strings.EqualFold(key, KeyTrackKey) {
		p.SetKeyTrack(v >= 0.5)
		return nil
	}

	if m, err := ParseMode(key); err == nil {
		p.SetMode(m, int(math.Round(v)))
		return nil
	}

	id, err := ParseParam(key)
	if err != nil {
		return err
	}

	p.Set(id, v)

	return nil
}

// Keys returns every settable key in declaration order.
func Keys() []string {
	keys := make([]string, 0, int(NumParams)+int(NumModes)+1)
	for m := range NumModes {
		keys = append(keys, modeSpecs[m].key)
	}
	for id := range NumParams {
		keys = append(keys, paramSpecs[id].Key)
	}

	return append(keys, KeyTrackKey)
}

package kick

import (
	"fmt"

	"github.com/cwbudde/algo-kick/dsp/core"
	"github.com/cwbudde/algo-kick/dsp/envelope"
	"github.com/cwbudde/algo-kick/dsp/filter/svf"
	"github.com/cwbudde/algo-kick/dsp/osc"
	"github.com/cwbudde/algo-kick/dsp/smooth"
)

const (
	// mixHeadroom scales the summed layers before saturation.
	mixHeadroom = 0.6
	// retuneInterval is the number of samples between filter cutoff updates.
	retuneInterval = 8
)

// Frame is one rendered voice sample.
type Frame struct {
	// Left and Right are the pre-saturation mix after the two-tap smoother.
	Left, Right float64

	// Attack and Body are the filtered layer outputs, Sub the faded sine.
	Attack, Body, Sub float64

	BodyEnv, SubEnv float64

	// Retuned is set on samples where the filter cutoffs were refreshed.
	Retuned bool
}

// controls reads smoothed parameter values from a bank.
type controls struct{ bank *smooth.Bank }

func (c controls) get(id ParamID) float64 { return c.bank.Current(int(id)) }

// Voice renders the attack, body and sub layers of a single kick.
type Voice struct {
	sampleRate float64
	invSR      float64

	noise *osc.Noise

	atk  osc.Phase
	body osc.Phase
	sub  osc.Phase

	elapsed   float64
	antiClick envelope.AntiClick
	retune    int

	atkHP  *svf.Filter
	atkLP  *svf.Filter
	bodyLP *svf.Filter

	lastL, lastR float64
}

// NewVoice builds a voice for sampleRate drawing noise from noise.
func NewVoice(sampleRate float64, noise *osc.Noise) (*Voice, error) {
	if noise == nil {
		return nil, fmt.Errorf("kick: voice needs a noise source")
	}

	v := &Voice{
		sampleRate: sampleRate,
		invSR:      1 / sampleRate,
		noise:      noise,
	}

	var err error
	if v.atkHP, err = svf.New(svf.Highpass, sampleRate, paramSpecs[AttackHPF].Default, svf.DefaultQ); err != nil {
		return nil, fmt.Errorf("kick: attack highpass: %w", err)
	}
	if v.atkLP, err = svf.New(svf.Lowpass, sampleRate, paramSpecs[AttackTone].Default, svf.DefaultQ); err != nil {
		return nil, fmt.Errorf("kick: attack lowpass: %w", err)
	}
	if v.bodyLP, err = svf.New(svf.Lowpass, sampleRate, paramSpecs[BodyFilter].Default, svf.DefaultQ); err != nil {
		return nil, fmt.Errorf("kick: body lowpass: %w", err)
	}

	return v, nil
}

// Trigger restarts the voice. Phases are given in degrees: the attack and
// body start at masterDeg, the sub at subDeg+masterDeg.
func (v *Voice) Trigger(masterDeg, subDeg float64) {
	master := core.DegreesToRadians(masterDeg)

	v.atk.Reset(master)
	v.body.Reset(master)
	v.sub.Reset(core.DegreesToRadians(subDeg) + master)

	v.elapsed = 0
	v.antiClick.Reset()

	v.atkHP.Reset()
	v.atkLP.Reset()
	v.bodyLP.Reset()
}

// Elapsed returns the time in seconds since the last trigger.
func (v *Voice) Elapsed() float64 { return v.elapsed }

// SetCutoffs applies filter cutoffs immediately.
func (v *Voice) SetCutoffs(atkHPF, atkTone, bodyFilter float64) {
	v.atkHP.SetCutoff(atkHPF)
	v.atkLP.SetCutoff(atkTone)
	v.bodyLP.SetCutoff(bodyFilter)
}

// Next renders one sample from the bank's current values. subHz is the
// resolved sub frequency including fine tune.
func (v *Voice) Next(bank *smooth.Bank, atkWave osc.AttackWave, bodyWave osc.BodyWave, subHz float64) Frame {
	c := controls{bank}

	var f Frame

	v.retune++
	if v.retune >= retuneInterval {
		v.retune = 0
		v.SetCutoffs(c.get(AttackHPF), c.get(AttackTone), c.get(BodyFilter))
		f.Retuned = true
	}

	t := v.elapsed

	atkPitch := c.get(AttackPitch)
	atkRaw := v.attackSource(atkWave, atkPitch*v.invSR, c.get(AttackPulseWidth))
	atk := atkRaw * envelope.Attack(t, c.get(AttackDecay), c.get(AttackCurve)) * c.get(AttackLevel)
	f.Attack = v.atkLP.ProcessSample(v.atkHP.ProcessSample(atk))

	bodyHz := envelope.PitchSweep(t, c.get(PitchStart), c.get(PitchEnd), c.get(PitchDecay),
		c.get(PitchCurve), c.get(PitchTension))
	bodyRaw := v.bodySource(bodyWave, bodyHz*v.invSR, c.get(BesselRatio))
	f.BodyEnv = envelope.Exponential(t, c.get(BodyDecay), c.get(BodyCurve))
	f.Body = v.bodyLP.ProcessSample(bodyRaw * f.BodyEnv * c.get(BodyLevel))

	f.SubEnv = envelope.Exponential(t, c.get(SubDecay), c.get(SubCurve))
	fade := v.antiClick.Next(c.get(SubAntiClick), v.sampleRate)
	f.Sub = osc.Sine(v.sub.Radians()) * f.SubEnv * fade * c.get(SubLevel)

	atkPan, bodyPan, subPan := c.get(AttackPan), c.get(BodyPan), c.get(SubPan)
	mixL := (f.Attack*(1-atkPan) + f.Body*(1-bodyPan) + f.Sub*(1-subPan)) * mixHeadroom
	mixR := (f.Attack*(1+atkPan) + f.Body*(1+bodyPan) + f.Sub*(1+subPan)) * mixHeadroom

	f.Left = 0.5 * (mixL + v.lastL)
	f.Right = 0.5 * (mixR + v.lastR)
	v.lastL, v.lastR = mixL, mixR

	v.body.Advance(bodyHz, v.invSR)
	v.sub.Advance(subHz, v.invSR)
	v.atk.Advance(atkPitch, v.invSR)
	v.elapsed += v.invSR

	return f
}

func (v *Voice) attackSource(w osc.AttackWave, dt, width float64) float64 {
	switch w {
	case osc.AttackWhite:
		return v.noise.White()
	case osc.AttackPink:
		return v.noise.Pink()
	case osc.AttackBrown:
		return v.noise.Brown()
	case osc.AttackSquare:
		return osc.Square(v.atk.Normalized(), dt)
	case osc.AttackSaw:
		return osc.Saw(v.atk.Normalized(), dt)
	case osc.AttackTriangle:
		return osc.Triangle(v.atk.Normalized())
	case osc.AttackPulse:
		return osc.Pulse(v.atk.Normalized(), dt, width)
	default:
		return osc.Sine(v.atk.Radians())
	}
}

func (v *Voice) bodySource(w osc.BodyWave, dt, ratio float64) float64 {
	switch w {
	case osc.BodyBessel:
		return osc.Bessel(v.body.Radians(), ratio)
	case osc.BodySaw:
		return osc.Saw(v.body.Normalized(), dt)
	case osc.BodySquare:
		return osc.Square(v.body.Normalized(), dt)
	case osc.BodyTriangle:
		return osc.Triangle(v.body.Normalized())
	default:
		return osc.Sine(v.body.Radians())
	}
}

package kick

import "math/rand"

type span struct {
	id       ParamID
	min, max float64
}

// randomGroup draws one selector followed by its continuous spans. The
// spans are narrower than the declared ranges so every draw stays usable.
type randomGroup struct {
	mode  ModeID
	spans []span
}

var randomGroups = [...]randomGroup{
	{ModeAttackWave, []span{
		{AttackLevel, 0.2, 0.8},
		{AttackDecay, 0.005, 0.08},
		{AttackCurve, 0.5, 4},
		{AttackTone, 5000, 20000},
		{AttackHPF, 20, 500},
		{AttackPitch, 500, 8000},
	}},
	{ModeBodyWave, []span{
		{PitchStart, 200, 1000},
		{PitchEnd, 30, 60},
		{PitchDecay, 0.05, 0.3},
		{PitchCurve, 0.5, 3},
		{BodyDecay, 0.2, 0.8},
		{BodyLevel, 0.6, 0.9},
		{BesselRatio, 1, 2.5},
		{BodyFilter, 2000, 12000},
		{SubLevel, 0.4, 0.8},
		{SubDecay, 0.2, 0.6},
		{SubAntiClick, 1, 10},
	}},
	{ModeSaturation, []span{
		{MasterDrive, 1, 5},
		{MasterLPF, 800, 20000},
	}},
}

// Randomize draws a new kit into p from rng. Parameters without a random
// span keep their current value.
func Randomize(p *Params, rng *rand.Rand) {
	for _, g := range randomGroups {
		p.SetMode(g.mode, rng.Intn(g.mode.Count()))

		for _, s := range g.spans {
			p.Set(s.id, s.min+rng.Float64()*(s.max-s.min))
		}
	}
}

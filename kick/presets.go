package kick

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-kick/dsp/osc"
	"github.com/cwbudde/algo-kick/dsp/saturation"
)

// ErrUnknownPreset is returned when a preset name or index does not exist.
var ErrUnknownPreset = errors.New("kick: unknown preset")

// Preset is a factory kit. Parameters it does not list are reset to their
// defaults when the preset is applied.
type Preset struct {
	Name string

	AttackWave  osc.AttackWave
	AttackLevel float64
	AttackDecay float64
	AttackCurve float64
	AttackTone  float64
	AttackHPF   float64
	AttackPitch float64

	BodyWave     osc.BodyWave
	BodyLevel    float64
	PitchStart   float64
	PitchEnd     float64
	PitchDecay   float64
	PitchCurve   float64
	PitchTension float64
	BodyDecay    float64
	BodyCurve    float64
	BodyFilter   float64

	KeyTrack bool
	SubNote  float64
	SubLevel float64
	SubDecay float64
	SubCurve float64

	Saturation saturation.Kind
	Drive      float64
	Output     float64
	Width      float64
	MasterLPF  float64
}

// Apply writes the preset into p. Values outside a parameter's range are
// clamped.
func (pr Preset) Apply(p *Params) {
	p.Reset()

	p.SetMode(ModeAttackWave, int(pr.AttackWave))
	p.Set(AttackLevel, pr.AttackLevel)
	p.Set(AttackDecay, pr.AttackDecay)
	p.Set(AttackCurve, pr.AttackCurve)
	p.Set(AttackTone, pr.AttackTone)
	p.Set(AttackHPF, pr.AttackHPF)
	p.Set(AttackPitch, pr.AttackPitch)

	p.SetMode(ModeBodyWave, int(pr.BodyWave))
	p.Set(BodyLevel, pr.BodyLevel)
	p.Set(PitchStart, pr.PitchStart)
	p.Set(PitchEnd, pr.PitchEnd)
	p.Set(PitchDecay, pr.PitchDecay)
	p.Set(PitchCurve, pr.PitchCurve)
	p.Set(PitchTension, pr.PitchTension)
	p.Set(BodyDecay, pr.BodyDecay)
	p.Set(BodyCurve, pr.BodyCurve)
	p.Set(BodyFilter, pr.BodyFilter)

	p.SetKeyTrack(pr.KeyTrack)
	p.Set(SubNote, pr.SubNote)
	p.Set(SubLevel, pr.SubLevel)
	p.Set(SubDecay, pr.SubDecay)
	p.Set(SubCurve, pr.SubCurve)

	p.SetMode(ModeSaturation, int(pr.Saturation))
	p.Set(MasterDrive, pr.Drive)
	p.Set(MasterOut, pr.Output)
	p.Set(MasterWidth, pr.Width)
	p.Set(MasterLPF, pr.MasterLPF)
}

// Presets returns a copy of the factory table.
func Presets() []Preset {
	out := make([]Preset, len(factory))
	copy(out, factory[:])

	return out
}

// NumPresets is the size of the factory table.
func NumPresets() int { return len(factory) }

// PresetAt returns the preset at index i.
func PresetAt(i int) (Preset, error) {
	if i < 0 || i >= len(factory) {
		return Preset{}, fmt.Errorf("%w: index %d", ErrUnknownPreset, i)
	}

	return factory[i], nil
}

// PresetByName looks a preset up by name, ignoring case.
func PresetByName(name string) (Preset, error) {
	for _, pr := range factory {
		if strings.EqualFold(pr.Name, name) {
			return pr, nil
		}
	}

	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// LoadPreset applies the preset at index i to p.
func LoadPreset(p *Params, i int) error {
	pr, err := PresetAt(i)
	if err != nil {
		return err
	}

	pr.Apply(p)

	return nil
}

var factory = [...]Preset{
	{"Init / Default", 0, 0.4, 0.02, 2.0, 20000, 200, 3000, 0, 0.7, 350, 43.6, 0.07, 1.0, 0.8, 0.35, 1.0, 5000, false, 29, 0.6, 0.2, 4.0, 0, 1.0, 0.6, 1.0, 20000.0},
	{"TR-808 Pure", 0, 0.3, 0.02, 4.0, 10000, 500, 3000, 0, 0.8, 180, 48, 0.05, 3.0, 0.0, 0.5, 0.8, 3000, false, 36, 0.5, 0.3, 3.0, 0, 1.2, 0.6, 0.5, 20000.0},
	{"TR-909 Punch", 1, 0.5, 0.02, 2.5, 12000, 100, 3000, 4, 0.7, 300, 50, 0.06, 1.5, 0.2, 0.25, 2.0, 8000, false, 38, 0.5, 0.2, 4.0, 3, 2.0, 0.5, 0.7, 20000.0},
	{"TR-606 Box", 3, 0.3, 0.01, 5.0, 8000, 300, 3000, 3, 0.6, 200, 55, 0.04, 1.0, 0.0, 0.2, 1.5, 4000, false, 43, 0.4, 0.2, 3.0, 0, 1.2, 0.6, 0.3, 20000.0},
	{"Analog Fat", 7, 0.2, 0.015, 2.0, 20000, 50, 398.0, 0, 0.8, 120, 35, 0.15, 2.2, 1.5, 0.5, 1.25, 2500, false, 24, 0.7, 0.25, 8.4, 0, 3.0, 0.5, 0.6, 20000.0},
	{"Clean Club", 0, 0.3, 0.015, 2.5, 12000, 200, 3000, 0, 0.75, 220, 48, 0.08, 2.0, 0.1, 0.4, 1.1, 3000, false, 36, 0.4, 0.2, 2.5, 0, 1.3, 0.6, 0.8, 20000.0},
	{"Tight Pop", 6, 0.4, 0.01, 3.0, 15000, 150, 3000, 4, 0.7, 300, 52, 0.06, 3.0, 0.0, 0.25, 1.8, 6000, false, 40, 0.3, 0.15, 3.0, 10, 1.0, 0.6, 0.7, 20000.0},
	{"Soft Layer", 1, 0.2, 0.03, 1.5, 5000, 200, 3000, 1, 0.6, 180, 45, 0.1, 1.5, 0.0, 0.3, 1.0, 1500, false, 33, 0.5, 0.2, 2.0, 0, 1.1, 0.6, 0.6, 20000.0},
	{"Digital Click", 3, 0.3, 0.005, 5.0, 20000, 500, 3000, 0, 0.8, 250, 55, 0.05, 4.0, 0.0, 0.2, 2.0, 5000, false, 41, 0.2, 0.1, 4.0, 1, 1.5, 0.6, 0.8, 20000.0},
	{"Solid Sub", 0, 0.1, 0.01, 2.0, 3000, 100, 3000, 0, 0.8, 150, 38, 0.05, 2.0, 0.0, 0.4, 0.8, 1000, false, 28, 0.6, 0.3, 2.5, 0, 1.5, 0.6, 0.5, 20000.0},
	{"Deep House", 1, 0.2, 0.03, 1.5, 5000, 300, 3000, 0, 0.7, 180, 48, 0.08, 2.0, 0.5, 0.3, 1.0, 1500, false, 36, 0.5, 0.25, 3.0, 3, 1.5, 0.6, 0.8, 20000.0},
	{"Tech House", 6, 0.4, 0.01, 3.0, 18000, 150, 3000, 4, 0.8, 400, 52, 0.05, 4.0, 0.1, 0.2, 3.0, 5000, false, 40, 0.4, 0.2, 5.0, 0, 2.0, 0.5, 0.9, 20000.0},
	{"Techno Rumble", 2, 0.2, 0.05, 1.0, 2000, 500, 3000, 0, 0.6, 250, 45, 0.06, 2.5, 0.0, 0.2, 1.5, 800, false, 33, 0.7, 0.3, 2.0, 3, 4.0, 0.5, 1.0, 20000.0},
	{"Warehouse", 4, 0.5, 0.02, 2.0, 15000, 100, 3000, 1, 0.7, 500, 48, 0.1, 1.5, 0.5, 0.3, 1.2, 3000, false, 36, 0.5, 0.25, 2.0, 6, 3.0, 0.5, 0.8, 20000.0},
	{"Minimal", 7, 0.6, 0.01, 8.0, 20000, 1000, 3000, 0, 0.5, 150, 50, 0.04, 3.0, 0.0, 0.15, 2.0, 2000, false, 38, 0.3, 0.15, 3.0, 10, 1.0, 0.6, 0.5, 20000.0},
	{"Dub Techno", 2, 0.1, 0.05, 1.0, 800, 200, 3000, 0, 0.6, 100, 38, 0.2, 0.8, 2.0, 0.6, 0.5, 600, false, 26, 0.7, 0.35, 2.0, 3, 2.0, 0.5, 1.0, 20000.0},
	{"Disco Pop", 1, 0.3, 0.02, 2.0, 10000, 200, 3000, 1, 0.7, 220, 55, 0.09, 2.0, 0.2, 0.35, 1.5, 4000, false, 41, 0.4, 0.25, 3.0, 4, 1.5, 0.6, 0.7, 20000.0},
	{"Future House", 3, 0.5, 0.015, 4.0, 18000, 150, 3000, 0, 0.8, 450, 58, 0.06, 3.5, 0.0, 0.25, 2.5, 8000, false, 46, 0.3, 0.2, 4.0, 1, 2.0, 0.6, 0.9, 20000.0},
	{"Lo-Fi HipHop", 2, 0.6, 0.04, 1.0, 3000, 50, 3000, 0, 0.5, 120, 45, 0.12, 1.0, 0.5, 0.3, 1.0, 800, false, 33, 0.5, 0.3, 2.0, 8, 1.0, 0.7, 0.4, 20000.0},
	{"Acid Kick", 4, 0.4, 0.01, 5.0, 20000, 100, 3000, 2, 0.7, 600, 50, 0.08, 4.0, 0.0, 0.2, 2.0, 12000, false, 38, 0.4, 0.2, 3.0, 5, 3.5, 0.5, 0.8, 20000.0},
	{"Big Room", 4, 0.5, 0.01, 6.0, 20000, 200, 3000, 0, 0.8, 800, 48, 0.15, 3.0, 0.0, 0.4, 1.0, 12000, false, 36, 0.2, 0.3, 2.0, 1, 2.5, 0.5, 1.0, 20000.0},
	{"Prog Trance", 0, 0.4, 0.02, 3.0, 15000, 300, 3000, 0, 0.7, 350, 50, 0.08, 2.5, 0.1, 0.3, 1.8, 6000, false, 38, 0.4, 0.25, 3.0, 0, 1.5, 0.6, 0.8, 20000.0},
	{"Psytrance", 7, 0.6, 0.005, 10.0, 20000, 500, 3000, 4, 0.8, 500, 55, 0.04, 5.0, 0.0, 0.15, 3.0, 12000, false, 43, 0.1, 0.15, 5.0, 5, 2.0, 0.6, 0.7, 20000.0},
	{"Uplifting", 0, 0.5, 0.02, 4.0, 18000, 400, 3000, 0, 0.7, 400, 52, 0.07, 3.0, 0.0, 0.25, 2.0, 8000, false, 40, 0.3, 0.25, 3.5, 9, 2.0, 0.6, 0.9, 20000.0},
	{"Melbourne", 3, 0.4, 0.03, 2.0, 12000, 100, 3000, 2, 0.8, 300, 50, 0.1, 2.0, 0.5, 0.3, 1.5, 10000, false, 38, 0.3, 0.25, 2.0, 4, 2.5, 0.5, 0.9, 20000.0},
	{"Complextro", 3, 0.5, 0.02, 3.0, 15000, 200, 3000, 3, 0.7, 400, 45, 0.08, 2.5, 0.2, 0.25, 2.0, 12000, false, 33, 0.4, 0.2, 3.0, 8, 6.0, 0.4, 0.8, 20000.0},
	{"Eurodance", 0, 0.4, 0.02, 3.0, 20000, 300, 3000, 0, 0.8, 300, 55, 0.06, 2.0, 0.0, 0.2, 1.5, 8000, false, 41, 0.3, 0.2, 3.0, 0, 1.2, 0.6, 0.7, 20000.0},
	{"Hard Trance", 2, 0.5, 0.02, 3.0, 15000, 200, 3000, 2, 0.8, 500, 50, 0.1, 2.5, 0.1, 0.3, 1.5, 12000, false, 38, 0.3, 0.25, 3.0, 5, 3.0, 0.5, 0.9, 20000.0},
	{"Tropical", 5, 0.3, 0.02, 2.0, 8000, 100, 3000, 1, 0.7, 180, 48, 0.06, 1.5, 0.0, 0.2, 1.2, 4000, false, 36, 0.4, 0.2, 2.0, 2, 1.2, 0.6, 0.7, 20000.0},
	{"Future Rave", 4, 0.6, 0.01, 5.0, 20000, 200, 3000, 0, 0.8, 600, 58, 0.08, 3.0, 0.0, 0.25, 1.8, 10000, false, 46, 0.2, 0.2, 3.0, 1, 2.5, 0.5, 0.8, 20000.0},
	{"Trap 808 Long", 0, 0.2, 0.02, 5.0, 10000, 500, 3000, 0, 0.9, 200, 40, 0.08, 3.0, 0.0, 0.5, 0.5, 2000, true, 36, 0.0, 0.3, 1.0, 0, 2.0, 0.6, 0.5, 20000.0},
	{"Trap 808 Hard", 4, 0.4, 0.01, 4.0, 15000, 300, 3000, 0, 0.9, 300, 45, 0.06, 4.0, 0.2, 0.4, 0.8, 5000, true, 40, 0.0, 0.3, 2.0, 1, 4.0, 0.5, 0.6, 20000.0},
	{"Drill 808", 0, 0.2, 0.02, 3.0, 12000, 400, 3000, 0, 0.9, 200, 48, 0.3, 1.5, 4.0, 0.5, 0.6, 1500, true, 41, 0.0, 0.3, 1.0, 3, 3.0, 0.6, 0.6, 20000.0},
	{"Dubstep", 6, 0.5, 0.01, 6.0, 20000, 100, 3000, 3, 0.8, 400, 50, 0.08, 3.0, 0.0, 0.25, 2.0, 8000, false, 38, 0.4, 0.2, 3.0, 6, 4.0, 0.5, 0.9, 20000.0},
	{"Hybrid Trap", 2, 0.4, 0.02, 3.0, 10000, 200, 3000, 2, 0.8, 350, 42, 0.12, 2.5, 0.5, 0.3, 1.0, 5000, true, 30, 0.3, 0.25, 2.0, 7, 3.0, 0.5, 0.8, 20000.0},
	{"Future Bass", 1, 0.3, 0.03, 1.5, 8000, 200, 3000, 0, 0.7, 200, 50, 0.1, 2.0, 0.0, 0.2, 1.2, 3000, true, 38, 0.4, 0.25, 2.0, 2, 1.5, 0.6, 0.7, 20000.0},
	{"Phonk", 2, 0.5, 0.02, 2.0, 5000, 100, 3000, 3, 0.8, 250, 45, 0.1, 1.5, 0.0, 0.3, 1.0, 1000, false, 33, 0.3, 0.3, 1.5, 8, 8.0, 0.4, 0.5, 20000.0},
	{"Glitch Hop", 3, 0.4, 0.01, 4.0, 12000, 200, 3000, 1, 0.7, 300, 50, 0.07, 3.0, 0.2, 0.2, 1.8, 4000, false, 38, 0.4, 0.2, 3.0, 7, 3.0, 0.5, 0.9, 20000.0},
	{"UK Garage", 5, 0.3, 0.015, 3.0, 10000, 300, 3000, 0, 0.7, 200, 55, 0.06, 2.0, 0.0, 0.2, 1.5, 3000, false, 43, 0.4, 0.2, 3.0, 0, 1.2, 0.6, 0.8, 20000.0},
	{"Bass House", 7, 0.5, 0.01, 5.0, 15000, 200, 3000, 1, 0.8, 400, 48, 0.08, 3.0, 0.0, 0.25, 1.5, 8000, false, 36, 0.3, 0.25, 3.0, 5, 4.0, 0.5, 0.9, 20000.0},
	{"Hardstyle", 4, 0.6, 0.01, 6.0, 20000, 100, 3000, 2, 0.9, 800, 55, 0.15, 4.0, 0.0, 0.3, 2.81, 15000, false, 43, 0.1, 0.3, 4.0, 7, 1.2, 0.6, 1.0, 20000.0},
	{"Rawstyle", 4, 0.7, 0.01, 8.0, 20000, 50, 3000, 2, 0.9, 900, 50, 0.2, 5.0, 0.0, 0.4, 0.8, 15000, false, 38, 0.0, 0.3, 5.0, 1, 10.0, 0.4, 1.0, 20000.0},
	{"Gabber", 3, 0.5, 0.01, 5.0, 15000, 200, 3000, 3, 0.8, 600, 55, 0.12, 3.0, 0.2, 0.3, 2.96, 10000, false, 43, 0.2, 0.25, 3.0, 6, 12.0, 0.4, 0.9, 20000.0},
	{"Frenchcore", 4, 0.5, 0.005, 6.0, 18000, 300, 3000, 0, 0.8, 500, 60, 0.08, 4.0, 0.0, 0.2, 1.5, 8000, false, 48, 0.3, 0.2, 4.0, 9, 3.0, 0.5, 0.8, 20000.0},
	{"UK Hardcore", 7, 0.4, 0.01, 4.0, 15000, 400, 3000, 0, 0.8, 400, 65, 0.07, 3.0, 0.0, 0.2, 1.8, 6000, false, 53, 0.3, 0.2, 3.0, 0, 2.0, 0.6, 0.8, 20000.0},
	{"Industrial", 2, 0.5, 0.05, 1.0, 5000, 100, 3000, 3, 0.8, 300, 35, 0.3, 1.0, 2.0, 0.4, 0.5, 2000, false, 24, 0.4, 0.3, 1.0, 8, 8.0, 0.4, 1.0, 20000.0},
	{"Neurofunk", 4, 0.5, 0.01, 5.0, 18000, 200, 3000, 2, 0.8, 500, 50, 0.08, 3.5, 0.5, 0.2, 1.8, 10000, false, 38, 0.3, 0.2, 3.5, 6, 4.0, 0.5, 0.9, 20000.0},
	{"DnB Roll", 6, 0.4, 0.01, 4.0, 15000, 300, 3000, 0, 0.8, 350, 55, 0.06, 3.0, 0.0, 0.15, 2.0, 6000, false, 41, 0.3, 0.2, 3.0, 4, 2.0, 0.6, 0.8, 20000.0},
	{"Jump Up", 3, 0.4, 0.015, 3.0, 12000, 150, 3000, 3, 0.7, 400, 58, 0.06, 2.5, 0.0, 0.15, 1.5, 5000, false, 46, 0.4, 0.2, 3.0, 1, 3.0, 0.6, 0.8, 20000.0},
	{"Liquid DnB", 1, 0.3, 0.02, 2.0, 8000, 200, 3000, 0, 0.7, 200, 52, 0.07, 2.0, 0.0, 0.2, 1.2, 3000, false, 40, 0.4, 0.2, 2.0, 2, 1.5, 0.6, 0.7, 20000.0},
	{"Default (Empty)", 0, 0.0, 0.01, 2.0, 20000, 20, 3000, 0, 0.0, 100, 20, 0.1, 1.0, 0.0, 0.1, 1.0, 20000, false, 0, 0.0, 0.1, 3.0, 0, 1.0, 0.6, 1.0, 20000.0},
}

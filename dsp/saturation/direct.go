package saturation

import "math"

const (
	triodeBias      = 0.15
	triodeKnee      = 0.35
	triodeOffset    = 0.1
	triodeNegSlope  = 0.85
	tapeGain        = 0.92
	tapeHysteresis  = 0.08
	transformerKnee = 0.45
	jfetCeiling     = 0.67
	bitcrushRange   = 25.0
	exciterHighpass = 0.04
	exciterAmount   = 0.45
	exciterGain     = 9.0
)

// applyDirect evaluates kinds without a tractable antiderivative. g is the
// driven input.
func applyDirect(k Kind, g, drive float64, st *State) float64 {
	switch k {
	case Triode:
		v := g + triodeBias
		if v > 0 {
			return v/(1+math.Abs(v*triodeKnee)) - triodeOffset
		}

		return v * triodeNegSlope
	case Tape:
		y := tapeGain * math.Tanh(g+tapeHysteresis*st.hysteresis)
		st.hysteresis = y

		return y
	case Transformer:
		return g / (1 + transformerKnee*math.Abs(g))
	case JFET:
		if math.Abs(g) < 1 {
			return g - g*g*g/3
		}
		if g > 0 {
			return jfetCeiling
		}

		return -jfetCeiling
	case Bitcrush:
		step := 1 / (1 + (bitcrushRange - drive))
		if step <= 0 || step > 1 {
			step = 1
		}

		return math.Round(g/step) * step
	case Exciter:
		hp := exciterHighpass * g
		return g + exciterAmount*math.Tanh(hp*exciterGain)
	default:
		return g
	}
}

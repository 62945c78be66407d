package saturation

const (
	// Epsilon is the input delta below which the ADAA divided difference is
	// replaced by direct evaluation.
	Epsilon = 1e-5

	// BypassDrive is the drive at or below which shaping is skipped.
	BypassDrive = 1.001
)

// State is the per-channel memory of the saturation stage.
type State struct {
	hysteresis float64
	lastX      float64
	lastF      float64
	active     bool
}

// Reset returns the state to its post-construction value so the next sample
// is evaluated without history.
func (s *State) Reset() {
	*s = State{}
}

// Primed reports whether the ADAA history holds a previous sample.
func (s *State) Primed() bool {
	return s.active
}

// Apply shapes one sample. Drive at or below [BypassDrive] passes x through
// unchanged and clears the ADAA history. Unknown kinds pass the driven
// signal through.
func Apply(k Kind, x, drive float64, st *State) float64 {
	if drive <= BypassDrive {
		st.active = false
		st.lastX = x

		return x
	}

	g := x * drive
	if k.UsesADAA() {
		return applyADAA(k, g, st)
	}

	return applyDirect(k, g, drive, st)
}

// ProcessBlock shapes buf in place.
func ProcessBlock(k Kind, drive float64, st *State, buf []float64) {
	for i, x := range buf {
		buf[i] = Apply(k, x, drive, st)
	}
}

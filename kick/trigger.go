package kick

import "fmt"

// State is the trigger state of the engine.
type State int32

const (
	// Idle renders silence; only a note-on leaves it.
	Idle State = iota
	// Sounding renders the voice until both body and sub have decayed and
	// the safety tail has elapsed.
	Sounding
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Sounding:
		return "sounding"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// endFloor is the envelope level below which body and sub count as silent.
const endFloor = 1e-4

// voiceEnded reports whether a sounding voice may return to Idle.
func voiceEnded(f Frame, elapsed, release float64) bool {
	return f.SubEnv < endFloor && f.BodyEnv < endFloor && elapsed > release
}

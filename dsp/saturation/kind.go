package saturation

import (
	"fmt"
	"strings"
)

// Kind selects a saturation transfer function.
type Kind int

const (
	SoftTanh Kind = iota
	HardClip
	Triode
	Tape
	Transformer
	JFET
	BJT
	Wavefold
	Bitcrush
	Exciter
	Cubic

	// NumKinds is the number of defined kinds.
	NumKinds
)

var kindNames = [NumKinds]string{
	SoftTanh:    "SoftTanh",
	HardClip:    "HardClip",
	Triode:      "Triode",
	Tape:        "Tape",
	Transformer: "Transformer",
	JFET:        "JFET",
	BJT:         "BJT",
	Wavefold:    "Wavefold",
	Bitcrush:    "Bitcrush",
	Exciter:     "Exciter",
	Cubic:       "Cubic",
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Valid reports whether k names a defined transfer function.
func (k Kind) Valid() bool {
	return k >= 0 && k < NumKinds
}

// UsesADAA reports whether k is evaluated with antiderivative antialiasing.
func (k Kind) UsesADAA() bool {
	switch k {
	case SoftTanh, HardClip, BJT, Wavefold, Cubic:
		return true
	default:
		return false
	}
}

// ParseKind resolves a case-insensitive kind name.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("saturation kind is invalid: %q", s)
}

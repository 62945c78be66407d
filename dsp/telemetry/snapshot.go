package telemetry

import (
	"fmt"
	"math"
	"sync/atomic"
)

// SnapshotLength is the number of samples captured per layer after a
// trigger, half a second at 44.1 kHz.
const SnapshotLength = 22050

// Layer names one synthesis layer.
type Layer int

const (
	LayerAttack Layer = iota
	LayerBody
	LayerSub

	NumLayers
)

func (l Layer) String() string {
	switch l {
	case LayerAttack:
		return "attack"
	case LayerBody:
		return "body"
	case LayerSub:
		return "sub"
	default:
		return fmt.Sprintf("Layer(%d)", int(l))
	}
}

// LayerSnapshot records the post-filter output of each layer from the
// moment of a trigger until it is full, then freezes. Samples are stored as
// atomic bit patterns so readers never race the render thread.
type LayerSnapshot struct {
	layers    [NumLayers][]atomic.Uint64
	written   atomic.Int32
	recording atomic.Bool
}

// NewLayerSnapshot allocates a snapshot of SnapshotLength samples per layer.
func NewLayerSnapshot() *LayerSnapshot {
	s := &LayerSnapshot{}
	for i := range s.layers {
		s.layers[i] = make([]atomic.Uint64, SnapshotLength)
	}

	return s
}

// Start restarts the capture. Called by the render thread on trigger.
func (s *LayerSnapshot) Start() {
	s.written.Store(0)
	s.recording.Store(true)
}

// Record appends one sample per layer while a capture is in progress.
func (s *LayerSnapshot) Record(atk, body, sub float64) {
	if !s.recording.Load() {
		return
	}

	i := s.written.Load()
	s.layers[LayerAttack][i].Store(math.Float64bits(atk))
	s.layers[LayerBody][i].Store(math.Float64bits(body))
	s.layers[LayerSub][i].Store(math.Float64bits(sub))
	s.written.Store(i + 1)

	if int(i+1) >= SnapshotLength {
		s.recording.Store(false)
	}
}

// InProgress reports whether the capture is still filling.
func (s *LayerSnapshot) InProgress() bool { return s.recording.Load() }

// Len returns the number of valid samples per layer.
func (s *LayerSnapshot) Len() int { return int(s.written.Load()) }

// CopyLayer copies up to len(dst) valid samples of layer into dst and
// returns the count.
func (s *LayerSnapshot) CopyLayer(layer Layer, dst []float64) int {
	if layer < 0 || layer >= NumLayers {
		return 0
	}

	n := min(len(dst), s.Len())
	src := s.layers[layer]
	for i := 0; i < n; i++ {
		dst[i] = math.Float64frombits(src[i].Load())
	}

	return n
}

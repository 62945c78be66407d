package main

import (
	"encoding/binary"
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-kick/kick"
)

// bytesPerFrame is one stereo float32 frame.
const bytesPerFrame = 8

// pendingNotes is the capacity of the note queue between the prompt and the
// audio callback.
const pendingNotes = 16

// source adapts an engine to the pull-based io.Reader oto expects. Notes
// are handed over through a buffered channel; the audio side never blocks.
type source struct {
	engine *kick.Engine
	block  int
	notes  chan int

	left   []float64
	right  []float64
	events []kick.NoteEvent

	frames  atomic.Uint64
	dropped atomic.Uint64
}

func newSource(e *kick.Engine, block int) *source {
	return &source{
		engine: e,
		block:  block,
		notes:  make(chan int, pendingNotes),
		left:   make([]float64, block),
		right:  make([]float64, block),
		events: make([]kick.NoteEvent, 0, pendingNotes),
	}
}

// Trigger queues a note-on for the next rendered block. It reports false if
// the queue is full.
func (s *source) Trigger(note int) bool {
	select {
	case s.notes <- note:
		return true
	default:
		s.dropped.Add(1)
		return false
	}
}

// Read renders len(p)/8 stereo float32 frames into p.
func (s *source) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame

	for off := 0; off < frames; off += s.block {
		n := min(s.block, frames-off)

		s.events = s.events[:0]
	drain:
		for len(s.events) < cap(s.events) {
			select {
			case note := <-s.notes:
				s.events = append(s.events, kick.NoteEvent{Note: note})
			default:
				break drain
			}
		}

		l, r := s.left[:n], s.right[:n]
		s.engine.Process(l, r, s.events)

		out := p[off*bytesPerFrame:]
		for i := range n {
			binary.LittleEndian.PutUint32(out[i*bytesPerFrame:], math.Float32bits(float32(l[i])))
			binary.LittleEndian.PutUint32(out[i*bytesPerFrame+4:], math.Float32bits(float32(r[i])))
		}
	}

	s.frames.Add(uint64(frames))

	return frames * bytesPerFrame, nil
}

// Frames returns the number of frames rendered so far.
func (s *source) Frames() uint64 { return s.frames.Load() }

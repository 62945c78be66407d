package telemetry

import (
	"fmt"
	"sync/atomic"

	"github.com/cwbudde/algo-vecmath"
)

// DefaultScopeSize is the ring capacity used by the kick renderer.
const DefaultScopeSize = 1024

// Scope is a lock-free SPSC ring of float64 samples. Write is called by the
// producer only, Read by the consumer only. A full ring drops new samples
// instead of blocking the producer.
type Scope struct {
	buf     []float64
	mask    uint32
	read    atomic.Uint32
	write   atomic.Uint32
	dropped atomic.Uint64
}

// NewScope creates a ring holding size samples. size must be a power of two.
func NewScope(size int) (*Scope, error) {
	if size <= 0 || size&(size-1) != 0 || size > 1<<30 {
		return nil, fmt.Errorf("telemetry: scope size must be a power of 2: %d", size)
	}

	return &Scope{
		buf:  make([]float64, size),
		mask: uint32(size - 1),
	}, nil
}

// Write appends as many samples as fit and returns that count.
func (s *Scope) Write(samples []float64) int {
	write := s.write.Load()
	free := uint32(len(s.buf)) - (write - s.read.Load())

	n := len(samples)
	if uint32(n) > free {
		n = int(free)
		s.dropped.Add(uint64(len(samples) - n))
	}

	for i := 0; i < n; i++ {
		s.buf[(write+uint32(i))&s.mask] = samples[i]
	}

	s.write.Store(write + uint32(n))

	return n
}

// Read moves up to len(dst) of the oldest samples into dst and returns the
// count.
func (s *Scope) Read(dst []float64) int {
	read := s.read.Load()
	avail := s.write.Load() - read

	n := len(dst)
	if uint32(n) > avail {
		n = int(avail)
	}

	for i := 0; i < n; i++ {
		dst[i] = s.buf[(read+uint32(i))&s.mask]
	}

	s.read.Store(read + uint32(n))

	return n
}

// Peak drains the ring into scratch and returns the largest magnitude read.
func (s *Scope) Peak(scratch []float64) float64 {
	peak := 0.0

	for {
		n := s.Read(scratch)
		for _, v := range scratch[:n] {
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}

		if n < len(scratch) || n == 0 {
			return peak
		}
	}
}

// Len returns the number of unread samples.
func (s *Scope) Len() int {
	return int(s.write.Load() - s.read.Load())
}

// Cap returns the ring capacity.
func (s *Scope) Cap() int { return len(s.buf) }

// Dropped returns how many samples Write discarded because the ring was
// full.
func (s *Scope) Dropped() uint64 { return s.dropped.Load() }

// MixDown writes (left+right)/2 into dst. All slices must share a length.
func MixDown(dst, left, right []float64) {
	copy(dst, left)
	vecmath.AddBlockInPlace(dst, right)
	vecmath.ScaleBlock(dst, dst, 0.5)
}

package main

import (
	"fmt"
	"io"
	"math"

	wav "github.com/youpy/go-wav"
)

// writeWAV writes a stereo PCM file. Samples are clipped to [-1, 1].
func writeWAV(w io.Writer, left, right []float64, sampleRate, bits int) error {
	if len(left) != len(right) {
		return fmt.Errorf("channel lengths differ: %d != %d", len(left), len(right))
	}

	ww := wav.NewWriter(w, uint32(len(left)), 2, uint32(sampleRate), uint16(bits))

	const chunk = 4096
	samples := make([]wav.Sample, 0, chunk)

	for i := range left {
		samples = append(samples, wav.Sample{Values: [2]int{
			quantize(left[i], bits),
			quantize(right[i], bits),
		}})

		if len(samples) == chunk || i == len(left)-1 {
			if err := ww.WriteSamples(samples); err != nil {
				return err
			}
			samples = samples[:0]
		}
	}

	return nil
}

// quantize maps x in [-1, 1] to a signed integer of the given bit depth.
func quantize(x float64, bits int) int {
	full := float64(int(1)<<(bits-1)) - 1
	if math.IsNaN(x) {
		return 0
	}

	return int(math.Round(max(-1, min(x, 1)) * full))
}

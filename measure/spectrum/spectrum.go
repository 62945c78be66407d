package spectrum

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrEmptySignal is returned when there is nothing to analyze.
var ErrEmptySignal = errors.New("spectrum: signal is empty")

// powerFloor keeps dB conversions finite for silent bins.
const powerFloor = 1e-300

// Spectrum is a one-sided power spectrum, bins 0..FFTSize/2.
type Spectrum struct {
	SampleRate float64
	FFTSize    int
	Power      []float64
}

// Analyze windows signal with a Hann window and returns its power spectrum.
func Analyze(signal []float64, sampleRate float64) (*Spectrum, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("spectrum: sample rate must be > 0: %g", sampleRate)
	}

	fftSize := nextPowerOf2(len(signal))
	if fftSize < 2 {
		fftSize = 2
	}

	windowed := make([]float64, len(signal))
	vecmath.MulBlock(windowed, signal, Hann(len(signal)))

	in := make([]complex128, fftSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	return &Spectrum{SampleRate: sampleRate, FFTSize: fftSize, Power: power}, nil
}

// Hann returns a symmetric Hann window of length n.
func Hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}

	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}

	return w
}

// BinHz returns the width of one bin in Hz.
func (s *Spectrum) BinHz() float64 {
	return s.SampleRate / float64(s.FFTSize)
}

// Bin returns the index of the bin nearest to freqHz, clamped to the range.
func (s *Spectrum) Bin(freqHz float64) int {
	b := int(math.Round(freqHz / s.BinHz()))
	return max(0, min(b, len(s.Power)-1))
}

// PeakFrequency returns the frequency of the strongest bin in [loHz, hiHz].
func (s *Spectrum) PeakFrequency(loHz, hiHz float64) float64 {
	lo, hi := s.Bin(loHz), s.Bin(hiHz)

	best := lo
	for i := lo + 1; i <= hi; i++ {
		if s.Power[i] > s.Power[best] {
			best = i
		}
	}

	return float64(best) * s.BinHz()
}

// BandEnergy sums the bin powers in [loHz, hiHz].
func (s *Spectrum) BandEnergy(loHz, hiHz float64) float64 {
	lo, hi := s.Bin(loHz), s.Bin(hiHz)

	sum := 0.0
	for i := lo; i <= hi; i++ {
		sum += s.Power[i]
	}

	return sum
}

// PeakDB returns the strongest bin in [loHz, hiHz] in dB (power).
func (s *Spectrum) PeakDB(loHz, hiHz float64) float64 {
	lo, hi := s.Bin(loHz), s.Bin(hiHz)

	peak := 0.0
	for i := lo; i <= hi; i++ {
		peak = math.Max(peak, s.Power[i])
	}

	return 10 * math.Log10(peak+powerFloor)
}

// RejectionDB returns how far the strongest bin in the band around
// unwantedHz sits below the strongest bin around wantedHz. halfWidthHz sets
// both search bands.
func (s *Spectrum) RejectionDB(wantedHz, unwantedHz, halfWidthHz float64) float64 {
	return s.PeakDB(wantedHz-halfWidthHz, wantedHz+halfWidthHz) -
		s.PeakDB(unwantedHz-halfWidthHz, unwantedHz+halfWidthHz)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

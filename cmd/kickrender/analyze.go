package main

import (
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-kick/dsp/core"
	"github.com/cwbudde/algo-kick/dsp/telemetry"
	"github.com/cwbudde/algo-kick/measure/spectrum"
)

// analysisSeconds is the window analyzed from the start of a render.
const analysisSeconds = 0.5

type report struct {
	PeakDBFS    float64
	RMSDBFS     float64
	Fundamental float64
	LowShare    float64
}

func analyzeRender(left, right []float64, sampleRate float64) (report, error) {
	mono := make([]float64, len(left))
	telemetry.MixDown(mono, left, right)

	var peak, sum float64
	for _, v := range mono {
		peak = math.Max(peak, math.Abs(v))
		sum += v * v
	}

	r := report{
		PeakDBFS: core.LinearToDB(peak),
		RMSDBFS:  core.LinearToDB(math.Sqrt(sum / float64(max(1, len(mono))))),
	}

	n := min(len(mono), int(analysisSeconds*sampleRate))

	s, err := spectrum.Analyze(mono[:n], sampleRate)
	if err != nil {
		return report{}, err
	}

	r.Fundamental = s.PeakFrequency(20, 250)
	if total := s.BandEnergy(0, sampleRate/2); total > 0 {
		r.LowShare = s.BandEnergy(20, 120) / total
	}

	return r, nil
}

func printReport(w io.Writer, name string, r report) {
	fmt.Fprintf(w, "%-18s peak %6.1f dBFS  rms %6.1f dBFS  fundamental %6.1f Hz  low band %4.1f%%\n",
		name, r.PeakDBFS, r.RMSDBFS, r.Fundamental, 100*r.LowShare)
}

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-kick/kick"
)

type renderConfig struct {
	sampleRate float64
	blockSize  int
	note       int
	seconds    float64
	seed       int64
	bits       int
	osMode     int
	overrides  []string
}

const maxSeconds = 60

func (c renderConfig) validate() error {
	if c.sampleRate < 8000 || c.sampleRate > 384000 {
		return fmt.Errorf("sample rate must be in [8000, 384000]: %g", c.sampleRate)
	}
	if c.blockSize < 1 {
		return fmt.Errorf("block size must be > 0: %d", c.blockSize)
	}
	if c.note < 0 || c.note > 127 {
		return fmt.Errorf("note must be in [0, 127]: %d", c.note)
	}
	if !(c.seconds > 0) || c.seconds > maxSeconds {
		return fmt.Errorf("length must be in (0, %d] seconds: %g", maxSeconds, c.seconds)
	}
	if c.bits != 16 && c.bits != 24 {
		return fmt.Errorf("bit depth must be 16 or 24: %d", c.bits)
	}
	if c.osMode > 3 {
		return fmt.Errorf("oversampling mode must be in [0, 3]: %d", c.osMode)
	}

	return nil
}

// apply writes the oversampling choice and -set overrides into p.
func (c renderConfig) apply(p *kick.Params) error {
	if c.osMode >= 0 {
		p.SetMode(kick.ModeOversampling, c.osMode)
	}

	for _, kv := range c.overrides {
		key, val, _ := strings.Cut(kv, "=")

		v, err := parseValue(val)
		if err != nil {
			return fmt.Errorf("-set %s: %w", kv, err)
		}
		if err := p.SetByName(strings.TrimSpace(key), v); err != nil {
			return fmt.Errorf("-set %s: %w", kv, err)
		}
	}

	return nil
}

func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "on", "true":
		return 1, nil
	case "off", "false":
		return 0, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}

	return v, nil
}

// renderKick triggers one note and returns the stereo result with the
// oversampling latency removed.
func renderKick(p *kick.Params, cfg renderConfig) (left, right []float64, err error) {
	if err := cfg.apply(p); err != nil {
		return nil, nil, err
	}

	e, err := kick.New(p, kick.WithSeed(cfg.seed))
	if err != nil {
		return nil, nil, err
	}
	if err := e.Prepare(cfg.sampleRate, cfg.blockSize); err != nil {
		return nil, nil, err
	}

	n := int(math.Round(cfg.seconds * cfg.sampleRate))
	skip := e.Latency()
	total := n + skip

	left = make([]float64, total)
	right = make([]float64, total)
	events := []kick.NoteEvent{{Note: cfg.note}}

	for off := 0; off < total; off += cfg.blockSize {
		end := min(off+cfg.blockSize, total)
		e.Process(left[off:end], right[off:end], events)
		events = nil
	}

	return left[skip:], right[skip:], nil
}

func renderToFile(p *kick.Params, path string, cfg renderConfig) (report, error) {
	left, right, err := renderKick(p, cfg)
	if err != nil {
		return report{}, err
	}

	f, err := os.Create(path)
	if err != nil {
		return report{}, err
	}

	if err := writeWAV(f, left, right, int(cfg.sampleRate), cfg.bits); err != nil {
		f.Close()
		return report{}, fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return report{}, err
	}

	return analyzeRender(left, right, cfg.sampleRate)
}

type batchResult struct {
	name   string
	path   string
	report report
}

// renderAll renders every preset into dir in parallel. Results keep the
// order of presets.
func renderAll(presets []kick.Preset, dir string, cfg renderConfig) ([]batchResult, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	results := make([]batchResult, len(presets))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, pr := range presets {
		g.Go(func() error {
			p := kick.NewParams()
			pr.Apply(p)

			path := filepath.Join(dir, fmt.Sprintf("%02d-%s.wav", i, slug(pr.Name)))
			rep, err := renderToFile(p, path, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", pr.Name, err)
			}

			results[i] = batchResult{name: pr.Name, path: path, report: rep}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// slug lowercases name and replaces runs of non-alphanumerics with '-'.
func slug(name string) string {
	var b strings.Builder
	dash := false

	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

func printPresets(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "#\tName\tAttack\tBody\tSaturation\tDrive\tSub Note\n"); err != nil {
		return err
	}

	for i, pr := range kick.Presets() {
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%.2f\t%g\n",
			i, pr.Name, pr.AttackWave, pr.BodyWave, pr.Saturation, pr.Drive, pr.SubNote); err != nil {
			return err
		}
	}

	return tw.Flush()
}

package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-kick/internal/testutil"
	"github.com/cwbudde/algo-kick/kick"
)

func testConfig() renderConfig {
	return renderConfig{
		sampleRate: 44100,
		blockSize:  256,
		note:       36,
		seconds:    0.25,
		seed:       1,
		bits:       16,
		osMode:     -1,
	}
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Init / Default":  "init-default",
		"TR-808 Pure":     "tr-808-pure",
		"Default (Empty)": "default-empty",
		"Lo-Fi HipHop":    "lo-fi-hiphop",
	}
	for in, want := range tests {
		if got := slug(in); got != want {
			t.Errorf("slug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		x    float64
		bits int
		want int
	}{
		{0, 16, 0},
		{1, 16, 32767},
		{-1, 16, -32767},
		{2, 16, 32767},
		{0.5, 24, 4194304},
	}
	for _, tt := range tests {
		if got := quantize(tt.x, tt.bits); got != tt.want {
			t.Errorf("quantize(%g, %d) = %d, want %d", tt.x, tt.bits, got, tt.want)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	ok := testConfig()
	if err := ok.validate(); err != nil {
		t.Fatal(err)
	}

	bad := []func(*renderConfig){
		func(c *renderConfig) { c.sampleRate = 100 },
		func(c *renderConfig) { c.blockSize = 0 },
		func(c *renderConfig) { c.note = 128 },
		func(c *renderConfig) { c.seconds = 0 },
		func(c *renderConfig) { c.bits = 8 },
		func(c *renderConfig) { c.osMode = 4 },
	}
	for i, mutate := range bad {
		c := testConfig()
		mutate(&c)
		if err := c.validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestApplyOverrides(t *testing.T) {
	c := testConfig()
	c.osMode = 3
	c.overrides = []string{"pEnd=55", "subTrack=on", "satType = 4"}

	p := kick.NewParams()
	if err := c.apply(p); err != nil {
		t.Fatal(err)
	}
	if p.Value(kick.PitchEnd) != 55 || !p.KeyTrack() || p.Mode(kick.ModeSaturation) != 4 {
		t.Errorf("overrides not applied: pEnd=%g track=%v sat=%d",
			p.Value(kick.PitchEnd), p.KeyTrack(), p.Mode(kick.ModeSaturation))
	}
	if p.Mode(kick.ModeOversampling) != 3 {
		t.Errorf("osMode = %d, want 3", p.Mode(kick.ModeOversampling))
	}

	c.overrides = []string{"pEnd=loud"}
	if err := c.apply(p); err == nil {
		t.Error("expected error for non-numeric value")
	}
	c.overrides = []string{"wobble=1"}
	if err := c.apply(p); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestRenderKick(t *testing.T) {
	c := testConfig()

	left, right, err := renderKick(kick.NewParams(), c)
	if err != nil {
		t.Fatal(err)
	}

	want := int(c.seconds * c.sampleRate)
	if len(left) != want || len(right) != want {
		t.Fatalf("rendered %d/%d samples, want %d", len(left), len(right), want)
	}
	testutil.RequireFinite(t, left)
	if testutil.PeakAbs(left) == 0 {
		t.Fatal("render is silent")
	}

	rep, err := analyzeRender(left, right, c.sampleRate)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Fundamental < 20 || rep.Fundamental > 250 {
		t.Errorf("fundamental = %g Hz", rep.Fundamental)
	}
	if rep.PeakDBFS > 0.1 {
		t.Errorf("peak = %g dBFS", rep.PeakDBFS)
	}
}

func TestWriteWAV(t *testing.T) {
	left := []float64{0, 0.5, -0.5, 1}
	right := []float64{0, -0.25, 0.25, -1}

	var buf bytes.Buffer
	if err := writeWAV(&buf, left, right, 48000, 16); err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	if len(data) != 44+len(left)*4 {
		t.Fatalf("file size = %d, want %d", len(data), 44+len(left)*4)
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Fatalf("bad header %q", data[:12])
	}
	if rate := binary.LittleEndian.Uint32(data[24:28]); rate != 48000 {
		t.Errorf("sample rate = %d", rate)
	}

	second := int16(binary.LittleEndian.Uint16(data[44+4 : 44+6]))
	if second != 16384 {
		t.Errorf("second left sample = %d, want 16384", second)
	}

	if err := writeWAV(&buf, left, right[:2], 48000, 16); err == nil {
		t.Error("expected error for mismatched channels")
	}
}

func TestRenderAll(t *testing.T) {
	dir := t.TempDir()
	presets := kick.Presets()[:3]

	results, err := renderAll(presets, dir, testConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(presets) {
		t.Fatalf("got %d results", len(results))
	}

	for i, r := range results {
		if r.name != presets[i].Name {
			t.Errorf("result %d = %q, want %q", i, r.name, presets[i].Name)
		}
		if !strings.HasPrefix(filepath.Base(r.path), "0") {
			t.Errorf("unexpected file name %q", r.path)
		}
		if st, err := os.Stat(r.path); err != nil || st.Size() <= 44 {
			t.Errorf("%s: missing or empty (%v)", r.path, err)
		}
	}
}

func TestPrintPresets(t *testing.T) {
	var buf bytes.Buffer
	if err := printPresets(&buf); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != kick.NumPresets()+1 {
		t.Fatalf("got %d lines, want %d", len(lines), kick.NumPresets()+1)
	}
	if !strings.Contains(lines[1], "Init / Default") {
		t.Errorf("first row = %q", lines[1])
	}
}

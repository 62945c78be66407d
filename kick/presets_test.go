package kick

import (
	"errors"
	"testing"
)

func TestFactoryPresets(t *testing.T) {
	if NumPresets() != 51 {
		t.Fatalf("NumPresets() = %d, want 51", NumPresets())
	}

	names := map[string]bool{}
	for i, pr := range Presets() {
		if pr.Name == "" {
			t.Errorf("preset %d has no name", i)
		}
		if names[pr.Name] {
			t.Errorf("duplicate preset name %q", pr.Name)
		}
		names[pr.Name] = true
	}

	first, err := PresetAt(0)
	if err != nil {
		t.Fatal(err)
	}
	if first.Name != "Init / Default" {
		t.Errorf("first preset = %q", first.Name)
	}
}

func TestPresetApplyStaysInRange(t *testing.T) {
	p := NewParams()

	for _, pr := range Presets() {
		pr.Apply(p)

		for id := range NumParams {
			v, s := p.Value(id), id.Spec()
			if v < s.Min || v > s.Max {
				t.Errorf("%s: %s = %g outside [%g, %g]", pr.Name, id, v, s.Min, s.Max)
			}
		}
		for m := range NumModes {
			if v := p.Mode(m); v < 0 || v >= m.Count() {
				t.Errorf("%s: %s = %d", pr.Name, m, v)
			}
		}
	}
}

func TestPresetApplyValues(t *testing.T) {
	p := NewParams()
	p.Set(SubFine, 4)
	p.SetMode(ModeOversampling, 3)

	if err := LoadPreset(p, 32); err != nil {
		t.Fatal(err)
	}

	pr, _ := PresetAt(32)
	if pr.Name != "Drill 808" {
		t.Fatalf("preset 32 = %q", pr.Name)
	}
	if !p.KeyTrack() {
		t.Error("Drill 808 tracks the played note")
	}
	if got := p.Value(PitchTension); got != 4 {
		t.Errorf("pGlide = %g, want 4", got)
	}
	if got := p.Mode(ModeSaturation); got != 3 {
		t.Errorf("satType = %d, want 3", got)
	}
	// Fields a preset does not carry return to their defaults.
	if got := p.Value(SubFine); got != 0 {
		t.Errorf("subFine = %g, want 0", got)
	}
	if got := p.Mode(ModeOversampling); got != 1 {
		t.Errorf("osMode = %d, want 1", got)
	}

	hc, err := PresetByName("uk hardcore")
	if err != nil {
		t.Fatal(err)
	}
	hc.Apply(p)
	if got := p.Value(SubNote); got != 48 {
		t.Errorf("subNote = %g, want clamp to 48", got)
	}
}

func TestPresetLookupErrors(t *testing.T) {
	if _, err := PresetByName("Polka"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
	if _, err := PresetAt(-1); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
	if err := LoadPreset(NewParams(), NumPresets()); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestRandomize(t *testing.T) {
	a, b := NewParams(), NewParams()
	Randomize(a, newRand(7))
	Randomize(b, newRand(7))

	for id := range NumParams {
		if a.Value(id) != b.Value(id) {
			t.Errorf("%s differs between equal seeds", id)
		}
	}

	for i := range 50 {
		p := NewParams()
		Randomize(p, newRand(int64(i)))

		for _, g := range randomGroups {
			for _, s := range g.spans {
				if v := p.Value(s.id); v < s.min || v > s.max {
					t.Errorf("seed %d: %s = %g outside [%g, %g]", i, s.id, v, s.min, s.max)
				}
			}
		}
		if got := p.Value(SubNote); got != paramSpecs[SubNote].Default {
			t.Errorf("seed %d: subNote changed to %g", i, got)
		}
	}
}

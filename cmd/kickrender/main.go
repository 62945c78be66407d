// Command kickrender renders kick presets to WAV files.
//
// Usage:
//
//	kickrender [flags]
//
// Examples:
//
//	kickrender -preset "TR-909 Punch" -o 909.wav
//	kickrender -preset Hardstyle -note 40 -set satType=7 -set masterDrive=3
//	kickrender -random 42 -analyze -o random.wav
//	kickrender -all -dir kits
//	kickrender -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-kick/kick"
)

// assignments collects repeated -set key=value flags.
type assignments []string

func (a *assignments) String() string { return strings.Join(*a, ",") }

func (a *assignments) Set(v string) error {
	if !strings.Contains(v, "=") {
		return fmt.Errorf("expected key=value, got %q", v)
	}

	*a = append(*a, v)

	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("kickrender: ")

	var sets assignments

	preset := flag.String("preset", "Init / Default", "factory preset name")
	list := flag.Bool("list", false, "list factory presets")
	all := flag.Bool("all", false, "render every factory preset into -dir")
	dir := flag.String("dir", ".", "output directory for -all")
	out := flag.String("o", "kick.wav", "output WAV file")
	note := flag.Int("note", 36, "MIDI note to trigger")
	seconds := flag.Float64("seconds", 1.5, "render length in seconds")
	rate := flag.Int("rate", 44100, "sample rate in Hz")
	block := flag.Int("block", 256, "render block size in samples")
	bits := flag.Int("bits", 16, "WAV bit depth (16 or 24)")
	seed := flag.Int64("seed", 1, "attack noise seed")
	random := flag.Int64("random", -1, "randomize the kit with this seed (>= 0)")
	osMode := flag.Int("os", -1, "oversampling mode 0..3 (1x, 2x, 4x, 8x); -1 keeps the preset")
	analyze := flag.Bool("analyze", false, "print a spectral summary of each render")
	flag.Var(&sets, "set", "override a parameter, key=value (repeatable)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: kickrender [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders a kick drum preset to a stereo WAV file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nParameter keys:\n  %s\n", strings.Join(kick.Keys(), " "))
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  kickrender -preset \"TR-909 Punch\" -o 909.wav\n")
		fmt.Fprintf(os.Stderr, "  kickrender -random 42 -analyze\n")
		fmt.Fprintf(os.Stderr, "  kickrender -all -dir kits\n")
	}
	flag.Parse()

	if *list {
		if err := printPresets(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	cfg := renderConfig{
		sampleRate: float64(*rate),
		blockSize:  *block,
		note:       *note,
		seconds:    *seconds,
		seed:       *seed,
		bits:       *bits,
		osMode:     *osMode,
		overrides:  sets,
	}
	if err := cfg.validate(); err != nil {
		log.Fatal(err)
	}

	if *all {
		results, err := renderAll(kick.Presets(), *dir, cfg)
		if err != nil {
			log.Fatal(err)
		}
		for _, r := range results {
			fmt.Println(r.path)
			if *analyze {
				printReport(os.Stdout, r.name, r.report)
			}
		}
		return
	}

	params := kick.NewParams()
	name := *preset
	if *random >= 0 {
		kick.Randomize(params, rand.New(rand.NewSource(*random)))
		name = "random " + strconv.FormatInt(*random, 10)
	} else {
		pr, err := kick.PresetByName(*preset)
		if err != nil {
			if errors.Is(err, kick.ErrUnknownPreset) {
				log.Fatalf("%v (use -list to see available)", err)
			}
			log.Fatal(err)
		}
		pr.Apply(params)
	}

	rep, err := renderToFile(params, *out, cfg)
	if err != nil {
		log.Fatal(err)
	}

	if *analyze {
		printReport(os.Stdout, name, rep)
	}
}

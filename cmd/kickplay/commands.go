package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-kick/dsp/core"
	"github.com/cwbudde/algo-kick/dsp/telemetry"
	"github.com/cwbudde/algo-kick/kick"
)

var errQuit = errors.New("quit")

// session is the state the prompt commands operate on.
type session struct {
	params *kick.Params
	engine *kick.Engine
	src    *source
	note   int
	out    io.Writer

	scratch []float64
}

type command struct {
	name  string
	usage string
	run   func(s *session, args []string) error
	// arity is the exact argument count, or -n for at most n.
	arity int
}

var commands []command

func init() {
	commands = []command{
		{"hit", "hit [note]          trigger a note (default: last note)", hitCommand, -1},
		{"set", "set <key> <value>   change a parameter", setCommand, 2},
		{"get", "get [key]           show one or all parameters", getCommand, -1},
		{"preset", "preset <name|#>     load a factory preset", presetCommand, -1},
		{"presets", "presets             list factory presets", presetsCommand, 0},
		{"random", "random [seed]       randomize the kit", randomCommand, -1},
		{"scope", "scope               show the output level since the last call", scopeCommand, 0},
		{"layers", "layers              show per-layer peaks of the last note", layersCommand, 0},
		{"state", "state               show engine state", stateCommand, 0},
		{"help", "help                show this list", helpCommand, 0},
		{"quit", "quit                exit", func(*session, []string) error { return errQuit }, 0},
	}
}

func (s *session) eval(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	name, args := strings.ToLower(fields[0]), fields[1:]
	for _, cmd := range commands {
		if cmd.name != name {
			continue
		}

		if cmd.arity < 0 {
			if len(args) > -cmd.arity {
				return fmt.Errorf("%s: too many arguments: at most %d, got %d", name, -cmd.arity, len(args))
			}
		} else if len(args) != cmd.arity {
			return fmt.Errorf("%s: wrong number of arguments: want %d, got %d", name, cmd.arity, len(args))
		}

		if err := cmd.run(s, args); err != nil {
			if errors.Is(err, errQuit) {
				return err
			}
			return fmt.Errorf("%s: %w", name, err)
		}

		return nil
	}

	return fmt.Errorf("unknown command: %s (try help)", name)
}

func hitCommand(s *session, args []string) error {
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 || n > 127 {
			return fmt.Errorf("note must be in [0, 127]: %q", args[0])
		}
		s.note = n
	}

	if !s.src.Trigger(s.note) {
		return errors.New("note queue full")
	}

	return nil
}

func setCommand(s *session, args []string) error {
	v, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		switch strings.ToLower(args[1]) {
		case "on":
			v = 1
		case "off":
			v = 0
		default:
			return fmt.Errorf("not a number: %q", args[1])
		}
	}

	return s.params.SetByName(args[0], v)
}

func getCommand(s *session, args []string) error {
	if len(args) == 1 {
		line, err := s.describe(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, line)

		return nil
	}

	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	for _, key := range kick.Keys() {
		line, err := s.describe(key)
		if err != nil {
			return err
		}
		fmt.Fprintln(tw, line)
	}

	return tw.Flush()
}

func (s *session) describe(key string) (string, error) {
	if strings.EqualFold(key, kick.KeyTrackKey) {
		return fmt.Sprintf("%s\t%v", kick.KeyTrackKey, s.params.KeyTrack()), nil
	}
	if m, err := kick.ParseMode(key); err == nil {
		v := s.params.Mode(m)
		return fmt.Sprintf("%s\t%d\t(%s)", m, v, m.Display(v)), nil
	}

	id, err := kick.ParseParam(key)
	if err != nil {
		return "", err
	}
	spec := id.Spec()

	return fmt.Sprintf("%s\t%g\t[%g, %g]", id, s.params.Value(id), spec.Min, spec.Max), nil
}

func presetCommand(s *session, args []string) error {
	if len(args) == 0 {
		return presetsCommand(s, nil)
	}

	if i, err := strconv.Atoi(args[0]); err == nil {
		return kick.LoadPreset(s.params, i)
	}

	pr, err := kick.PresetByName(strings.ReplaceAll(args[0], "_", " "))
	if err != nil {
		return err
	}
	pr.Apply(s.params)

	return nil
}

func presetsCommand(s *session, _ []string) error {
	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	for i, pr := range kick.Presets() {
		fmt.Fprintf(tw, "%d\t%s\t%s/%s\t%s\n", i, pr.Name, pr.AttackWave, pr.BodyWave, pr.Saturation)
	}

	return tw.Flush()
}

func randomCommand(s *session, args []string) error {
	seed := rand.Int63()
	if len(args) == 1 {
		v, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("seed must be an integer: %q", args[0])
		}
		seed = v
	}

	kick.Randomize(s.params, rand.New(rand.NewSource(seed)))
	fmt.Fprintf(s.out, "seed %d\n", seed)

	return nil
}

func scopeCommand(s *session, _ []string) error {
	scope := s.engine.Scope()
	if len(s.scratch) < scope.Cap() {
		s.scratch = make([]float64, scope.Cap())
	}

	peak := scope.Peak(s.scratch)
	fmt.Fprintf(s.out, "%s %6.1f dBFS\n", meter(peak, 40), core.LinearToDB(peak))

	return nil
}

func layersCommand(s *session, _ []string) error {
	snap := s.engine.Snapshot()
	buf := make([]float64, telemetry.SnapshotLength)

	for l := range telemetry.NumLayers {
		n := snap.CopyLayer(l, buf)

		var peak float64
		for _, v := range buf[:n] {
			peak = math.Max(peak, math.Abs(v))
		}
		fmt.Fprintf(s.out, "%-7s %s %.3f\n", l, meter(peak, 30), peak)
	}

	return nil
}

func stateCommand(s *session, _ []string) error {
	fmt.Fprintf(s.out, "%s  note %d  sub %.2f Hz  oversampling %dx  latency %d  frames %d\n",
		s.engine.State(), s.engine.LastNote(), s.engine.SubFrequency(),
		s.engine.OversamplingRatio(), s.engine.Latency(), s.src.Frames())

	return nil
}

func helpCommand(s *session, _ []string) error {
	for _, cmd := range commands {
		fmt.Fprintln(s.out, "  "+cmd.usage)
	}

	return nil
}

// meter draws a bar of width cells for a linear level in [0, 1].
func meter(level float64, width int) string {
	n := int(math.Round(max(0, min(level, 1)) * float64(width)))
	return "[" + strings.Repeat("#", n) + strings.Repeat(" ", width-n) + "]"
}

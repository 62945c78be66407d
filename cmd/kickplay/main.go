// Command kickplay plays the kick synth live on the default audio device.
//
// Usage:
//
//	kickplay [flags]
//
// The prompt accepts commands such as "hit 36", "set pEnd 50",
// "preset Hardstyle" and "random"; type "help" for the full list. With
// -pads the terminal switches to raw mode and the keys a s d f g h j k
// trigger notes directly.
//
// Build with -tags headless to run without a sound device.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/chzyer/readline"

	"github.com/cwbudde/algo-kick/kick"
)

// output is an open audio sink pulling from a source.
type output interface {
	Close() error
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("kickplay: ")

	rate := flag.Int("rate", 48000, "sample rate in Hz")
	block := flag.Int("block", 128, "render block size in samples")
	latency := flag.Duration("latency", 20*time.Millisecond, "device buffer length")
	preset := flag.String("preset", "Init / Default", "factory preset to start with")
	note := flag.Int("note", 36, "default note for hit")
	seed := flag.Int64("seed", 1, "attack noise seed")
	pads := flag.Bool("pads", false, "raw-terminal pad mode instead of the prompt")
	flag.Parse()

	if *rate < 8000 || *rate > 192000 {
		log.Fatalf("sample rate must be in [8000, 192000]: %d", *rate)
	}
	if *block < 1 {
		log.Fatalf("block size must be > 0: %d", *block)
	}
	if *latency <= 0 {
		log.Fatalf("latency must be > 0: %v", *latency)
	}
	if *note < 0 || *note > 127 {
		log.Fatalf("note must be in [0, 127]: %d", *note)
	}

	params := kick.NewParams()
	pr, err := kick.PresetByName(*preset)
	if err != nil {
		log.Fatal(err)
	}
	pr.Apply(params)

	engine, err := kick.New(params, kick.WithSeed(*seed))
	if err != nil {
		log.Fatal(err)
	}
	if err := engine.Prepare(float64(*rate), *block); err != nil {
		log.Fatal(err)
	}

	src := newSource(engine, *block)

	out, err := openOutput(*rate, *latency, src)
	if err != nil {
		log.Fatal(err)
	}

	s := &session{params: params, engine: engine, src: src, note: *note, out: os.Stdout}

	if *pads {
		err = runPads(s, os.Stdin)
	} else {
		err = repl(s)
	}

	if cerr := out.Close(); cerr != nil {
		log.Print(cerr)
	}
	if err != nil && !errors.Is(err, errQuit) && !errors.Is(err, io.EOF) {
		log.Fatal(err)
	}
}

func repl(s *session) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "kick> ",
		AutoComplete:    completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Fprintln(s.out, `type "help" for commands`)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return err
		}

		if err := s.eval(line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintln(s.out, err)
		}
	}
}

func completer() *readline.PrefixCompleter {
	keys := make([]readline.PrefixCompleterInterface, 0, len(kick.Keys()))
	for _, k := range kick.Keys() {
		keys = append(keys, readline.PcItem(k))
	}

	items := make([]readline.PrefixCompleterInterface, 0, len(commands))
	for _, cmd := range commands {
		switch cmd.name {
		case "set", "get":
			items = append(items, readline.PcItem(cmd.name, keys...))
		default:
			items = append(items, readline.PcItem(cmd.name))
		}
	}

	return readline.NewPrefixCompleter(items...)
}

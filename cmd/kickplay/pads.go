package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// padKeys maps home-row keys to semitone offsets from the session note.
var padKeys = map[byte]int{
	'a': 0, 's': 2, 'd': 4, 'f': 5, 'g': 7, 'h': 9, 'j': 11, 'k': 12,
}

// runPads reads single keys from in and triggers notes until q, Ctrl-C or
// EOF. When in is a terminal it is switched to raw mode for the duration.
func runPads(s *session, in *os.File) error {
	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		old, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("raw mode: %w", err)
		}
		defer func() { _ = term.Restore(fd, old) }()
	}

	fmt.Fprint(s.out, "pads: a s d f g h j k play, space repeats, q quits\r\n")

	return readPads(s, in)
}

func readPads(s *session, in io.Reader) error {
	buf := make([]byte, 1)
	last := s.note

	for {
		if _, err := in.Read(buf); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch c := buf[0]; c {
		case 'q', 3, 4:
			return nil
		case ' ':
			s.src.Trigger(last)
		default:
			off, ok := padKeys[c]
			if !ok {
				continue
			}
			last = min(127, s.note+off)
			s.src.Trigger(last)
		}
	}
}

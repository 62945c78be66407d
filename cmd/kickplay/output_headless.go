//go:build headless

package main

import (
	"io"
	"time"
)

// nullOutput pulls audio in real time and discards it, for machines
// without a sound device.
type nullOutput struct {
	stop chan struct{}
	done chan struct{}
}

func openOutput(sampleRate int, bufferSize time.Duration, r io.Reader) (output, error) {
	o := &nullOutput{stop: make(chan struct{}), done: make(chan struct{})}

	frames := max(1, int(bufferSize.Seconds()*float64(sampleRate)))
	buf := make([]byte, frames*bytesPerFrame)

	go func() {
		defer close(o.done)

		tick := time.NewTicker(bufferSize)
		defer tick.Stop()

		for {
			select {
			case <-o.stop:
				return
			case <-tick.C:
				_, _ = r.Read(buf)
			}
		}
	}()

	return o, nil
}

func (o *nullOutput) Close() error {
	close(o.stop)
	<-o.done

	return nil
}

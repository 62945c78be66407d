//go:build !headless

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"
)

type otoOutput struct {
	ctx    *oto.Context
	player *oto.Player
}

func openOutput(sampleRate int, bufferSize time.Duration, r io.Reader) (output, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   bufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("audio device not available: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(r)
	player.Play()

	return &otoOutput{ctx: ctx, player: player}, nil
}

func (o *otoOutput) Close() error {
	if err := o.player.Close(); err != nil {
		return err
	}

	return o.ctx.Suspend()
}

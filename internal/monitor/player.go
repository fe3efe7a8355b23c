//go:build !headless

package monitor

import (
	"fmt"
	"io"

	"github.com/ebitengine/oto/v3"
)

// Player owns the audio device and one stream pulled from a reader.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
}

// NewPlayer opens the default output device for float32 samples.
func NewPlayer(sampleRate, channels int) (*Player, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, fmt.Errorf("monitor: open audio device: %w", err)
	}
	<-ready

	return &Player{ctx: ctx}, nil
}

// Start begins pulling from r on the device's callback goroutine.
func (p *Player) Start(r io.Reader) {
	p.player = p.ctx.NewPlayer(r)
	p.player.Play()
}

// Close stops playback.
func (p *Player) Close() error {
	if p.player == nil {
		return nil
	}

	err := p.player.Close()
	p.player = nil

	return err
}

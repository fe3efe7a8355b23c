//go:build headless

package monitor

import (
	"errors"
	"io"
)

// ErrNoAudio is returned by NewPlayer in builds without an audio backend.
var ErrNoAudio = errors.New("monitor: built without audio output (headless)")

// Player is unavailable in headless builds.
type Player struct{}

// NewPlayer always fails in headless builds.
func NewPlayer(sampleRate, channels int) (*Player, error) {
	return nil, ErrNoAudio
}

// Start does nothing.
func (p *Player) Start(io.Reader) {}

// Close does nothing.
func (p *Player) Close() error { return nil }

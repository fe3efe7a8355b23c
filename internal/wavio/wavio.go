// Package wavio reads and writes PCM WAV files as planar float64 blocks.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-trim/dsp/core"
)

const pcmFormat = 1

var (
	// ErrNotWAV is returned for input that is not a RIFF/WAVE file.
	ErrNotWAV = errors.New("wavio: not a WAV file")
	// ErrUnsupportedFormat is returned for non-PCM data or unsupported bit depths.
	ErrUnsupportedFormat = errors.New("wavio: unsupported sample format")
)

// Audio is a decoded file: planar samples in [-1, 1).
type Audio struct {
	SampleRate int
	BitDepth   int
	Channels   [][]float64
}

// Frames returns the number of sample frames.
func (a *Audio) Frames() int {
	if len(a.Channels) == 0 {
		return 0
	}

	return len(a.Channels[0])
}

// Duration returns the length in seconds.
func (a *Audio) Duration() float64 {
	if a.SampleRate <= 0 {
		return 0
	}

	return float64(a.Frames()) / float64(a.SampleRate)
}

// Read decodes a 16, 24 or 32 bit integer PCM WAV stream.
func Read(r io.ReadSeeker) (*Audio, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotWAV
	}

	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("wavio: read header: %w", err)
	}

	bitDepth := int(dec.BitDepth)
	if err := checkFormat(int(dec.WavAudioFormat), bitDepth); err != nil {
		return nil, err
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavio: decode PCM: %w", err)
	}

	channels := int(dec.NumChans)
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, channels)
	}

	frames := len(buf.Data) / channels
	scale := 1 / fullScale(bitDepth)

	interleaved := make([]float64, frames*channels)
	for i := range interleaved {
		interleaved[i] = float64(buf.Data[i]) * scale
	}

	planar := make([][]float64, channels)
	for ch := range planar {
		planar[ch] = make([]float64, frames)
	}

	if err := core.Deinterleave(planar, interleaved); err != nil {
		return nil, fmt.Errorf("wavio: %w", err)
	}

	return &Audio{
		SampleRate: int(dec.SampleRate),
		BitDepth:   bitDepth,
		Channels:   planar,
	}, nil
}

// ReadFile opens and decodes path.
func ReadFile(path string) (*Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wavio: %w", err)
	}
	defer f.Close()

	a, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return a, nil
}

// Write encodes a as integer PCM at a.BitDepth. Samples outside [-1, 1) are
// clipped.
func Write(w io.WriteSeeker, a *Audio, opts ...WriteOption) error {
	if err := checkFormat(pcmFormat, a.BitDepth); err != nil {
		return err
	}

	var cfg writeConfig

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return err
		}
	}

	channels := len(a.Channels)
	if channels == 0 {
		return fmt.Errorf("%w: no channels", ErrUnsupportedFormat)
	}

	if a.SampleRate <= 0 {
		return fmt.Errorf("wavio: sample rate must be > 0: %d", a.SampleRate)
	}

	interleaved := make([]float64, a.Frames()*channels)
	frames := core.Interleave(interleaved, a.Channels)
	interleaved = interleaved[:frames*channels]

	data := make([]int, len(interleaved))
	newQuantizer(a.BitDepth, cfg).quantizeAll(data, interleaved)

	enc := wav.NewEncoder(w, a.SampleRate, a.BitDepth, channels, pcmFormat)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: a.SampleRate},
		Data:           data,
		SourceBitDepth: a.BitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavio: encode: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavio: finalize: %w", err)
	}

	return nil
}

// WriteFile creates path and encodes a into it.
func WriteFile(path string, a *Audio, opts ...WriteOption) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavio: %w", err)
	}

	if err := Write(f, a, opts...); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}

func checkFormat(format, bitDepth int) error {
	if format != pcmFormat {
		return fmt.Errorf("%w: audio format %d (want integer PCM)", ErrUnsupportedFormat, format)
	}

	switch bitDepth {
	case 16, 24, 32:
		return nil
	default:
		return fmt.Errorf("%w: %d-bit samples", ErrUnsupportedFormat, bitDepth)
	}
}

func fullScale(bitDepth int) float64 {
	return float64(int64(1) << (bitDepth - 1))
}

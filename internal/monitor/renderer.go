package monitor

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cwbudde/algo-trim/dsp/signal"
	"github.com/cwbudde/algo-trim/plugin"
)

const bytesPerSample = 4

// Renderer is the pull side of the monitor: each Read fills the next frames
// from the source, runs the processor on them and encodes the result as
// interleaved little-endian float32, the format the output device consumes.
type Renderer struct {
	src   *signal.Loop
	proc  *plugin.Processor
	block [][]float64
	view  [][]float64
}

// NewRenderer validates the source layout and preallocates one block of
// blockSize frames, so Read does not allocate.
func NewRenderer(src *signal.Loop, proc *plugin.Processor, blockSize int) (*Renderer, error) {
	layout := plugin.Layout(src.Channels())
	if err := plugin.CheckLayout(layout, layout); err != nil {
		return nil, fmt.Errorf("monitor: %w", err)
	}

	if src.Len() == 0 {
		return nil, fmt.Errorf("monitor: source is empty")
	}

	if blockSize <= 0 {
		return nil, fmt.Errorf("monitor: block size must be > 0: %d", blockSize)
	}

	block := make([][]float64, src.Channels())
	for ch := range block {
		block[ch] = make([]float64, blockSize)
	}

	return &Renderer{
		src:   src,
		proc:  proc,
		block: block,
		view:  make([][]float64, len(block)),
	}, nil
}

// Channels returns the output channel count.
func (r *Renderer) Channels() int { return len(r.block) }

// Read implements io.Reader. Only whole frames are written; it never
// returns an error.
func (r *Renderer) Read(p []byte) (int, error) {
	channels := len(r.block)
	frameBytes := bytesPerSample * channels
	frames := len(p) / frameBytes
	blockSize := len(r.block[0])
	off := 0

	for frames > 0 {
		n := min(frames, blockSize)
		for ch := range r.block {
			r.view[ch] = r.block[ch][:n]
		}

		r.src.Fill(r.view)
		r.proc.ProcessBlock(r.view)

		for i := 0; i < n; i++ {
			for ch := 0; ch < channels; ch++ {
				binary.LittleEndian.PutUint32(p[off:], math.Float32bits(float32(r.view[ch][i])))
				off += bytesPerSample
			}
		}

		frames -= n
	}

	return off, nil
}

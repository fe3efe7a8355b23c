package trim

import "github.com/cwbudde/algo-vecmath"

// Engine applies solo selection, phase/flip and gain to audio blocks.
//
// Engine holds no state between samples or blocks; the zero value is ready to
// use and one Engine may serve any number of blocks. Processing never
// allocates, blocks or returns an error, so it is safe to call from an audio
// callback.
type Engine struct{}

// NewEngine returns a ready-to-use engine.
func NewEngine() *Engine { return &Engine{} }

// Process transforms a planar block in place using the current values of p.
// block holds one slice per channel. One channel runs the mono path, two
// channels the stereo path; any other channel count leaves the block
// untouched. A nil p processes with the defaults.
//
// The parameters are read once per block, so a change made while the block
// is running takes effect with the next block.
func (e *Engine) Process(block [][]float64, p *Params) {
	snap := DefaultSnapshot()
	if p != nil {
		snap = p.Snapshot()
	}

	e.ProcessSnapshot(block, snap)
}

// ProcessSnapshot is Process with explicit parameter values.
func (e *Engine) ProcessSnapshot(block [][]float64, s Snapshot) {
	switch len(block) {
	case 1:
		processMono(block[0], s)
	case 2:
		left, right := block[0], block[1]

		n := min(len(left), len(right))
		processStereo(left[:n], right[:n], s)
	}
}

// ProcessInterleaved transforms an interleaved block (L, R, L, R, ... for
// stereo) in place. channels follows the same dispatch rule as Process.
// A trailing partial frame is left untouched.
func (e *Engine) ProcessInterleaved(buf []float64, channels int, p *Params) {
	snap := DefaultSnapshot()
	if p != nil {
		snap = p.Snapshot()
	}

	switch channels {
	case 1:
		processMono(buf, snap)
	case 2:
		g := snap.GainLinear()
		for i := 0; i+1 < len(buf); i += 2 {
			l, r := snap.route(buf[i], buf[i+1])
			buf[i], buf[i+1] = l*g, r*g
		}
	}
}

// ProcessMono returns one processed mono sample.
func (s Snapshot) ProcessMono(x float64) float64 {
	if s.PhaseReverse {
		x = -x
	}

	return x * s.GainLinear()
}

// ProcessStereo returns one processed stereo frame.
func (s Snapshot) ProcessStereo(left, right float64) (float64, float64) {
	l, r := s.route(left, right)
	g := s.GainLinear()

	return l * g, r * g
}

// route applies solo selection followed by phase reverse or stereo flip.
func (s Snapshot) route(left, right float64) (float64, float64) {
	l, r := Select(left, right, s.Solo)

	switch {
	case s.PhaseReverse:
		return -l, -r
	case s.StereoFlip:
		return r, l
	default:
		return l, r
	}
}

// Select combines a stereo frame according to the winning solo flag. With no
// flag set the frame is returned unchanged.
func Select(left, right float64, solo SoloFlags) (float64, float64) {
	mode, ok := solo.Resolve()
	if !ok {
		return left, right
	}

	switch mode {
	case SoloMid:
		mid := (left + right) / 2
		return mid, mid
	case SoloSide:
		side := (left - right) / 2
		return side, -side
	case SoloLeft:
		return left, 0
	case SoloRight:
		return 0, right
	default:
		return left, right
	}
}

func processMono(buf []float64, s Snapshot) {
	if s.PhaseReverse {
		for i, x := range buf {
			buf[i] = -x
		}
	}

	applyGain(buf, s.GainLinear())
}

func processStereo(left, right []float64, s Snapshot) {
	for i := range left {
		left[i], right[i] = s.route(left[i], right[i])
	}

	g := s.GainLinear()
	applyGain(left, g)
	applyGain(right, g)
}

func applyGain(buf []float64, g float64) {
	if g == 1 || len(buf) == 0 {
		return
	}

	vecmath.ScaleBlockInPlace(buf, g)
}

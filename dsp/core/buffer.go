package core

import "fmt"

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}

	if cap(buf) >= n {
		return buf[:n]
	}

	return make([]float64, n)
}

// Deinterleave splits an interleaved frame buffer (c0, c1, ..., c0, c1, ...)
// into the planar channel slices of dst. Every dst channel must hold at
// least len(src)/len(dst) samples.
func Deinterleave(dst [][]float64, src []float64) error {
	channels := len(dst)
	if channels == 0 {
		return fmt.Errorf("deinterleave: no destination channels")
	}

	if len(src)%channels != 0 {
		return fmt.Errorf("deinterleave: buffer length %d is not a multiple of %d channels",
			len(src), channels)
	}

	frames := len(src) / channels
	for ch := range dst {
		if len(dst[ch]) < frames {
			return fmt.Errorf("deinterleave: channel %d holds %d samples, need %d",
				ch, len(dst[ch]), frames)
		}
	}

	for i := range frames {
		base := i * channels
		for ch := range dst {
			dst[ch][i] = src[base+ch]
		}
	}

	return nil
}

// Interleave writes planar channels into dst as interleaved frames and
// returns the number of frames written. The frame count is the length of the
// shortest channel, bounded by the capacity of dst.
func Interleave(dst []float64, src [][]float64) int {
	channels := len(src)
	if channels == 0 {
		return 0
	}

	frames := len(src[0])
	for _, ch := range src[1:] {
		frames = min(frames, len(ch))
	}

	frames = min(frames, len(dst)/channels)

	for i := range frames {
		base := i * channels
		for ch := range src {
			dst[base+ch] = src[ch][i]
		}
	}

	return frames
}

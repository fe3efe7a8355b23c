package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)

	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)

	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}

	return out
}

// StereoBlock returns a planar stereo block whose channels are uncorrelated:
// a sine on the left and seeded noise on the right.
func StereoBlock(length int) [][]float64 {
	return [][]float64{
		DeterministicSine(997, 48000, 0.7, length),
		DeterministicNoise(7, 0.5, length),
	}
}

// CloneBlock deep-copies a planar block.
func CloneBlock(block [][]float64) [][]float64 {
	out := make([][]float64, len(block))
	for ch := range block {
		out[ch] = append([]float64(nil), block[ch]...)
	}

	return out
}

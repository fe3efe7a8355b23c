package polarity

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-trim/dsp/core"
)

var (
	// ErrEmptyInput is returned when a signal has no samples.
	ErrEmptyInput = errors.New("polarity: empty input")
	// ErrChannelMismatch is returned when multichannel inputs differ in channel count.
	ErrChannelMismatch = errors.New("polarity: channel count mismatch")
)

const minFFTSize = 64

// Result relates an output signal to its reference.
type Result struct {
	// Lag is the delay of the output relative to the reference in samples.
	// Positive values mean the output is late.
	Lag int
	// Gain is the signed least-squares factor mapping reference to output.
	Gain float64
	// GainDB is 20*log10(|Gain|); -Inf when Gain is 0.
	GainDB float64
	// Inverted reports a negative Gain.
	Inverted bool
	// Correlation is the normalized correlation in [-1, 1] at Lag.
	Correlation float64
	// PeakRef and PeakOut are the absolute sample peaks.
	PeakRef float64
	PeakOut float64
}

// Option configures an analysis.
type Option func(*config) error

type config struct {
	maxLag int // < 0 means unrestricted
}

// WithMaxLag limits the lag search to [-maxLag, maxLag].
func WithMaxLag(maxLag int) Option {
	return func(cfg *config) error {
		if maxLag < 0 {
			return fmt.Errorf("polarity: max lag must be >= 0: %d", maxLag)
		}

		cfg.maxLag = maxLag

		return nil
	}
}

// Analyze measures how out relates to ref.
func Analyze(ref, out []float64, opts ...Option) (Result, error) {
	if len(ref) == 0 || len(out) == 0 {
		return Result{}, ErrEmptyInput
	}

	cfg := config{maxLag: -1}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return Result{}, err
		}
	}

	lag, err := peakLag(ref, out, cfg.maxLag)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Lag:     lag,
		PeakRef: vecmath.MaxAbs(ref),
		PeakOut: vecmath.MaxAbs(out),
	}

	var cross, refEnergy, outEnergy float64

	for n := max(lag, 0); n < len(out) && n-lag < len(ref); n++ {
		r := ref[n-lag]
		o := out[n]
		cross += o * r
		refEnergy += r * r
		outEnergy += o * o
	}

	if refEnergy > 0 {
		res.Gain = cross / refEnergy
	}

	if refEnergy > 0 && outEnergy > 0 {
		res.Correlation = core.Clamp(cross/math.Sqrt(refEnergy*outEnergy), -1, 1)
	}

	res.Inverted = res.Gain < 0
	res.GainDB = core.LinearToDB(math.Abs(res.Gain))

	return res, nil
}

// AnalyzeChannels runs Analyze per channel of two planar blocks.
func AnalyzeChannels(ref, out [][]float64, opts ...Option) ([]Result, error) {
	if len(ref) != len(out) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrChannelMismatch, len(ref), len(out))
	}

	results := make([]Result, len(ref))

	for ch := range ref {
		res, err := Analyze(ref[ch], out[ch], opts...)
		if err != nil {
			return nil, fmt.Errorf("polarity: channel %d: %w", ch, err)
		}

		results[ch] = res
	}

	return results, nil
}

// peakLag returns the lag maximizing |sum out[n]*ref[n-lag]|.
func peakLag(ref, out []float64, maxLag int) (int, error) {
	fftSize := max(nextPowerOf2(len(ref)+len(out)-1), minFFTSize)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("polarity: failed to create FFT plan: %w", err)
	}

	refTime := make([]complex128, fftSize)
	outTime := make([]complex128, fftSize)

	for i, v := range ref {
		refTime[i] = complex(v, 0)
	}

	for i, v := range out {
		outTime[i] = complex(v, 0)
	}

	refSpec := make([]complex128, fftSize)
	if err := plan.Forward(refSpec, refTime); err != nil {
		return 0, fmt.Errorf("polarity: forward FFT failed: %w", err)
	}

	outSpec := make([]complex128, fftSize)
	if err := plan.Forward(outSpec, outTime); err != nil {
		return 0, fmt.Errorf("polarity: forward FFT failed: %w", err)
	}

	for i := range outSpec {
		outSpec[i] *= complex(real(refSpec[i]), -imag(refSpec[i]))
	}

	// The time buffer is free again and receives the correlation.
	xcorr := outTime
	if err := plan.Inverse(xcorr, outSpec); err != nil {
		return 0, fmt.Errorf("polarity: inverse FFT failed: %w", err)
	}

	bestLag := 0
	best := -1.0

	for k := range xcorr {
		lag := k
		if k >= len(out) {
			lag = k - fftSize
		}

		if lag <= -len(ref) || lag >= len(out) {
			continue
		}

		if maxLag >= 0 && (lag > maxLag || lag < -maxLag) {
			continue
		}

		if v := math.Abs(real(xcorr[k])); v > best {
			best = v
			bestLag = lag
		}
	}

	return bestLag, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

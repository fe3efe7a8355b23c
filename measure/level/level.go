// Package level reports the signal levels that the trim processor changes:
// per-channel peak, RMS and DC, plus the stereo correlation and mid/side
// balance that solo and polarity settings act on.
package level

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-trim/dsp/core"
)

// ErrLengthMismatch is returned when stereo channels differ in length.
var ErrLengthMismatch = errors.New("level: channel lengths differ")

// Level holds single-channel statistics. dB fields are -Inf for silence.
type Level struct {
	Length        int
	Peak          float64
	PeakDB        float64
	RMS           float64
	RMSDB         float64
	DC            float64
	CrestDB       float64 // peak over RMS
	ZeroCrossings int
}

// Measure computes the level of x in one pass.
func Measure(x []float64) Level {
	n := len(x)
	if n == 0 {
		return Level{PeakDB: math.Inf(-1), RMSDB: math.Inf(-1)}
	}

	var (
		sumSq, sum, c float64
		crossings     int
	)

	for i, v := range x {
		sumSq += v * v

		// Kahan summation keeps small DC offsets visible on long files.
		y := v - c
		t := sum + y
		c = (t - sum) - y
		sum = t

		if i > 0 && x[i-1]*v < 0 {
			crossings++
		}
	}

	peak := vecmath.MaxAbs(x)
	rms := math.Sqrt(sumSq / float64(n))

	var crest float64
	if rms > 0 {
		crest = core.LinearToDB(peak / rms)
	}

	return Level{
		Length:        n,
		Peak:          peak,
		PeakDB:        core.LinearToDB(peak),
		RMS:           rms,
		RMSDB:         core.LinearToDB(rms),
		DC:            sum / float64(n),
		CrestDB:       crest,
		ZeroCrossings: crossings,
	}
}

// Stereo holds two-channel statistics.
type Stereo struct {
	Left, Right Level
	// Correlation is the normalized zero-lag correlation in [-1, 1]: +1 for
	// mono content, -1 for a side-only signal, 0 if either channel is silent.
	Correlation float64
	// BalanceDB is the left RMS over the right RMS.
	BalanceDB float64
	// MidDB and SideDB are the RMS levels of (L+R)/2 and (L-R)/2.
	MidDB  float64
	SideDB float64
}

// MeasureStereo computes per-channel levels and the inter-channel figures.
func MeasureStereo(left, right []float64) (Stereo, error) {
	if len(left) != len(right) {
		return Stereo{}, ErrLengthMismatch
	}

	var sumLR, sumMid, sumSide float64

	for i, l := range left {
		r := right[i]
		sumLR += l * r
		m := (l + r) / 2
		s := (l - r) / 2
		sumMid += m * m
		sumSide += s * s
	}

	st := Stereo{
		Left:      Measure(left),
		Right:     Measure(right),
		BalanceDB: math.NaN(),
		MidDB:     math.Inf(-1),
		SideDB:    math.Inf(-1),
	}

	n := float64(len(left))
	if n == 0 {
		return st, nil
	}

	st.MidDB = core.LinearToDB(math.Sqrt(sumMid / n))
	st.SideDB = core.LinearToDB(math.Sqrt(sumSide / n))

	if st.Left.RMS > 0 && st.Right.RMS > 0 {
		st.Correlation = core.Clamp(sumLR/(n*st.Left.RMS*st.Right.RMS), -1, 1)
		st.BalanceDB = st.Left.RMSDB - st.Right.RMSDB
	}

	return st, nil
}

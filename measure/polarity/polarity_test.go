package polarity

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-trim/dsp/trim"
	"github.com/cwbudde/algo-trim/internal/testutil"
)

func TestAnalyzeIdentity(t *testing.T) {
	ref := testutil.DeterministicNoise(11, 0.8, 1000)

	res, err := Analyze(ref, ref)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if res.Lag != 0 || math.Abs(res.Gain-1) > 1e-12 || res.Inverted {
		t.Fatalf("unexpected result %+v", res)
	}

	if math.Abs(res.Correlation-1) > 1e-12 || math.Abs(res.GainDB) > 1e-9 {
		t.Fatalf("unexpected correlation/gain %+v", res)
	}

	if res.PeakRef != res.PeakOut || res.PeakRef <= 0 || res.PeakRef > 0.8 {
		t.Fatalf("unexpected peaks %+v", res)
	}
}

func TestAnalyzeDetectsTrimAndPolarity(t *testing.T) {
	ref := testutil.DeterministicNoise(5, 0.5, 2048)

	p := trim.NewParams()
	p.SetGainDB(-6)
	p.SetPhaseReverse(true)

	block := [][]float64{append([]float64(nil), ref...)}
	trim.NewEngine().Process(block, p)

	res, err := Analyze(ref, block[0])
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if !res.Inverted || res.Lag != 0 {
		t.Fatalf("expected inverted output at lag 0, got %+v", res)
	}

	if math.Abs(res.GainDB+6) > 1e-9 {
		t.Fatalf("GainDB = %v, want -6", res.GainDB)
	}

	if math.Abs(res.Correlation+1) > 1e-12 {
		t.Fatalf("Correlation = %v, want -1", res.Correlation)
	}
}

func TestAnalyzeDelay(t *testing.T) {
	const delay = 17

	ref := testutil.DeterministicNoise(9, 1, 512)
	out := make([]float64, len(ref)+delay)
	copy(out[delay:], ref)

	res, err := Analyze(ref, out)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if res.Lag != delay || math.Abs(res.Gain-1) > 1e-12 {
		t.Fatalf("unexpected result %+v", res)
	}

	// Reference late relative to the output.
	res, err = Analyze(out, ref)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if res.Lag != -delay {
		t.Fatalf("Lag = %d, want %d", res.Lag, -delay)
	}
}

func TestAnalyzeMaxLag(t *testing.T) {
	ref := testutil.DeterministicNoise(2, 1, 256)
	out := make([]float64, len(ref)+40)
	copy(out[40:], ref)

	res, err := Analyze(ref, out, WithMaxLag(8))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if res.Lag < -8 || res.Lag > 8 {
		t.Fatalf("Lag = %d outside the search window", res.Lag)
	}

	if _, err := Analyze(ref, out, WithMaxLag(-1)); err == nil {
		t.Fatal("expected error for negative max lag")
	}
}

func TestAnalyzeSilence(t *testing.T) {
	res, err := Analyze(make([]float64, 64), testutil.DeterministicNoise(1, 1, 64))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if res.Gain != 0 || res.Correlation != 0 || !math.IsInf(res.GainDB, -1) {
		t.Fatalf("unexpected result for silent reference %+v", res)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	if _, err := Analyze(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("error = %v, want ErrEmptyInput", err)
	}

	_, err := AnalyzeChannels([][]float64{{1}}, [][]float64{{1}, {1}})
	if !errors.Is(err, ErrChannelMismatch) {
		t.Fatalf("error = %v, want ErrChannelMismatch", err)
	}

	_, err = AnalyzeChannels([][]float64{{1}, {}}, [][]float64{{1}, {1}})
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("error = %v, want wrapped ErrEmptyInput", err)
	}
}

func TestAnalyzeChannelsStereoFlip(t *testing.T) {
	ref := testutil.StereoBlock(1024)

	p := trim.NewParams()
	p.SetStereoFlip(true)

	out := testutil.CloneBlock(ref)
	trim.NewEngine().Process(out, p)

	// Swap the reference to line channels up with the flipped output.
	results, err := AnalyzeChannels([][]float64{ref[1], ref[0]}, out)
	if err != nil {
		t.Fatalf("AnalyzeChannels() error = %v", err)
	}

	for ch, res := range results {
		if res.Lag != 0 || math.Abs(res.Gain-1) > 1e-12 || res.Inverted {
			t.Fatalf("channel %d: unexpected result %+v", ch, res)
		}
	}
}

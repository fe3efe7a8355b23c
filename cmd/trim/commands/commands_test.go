package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-trim/internal/testutil"
	"github.com/cwbudde/algo-trim/internal/wavio"
)

func runCmd(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	root := NewRootCmd()
	root.SetOut(&outBuf)
	root.SetErr(&errBuf)
	root.SetArgs(args)

	err = root.Execute()

	return outBuf.String(), errBuf.String(), err
}

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func writeTestWAV(t *testing.T, name string, channels [][]float64) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)

	err := wavio.WriteFile(path, &wavio.Audio{SampleRate: 48000, BitDepth: 24, Channels: channels})
	if err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	return path
}

func readTestWAV(t *testing.T, path string) *wavio.Audio {
	t.Helper()

	a, err := wavio.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	return a
}

func constant(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// Quantizing twice to 24 bits.
const wavTolerance = 2.0 / (1 << 23)

func TestProcessLeftSoloFlipGain(t *testing.T) {
	in := writeTestWAV(t, "in.wav", testutil.StereoBlock(1000))
	out := filepath.Join(t.TempDir(), "out.wav")

	_, _, err := runCmd(t, "process", "-i", in, "-o", out,
		"--solo", "left", "--flip", "--gain", "-6", "--block", "37")
	if err != nil {
		t.Fatalf("process error = %v", err)
	}

	src := readTestWAV(t, in)
	got := readTestWAV(t, out)

	if got.BitDepth != 24 || got.SampleRate != 48000 {
		t.Fatalf("format = %d bit @ %d Hz", got.BitDepth, got.SampleRate)
	}

	g := 0.5011872336272722
	wantRight := make([]float64, len(src.Channels[0]))

	for i, v := range src.Channels[0] {
		wantRight[i] = v * g
	}

	testutil.RequireSliceNearlyEqual(t, got.Channels[0], make([]float64, 1000), 0)
	testutil.RequireSliceNearlyEqual(t, got.Channels[1], wantRight, wavTolerance)
}

func TestProcessFlagOverridesPreset(t *testing.T) {
	preset := writeTestFile(t, "p.yaml", "gain: -12 dB\nphase_reverse: on\n")
	in := writeTestWAV(t, "mono.wav", [][]float64{constant(0.25, 64)})
	out := filepath.Join(t.TempDir(), "out.wav")

	_, _, err := runCmd(t, "process", "-i", in, "-o", out, "--preset", preset, "--gain", "0")
	if err != nil {
		t.Fatalf("process error = %v", err)
	}

	got := readTestWAV(t, out)
	testutil.RequireSliceNearlyEqual(t, got.Channels[0], constant(-0.25, 64), wavTolerance)
}

func TestProcessErrors(t *testing.T) {
	three := writeTestWAV(t, "three.wav", [][]float64{constant(0, 8), constant(0, 8), constant(0, 8)})
	out := filepath.Join(t.TempDir(), "out.wav")

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing output", args: []string{"process", "-i", three}},
		{name: "three channels", args: []string{"process", "-i", three, "-o", out}},
		{name: "bad solo", args: []string{"process", "-i", three, "-o", out, "--solo", "centre"}},
		{name: "missing preset", args: []string{"process", "-i", three, "-o", out, "--preset", "nope.yaml"}},
		{name: "zero block", args: []string{"process", "-i", three, "-o", out, "--block", "0"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := runCmd(t, tc.args...); err == nil {
				t.Fatal("expected error")
			}
		})
	}

	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("failed runs must not write output, stat err = %v", err)
	}
}

func TestAnalyzeReportsInversion(t *testing.T) {
	in := writeTestWAV(t, "in.wav", testutil.StereoBlock(1000))
	out := filepath.Join(t.TempDir(), "out.wav")

	if _, _, err := runCmd(t, "process", "-i", in, "-o", out, "--phase"); err != nil {
		t.Fatalf("process error = %v", err)
	}

	stdout, _, err := runCmd(t, "analyze", "-a", in, "-b", out, "--max-lag", "64")
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}

	if n := bytes.Count([]byte(stdout), []byte("inverted")); n != 2 {
		t.Fatalf("expected both channels inverted, got:\n%s", stdout)
	}

	if !bytes.Contains([]byte(stdout), []byte("-1.0000")) {
		t.Fatalf("expected gain -1.0000, got:\n%s", stdout)
	}
}

func TestParams(t *testing.T) {
	stdout, _, err := runCmd(t, "params")
	if err != nil {
		t.Fatalf("params error = %v", err)
	}

	for _, want := range []string{"Trim", "phase_reverse", "Stereo Flip", "-60.0 dB .. 12.0 dB", "Mids"} {
		if !bytes.Contains([]byte(stdout), []byte(want)) {
			t.Errorf("params output missing %q:\n%s", want, stdout)
		}
	}
}

func TestLevelsAfterSideSolo(t *testing.T) {
	in := writeTestWAV(t, "in.wav", testutil.StereoBlock(2000))
	out := filepath.Join(t.TempDir(), "side.wav")

	if _, _, err := runCmd(t, "process", "-i", in, "-o", out, "--solo", "side", "--dither", "tpdf"); err != nil {
		t.Fatalf("process error = %v", err)
	}

	stdout, _, err := runCmd(t, "levels", "-i", out)
	if err != nil {
		t.Fatalf("levels error = %v", err)
	}

	for _, want := range []string{"CHANNEL", "correlation -"} {
		if !bytes.Contains([]byte(stdout), []byte(want)) {
			t.Fatalf("levels output missing %q:\n%s", want, stdout)
		}
	}
}

func TestProcessRejectsUnknownDither(t *testing.T) {
	in := writeTestWAV(t, "in.wav", [][]float64{constant(0.1, 8)})
	out := filepath.Join(t.TempDir(), "out.wav")

	if _, _, err := runCmd(t, "process", "-i", in, "-o", out, "--dither", "shaped"); err == nil {
		t.Fatal("expected error for unknown dither")
	}
}

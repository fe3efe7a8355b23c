package core

import "testing"

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]float64, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}
}

func TestEnsureLenGrow(t *testing.T) {
	out := EnsureLen(make([]float64, 2), 16)
	if len(out) != 16 {
		t.Fatalf("len = %d, want 16", len(out))
	}
}

func TestDeinterleaveInterleaveRoundTrip(t *testing.T) {
	src := []float64{1, -1, 2, -2, 3, -3}
	planar := [][]float64{make([]float64, 3), make([]float64, 3)}

	if err := Deinterleave(planar, src); err != nil {
		t.Fatalf("Deinterleave() error = %v", err)
	}

	if planar[0][2] != 3 || planar[1][2] != -3 {
		t.Fatalf("unexpected planar data: %#v", planar)
	}

	out := make([]float64, len(src))
	if n := Interleave(out, planar); n != 3 {
		t.Fatalf("Interleave() frames = %d, want 3", n)
	}

	for i := range src {
		if out[i] != src[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], src[i])
		}
	}
}

func TestDeinterleaveErrors(t *testing.T) {
	if err := Deinterleave(nil, []float64{1}); err == nil {
		t.Fatal("expected error for zero channels")
	}

	if err := Deinterleave([][]float64{make([]float64, 2), make([]float64, 2)}, []float64{1, 2, 3}); err == nil {
		t.Fatal("expected error for ragged interleaved buffer")
	}

	if err := Deinterleave([][]float64{make([]float64, 1), make([]float64, 1)}, []float64{1, 2, 3, 4}); err == nil {
		t.Fatal("expected error for short destination channel")
	}
}

func TestInterleaveShortDestination(t *testing.T) {
	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	dst := make([]float64, 4)

	if n := Interleave(dst, src); n != 2 {
		t.Fatalf("frames = %d, want 2", n)
	}

	want := []float64{1, 4, 2, 5}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

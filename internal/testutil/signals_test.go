package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}

	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}

	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 256)
	b := DeterministicNoise(42, 1.0, 256)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
	}
}

func TestImpulse(t *testing.T) {
	imp := Impulse(8, 3)
	for i, v := range imp {
		want := 0.0
		if i == 3 {
			want = 1
		}

		if v != want {
			t.Fatalf("imp[%d] = %v, want %v", i, v, want)
		}
	}

	if out := Impulse(4, 9); out[0] != 0 || out[3] != 0 {
		t.Fatal("out-of-range position should yield silence")
	}
}

func TestCloneBlockIsDeep(t *testing.T) {
	src := StereoBlock(16)
	dst := CloneBlock(src)
	dst[0][0] = 99

	if src[0][0] == 99 {
		t.Fatal("CloneBlock shares backing storage with its source")
	}
}

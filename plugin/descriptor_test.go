package plugin

import (
	"math"
	"testing"
)

func TestDescriptorsDeclarationOrder(t *testing.T) {
	want := []string{
		IDGain, IDPhaseReverse, IDStereoFlip,
		IDMidSolo, IDSideSolo, IDLeftSolo, IDRightSolo, IDStereoSolo,
	}

	got := Descriptors()
	if len(got) != len(want) {
		t.Fatalf("len(Descriptors()) = %d, want %d", len(got), len(want))
	}

	for i, d := range got {
		if d.ID != want[i] {
			t.Fatalf("Descriptors()[%d].ID = %q, want %q", i, d.ID, want[i])
		}
	}

	got[0].Name = "mutated"
	if d, _ := Lookup(IDGain); d.Name != "Gain" {
		t.Fatal("Descriptors() exposed the internal table")
	}
}

func TestDescriptorDefaultsAndRanges(t *testing.T) {
	gain, ok := Lookup(IDGain)
	if !ok {
		t.Fatal("gain descriptor missing")
	}

	if gain.Min != -60 || gain.Max != 12 || gain.Default != 0 || gain.Kind != KindFloat {
		t.Fatalf("unexpected gain descriptor %+v", gain)
	}

	stereo, _ := Lookup(IDStereoSolo)
	if stereo.Default != 1 || stereo.Kind != KindBool {
		t.Fatalf("unexpected stereo descriptor %+v", stereo)
	}

	for _, id := range []string{IDPhaseReverse, IDStereoFlip, IDMidSolo, IDSideSolo, IDLeftSolo, IDRightSolo} {
		d, _ := Lookup(id)
		if d.Default != 0 {
			t.Fatalf("%s default = %v, want 0", id, d.Default)
		}
	}

	if _, ok := Lookup("volume"); ok {
		t.Fatal("Lookup(\"volume\") unexpectedly succeeded")
	}
}

func TestDescriptorNormalizeRoundTrip(t *testing.T) {
	gain, _ := Lookup(IDGain)

	tests := []struct {
		plain, norm float64
	}{
		{plain: -60, norm: 0},
		{plain: 12, norm: 1},
		{plain: 0, norm: 60.0 / 72.0},
		{plain: -100, norm: 0},
		{plain: 40, norm: 1},
	}

	for _, tt := range tests {
		if got := gain.Normalize(tt.plain); math.Abs(got-tt.norm) > 1e-12 {
			t.Errorf("Normalize(%g) = %v, want %v", tt.plain, got, tt.norm)
		}
	}

	if got := gain.Denormalize(60.0 / 72.0); math.Abs(got) > 1e-12 {
		t.Fatalf("Denormalize(0 dB point) = %v, want 0", got)
	}

	flip, _ := Lookup(IDStereoFlip)
	if flip.Denormalize(0.49) != 0 || flip.Denormalize(0.5) != 1 {
		t.Fatal("switch denormalization must snap at 0.5")
	}
}

func TestDescriptorFormatParse(t *testing.T) {
	gain, _ := Lookup(IDGain)

	if got := gain.Format(-6); got != "-6.0 dB" {
		t.Fatalf("Format(-6) = %q", got)
	}

	for _, s := range []string{"-6.0 dB", "-6 db", " -6 "} {
		v, err := gain.Parse(s)
		if err != nil || v != -6 {
			t.Fatalf("Parse(%q) = (%v, %v), want -6", s, v, err)
		}
	}

	if _, err := gain.Parse("loud"); err == nil {
		t.Fatal("expected parse error")
	}

	phase, _ := Lookup(IDPhaseReverse)
	if phase.Format(1) != "On" || phase.Format(0) != "Off" {
		t.Fatal("unexpected switch formatting")
	}

	if v, err := phase.Parse("ON"); err != nil || v != 1 {
		t.Fatalf("Parse(ON) = (%v, %v)", v, err)
	}

	if _, err := phase.Parse("maybe"); err == nil {
		t.Fatal("expected switch parse error")
	}
}

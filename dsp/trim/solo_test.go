package trim

import "testing"

func TestSoloFlagsResolve(t *testing.T) {
	tests := []struct {
		name  string
		flags SoloFlags
		want  SoloMode
		ok    bool
	}{
		{name: "none", flags: 0, want: SoloStereo, ok: false},
		{name: "mid", flags: SoloMid.Flag(), want: SoloMid, ok: true},
		{name: "side", flags: SoloSide.Flag(), want: SoloSide, ok: true},
		{name: "left", flags: SoloLeft.Flag(), want: SoloLeft, ok: true},
		{name: "right", flags: SoloRight.Flag(), want: SoloRight, ok: true},
		{name: "stereo", flags: SoloStereo.Flag(), want: SoloStereo, ok: true},
		{name: "mid+stereo", flags: SoloMid.Flag() | SoloStereo.Flag(), want: SoloStereo, ok: true},
		{name: "mid+side", flags: SoloMid.Flag() | SoloSide.Flag(), want: SoloSide, ok: true},
		{name: "side+right", flags: SoloSide.Flag() | SoloRight.Flag(), want: SoloRight, ok: true},
		{name: "all", flags: soloFlagMask, want: SoloStereo, ok: true},
		{name: "foreign bits ignored", flags: 1 << 7, want: SoloStereo, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.flags.Resolve()
			if got != tt.want || ok != tt.ok {
				t.Fatalf("Resolve() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseSoloMode(t *testing.T) {
	for _, m := range SoloModes() {
		got, err := ParseSoloMode(m.String())
		if err != nil {
			t.Fatalf("ParseSoloMode(%q) error = %v", m.String(), err)
		}

		if got != m {
			t.Fatalf("ParseSoloMode(%q) = %v, want %v", m.String(), got, m)
		}
	}

	if got, err := ParseSoloMode("  Side "); err != nil || got != SoloSide {
		t.Fatalf("ParseSoloMode(\"  Side \") = (%v, %v), want side", got, err)
	}

	if _, err := ParseSoloMode("center"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestSoloModeInvalid(t *testing.T) {
	m := SoloMode(9)
	if m.Valid() {
		t.Fatal("SoloMode(9) reported valid")
	}

	if m.Flag() != 0 {
		t.Fatalf("Flag() = %v, want 0", m.Flag())
	}

	if m.String() != "SoloMode(9)" {
		t.Fatalf("String() = %q", m.String())
	}
}

func TestSoloFlagsHelpers(t *testing.T) {
	f := SoloFlags(0).With(SoloMid, true).With(SoloStereo, true)
	if !f.Has(SoloMid) || !f.Has(SoloStereo) || f.Has(SoloLeft) {
		t.Fatalf("unexpected flags %v", f)
	}

	if f.Exclusive() {
		t.Fatal("two flags reported exclusive")
	}

	if got := f.String(); got != "mid|stereo" {
		t.Fatalf("String() = %q, want mid|stereo", got)
	}

	f = f.With(SoloMid, false)
	if !f.Exclusive() {
		t.Fatal("single flag not reported exclusive")
	}

	if got := SoloFlags(0).String(); got != "none" {
		t.Fatalf("String() = %q, want none", got)
	}
}

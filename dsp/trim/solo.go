package trim

import (
	"fmt"
	"math/bits"
	"strings"
)

// SoloMode selects how the two input channels of a stereo frame are combined.
type SoloMode uint8

const (
	// SoloMid outputs (L+R)/2 on both channels.
	SoloMid SoloMode = iota
	// SoloSide outputs (L-R)/2 on the left and its negation on the right.
	SoloSide
	// SoloLeft keeps the left channel and silences the right.
	SoloLeft
	// SoloRight silences the left channel and keeps the right.
	SoloRight
	// SoloStereo passes both channels unchanged.
	SoloStereo

	numSoloModes = 5
)

var soloModeNames = [numSoloModes]string{"mid", "side", "left", "right", "stereo"}

// String returns the parameter identifier of m ("mid", "side", ...).
func (m SoloMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("SoloMode(%d)", uint8(m))
	}

	return soloModeNames[m]
}

// Valid reports whether m is one of the five defined modes.
func (m SoloMode) Valid() bool { return m < numSoloModes }

// Flag returns the single-bit flag set selecting m.
func (m SoloMode) Flag() SoloFlags {
	if !m.Valid() {
		return 0
	}

	return 1 << m
}

// ParseSoloMode parses a mode name. Matching is case-insensitive.
func ParseSoloMode(s string) (SoloMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range soloModeNames {
		if n == name {
			return SoloMode(i), nil
		}
	}

	return 0, fmt.Errorf("trim: unknown solo mode %q (want one of %s)",
		s, strings.Join(soloModeNames[:], ", "))
}

// SoloModes returns all modes in evaluation order.
func SoloModes() []SoloMode {
	return []SoloMode{SoloMid, SoloSide, SoloLeft, SoloRight, SoloStereo}
}

// SoloFlags is the set of independently switchable solo flags. Bit i
// corresponds to SoloMode(i).
//
// The flags are meant to behave like a radio group, but nothing stops a host
// from automating several of them at once. When more than one flag is set
// the mode with the highest bit wins, which reproduces evaluating the flags
// in the order mid, side, left, right, stereo with each true flag
// overwriting the previous selection.
type SoloFlags uint32

const soloFlagMask SoloFlags = 1<<numSoloModes - 1

// Has reports whether the flag for m is set.
func (f SoloFlags) Has(m SoloMode) bool { return f&m.Flag() != 0 }

// With returns f with the flag for m set or cleared.
func (f SoloFlags) With(m SoloMode, on bool) SoloFlags {
	if on {
		return f | m.Flag()
	}

	return f &^ m.Flag()
}

// Resolve returns the mode that wins among the set flags. ok is false when no
// flag is set; the engine then leaves the stereo pair unchanged.
func (f SoloFlags) Resolve() (mode SoloMode, ok bool) {
	f &= soloFlagMask
	if f == 0 {
		return SoloStereo, false
	}

	return SoloMode(bits.Len32(uint32(f)) - 1), true
}

// Exclusive reports whether exactly one flag is set.
func (f SoloFlags) Exclusive() bool {
	return bits.OnesCount32(uint32(f&soloFlagMask)) == 1
}

// String lists the set flags, e.g. "mid|stereo", or "none".
func (f SoloFlags) String() string {
	f &= soloFlagMask
	if f == 0 {
		return "none"
	}

	var names []string

	for _, m := range SoloModes() {
		if f.Has(m) {
			names = append(names, m.String())
		}
	}

	return strings.Join(names, "|")
}

package trim

import (
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-trim/dsp/core"
)

// Gain range and defaults in decibels.
const (
	MinGainDB     = -60.0
	MaxGainDB     = 12.0
	DefaultGainDB = 0.0
)

// DefaultSoloMode is the solo selection of a fresh parameter set.
const DefaultSoloMode = SoloStereo

// Bit layout of Params.flags. Bits 0-4 hold SoloFlags.
const (
	phaseReverseBit uint32 = 1 << (numSoloModes + iota)
	stereoFlipBit
)

// Params is the shared parameter state of one processing session.
//
// Each setter is a single atomic store or read-modify-write and each getter a
// single atomic load, so one writer goroutine (UI, automation) and one reader
// goroutine (audio callback) may use a Params concurrently without locks.
// Setters do not validate: gain range enforcement belongs to the binding
// layer in front of Params.
//
// The zero value has 0 dB gain and no flag set, which processes identically
// to the defaults but reports StereoSolo() == false. Use NewParams for the
// documented defaults.
type Params struct {
	gainBits atomic.Uint64
	flags    atomic.Uint32
}

// NewParams returns a parameter set with the default values: 0 dB gain,
// phase reverse and stereo flip off, stereo solo selected.
func NewParams() *Params {
	p := &Params{}
	p.Reset()

	return p
}

// Reset restores the defaults.
func (p *Params) Reset() {
	p.gainBits.Store(math.Float64bits(DefaultGainDB))
	p.flags.Store(uint32(DefaultSoloMode.Flag()))
}

// GainDB returns the gain trim in decibels.
func (p *Params) GainDB() float64 { return math.Float64frombits(p.gainBits.Load()) }

// SetGainDB sets the gain trim in decibels. The value is stored as given.
func (p *Params) SetGainDB(db float64) { p.gainBits.Store(math.Float64bits(db)) }

// PhaseReverse reports whether polarity inversion is on.
func (p *Params) PhaseReverse() bool { return p.flags.Load()&phaseReverseBit != 0 }

// SetPhaseReverse switches polarity inversion.
func (p *Params) SetPhaseReverse(on bool) { p.setBits(phaseReverseBit, on) }

// StereoFlip reports whether left and right are swapped.
func (p *Params) StereoFlip() bool { return p.flags.Load()&stereoFlipBit != 0 }

// SetStereoFlip switches the left/right swap.
func (p *Params) SetStereoFlip(on bool) { p.setBits(stereoFlipBit, on) }

// The per-mode solo accessors mirror the host-visible boolean parameters.
// Setting one flag leaves the other four untouched; see SelectSolo for the
// radio-group behavior.

func (p *Params) MidSolo() bool         { return p.soloFlag(SoloMid) }
func (p *Params) SetMidSolo(on bool)    { p.SetSolo(SoloMid, on) }
func (p *Params) SideSolo() bool        { return p.soloFlag(SoloSide) }
func (p *Params) SetSideSolo(on bool)   { p.SetSolo(SoloSide, on) }
func (p *Params) LeftSolo() bool        { return p.soloFlag(SoloLeft) }
func (p *Params) SetLeftSolo(on bool)   { p.SetSolo(SoloLeft, on) }
func (p *Params) RightSolo() bool       { return p.soloFlag(SoloRight) }
func (p *Params) SetRightSolo(on bool)  { p.SetSolo(SoloRight, on) }
func (p *Params) StereoSolo() bool      { return p.soloFlag(SoloStereo) }
func (p *Params) SetStereoSolo(on bool) { p.SetSolo(SoloStereo, on) }

// Solo returns the raw solo flags.
func (p *Params) Solo() SoloFlags { return SoloFlags(p.flags.Load()) & soloFlagMask }

// SetSolo sets or clears the flag for m without touching the other flags.
func (p *Params) SetSolo(m SoloMode, on bool) {
	if !m.Valid() {
		return
	}

	p.setBits(uint32(m.Flag()), on)
}

// SoloMode returns the effective solo selection after tie-breaking.
func (p *Params) SoloMode() SoloMode {
	m, _ := p.Solo().Resolve()
	return m
}

// SelectSolo makes m the only set solo flag. The five flags change in one
// atomic step, so the reader never observes an intermediate combination.
// Invalid modes are ignored.
func (p *Params) SelectSolo(m SoloMode) {
	if !m.Valid() {
		return
	}

	for {
		old := p.flags.Load()

		next := old&^uint32(soloFlagMask) | uint32(m.Flag())
		if p.flags.CompareAndSwap(old, next) {
			return
		}
	}
}

// Snapshot loads all values for one block.
func (p *Params) Snapshot() Snapshot {
	flags := p.flags.Load()

	return Snapshot{
		GainDB:       p.GainDB(),
		PhaseReverse: flags&phaseReverseBit != 0,
		StereoFlip:   flags&stereoFlipBit != 0,
		Solo:         SoloFlags(flags) & soloFlagMask,
	}
}

func (p *Params) soloFlag(m SoloMode) bool { return p.flags.Load()&uint32(m.Flag()) != 0 }

func (p *Params) setBits(mask uint32, on bool) {
	if on {
		p.flags.Or(mask)
	} else {
		p.flags.And(^mask)
	}
}

// Snapshot is a plain copy of Params taken at a block boundary.
type Snapshot struct {
	GainDB       float64
	PhaseReverse bool
	StereoFlip   bool
	Solo         SoloFlags
}

// DefaultSnapshot returns the values of a fresh Params.
func DefaultSnapshot() Snapshot {
	return Snapshot{GainDB: DefaultGainDB, Solo: DefaultSoloMode.Flag()}
}

// GainLinear converts GainDB to an amplitude factor.
func (s Snapshot) GainLinear() float64 { return core.DBToLinear(s.GainDB) }

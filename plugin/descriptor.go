package plugin

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-trim/dsp/core"
	"github.com/cwbudde/algo-trim/dsp/trim"
)

// Stable parameter identifiers.
const (
	IDGain         = "gain"
	IDPhaseReverse = "phase_reverse"
	IDStereoFlip   = "stereo_flip"
	IDMidSolo      = "mid"
	IDSideSolo     = "side"
	IDLeftSolo     = "left"
	IDRightSolo    = "right"
	IDStereoSolo   = "stereo"
)

// Kind distinguishes continuous from switch parameters.
type Kind uint8

const (
	KindFloat Kind = iota
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Descriptor is the host-visible metadata of one parameter. Values are in
// plain units (dB for gain, 0/1 for switches) unless a method says otherwise.
type Descriptor struct {
	ID      string
	Name    string
	Unit    string
	Kind    Kind
	Min     float64
	Max     float64
	Default float64
}

var descriptors = []Descriptor{
	{ID: IDGain, Name: "Gain", Unit: "dB", Kind: KindFloat,
		Min: trim.MinGainDB, Max: trim.MaxGainDB, Default: trim.DefaultGainDB},
	{ID: IDPhaseReverse, Name: "Phase Reverse", Kind: KindBool, Max: 1},
	{ID: IDStereoFlip, Name: "Stereo Flip", Kind: KindBool, Max: 1},
	{ID: IDMidSolo, Name: "Mids", Kind: KindBool, Max: 1},
	{ID: IDSideSolo, Name: "Sides", Kind: KindBool, Max: 1},
	{ID: IDLeftSolo, Name: "Left", Kind: KindBool, Max: 1},
	{ID: IDRightSolo, Name: "Right", Kind: KindBool, Max: 1},
	{ID: IDStereoSolo, Name: "Stereo", Kind: KindBool, Max: 1, Default: 1},
}

var soloIDs = map[string]trim.SoloMode{
	IDMidSolo:    trim.SoloMid,
	IDSideSolo:   trim.SoloSide,
	IDLeftSolo:   trim.SoloLeft,
	IDRightSolo:  trim.SoloRight,
	IDStereoSolo: trim.SoloStereo,
}

// Descriptors returns the parameters in declaration order. The returned
// slice is a copy.
func Descriptors() []Descriptor {
	return append([]Descriptor(nil), descriptors...)
}

// Lookup returns the descriptor for id.
func Lookup(id string) (Descriptor, bool) {
	for _, d := range descriptors {
		if d.ID == id {
			return d, true
		}
	}

	return Descriptor{}, false
}

// Normalize maps a plain value to [0, 1].
func (d Descriptor) Normalize(plain float64) float64 {
	if d.Max <= d.Min {
		return 0
	}

	return core.Clamp((plain-d.Min)/(d.Max-d.Min), 0, 1)
}

// Denormalize maps a normalized value in [0, 1] to plain units. Switches
// snap to 0 or 1 at the midpoint.
func (d Descriptor) Denormalize(normalized float64) float64 {
	normalized = core.Clamp(normalized, 0, 1)
	if d.Kind == KindBool {
		if normalized >= 0.5 {
			return 1
		}

		return 0
	}

	return d.Min + normalized*(d.Max-d.Min)
}

// Format renders a plain value for display.
func (d Descriptor) Format(plain float64) string {
	if d.Kind == KindBool {
		if plain >= 0.5 {
			return "On"
		}

		return "Off"
	}

	if d.Unit == "" {
		return fmt.Sprintf("%.2f", plain)
	}

	return fmt.Sprintf("%.1f %s", plain, d.Unit)
}

// Parse reads a display string back into a plain value. It accepts what
// Format produces plus bare numbers and the usual switch words.
func (d Descriptor) Parse(s string) (float64, error) {
	str := strings.TrimSpace(s)

	if d.Kind == KindBool {
		switch strings.ToLower(str) {
		case "on", "true", "yes", "1":
			return 1, nil
		case "off", "false", "no", "0":
			return 0, nil
		default:
			return 0, fmt.Errorf("plugin: %s: cannot parse %q as a switch", d.ID, s)
		}
	}

	if d.Unit != "" {
		str = strings.TrimSpace(strings.TrimSuffix(str, d.Unit))
		str = strings.TrimSpace(strings.TrimSuffix(str, strings.ToLower(d.Unit)))
	}

	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("plugin: %s: cannot parse %q: %w", d.ID, s, err)
	}

	if math.IsNaN(v) {
		return 0, fmt.Errorf("plugin: %s: value must be a number: %q", d.ID, s)
	}

	return v, nil
}

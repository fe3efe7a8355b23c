package plugin

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-trim/dsp/core"
	"github.com/cwbudde/algo-trim/dsp/trim"
)

var (
	// ErrUnknownParameter is returned for change events with an unregistered ID.
	ErrUnknownParameter = errors.New("plugin: unknown parameter")
	// ErrInvalidValue is returned for values that cannot be applied (NaN).
	ErrInvalidValue = errors.New("plugin: invalid parameter value")
)

// Change is one discrete parameter-change event from the UI or host
// automation. Value is in plain units: decibels for gain, 0 or 1 for
// switches.
type Change struct {
	ID    string
	Value float64
}

// Binding writes change events into a shared parameter set. It runs on the
// UI/automation side and is the only place where gain is range-checked.
type Binding struct {
	params *trim.Params
}

// NewBinding returns a binding writing to p.
func NewBinding(p *trim.Params) *Binding {
	return &Binding{params: p}
}

// Params returns the bound parameter set.
func (b *Binding) Params() *trim.Params { return b.params }

// Apply writes one change. Gain is clamped to its declared range; switch
// values of 0.5 and above mean on. Solo flags are written independently, as
// a host automating them would; use SelectSolo for radio-group behavior.
func (b *Binding) Apply(c Change) error {
	if math.IsNaN(c.Value) {
		return fmt.Errorf("%w: %s = NaN", ErrInvalidValue, c.ID)
	}

	on := c.Value >= 0.5

	switch c.ID {
	case IDGain:
		b.params.SetGainDB(core.Clamp(c.Value, trim.MinGainDB, trim.MaxGainDB))
	case IDPhaseReverse:
		b.params.SetPhaseReverse(on)
	case IDStereoFlip:
		b.params.SetStereoFlip(on)
	default:
		mode, ok := soloIDs[c.ID]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownParameter, c.ID)
		}

		b.params.SetSolo(mode, on)
	}

	return nil
}

// ApplyAll applies changes in order and stops at the first error.
func (b *Binding) ApplyAll(changes ...Change) error {
	for _, c := range changes {
		if err := b.Apply(c); err != nil {
			return err
		}
	}

	return nil
}

// ApplyNormalized applies a host-normalized value in [0, 1].
func (b *Binding) ApplyNormalized(id string, normalized float64) error {
	d, ok := Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownParameter, id)
	}

	if math.IsNaN(normalized) {
		return fmt.Errorf("%w: %s = NaN", ErrInvalidValue, id)
	}

	return b.Apply(Change{ID: id, Value: d.Denormalize(normalized)})
}

// SelectSolo makes mode the only active solo selection, the way a radio
// button group does.
func (b *Binding) SelectSolo(mode trim.SoloMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: solo mode %v", ErrInvalidValue, mode)
	}

	b.params.SelectSolo(mode)

	return nil
}

// Value returns the current plain value of id.
func (b *Binding) Value(id string) (float64, error) {
	switch id {
	case IDGain:
		return b.params.GainDB(), nil
	case IDPhaseReverse:
		return boolValue(b.params.PhaseReverse()), nil
	case IDStereoFlip:
		return boolValue(b.params.StereoFlip()), nil
	}

	mode, ok := soloIDs[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownParameter, id)
	}

	return boolValue(b.params.Solo().Has(mode)), nil
}

// NormalizedValue returns the current value of id mapped to [0, 1].
func (b *Binding) NormalizedValue(id string) (float64, error) {
	d, ok := Lookup(id)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownParameter, id)
	}

	v, err := b.Value(id)
	if err != nil {
		return 0, err
	}

	return d.Normalize(v), nil
}

func boolValue(on bool) float64 {
	if on {
		return 1
	}

	return 0
}

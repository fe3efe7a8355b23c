package commands

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/cwbudde/algo-trim/dsp/trim"
	"github.com/cwbudde/algo-trim/plugin"
)

// soloKey selects one solo mode exclusively, as the radio buttons do. The
// individual solo IDs (mid, side, ...) remain available as raw switches.
const soloKey = "solo"

// Preset is a parsed preset file. Keys are parameter IDs; values use the
// same syntax the parameter display does ("-6 dB", "on", 0.5).
//
//	gain: -6 dB
//	phase_reverse: on
//	solo: side
type Preset struct {
	Changes []plugin.Change
	Solo    *trim.SoloMode
}

// LoadPreset reads and parses a YAML preset file.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset %s: %w", path, err)
	}

	p, err := ParsePreset(data)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", path, err)
	}

	return p, nil
}

// ParsePreset parses YAML preset data. Changes come out in parameter
// declaration order regardless of key order in the file.
func ParsePreset(data []byte) (*Preset, error) {
	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	p := &Preset{}

	if v, ok := raw[soloKey]; ok {
		mode, err := trim.ParseSoloMode(fmt.Sprint(v))
		if err != nil {
			return nil, err
		}

		p.Solo = &mode
		delete(raw, soloKey)
	}

	for _, d := range plugin.Descriptors() {
		v, ok := raw[d.ID]
		if !ok {
			continue
		}

		plain, err := d.Parse(fmt.Sprint(v))
		if err != nil {
			return nil, err
		}

		p.Changes = append(p.Changes, plugin.Change{ID: d.ID, Value: plain})
		delete(raw, d.ID)
	}

	if len(raw) > 0 {
		unknown := slices.Sorted(maps.Keys(raw))
		return nil, fmt.Errorf("%w: %s", plugin.ErrUnknownParameter, strings.Join(unknown, ", "))
	}

	return p, nil
}

// Apply writes the preset through b. The exclusive solo selection is
// applied last so it wins over raw solo switches in the same file.
func (p *Preset) Apply(b *plugin.Binding) error {
	if err := b.ApplyAll(p.Changes...); err != nil {
		return err
	}

	if p.Solo != nil {
		return b.SelectSolo(*p.Solo)
	}

	return nil
}

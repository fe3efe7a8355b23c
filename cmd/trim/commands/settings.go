package commands

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-trim/dsp/trim"
	"github.com/cwbudde/algo-trim/plugin"
)

// paramFlags are the parameter flags shared by process and monitor.
type paramFlags struct {
	preset string
	gain   float64
	solo   string
	phase  bool
	flip   bool
}

func (f *paramFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.preset, "preset", "", "YAML preset file")
	cmd.Flags().Float64Var(&f.gain, "gain", trim.DefaultGainDB, "gain in dB")
	cmd.Flags().StringVar(&f.solo, "solo", trim.DefaultSoloMode.String(), "solo mode: mid, side, left, right, stereo")
	cmd.Flags().BoolVar(&f.phase, "phase", false, "reverse polarity")
	cmd.Flags().BoolVar(&f.flip, "flip", false, "swap left and right")
}

// newProcessor builds a processor from the preset, then lets any flag given
// on the command line override it.
func (f *paramFlags) newProcessor(cmd *cobra.Command) (*plugin.Processor, error) {
	proc, err := plugin.NewProcessor()
	if err != nil {
		return nil, err
	}

	b := proc.Binding()

	if f.preset != "" {
		p, err := LoadPreset(f.preset)
		if err != nil {
			return nil, err
		}

		if err := p.Apply(b); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()

	if flags.Changed("solo") {
		mode, err := trim.ParseSoloMode(f.solo)
		if err != nil {
			return nil, err
		}

		if err := b.SelectSolo(mode); err != nil {
			return nil, err
		}
	}

	var changes []plugin.Change

	if flags.Changed("gain") {
		changes = append(changes, plugin.Change{ID: plugin.IDGain, Value: f.gain})
	}

	if flags.Changed("phase") {
		changes = append(changes, plugin.Change{ID: plugin.IDPhaseReverse, Value: boolValue(f.phase)})
	}

	if flags.Changed("flip") {
		changes = append(changes, plugin.Change{ID: plugin.IDStereoFlip, Value: boolValue(f.flip)})
	}

	if err := b.ApplyAll(changes...); err != nil {
		return nil, err
	}

	return proc, nil
}

func boolValue(on bool) float64 {
	if on {
		return 1
	}

	return 0
}

package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-trim/dsp/core"
	"github.com/cwbudde/algo-trim/internal/monitor"
	"github.com/cwbudde/algo-trim/internal/wavio"
	"github.com/cwbudde/algo-trim/plugin"
)

func newProcessCmd() *cobra.Command {
	var (
		input, output string
		blockSize     int
		ditherName    string
		ditherSeed    uint64
		params        paramFlags
	)

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Run a WAV file through the trim processor",
		Long: `Decode a mono or stereo PCM WAV file, process it block by block and
write the result with the source bit depth and sample rate, optionally
dithered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" || output == "" {
				return fmt.Errorf("input and output files are required, use -i and -o")
			}

			dither, err := wavio.ParseDither(ditherName)
			if err != nil {
				return err
			}

			proc, err := params.newProcessor(cmd)
			if err != nil {
				return err
			}

			slog.Debug("parameters", "state", monitor.Status(proc.Params()))

			a, err := wavio.ReadFile(input)
			if err != nil {
				return err
			}

			slog.Debug("decoded", "file", input,
				"rate", a.SampleRate, "bits", a.BitDepth,
				"channels", len(a.Channels), "frames", a.Frames())

			if err := processAudio(a, proc, blockSize); err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}

			if err := wavio.WriteFile(output, a, wavio.WithDither(dither, ditherSeed)); err != nil {
				return err
			}

			slog.Info("processed", "file", output, "frames", a.Frames(),
				"seconds", fmt.Sprintf("%.2f", a.Duration()))

			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input WAV file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output WAV file")
	cmd.Flags().StringVar(&ditherName, "dither", "none", "dither before requantizing: none, rpdf, tpdf")
	cmd.Flags().Uint64Var(&ditherSeed, "seed", 1, "dither noise seed")
	cmd.Flags().IntVar(&blockSize, "block", core.DefaultProcessorConfig().BlockSize, "processing block size in frames")
	params.register(cmd)

	return cmd
}

// processAudio runs proc over a in place, one host-sized block at a time,
// the way a real-time host would call it.
func processAudio(a *wavio.Audio, proc *plugin.Processor, blockSize int) error {
	layout := plugin.Layout(len(a.Channels))
	if err := plugin.CheckLayout(layout, layout); err != nil {
		return err
	}

	if err := proc.Prepare(float64(a.SampleRate), blockSize); err != nil {
		return err
	}
	defer proc.Release()

	frames := a.Frames()
	view := make([][]float64, len(a.Channels))

	for start := 0; start < frames; start += blockSize {
		end := min(start+blockSize, frames)
		for ch := range view {
			view[ch] = a.Channels[ch][start:end]
		}

		proc.ProcessBlock(view)
	}

	return nil
}

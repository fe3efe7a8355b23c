package commands

import (
	"fmt"
	"log/slog"
	"os"
	ossignal "os/signal"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-trim/dsp/core"
	"github.com/cwbudde/algo-trim/dsp/signal"
	"github.com/cwbudde/algo-trim/internal/monitor"
	"github.com/cwbudde/algo-trim/internal/wavio"
)

const (
	testMidHz   = 220
	testSideHz  = 660
	testSeconds = 4
)

func newMonitorCmd() *cobra.Command {
	var (
		input      string
		sampleRate int
		blockSize  int
		params     paramFlags
	)

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Play a file or test signal with live key control",
		Long: `Loop a WAV file, or a built-in mid/side test tone when no file is
given, through the trim processor on the default audio device.

` + monitor.Help,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := params.newProcessor(cmd)
			if err != nil {
				return err
			}

			src, rate, err := loadSource(input, sampleRate)
			if err != nil {
				return err
			}

			kb, err := monitor.OpenKeyboard()
			if err != nil {
				return err
			}
			defer kb.Close()

			ctx, stop := ossignal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			out := cmd.ErrOrStderr()
			fmt.Fprintf(out, "%s\r\n%s", monitor.Help, monitor.Status(proc.Params()))
			defer fmt.Fprint(out, "\r\n")

			slog.Debug("monitor started", "rate", rate, "channels", src.Channels(), "block", blockSize)

			return monitor.Run(ctx, monitor.Config{
				SampleRate: rate,
				BlockSize:  blockSize,
				Status:     out,
			}, src, proc, kb.Keys())
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "WAV file to loop (default: mid/side test tone)")
	cmd.Flags().IntVar(&sampleRate, "rate", int(core.DefaultProcessorConfig().SampleRate), "sample rate of the test tone")
	cmd.Flags().IntVar(&blockSize, "block", core.DefaultProcessorConfig().BlockSize, "processing block size in frames")
	params.register(cmd)

	return cmd
}

// loadSource returns the loop to play and its sample rate.
func loadSource(path string, sampleRate int) (*signal.Loop, int, error) {
	if path != "" {
		a, err := wavio.ReadFile(path)
		if err != nil {
			return nil, 0, err
		}

		return signal.NewLoop(a.Channels), a.SampleRate, nil
	}

	if sampleRate <= 0 {
		return nil, 0, fmt.Errorf("sample rate must be > 0: %d", sampleRate)
	}

	g := signal.NewGenerator([]core.ProcessorOption{core.WithSampleRate(float64(sampleRate))})

	pair, err := g.MidSide(testMidHz, testSideHz, 0.5, sampleRate*testSeconds)
	if err != nil {
		return nil, 0, fmt.Errorf("test tone: %w", err)
	}

	return signal.NewLoop(pair), sampleRate, nil
}

package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "trim",
		Short: "Gain, polarity and channel solo utility for mono and stereo audio",
		Long: `trim - offline and real-time front end for the trim processor.

The processor applies, in order: channel selection (mid, side, left, right
or stereo), polarity reversal or stereo flip, and a gain in dB.

Examples:
  # Solo the side signal and lower it by 6 dB
  trim process -i mix.wav -o side.wav --solo side --gain -6

  # Load settings from a preset file
  trim process -i mix.wav -o out.wav --preset preset.yaml

  # Check what a processed file did to its source
  trim analyze -a mix.wav -b out.wav
  trim levels -i side.wav`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), verbose))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newProcessCmd(),
		newAnalyzeCmd(),
		newLevelsCmd(),
		newParamsCmd(),
		newMonitorCmd(),
	)

	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

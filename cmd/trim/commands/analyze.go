package commands

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-trim/internal/wavio"
	"github.com/cwbudde/algo-trim/measure/polarity"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		refPath, outPath string
		maxLag           int
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Measure lag, gain and polarity between two WAV files",
		Long: `Compare a reference file with a processed version of it. For each
channel the report shows the lag in samples, the linear and dB gain, whether
the polarity is inverted and the normalized correlation at the best lag.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if refPath == "" || outPath == "" {
				return fmt.Errorf("both files are required, use -a and -b")
			}

			ref, err := wavio.ReadFile(refPath)
			if err != nil {
				return err
			}

			out, err := wavio.ReadFile(outPath)
			if err != nil {
				return err
			}

			if ref.SampleRate != out.SampleRate {
				slog.Warn("sample rates differ", "a", ref.SampleRate, "b", out.SampleRate)
			}

			var opts []polarity.Option
			if maxLag > 0 {
				opts = append(opts, polarity.WithMaxLag(maxLag))
			}

			results, err := polarity.AnalyzeChannels(ref.Channels, out.Channels, opts...)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CHANNEL\tLAG\tGAIN\tGAIN DB\tPOLARITY\tCORRELATION\tPEAK A\tPEAK B")

			for ch, r := range results {
				pol := "normal"
				if r.Inverted {
					pol = "inverted"
				}

				fmt.Fprintf(tw, "%d\t%d\t%.4f\t%.2f\t%s\t%.4f\t%.4f\t%.4f\n",
					ch, r.Lag, r.Gain, r.GainDB, pol, r.Correlation, r.PeakRef, r.PeakOut)
			}

			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&refPath, "reference", "a", "", "reference WAV file")
	cmd.Flags().StringVarP(&outPath, "processed", "b", "", "processed WAV file")
	cmd.Flags().IntVar(&maxLag, "max-lag", 0, "largest lag to search in samples (0 = whole file)")

	return cmd
}

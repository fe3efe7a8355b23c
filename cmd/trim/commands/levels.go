package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-trim/internal/wavio"
	"github.com/cwbudde/algo-trim/measure/level"
)

func newLevelsCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "levels",
		Short: "Show channel levels and stereo correlation of a WAV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" {
				return fmt.Errorf("input file is required, use -i")
			}

			a, err := wavio.ReadFile(input)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CHANNEL\tPEAK DB\tRMS DB\tCREST DB\tDC")

			for ch, x := range a.Channels {
				l := level.Measure(x)
				fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.2f\t%.6f\n", ch, l.PeakDB, l.RMSDB, l.CrestDB, l.DC)
			}

			if err := tw.Flush(); err != nil {
				return err
			}

			if len(a.Channels) != 2 {
				return nil
			}

			st, err := level.MeasureStereo(a.Channels[0], a.Channels[1])
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "\ncorrelation %.4f  balance %.2f dB  mid %.2f dB  side %.2f dB\n",
				st.Correlation, st.BalanceDB, st.MidDB, st.SideDB)

			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "WAV file to measure")

	return cmd
}

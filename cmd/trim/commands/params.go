package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-trim/plugin"
)

func newParamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "List the processor parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := plugin.DefaultInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n\n", info.Name, info.ID)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tKIND\tRANGE\tDEFAULT")

			for _, d := range plugin.Descriptors() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s .. %s\t%s\n",
					d.ID, d.Name, d.Kind, d.Format(d.Min), d.Format(d.Max), d.Format(d.Default))
			}

			return tw.Flush()
		},
	}
}

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hupe1980/proxgo/internal/kernel"
)

var kernelCmd = &cobra.Command{
	Use:   "kernel",
	Short: "Show the selected kernel implementation and CPU features",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "kernel:\t%s\n", kernel.ActiveImpl())
		fmt.Fprintf(w, "overridden:\t%t\t(%s)\n", kernel.IsOverridden(), kernel.EnvOverride)
		fmt.Fprintf(w, "avx2:\t%t\n", kernel.HasAVX2())
		fmt.Fprintf(w, "asimd:\t%t\n", kernel.HasASIMD())
		return w.Flush()
	},
}

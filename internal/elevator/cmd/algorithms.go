package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"laptudirm.com/x/elevator/pkg/disk/report"
	"laptudirm.com/x/elevator/pkg/disk/sched"
)

func Algorithms() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "Lists the supported scheduling algorithms",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, algo := range sched.Algorithms {
				name := report.Paint(algo, fmt.Sprintf("%-7s", algo))
				fmt.Fprintf(out, "- %s %s\n", name, algo.Description())
			}

			return nil
		},
	}
}

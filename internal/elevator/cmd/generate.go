package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"laptudirm.com/x/elevator/pkg/common"
	"laptudirm.com/x/elevator/pkg/disk/workload"
)

func Generate(config *common.Config) *cobra.Command {
	var disk, count int
	var seed int64

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a list of unique random requests",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			disk = pick(cmd, "disk", disk, config.DiskSize)
			count = pick(cmd, "count", count, config.Requests)

			if disk < 1 || disk > common.MaxDiskSize {
				return fmt.Errorf("disk size must be between 1 and %d", common.MaxDiskSize)
			}

			if count < 1 || count > common.MaxRequests {
				return fmt.Errorf("%w: request count must be between 1 and %d", workload.ErrInvalidCount, common.MaxRequests)
			}

			requests, err := workload.Random(newRand(cmd, seed), disk, count)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), workload.Format(requests))
			return nil
		},
	}

	cmd.Flags().IntVarP(&disk, "disk", "d", 0, "Number of tracks on the disk")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of requests to generate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for the generator (default: current time)")

	return cmd
}

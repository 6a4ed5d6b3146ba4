// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/elevator/pkg/common"
)

var Version = "v0.1.0"

func Root() *cobra.Command {
	// Loaded before any command runs.
	config := common.DefaultConfig()

	root := &cobra.Command{
		Use:   "elevator",
		Short: "Visualize and compare disk scheduling algorithms",
		Long: heredoc.Doc(`elevator computes the order in which a disk arm services
			a list of track requests under FCFS, SSTF, SCAN, C-SCAN, LOOK
			and C-LOOK scheduling, and the total distance the head moves.

			Results can be compared in a table, animated on the terminal,
			benchmarked over many random workloads or served as JSON.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}

			path, _ := cmd.Flags().GetString("config")

			var err error
			config, err = common.LoadConfig(path)
			return err
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Elevator's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().String("config", common.ConfigFile, "Path to the configuration file")

	root.SetVersionTemplate(Version + "\n")
	root.Version = Version

	// Register the various commands.
	root.AddCommand(Run(&config))
	root.AddCommand(Animate(&config))
	root.AddCommand(Algorithms())
	root.AddCommand(Generate(&config))
	root.AddCommand(Bench(&config))
	root.AddCommand(Serve(&config))

	return root
}

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
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/elevator/pkg/bench"
	"laptudirm.com/x/elevator/pkg/common"
	"laptudirm.com/x/elevator/pkg/disk/sched"
	"laptudirm.com/x/elevator/internal/util"
)

func Bench(config *common.Config) *cobra.Command {
	var (
		file       string
		algorithms []string
		settings   bench.Config
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare the algorithms over many workloads",
		Long: heredoc.Doc(`Run the algorithms over many workloads and report their mean
			head movement, and how often each of them moved the least
			(Best) or the most (Worst).

			Workloads are random unless a workload file is given, which
			holds one comma separated list of requests per line.`),
		Example: heredoc.Doc(`
			$ elevator bench --trials 10000 -j 8
			$ elevator bench -f bench.yaml`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				var err error
				if settings, err = bench.LoadConfig(file); err != nil {
					return err
				}
			} else {
				settings.DiskSize = pick(cmd, "disk", settings.DiskSize, config.DiskSize)
				settings.Requests = pick(cmd, "count", settings.Requests, config.Requests)

				if !cmd.Flag("seed").Changed {
					settings.Seed = time.Now().UnixNano()
				}

				if cmd.Flag("algorithms").Changed {
					var err error
					if settings.Algorithms, err = sched.ParseList(algorithms); err != nil {
						return err
					}
				}
			}

			b, err := bench.New(settings)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"trials":  b.Config.Trials,
				"threads": b.Config.Concurrency,
				"seed":    b.Config.Seed,
			}).Debug("Starting bench")

			spinner := util.NewSpinner(cmd.ErrOrStderr())
			b.OnResult = func(done, total int) {
				spinner.Status(fmt.Sprintf("%d/%d trials", done, total))
			}

			start := time.Now()
			spinner.Start()
			err = b.Start()
			spinner.Stop()
			if err != nil {
				return err
			}

			b.Report(cmd.OutOrStdout())
			logrus.WithField("took", time.Since(start)).Debug("Finished bench")
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&file, "file", "f", "", "Read the bench configuration from a YAML file")
	flags.StringSliceVarP(&algorithms, "algorithms", "a", nil, "Algorithms to compare (default: all)")
	flags.IntVarP(&settings.DiskSize, "disk", "d", 0, "Number of tracks on the disk")
	flags.IntVarP(&settings.Requests, "count", "n", 0, "Number of requests in every workload")
	flags.IntVarP(&settings.Head, "head", "H", -1, "Starting head position, negative for a random one")
	flags.IntVar(&settings.Trials, "trials", 1000, "Number of workloads to schedule")
	flags.IntVarP(&settings.Concurrency, "concurrency", "j", 4, "Number of trials run at once")
	flags.Int64Var(&settings.Seed, "seed", 0, "Seed for the workloads (default: current time)")
	flags.StringVar(&settings.Workloads.File, "workloads", "", "File with one request list per line")
	flags.StringVar(&settings.Workloads.Order, "order", "sequential", "Order workloads are taken from the file: sequential or random")

	return cmd
}

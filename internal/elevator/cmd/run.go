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
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/elevator/pkg/common"
	"laptudirm.com/x/elevator/pkg/disk/report"
	"laptudirm.com/x/elevator/pkg/disk/sched"
)

func Run(config *common.Config) *cobra.Command {
	var in inputs
	var export, format string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Schedule a workload and compare the algorithms",
		Long: heredoc.Doc(`Schedule a list of requests with the selected algorithms and
			print their service orders ranked by total head movement.

			Without --requests or --file a random workload of --count
			requests is generated.`),
		Example: heredoc.Doc(`
			$ elevator run -d 200 -H 53 -r 98,183,37,122,14,124,65,67
			$ elevator run -a sstf,look -n 12 --seed 7
			$ elevator run -f workload.yaml -e results.json`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			w, algos, err := in.workload(cmd, config)
			if err != nil {
				return err
			}

			outcomes, err := w.Run(algos...)
			if err != nil {
				return err
			}

			ranking := sched.Rank(outcomes)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Disk: 0-%d  Head: %d  Requests: %d\n\n", w.DiskSize-1, w.Head, len(w.Requests))
			report.Table(out, ranking, w.DiskSize)
			fmt.Fprintln(out)
			report.Summary(out, ranking)
			fmt.Fprintln(out)
			report.Timeline(out, ranking)

			if export == "" {
				return nil
			}

			if format == "" {
				format = strings.TrimPrefix(filepath.Ext(export), ".")
			}

			// Encode first so a bad format leaves no file behind.
			var buf bytes.Buffer
			if err := report.Export(&buf, ranking, w.DiskSize, format); err != nil {
				return err
			}

			if err := os.WriteFile(export, buf.Bytes(), common.FilePermissions); err != nil {
				return err
			}

			logrus.WithField("path", export).Info("Exported results")
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().StringVarP(&export, "export", "e", "", "Write the results to a file")
	cmd.Flags().StringVar(&format, "format", "", "Format of the exported results: json or yaml (default: from the file extension)")

	return cmd
}

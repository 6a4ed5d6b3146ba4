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

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"laptudirm.com/x/elevator/pkg/disk/sched"
	"laptudirm.com/x/elevator/pkg/disk/stats"
)

// Table writes one row per ranked result: its place, total movement,
// average seek, number of seeks, efficiency and service order.
func Table(w io.Writer, ranking sched.Ranking, diskSize int) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Algorithm", "Total", "Avg Seek", "Seeks", "Efficiency", "Order"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for i, outcome := range ranking {
		summary := stats.Summarize(outcome.Result, diskSize)
		table.Append([]string{
			strconv.Itoa(i + 1),
			Paint(outcome.Algorithm, outcome.Algorithm.String()),
			strconv.Itoa(summary.Total),
			fmt.Sprintf("%.2f", summary.AverageSeek),
			strconv.Itoa(summary.Seeks),
			fmt.Sprintf("%.1f%%", summary.Efficiency),
			Order(outcome.Order),
		})
	}

	table.Render()
}

// Order joins a service order into a single line.
func Order(order []int) string {
	stops := make([]string, len(order))
	for i, pos := range order {
		stops[i] = strconv.Itoa(pos)
	}

	return strings.Join(stops, " → ")
}

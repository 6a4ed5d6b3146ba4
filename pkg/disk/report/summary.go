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

	"laptudirm.com/x/elevator/pkg/disk/sched"
)

// Summary writes a box naming the best algorithm and the lowest and
// highest total movement of the ranking.
func Summary(w io.Writer, ranking sched.Ranking) {
	best, ok := ranking.Best()
	if !ok {
		fmt.Fprintln(w, "\x1b[31mNo algorithms selected.\x1b[0m")
		return
	}

	worst, _ := ranking.Worst()

	fmt.Fprintln(w, "╔════════════════════════════════════╗")
	fmt.Fprintf(w, "║ Best Algorithm   : %s ║\n", Paint(best.Algorithm, fmt.Sprintf("%-15s", best.Algorithm)))
	fmt.Fprintf(w, "║ Lowest Movement  : %-15d ║\n", best.Total)
	fmt.Fprintf(w, "║ Worst Algorithm  : %s ║\n", Paint(worst.Algorithm, fmt.Sprintf("%-15s", worst.Algorithm)))
	fmt.Fprintf(w, "║ Highest Movement : %-15d ║\n", worst.Total)
	fmt.Fprintln(w, "╚════════════════════════════════════╝")
}

// Timeline writes the longest service order of the ranking as numbered
// steps, the way the head would be seen moving.
func Timeline(w io.Writer, ranking sched.Ranking) {
	var longest *sched.Outcome
	for i := range ranking {
		if longest == nil || len(ranking[i].Order) > len(longest.Order) {
			longest = &ranking[i]
		}
	}

	if longest == nil {
		return
	}

	fmt.Fprintf(w, "Timeline (%s):\n", Paint(longest.Algorithm, longest.Algorithm.String()))
	for step, pos := range longest.Order {
		label := fmt.Sprintf("Step %d", step)
		if step == 0 {
			label = "Start"
		}

		fmt.Fprintf(w, "  %-8s %d\n", label, pos)
	}
}

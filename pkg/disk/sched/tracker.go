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

package sched

// tracker is the movement accumulator shared by every policy: it walks the
// head from position to position, recording each stop and summing the
// distance travelled.
type tracker struct {
	current int
	order   []int
	total   int
}

func newTracker(head int, capacity int) *tracker {
	order := make([]int, 1, capacity+1)
	order[0] = head

	return &tracker{current: head, order: order}
}

// visit moves the head to each of the targets in sequence.
func (t *tracker) visit(targets ...int) {
	for _, target := range targets {
		t.total += distance(t.current, target)
		t.order = append(t.order, target)
		t.current = target
	}
}

func (t *tracker) result() Result {
	return Result{Order: t.order, Total: t.total}
}

// walk visits targets in order starting from start.
func walk(start int, targets []int) Result {
	t := newTracker(start, len(targets))
	t.visit(targets...)
	return t.result()
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}

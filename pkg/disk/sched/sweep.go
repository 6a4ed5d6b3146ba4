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

// scan sweeps up through the requests at or above the head, continues to
// the last track of the disk, then sweeps back down through the rest.
func scan(head int, requests []int, diskSize int) Result {
	below, above := Partition(head, requests)
	t := newTracker(head, len(requests)+1)

	if len(above) > 0 {
		t.visit(ascending(above)...)

		// Go to the end of the disk if not already there.
		if end := diskSize - 1; t.current < end {
			t.visit(end)
		}
	}

	t.visit(descending(below)...)
	return t.result()
}

// cscan sweeps up through the requests at or above the head, returns to
// track 0 and sweeps up again through the rest.
func cscan(head int, requests []int) Result {
	below, above := Partition(head, requests)
	t := newTracker(head, len(requests)+1)

	t.visit(ascending(above)...)

	if len(below) > 0 {
		if t.current != 0 {
			t.visit(0)
		}

		t.visit(ascending(below)...)
	}

	return t.result()
}

// look is scan without the trip to the end of the disk: the head reverses
// at the last request.
func look(head int, requests []int) Result {
	below, above := Partition(head, requests)
	t := newTracker(head, len(requests))

	t.visit(ascending(above)...)
	t.visit(descending(below)...)
	return t.result()
}

// clook is cscan without the trip to track 0: the head jumps straight to
// the lowest pending request.
func clook(head int, requests []int) Result {
	below, above := Partition(head, requests)
	t := newTracker(head, len(requests))

	t.visit(ascending(above)...)

	if below = ascending(below); len(below) > 0 {
		// Jump to the first request on the left.
		t.visit(below[0])
		t.visit(below[1:]...)
	}

	return t.result()
}

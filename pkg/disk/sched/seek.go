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

// fcfs services the requests in the order they arrived.
func fcfs(head int, requests []int) Result {
	return walk(head, requests)
}

// sstf always services the pending request closest to the head. Ties go to
// the request that comes first in the pending list. Each step scans every
// pending request, which is O(n²) overall.
func sstf(head int, requests []int) Result {
	remaining := append([]int(nil), requests...)
	t := newTracker(head, len(requests))

	for len(remaining) > 0 {
		closest := 0
		for i := 1; i < len(remaining); i++ {
			if distance(t.current, remaining[i]) < distance(t.current, remaining[closest]) {
				closest = i
			}
		}

		t.visit(remaining[closest])
		remaining = append(remaining[:closest], remaining[closest+1:]...)
	}

	return t.result()
}

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

import "sort"

// Partition splits requests into those strictly below the head and those
// at or above it. Both slices are freshly allocated and keep the input
// order; callers sort them in the direction they sweep.
func Partition(head int, requests []int) (below, aboveOrEqual []int) {
	below = make([]int, 0, len(requests))
	aboveOrEqual = make([]int, 0, len(requests))

	for _, request := range requests {
		if request < head {
			below = append(below, request)
		} else {
			aboveOrEqual = append(aboveOrEqual, request)
		}
	}

	return below, aboveOrEqual
}

func ascending(tracks []int) []int {
	sort.Ints(tracks)
	return tracks
}

func descending(tracks []int) []int {
	sort.Sort(sort.Reverse(sort.IntSlice(tracks)))
	return tracks
}

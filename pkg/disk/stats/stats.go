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

package stats

import "laptudirm.com/x/elevator/pkg/disk/sched"

// Summary holds the figures reported for a single scheduling result.
type Summary struct {
	Total       int     `json:"total" yaml:"total"`
	Seeks       int     `json:"seeks" yaml:"seeks"`
	AverageSeek float64 `json:"average-seek" yaml:"average-seek"`
	Efficiency  float64 `json:"efficiency" yaml:"efficiency"`
	Span        int     `json:"span" yaml:"span"`
}

func Summarize(result sched.Result, diskSize int) Summary {
	return Summary{
		Total:       result.Total,
		Seeks:       Seeks(result),
		AverageSeek: AverageSeek(result),
		Efficiency:  Efficiency(result, diskSize),
		Span:        Span(result),
	}
}

// Seeks is the number of head movements in the result, boundary
// waypoints included.
func Seeks(result sched.Result) int {
	if len(result.Order) == 0 {
		return 0
	}

	return len(result.Order) - 1
}

// AverageSeek is the mean distance of a single head movement.
func AverageSeek(result sched.Result) float64 {
	seeks := Seeks(result)
	if seeks == 0 {
		return 0
	}

	return float64(result.Total) / float64(seeks)
}

// Efficiency compares the disk size to the total movement as a percentage;
// a result which travels less than the width of the disk scores over 100.
func Efficiency(result sched.Result, diskSize int) float64 {
	if result.Total == 0 {
		return 100
	}

	return float64(diskSize) / float64(result.Total) * 100
}

// Span is the distance between the lowest and the highest track visited.
func Span(result sched.Result) int {
	if len(result.Order) == 0 {
		return 0
	}

	lo, hi := result.Order[0], result.Order[0]
	for _, pos := range result.Order[1:] {
		lo, hi = min(lo, pos), max(hi, pos)
	}

	return hi - lo
}

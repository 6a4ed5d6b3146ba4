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

// Package track draws the disk arm on a terminal and steps it through the
// service order of one or more scheduling results.
package track

import (
	"strconv"
	"strings"
)

const (
	Head = 'H'
	Rail = '-'
)

// Draw renders a disk of the given size as a rail width characters wide
// with the head marked at pos, labelled with the first and last tracks.
func Draw(pos, diskSize, width int) string {
	var line strings.Builder

	line.WriteString("0 ")
	for i, col := 0, Column(pos, diskSize, width); i < width; i++ {
		if i == col {
			line.WriteRune(Head)
		} else {
			line.WriteRune(Rail)
		}
	}

	line.WriteString(" ")
	line.WriteString(strconv.Itoa(diskSize - 1))
	return line.String()
}

// Column maps a track position to a column of the rail.
func Column(pos, diskSize, width int) int {
	if diskSize < 1 || width < 1 {
		return 0
	}

	col := pos * width / diskSize
	return min(max(col, 0), width-1)
}

// Frames interpolates the head's movement from one position to another in
// at most n steps. The last frame is always the destination.
func Frames(from, to, n int) []int {
	dist := to - from
	if dist < 0 {
		dist = -dist
	}

	if dist == 0 {
		return []int{to}
	}

	n = max(min(n, dist), 1)
	frames := make([]int, n)
	for k := 1; k <= n; k++ {
		frames[k-1] = from + (to-from)*k/n
	}

	return frames
}

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

package track

import "laptudirm.com/x/elevator/pkg/disk/sched"

// Session is the animation state of one visualization: how far along its
// service order each algorithm's head has moved. A Session is owned by
// whoever renders it and is not safe for concurrent use.
type Session struct {
	outcomes []sched.Outcome
	steps    []int
}

func NewSession(outcomes []sched.Outcome) *Session {
	return &Session{
		outcomes: outcomes,
		steps:    make([]int, len(outcomes)),
	}
}

// Step moves every head which has not finished to the next position in its
// service order. It reports whether any head moved.
func (s *Session) Step() bool {
	moved := false
	for i, outcome := range s.outcomes {
		if s.steps[i] < len(outcome.Order)-1 {
			s.steps[i]++
			moved = true
		}
	}

	return moved
}

// Done reports whether every head has reached the end of its order.
func (s *Session) Done() bool {
	for i, outcome := range s.outcomes {
		if s.steps[i] < len(outcome.Order)-1 {
			return false
		}
	}

	return true
}

// Reset moves every head back to its starting position.
func (s *Session) Reset() {
	for i := range s.steps {
		s.steps[i] = 0
	}
}

// Position returns the current position of the algorithm's head.
func (s *Session) Position(algo sched.Algorithm) (int, bool) {
	for i, outcome := range s.outcomes {
		if outcome.Algorithm == algo && len(outcome.Order) > 0 {
			return outcome.Order[s.steps[i]], true
		}
	}

	return 0, false
}

// Progress returns how many steps the algorithm's head has taken and how
// many it takes in total.
func (s *Session) Progress(algo sched.Algorithm) (step, total int) {
	for i, outcome := range s.outcomes {
		if outcome.Algorithm == algo {
			return s.steps[i], max(len(outcome.Order)-1, 0)
		}
	}

	return 0, 0
}

func (s *Session) Outcomes() []sched.Outcome {
	return s.outcomes
}

// positions returns the current position of every head.
func (s *Session) positions() []int {
	positions := make([]int, len(s.outcomes))
	for i, outcome := range s.outcomes {
		if len(outcome.Order) > 0 {
			positions[i] = outcome.Order[s.steps[i]]
		}
	}

	return positions
}

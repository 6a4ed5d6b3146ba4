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

// Package sched implements the disk-head scheduling policies: the order in
// which a disk arm services pending track requests and the total distance
// it travels doing so.
//
// Every policy is a pure function of the head position, the request list
// and the disk size. Nothing is shared between invocations, so results for
// different policies may be computed concurrently.
package sched

import (
	"errors"
	"fmt"
)

// MaxRequests caps the size of a request list accepted by Run. SSTF is
// quadratic in the number of requests.
const MaxRequests = 4096

var (
	ErrInvalidRange    = errors.New("sched: position out of range")
	ErrInvalidDiskSize = errors.New("sched: disk size must be at least 1")
	ErrTooManyRequests = errors.New("sched: too many requests")
)

// Result is the outcome of scheduling one request list: the positions the
// head visited, starting with its initial position, and the total head
// movement along them.
type Result struct {
	Order []int `json:"order" yaml:"order"`
	Total int   `json:"total" yaml:"total"`
}

// Run schedules requests on a disk of the given size with the head starting
// at head, using the given policy. The request slice is never modified.
func Run(algo Algorithm, head int, requests []int, diskSize int) (Result, error) {
	if err := Validate(head, requests, diskSize); err != nil {
		return Result{}, err
	}

	return run(algo, head, requests, diskSize)
}

func run(algo Algorithm, head int, requests []int, diskSize int) (Result, error) {
	switch algo {
	case FCFS:
		return fcfs(head, requests), nil
	case SSTF:
		return sstf(head, requests), nil
	case SCAN:
		return scan(head, requests, diskSize), nil
	case CSCAN:
		return cscan(head, requests), nil
	case LOOK:
		return look(head, requests), nil
	case CLOOK:
		return clook(head, requests), nil
	default:
		return Result{}, fmt.Errorf("%w %d", ErrUnknownAlgorithm, int(algo))
	}
}

// Validate checks that the head and every request lie on a disk of the
// given size, i.e. in [0, diskSize].
func Validate(head int, requests []int, diskSize int) error {
	if diskSize < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidDiskSize, diskSize)
	}

	if len(requests) > MaxRequests {
		return fmt.Errorf("%w: %d > %d", ErrTooManyRequests, len(requests), MaxRequests)
	}

	if head < 0 || head > diskSize {
		return fmt.Errorf("%w: head %d not in [0, %d]", ErrInvalidRange, head, diskSize)
	}

	for i, request := range requests {
		if request < 0 || request > diskSize {
			return fmt.Errorf("%w: request #%d (%d) not in [0, %d]", ErrInvalidRange, i+1, request, diskSize)
		}
	}

	return nil
}

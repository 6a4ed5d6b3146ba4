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

// Package workload describes the inputs to a scheduling run: the size of
// the disk, where the head starts and the tracks it has been asked for.
package workload

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"laptudirm.com/x/elevator/pkg/disk/sched"
)

var ErrInvalidCount = errors.New("workload: invalid request count")

type Workload struct {
	DiskSize int   `yaml:"disk-size" json:"disk-size"`
	Head     int   `yaml:"head" json:"head"`
	Requests []int `yaml:"requests" json:"requests"`
}

// Validate checks the workload before it is scheduled. If expected is
// positive the workload must contain exactly that many requests.
func (w Workload) Validate(expected int) error {
	if expected > 0 && len(w.Requests) != expected {
		return fmt.Errorf("%w: expected %d requests, got %d", ErrInvalidCount, expected, len(w.Requests))
	}

	return sched.Validate(w.Head, w.Requests, w.DiskSize)
}

// Run schedules the workload with the given algorithms, or all of them.
func (w Workload) Run(algos ...sched.Algorithm) ([]sched.Outcome, error) {
	return sched.RunAll(w.Head, w.Requests, w.DiskSize, algos...)
}

// Load reads a workload from a YAML file.
func Load(path string) (Workload, error) {
	var w Workload

	file, err := os.ReadFile(path)
	if err != nil {
		return w, err
	}

	if err := yaml.Unmarshal(file, &w); err != nil {
		return w, fmt.Errorf("workload %s: %w", path, err)
	}

	return w, nil
}

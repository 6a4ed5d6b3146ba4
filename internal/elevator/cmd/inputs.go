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

package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/elevator/pkg/common"
	"laptudirm.com/x/elevator/pkg/disk/sched"
	"laptudirm.com/x/elevator/pkg/disk/workload"
)

// inputs are the flags shared by the commands which schedule a workload.
type inputs struct {
	disk     int
	head     int
	count    int
	requests string
	file     string
	seed     int64

	algorithms []string
}

func (in *inputs) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVarP(&in.disk, "disk", "d", 0, "Number of tracks on the disk")
	flags.IntVarP(&in.head, "head", "H", 0, "Starting position of the head")
	flags.IntVarP(&in.count, "count", "n", 0, "Number of requests expected, or generated if none are given")
	flags.StringVarP(&in.requests, "requests", "r", "", "Comma separated list of requested tracks")
	flags.StringVarP(&in.file, "file", "f", "", "Read the workload from a YAML file")
	flags.Int64Var(&in.seed, "seed", 0, "Seed for generated requests (default: current time)")
	flags.StringSliceVarP(&in.algorithms, "algorithms", "a", nil, "Algorithms to compare (default: from config)")
}

// workload resolves the workload and the algorithms to run from the flags,
// falling back to the configuration for anything not given.
func (in *inputs) workload(cmd *cobra.Command, config *common.Config) (workload.Workload, []sched.Algorithm, error) {
	algos := config.Algorithms
	if cmd.Flag("algorithms").Changed {
		var err error
		if algos, err = sched.ParseList(in.algorithms); err != nil {
			return workload.Workload{}, nil, err
		}
	}

	if in.file != "" {
		w, err := workload.Load(in.file)
		if err != nil {
			return w, nil, err
		}

		return w, algos, w.Validate(in.count)
	}

	w := workload.Workload{
		DiskSize: pick(cmd, "disk", in.disk, config.DiskSize),
		Head:     pick(cmd, "head", in.head, config.Head),
	}

	if w.DiskSize < 1 || w.DiskSize > common.MaxDiskSize {
		return w, nil, fmt.Errorf("disk size must be between 1 and %d", common.MaxDiskSize)
	}

	if w.Head < 0 || w.Head > w.DiskSize {
		return w, nil, fmt.Errorf("%w: head position must be between 0 and %d", sched.ErrInvalidRange, w.DiskSize)
	}

	if cmd.Flag("requests").Changed {
		w.Requests = workload.ParseRequests(in.requests, w.DiskSize)
		return w, algos, w.Validate(in.count)
	}

	count := pick(cmd, "count", in.count, config.Requests)
	if count < 1 || count > common.MaxRequests {
		return w, nil, fmt.Errorf("%w: request count must be between 1 and %d", workload.ErrInvalidCount, common.MaxRequests)
	}

	var err error
	w.Requests, err = workload.Random(newRand(cmd, in.seed), w.DiskSize, count)
	if err != nil {
		return w, nil, err
	}

	logrus.WithField("requests", w.Requests).Info("Generated random requests")
	return w, algos, w.Validate(count)
}

// pick returns the flag's value if it was set and fallback otherwise.
func pick(cmd *cobra.Command, flag string, value, fallback int) int {
	if cmd.Flag(flag).Changed {
		return value
	}

	return fallback
}

func newRand(cmd *cobra.Command, seed int64) *rand.Rand {
	if !cmd.Flag("seed").Changed {
		seed = time.Now().UnixNano()
	}

	logrus.WithField("seed", seed).Debug("Seeding request generator")
	return rand.New(rand.NewSource(seed))
}

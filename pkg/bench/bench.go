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

// Package bench compares scheduling algorithms over many workloads instead
// of a single one, counting how often each algorithm comes out on top.
package bench

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/elevator/pkg/disk/sched"
	"laptudirm.com/x/elevator/pkg/disk/workload"
)

type Config struct {
	// The algorithms being compared. Empty means all of them.
	Algorithms []sched.Algorithm `yaml:"algorithms"`

	DiskSize int `yaml:"disk-size"`
	Requests int `yaml:"requests"` // Number of requests in a random workload.

	// Starting head position. A negative head is picked at random for
	// every trial.
	Head int `yaml:"head"`

	Trials      int   `yaml:"trials"`
	Concurrency int   `yaml:"concurrency"` // Number of trials run at once.
	Seed        int64 `yaml:"seed"`

	Workloads struct {
		File  string `yaml:"file"`
		Order string `yaml:"order"` // sequential or random
	} `yaml:"workloads"`
}

// LoadConfig reads a bench configuration from a YAML file.
func LoadConfig(path string) (Config, error) {
	var config Config

	file, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}

	err = yaml.Unmarshal(file, &config)
	return config, err
}

func New(config Config) (*Bench, error) {
	var bench Bench

	// repeated algorithms would share one score
	config.Algorithms = sched.Unique(config.Algorithms)
	if len(config.Algorithms) == 0 {
		config.Algorithms = sched.Algorithms
	}

	if config.Concurrency < 1 {
		config.Concurrency = 1
	}

	if config.DiskSize < 1 {
		return nil, fmt.Errorf("new bench: %w", sched.ErrInvalidDiskSize)
	}

	if config.Head > config.DiskSize {
		return nil, fmt.Errorf("new bench: %w: head %d on a disk of %d", sched.ErrInvalidRange, config.Head, config.DiskSize)
	}

	if config.Trials < 0 {
		return nil, errors.New("new bench: negative trial count")
	}

	if config.Workloads.File == "" && (config.Requests < 0 || config.Requests > config.DiskSize) {
		return nil, fmt.Errorf("new bench: %w: %d requests on a disk of %d", workload.ErrInvalidCount, config.Requests, config.DiskSize)
	}

	if config.Workloads.File != "" {
		var err error
		bench.book, err = workload.NewBook(config.Workloads.File, config.Workloads.Order, config.DiskSize)
		if err != nil {
			return nil, err
		}
	}

	bench.Config = config
	bench.Scores = make([]Score, len(config.Algorithms))

	bench.trials = make(chan *Trial)
	bench.results = make(chan Result)
	bench.complete = make(chan bool)

	return &bench, nil
}

type Bench struct {
	Config Config

	book *workload.Book

	trials   chan *Trial
	results  chan Result
	complete chan bool

	// OnResult, if set, is called after every finished trial.
	OnResult func(done, total int)

	Finished int
	Failed   int
	Scores   []Score
}

type Score struct {
	Movement int // Sum of the total movement over every trial.
	Wins     int // Trials where the algorithm had the least movement.
	Losses   int // Trials where the algorithm had the most movement.
}

type Trial struct {
	Number int
	workload.Workload
}

type Result struct {
	Trial    *Trial
	Outcomes []sched.Outcome
	Err      error
}

// Start runs every trial and returns once all of them have finished.
func (bench *Bench) Start() error {
	if bench.Config.Trials == 0 {
		return nil
	}

	go bench.ResultHandler()
	for i := 0; i < bench.Config.Concurrency; i++ {
		go bench.Thread()
	}

	r := rand.New(rand.NewSource(bench.Config.Seed))
	for number := 1; number <= bench.Config.Trials; number++ {
		trial, err := bench.next(r)
		trial.Number = number
		if err != nil {
			// still counts as a finished trial
			bench.results <- Result{Trial: &trial, Err: err}
			continue
		}

		bench.trials <- &trial
	}

	close(bench.trials)
	<-bench.complete

	return nil
}

// next generates the workload of the next trial.
func (bench *Bench) next(r *rand.Rand) (Trial, error) {
	var trial Trial
	trial.DiskSize = bench.Config.DiskSize

	trial.Head = bench.Config.Head
	if trial.Head < 0 {
		trial.Head = r.Intn(trial.DiskSize)
	}

	if bench.book != nil {
		trial.Requests = bench.book.Current()
		bench.book.Next(r)
		return trial, nil
	}

	var err error
	trial.Requests, err = workload.Random(r, trial.DiskSize, bench.Config.Requests)
	return trial, err
}

func (bench *Bench) Thread() {
	for trial := range bench.trials {
		outcomes, err := trial.Run(bench.Config.Algorithms...)
		if err != nil {
			logrus.WithField("trial", trial.Number).Error(err)
		}

		bench.results <- Result{
			Trial:    trial,
			Outcomes: outcomes,
			Err:      err,
		}
	}
}

// ResultHandler is the only goroutine which touches the scores.
func (bench *Bench) ResultHandler() {
	done := 0
	for result := range bench.results {
		done++

		if result.Err != nil {
			bench.Failed++
		} else {
			bench.Finished++
			bench.score(result.Outcomes)
		}

		logrus.WithFields(logrus.Fields{
			"trial":    result.Trial.Number,
			"head":     result.Trial.Head,
			"requests": result.Trial.Requests,
		}).Trace("Finished trial")

		if bench.OnResult != nil {
			bench.OnResult(done, bench.Config.Trials)
		}

		if done == bench.Config.Trials {
			close(bench.results)
			bench.complete <- true
			return
		}
	}
}

func (bench *Bench) score(outcomes []sched.Outcome) {
	// outcomes are in the same order as the configured algorithms
	index := make(map[sched.Algorithm]int, len(outcomes))
	for i, outcome := range outcomes {
		index[outcome.Algorithm] = i
		bench.Scores[i].Movement += outcome.Total
	}

	ranking := sched.Rank(outcomes)
	if best, ok := ranking.Best(); ok {
		bench.Scores[index[best.Algorithm]].Wins++
	}

	if worst, ok := ranking.Worst(); ok {
		bench.Scores[index[worst.Algorithm]].Losses++
	}
}

// Mean returns the average total movement of the i-th algorithm.
func (bench *Bench) Mean(i int) float64 {
	if bench.Finished == 0 {
		return 0
	}

	return float64(bench.Scores[i].Movement) / float64(bench.Finished)
}

// Ranking orders the algorithms by their mean total movement.
func (bench *Bench) Ranking() sched.Ranking {
	outcomes := make([]sched.Outcome, len(bench.Config.Algorithms))
	for i, algo := range bench.Config.Algorithms {
		outcomes[i] = sched.Outcome{Algorithm: algo, Result: sched.Result{Total: bench.Scores[i].Movement}}
	}

	return sched.Rank(outcomes)
}

func (bench *Bench) Report(w io.Writer) {
	index := make(map[sched.Algorithm]int, len(bench.Config.Algorithms))
	for i, algo := range bench.Config.Algorithms {
		index[algo] = i
	}

	fmt.Fprintln(w, "╔══════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║    Name          Mean Move   Best  Worst    ║")
	fmt.Fprintln(w, "╠══════════════════════════════════════════════╣")
	for place, outcome := range bench.Ranking() {
		i := index[outcome.Algorithm]
		score := bench.Scores[i]

		fmt.Fprintf(
			w, "║ %2d. %-10s %12.2f   %4d   %4d    ║\n",
			place+1, outcome.Algorithm,
			bench.Mean(i), score.Wins, score.Losses,
		)
	}
	fmt.Fprintln(w, "╚══════════════════════════════════════════════╝")
	fmt.Fprintf(w, "Trials: %d finished, %d failed\n", bench.Finished, bench.Failed)
}

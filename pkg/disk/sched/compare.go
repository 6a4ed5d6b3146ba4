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

import (
	"sort"
	"sync"
)

// Outcome pairs a scheduling Result with the Algorithm that produced it.
type Outcome struct {
	Algorithm Algorithm `json:"algorithm" yaml:"algorithm"`
	Result    `yaml:",inline"`
}

// RunAll schedules the same requests with each of the given algorithms,
// or with every algorithm if none are given. Each algorithm runs on its own
// goroutine; the outcomes are returned in the order the algorithms were
// given.
func RunAll(head int, requests []int, diskSize int, algos ...Algorithm) ([]Outcome, error) {
	if err := Validate(head, requests, diskSize); err != nil {
		return nil, err
	}

	if len(algos) == 0 {
		algos = Algorithms
	}

	outcomes := make([]Outcome, len(algos))
	errs := make([]error, len(algos))

	var wg sync.WaitGroup
	for i, algo := range algos {
		wg.Add(1)
		go func(i int, algo Algorithm) {
			defer wg.Done()

			outcomes[i].Algorithm = algo
			outcomes[i].Result, errs[i] = run(algo, head, requests, diskSize)
		}(i, algo)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return outcomes, nil
}

// Ranking is a list of outcomes ordered by ascending total head movement.
type Ranking []Outcome

// Rank orders the outcomes by ascending total. Outcomes with equal totals
// keep their relative order. The input slice is not modified.
func Rank(outcomes []Outcome) Ranking {
	ranking := make(Ranking, len(outcomes))
	copy(ranking, outcomes)

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Total < ranking[j].Total
	})

	return ranking
}

// RankMap ranks a set of results keyed by algorithm. Ties are broken by
// the canonical algorithm order so the ranking is the same on every run.
func RankMap(results map[Algorithm]Result) Ranking {
	outcomes := make([]Outcome, 0, len(results))
	for _, algo := range Algorithms {
		if result, found := results[algo]; found {
			outcomes = append(outcomes, Outcome{Algorithm: algo, Result: result})
		}
	}

	return Rank(outcomes)
}

// Best returns the outcome with the least head movement.
func (ranking Ranking) Best() (Outcome, bool) {
	if len(ranking) == 0 {
		return Outcome{}, false
	}

	return ranking[0], true
}

// Worst returns the outcome with the most head movement.
func (ranking Ranking) Worst() (Outcome, bool) {
	if len(ranking) == 0 {
		return Outcome{}, false
	}

	return ranking[len(ranking)-1], true
}

// Algorithms returns the ranked algorithms, best first.
func (ranking Ranking) Algorithms() []Algorithm {
	algos := make([]Algorithm, len(ranking))
	for i, outcome := range ranking {
		algos[i] = outcome.Algorithm
	}

	return algos
}

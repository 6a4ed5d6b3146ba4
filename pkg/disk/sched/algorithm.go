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
	"errors"
	"fmt"
	"strings"
)

// Algorithm is one of the closed set of disk-head scheduling policies.
type Algorithm int

const (
	FCFS  Algorithm = iota // first come first served
	SSTF                   // shortest seek time first
	SCAN                   // elevator
	CSCAN                  // circular scan
	LOOK                   // elevator without the disk ends
	CLOOK                  // circular look

	algorithmN
)

// Algorithms lists every Algorithm in its canonical order.
var Algorithms = []Algorithm{FCFS, SSTF, SCAN, CSCAN, LOOK, CLOOK}

var ErrUnknownAlgorithm = errors.New("sched: unknown algorithm")

var names = [algorithmN]string{
	FCFS:  "FCFS",
	SSTF:  "SSTF",
	SCAN:  "SCAN",
	CSCAN: "C-SCAN",
	LOOK:  "LOOK",
	CLOOK: "C-LOOK",
}

// Parse returns the Algorithm with the given name. Names are matched case
// insensitively and the separator in C-SCAN and C-LOOK is optional.
func Parse(name string) (Algorithm, error) {
	switch normalize(name) {
	case "fcfs":
		return FCFS, nil
	case "sstf":
		return SSTF, nil
	case "scan":
		return SCAN, nil
	case "cscan":
		return CSCAN, nil
	case "look":
		return LOOK, nil
	case "clook":
		return CLOOK, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownAlgorithm, name)
	}
}

// ParseList parses every name and drops repeated algorithms, keeping the
// order in which they were first named.
func ParseList(list []string) ([]Algorithm, error) {
	algos := make([]Algorithm, len(list))
	for i, name := range list {
		algo, err := Parse(name)
		if err != nil {
			return nil, err
		}

		algos[i] = algo
	}

	return Unique(algos), nil
}

// Unique returns algos without repeats, keeping the first occurrence of
// every algorithm. Invalid values are kept as is so that running them
// reports the error.
func Unique(algos []Algorithm) []Algorithm {
	seen := make(map[Algorithm]bool, len(algos))
	unique := make([]Algorithm, 0, len(algos))
	for _, algo := range algos {
		if !seen[algo] {
			seen[algo] = true
			unique = append(unique, algo)
		}
	}

	return unique
}

func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
}

// Valid reports whether algo is one of the six known policies.
func (algo Algorithm) Valid() bool {
	return algo >= 0 && algo < algorithmN
}

// String returns the display name of the Algorithm.
func (algo Algorithm) String() string {
	if !algo.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(algo))
	}

	return names[algo]
}

func (algo Algorithm) MarshalText() ([]byte, error) {
	if !algo.Valid() {
		return nil, fmt.Errorf("%w %d", ErrUnknownAlgorithm, int(algo))
	}

	return []byte(algo.String()), nil
}

func (algo *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*algo = parsed
	return nil
}

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

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"laptudirm.com/x/elevator/pkg/disk/sched"
	"laptudirm.com/x/elevator/pkg/disk/stats"
)

var ErrUnknownFormat = errors.New("report: unknown export format")

// Document is the exported form of a ranked comparison.
type Document struct {
	DiskSize int     `json:"disk-size" yaml:"disk-size"`
	Head     int     `json:"head" yaml:"head"`
	Results  []Entry `json:"results" yaml:"results"`

	Best  sched.Algorithm `json:"best" yaml:"best"`
	Worst sched.Algorithm `json:"worst" yaml:"worst"`
}

type Entry struct {
	Algorithm   sched.Algorithm `json:"algorithm" yaml:"algorithm"`
	Total       int             `json:"total" yaml:"total"`
	Order       []int           `json:"order" yaml:"order,flow"`
	AverageSeek float64         `json:"average-seek" yaml:"average-seek"`
	Efficiency  float64         `json:"efficiency" yaml:"efficiency"`
}

// NewDocument builds the exported form of a non-empty ranking.
func NewDocument(ranking sched.Ranking, diskSize int) (Document, error) {
	best, ok := ranking.Best()
	if !ok {
		return Document{}, errors.New("report: nothing to export")
	}

	worst, _ := ranking.Worst()

	doc := Document{
		DiskSize: diskSize,
		Head:     best.Order[0],
		Results:  make([]Entry, len(ranking)),
		Best:     best.Algorithm,
		Worst:    worst.Algorithm,
	}

	for i, outcome := range ranking {
		summary := stats.Summarize(outcome.Result, diskSize)
		doc.Results[i] = Entry{
			Algorithm:   outcome.Algorithm,
			Total:       outcome.Total,
			Order:       outcome.Order,
			AverageSeek: summary.AverageSeek,
			Efficiency:  summary.Efficiency,
		}
	}

	return doc, nil
}

// Export writes the ranking as a json or yaml document.
func Export(w io.Writer, ranking sched.Ranking, diskSize int, format string) error {
	doc, err := NewDocument(ranking, diskSize)
	if err != nil {
		return err
	}

	switch format {
	case "json", "":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(doc)

	case "yaml", "yml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return err
		}

		return encoder.Close()

	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

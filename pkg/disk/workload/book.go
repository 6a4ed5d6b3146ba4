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

package workload

import (
	"errors"
	"math/rand"
	"os"
	"strings"
)

var ErrEmptyBook = errors.New("workload: book has no request lists")

// NewBook reads a file of request lists, one comma separated list per
// line. Blank lines and lines starting with # are ignored.
func NewBook(name string, strategy string, diskSize int) (*Book, error) {
	file, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	return ParseBook(string(file), strategy, diskSize)
}

func ParseBook(data string, strategy string, diskSize int) (*Book, error) {
	var book Book
	for _, entry := range strings.Split(data, "\n") {
		entry = strings.Trim(entry, "\n\r\t ")
		if entry == "" || strings.HasPrefix(entry, "#") {
			continue
		}

		book.entries = append(book.entries, ParseRequests(entry, diskSize))
	}

	if len(book.entries) == 0 {
		return nil, ErrEmptyBook
	}

	book.strategy = strategy
	return &book, nil
}

// Book is a list of request lists which is cycled through either in order
// or at random.
type Book struct {
	entries  [][]int
	strategy string
	current  int
}

func (book *Book) Next(r *rand.Rand) {
	switch book.strategy {
	case "random":
		book.current = r.Intn(len(book.entries))
	default:
		book.current = (book.current + 1) % len(book.entries)
	}
}

// Current returns a copy of the current request list.
func (book *Book) Current() []int {
	return append([]int(nil), book.entries[book.current]...)
}

func (book *Book) Len() int {
	return len(book.entries)
}

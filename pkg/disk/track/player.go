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

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/elevator/pkg/disk/report"
)

const clearScreen = "\x1b[H\x1b[2J"

// Player renders a Session to a terminal, sliding each head between the
// stops of its service order.
type Player struct {
	Out io.Writer

	DiskSize int
	Width    int

	Delay time.Duration // delay between two frames of a movement
	Pause time.Duration // delay after every head reaches its next stop

	// Clear redraws the frame in place instead of appending it.
	Clear bool
}

// Play animates the session from its current step until every head has
// finished.
func (p *Player) Play(session *Session) error {
	if err := p.frame(session, session.positions()); err != nil {
		return err
	}

	for !session.Done() {
		from := session.positions()
		session.Step()
		to := session.positions()

		logrus.WithFields(logrus.Fields{
			"from": from,
			"to":   to,
		}).Trace("Stepping heads")

		frames := make([][]int, len(to))
		n := 1
		for i := range to {
			frames[i] = Frames(from[i], to[i], p.Width)
			n = max(n, len(frames[i]))
		}

		for k := 0; k < n; k++ {
			current := make([]int, len(to))
			for i, f := range frames {
				// heads with a shorter trip wait at their destination
				current[i] = f[min(k, len(f)-1)]
			}

			if err := p.frame(session, current); err != nil {
				return err
			}

			time.Sleep(p.Delay)
		}

		time.Sleep(p.Pause)
	}

	return nil
}

func (p *Player) frame(session *Session, positions []int) error {
	if p.Clear {
		if _, err := io.WriteString(p.Out, clearScreen); err != nil {
			return err
		}
	}

	for i, outcome := range session.Outcomes() {
		step, total := session.Progress(outcome.Algorithm)
		name := report.Paint(outcome.Algorithm, fmt.Sprintf("%-7s", outcome.Algorithm))

		if _, err := fmt.Fprintf(
			p.Out, "%s %s  %4d  [%d/%d]\n",
			name, Draw(positions[i], p.DiskSize, p.Width), positions[i], step, total,
		); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(p.Out)
	return err
}

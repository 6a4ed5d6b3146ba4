// Package report renders scheduling results for the terminal and exports
// them for other tools.
package report

import (
	"github.com/fatih/color"

	"laptudirm.com/x/elevator/pkg/disk/sched"
)

var colors = map[sched.Algorithm]*color.Color{
	sched.FCFS:  color.New(color.FgRed),
	sched.SSTF:  color.New(color.FgYellow),
	sched.SCAN:  color.New(color.FgGreen),
	sched.CSCAN: color.New(color.FgCyan),
	sched.LOOK:  color.New(color.FgMagenta),
	sched.CLOOK: color.New(color.FgHiRed),
}

// Paint colours s with the algorithm's colour. Colouring is skipped when
// the output is not a terminal.
func Paint(algo sched.Algorithm, s string) string {
	if c, found := colors[algo]; found {
		return c.Sprint(s)
	}

	return s
}

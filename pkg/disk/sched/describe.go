package sched

import (
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
)

var descriptions = [algorithmN]string{
	FCFS: heredoc.Doc(`
		Services requests in arrival order. Simple but may cause high
		seek times.
	`),
	SSTF: heredoc.Doc(`
		Selects the request with the minimum seek time from the current
		head position.
	`),
	SCAN: heredoc.Doc(`
		Moves the head in one direction servicing requests up to the end
		of the disk, then reverses direction.
	`),
	CSCAN: heredoc.Doc(`
		Like SCAN but services in one direction only, jumping back to the
		start of the disk when it reaches the end.
	`),
	LOOK: heredoc.Doc(`
		Like SCAN but does not go to the disk ends, only as far as the
		last request in each direction.
	`),
	CLOOK: heredoc.Doc(`
		Like C-SCAN but only goes to the last request, jumping to the
		lowest pending request instead of the disk start.
	`),
}

// Description returns a short human-readable explanation of the policy.
func (algo Algorithm) Description() string {
	if !algo.Valid() {
		return "Disk scheduling algorithm"
	}

	// the help text is wrapped for the source, not for the terminal
	return strings.ReplaceAll(strings.TrimSpace(descriptions[algo]), "\n", " ")
}

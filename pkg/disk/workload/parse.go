package workload

import (
	"strconv"
	"strings"
)

// ParseRequests parses a comma separated list of tracks. Entries which are
// not numbers are skipped and the rest are clamped to [0, diskSize].
func ParseRequests(list string, diskSize int) []int {
	requests := []int{}
	for _, field := range strings.Split(list, ",") {
		track, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			continue
		}

		requests = append(requests, min(max(track, 0), diskSize))
	}

	return requests
}

// Format joins the requests into the list format read by ParseRequests.
func Format(requests []int) string {
	fields := make([]string, len(requests))
	for i, request := range requests {
		fields[i] = strconv.Itoa(request)
	}

	return strings.Join(fields, ",")
}

package workload

import (
	"fmt"
	"math/rand"
)

// Random returns n distinct tracks chosen uniformly from [0, diskSize).
func Random(r *rand.Rand, diskSize, n int) ([]int, error) {
	if n < 0 || n > diskSize {
		return nil, fmt.Errorf("%w: cannot pick %d distinct tracks from a disk of %d", ErrInvalidCount, n, diskSize)
	}

	requests := make([]int, 0, n)
	seen := make(map[int]bool, n)
	for len(requests) < n {
		track := r.Intn(diskSize)
		if !seen[track] {
			seen[track] = true
			requests = append(requests, track)
		}
	}

	return requests, nil
}

package bench

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/elevator/pkg/disk/sched"
	"laptudirm.com/x/elevator/pkg/disk/workload"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestBench_Book(t *testing.T) {
	var config Config
	config.Algorithms = []sched.Algorithm{sched.FCFS, sched.SSTF, sched.SCAN}
	config.DiskSize = 200
	config.Head = 50
	config.Trials = 5
	config.Concurrency = 3
	config.Workloads.File = writeFile(t, "workloads.txt", "10,90,30\n")

	calls := 0
	bench, err := New(config)
	require.NoError(t, err)
	bench.OnResult = func(done, total int) {
		calls++
		assert.Equal(t, 5, total)
	}

	require.NoError(t, bench.Start())

	assert.Equal(t, 5, calls)
	assert.Equal(t, 5, bench.Finished)
	assert.Zero(t, bench.Failed)

	assert.Equal(t, Score{Movement: 900}, bench.Scores[0])
	assert.Equal(t, Score{Movement: 600, Wins: 5}, bench.Scores[1])
	assert.Equal(t, Score{Movement: 5 * 338, Losses: 5}, bench.Scores[2])
	assert.InDelta(t, 180.0, bench.Mean(0), 1e-9)

	assert.Equal(t, []sched.Algorithm{sched.SSTF, sched.FCFS, sched.SCAN}, bench.Ranking().Algorithms())
}

func TestBench_Random(t *testing.T) {
	config := Config{
		DiskSize:    200,
		Requests:    8,
		Head:        -1,
		Trials:      50,
		Concurrency: 4,
		Seed:        42,
	}

	first, err := New(config)
	require.NoError(t, err)
	require.NoError(t, first.Start())

	second, err := New(config)
	require.NoError(t, err)
	require.NoError(t, second.Start())

	assert.Equal(t, first.Scores, second.Scores)
	assert.Len(t, first.Scores, len(sched.Algorithms))
	assert.Equal(t, 50, first.Finished)

	wins, losses := 0, 0
	for _, score := range first.Scores {
		wins += score.Wins
		losses += score.Losses
	}
	assert.Equal(t, 50, wins)
	assert.Equal(t, 50, losses)
}

func TestBench_FailedTrials(t *testing.T) {
	bench, err := New(Config{
		Algorithms:  []sched.Algorithm{sched.Algorithm(42)},
		DiskSize:    200,
		Requests:    3,
		Trials:      4,
		Concurrency: 2,
	})
	require.NoError(t, err)
	require.NoError(t, bench.Start())

	assert.Equal(t, 4, bench.Failed)
	assert.Zero(t, bench.Finished)
	assert.Zero(t, bench.Mean(0))
}

func TestBench_NoTrials(t *testing.T) {
	bench, err := New(Config{DiskSize: 200, Requests: 3})
	require.NoError(t, err)
	require.NoError(t, bench.Start())
	assert.Zero(t, bench.Finished)
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(Config{DiskSize: 0, Trials: 1})
	assert.ErrorIs(t, err, sched.ErrInvalidDiskSize)

	_, err = New(Config{DiskSize: 10, Requests: 11, Trials: 1})
	assert.ErrorIs(t, err, workload.ErrInvalidCount)

	_, err = New(Config{DiskSize: 10, Requests: 1, Trials: -1})
	assert.Error(t, err)

	_, err = New(Config{DiskSize: 200, Head: 500, Requests: 8, Trials: 10})
	assert.ErrorIs(t, err, sched.ErrInvalidRange)

	var config Config
	config.DiskSize = 10
	config.Workloads.File = filepath.Join(t.TempDir(), "missing.txt")
	_, err = New(config)
	assert.Error(t, err)
}

func TestBench_RepeatedAlgorithms(t *testing.T) {
	var config Config
	config.Algorithms = []sched.Algorithm{sched.FCFS, sched.FCFS, sched.SSTF}
	config.DiskSize = 200
	config.Head = 50
	config.Trials = 4
	config.Concurrency = 2
	config.Workloads.File = writeFile(t, "workloads.txt", "10,90,30\n")

	bench, err := New(config)
	require.NoError(t, err)
	require.NoError(t, bench.Start())

	assert.Equal(t, []sched.Algorithm{sched.FCFS, sched.SSTF}, bench.Config.Algorithms)
	assert.Equal(t, []Score{
		{Movement: 4 * 180, Losses: 4},
		{Movement: 4 * 120, Wins: 4},
	}, bench.Scores)
}

func TestReport(t *testing.T) {
	var config Config
	config.Algorithms = []sched.Algorithm{sched.FCFS, sched.SSTF}
	config.DiskSize = 200
	config.Head = 50
	config.Trials = 2
	config.Workloads.File = writeFile(t, "workloads.txt", "10,90,30\n")

	bench, err := New(config)
	require.NoError(t, err)
	require.NoError(t, bench.Start())

	var buf bytes.Buffer
	bench.Report(&buf)

	out := buf.String()
	assert.Less(t, strings.Index(out, "SSTF"), strings.Index(out, "FCFS"))
	assert.Contains(t, out, "120.00")
	assert.Contains(t, out, "Trials: 2 finished, 0 failed")
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "bench.yaml", `
algorithms: [look, c-look]
disk-size: 500
requests: 12
head: -1
trials: 100
concurrency: 8
seed: 7
workloads:
  order: random
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []sched.Algorithm{sched.LOOK, sched.CLOOK}, config.Algorithms)
	assert.Equal(t, 500, config.DiskSize)
	assert.Equal(t, -1, config.Head)
	assert.Equal(t, 8, config.Concurrency)
	assert.Equal(t, int64(7), config.Seed)
	assert.Equal(t, "random", config.Workloads.Order)
}

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/elevator/pkg/disk/report"
	"laptudirm.com/x/elevator/pkg/disk/workload"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// execute runs the root command with a configuration file inside a
// temporary directory and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	config := filepath.Join(t.TempDir(), "elevator", "config.yaml")

	var out bytes.Buffer
	root := Root()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", config}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestRun(t *testing.T) {
	out, err := execute(t, "run", "-d", "200", "-H", "53", "-r", "98,183,37,122,14,124,65,67")
	require.NoError(t, err)

	assert.Contains(t, out, "Head: 53")
	assert.Contains(t, out, "Best Algorithm   : SSTF")
	assert.Contains(t, out, "Worst Algorithm  : FCFS")
	assert.Contains(t, out, "236")
	assert.Contains(t, out, "640")
}

func TestRun_CreatesConfig(t *testing.T) {
	config := filepath.Join(t.TempDir(), "nested", "config.yaml")

	root := Root()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--config", config, "algorithms"})
	require.NoError(t, root.Execute())

	assert.FileExists(t, config)
}

func TestRun_Export(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		file   string
		format string
		decode func([]byte, any) error
	}{
		{file: "results.json", decode: json.Unmarshal},
		{file: "results.yaml", decode: yaml.Unmarshal},
		{file: "results.out", format: "yaml", decode: yaml.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)

			args := []string{"run", "-d", "200", "-H", "53", "-r", "98,183,37", "-a", "fcfs,look", "-e", path}
			if tt.format != "" {
				args = append(args, "--format", tt.format)
			}

			_, err := execute(t, args...)
			require.NoError(t, err)

			data, err := os.ReadFile(path)
			require.NoError(t, err)

			var doc report.Document
			require.NoError(t, tt.decode(data, &doc))
			assert.Equal(t, 53, doc.Head)
			assert.Len(t, doc.Results, 2)
		})
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown algorithm", []string{"run", "-r", "1,2", "-a", "elevator"}, "unknown algorithm"},
		{"count mismatch", []string{"run", "-r", "1,2", "-n", "3"}, "expected 3 requests"},
		{"head outside disk", []string{"run", "-d", "100", "-H", "150", "-r", "1"}, "head position"},
		{"disk too large", []string{"run", "-d", "5000"}, "disk size"},
		{"too many random requests", []string{"run", "-n", "50"}, "request count"},
		{"unknown export format", []string{"run", "-r", "1", "-e", filepath.Join(t.TempDir(), "out"), "--format", "xml"}, "format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRun_ExportUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")

	_, err := execute(t, "run", "-r", "98,183,37", "-e", path)
	require.ErrorIs(t, err, report.ErrUnknownFormat)

	assert.NoFileExists(t, path)
}

func TestRun_WorkloadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workload.yaml")
	data, err := yaml.Marshal(workload.Workload{DiskSize: 100, Head: 10, Requests: []int{50, 5}})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	out, err := execute(t, "run", "-f", path, "-a", "fcfs")
	require.NoError(t, err)

	assert.Contains(t, out, "Disk: 0-99  Head: 10  Requests: 2")
	assert.Contains(t, out, "10 → 50 → 5")
}

func TestGenerate(t *testing.T) {
	out, err := execute(t, "generate", "-d", "50", "-n", "10", "--seed", "42")
	require.NoError(t, err)

	requests := workload.ParseRequests(strings.TrimSpace(out), 50)
	require.Len(t, requests, 10)

	seen := make(map[int]bool)
	for _, r := range requests {
		assert.Less(t, r, 50)
		assert.False(t, seen[r], "duplicate request %d", r)
		seen[r] = true
	}

	again, err := execute(t, "generate", "-d", "50", "-n", "10", "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestAlgorithms(t *testing.T) {
	out, err := execute(t, "algorithms")
	require.NoError(t, err)

	for _, name := range []string{"FCFS", "SSTF", "SCAN", "C-SCAN", "LOOK", "C-LOOK"} {
		assert.Contains(t, out, "- "+name)
	}
}

func TestAnimate(t *testing.T) {
	out, err := execute(t,
		"animate", "-d", "100", "-H", "50", "-r", "60,40", "-a", "fcfs",
		"--speed", "0s", "--frame", "0s", "--width", "20", "--no-clear",
	)
	require.NoError(t, err)

	assert.NotContains(t, out, "\x1b[2J")
	assert.Contains(t, out, "[2/2]")
}

func TestBench(t *testing.T) {
	out, err := execute(t, "bench", "-d", "100", "-n", "8", "--trials", "20", "-j", "2", "--seed", "1", "-a", "fcfs,sstf")
	require.NoError(t, err)

	assert.Contains(t, out, "Trials: 20 finished, 0 failed")
	assert.Contains(t, out, "SSTF")
}

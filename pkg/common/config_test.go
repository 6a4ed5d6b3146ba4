package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/elevator/pkg/disk/sched"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, 200, config.DiskSize)
	assert.Equal(t, 50, config.Head)
	assert.Equal(t, 8, config.Requests)
	assert.Equal(t, []sched.Algorithm{sched.FCFS, sched.SSTF, sched.SCAN, sched.CSCAN}, config.Algorithms)
	assert.Equal(t, 500*time.Millisecond, config.Speed)
	assert.Equal(t, 60, config.TrackWidth)
	assert.Equal(t, ":8080", config.Addr)
	assert.NoError(t, config.Validate())
}

func TestLoadConfig_CreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elevator", "config.yaml")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfigFile, data)
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("disk-size: 500\nalgorithms: [look]\nspeed: 1s\n"), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 500, config.DiskSize)
	assert.Equal(t, []sched.Algorithm{sched.LOOK}, config.Algorithms)
	assert.Equal(t, time.Second, config.Speed)
	assert.Equal(t, 50, config.Head)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, os.WriteFile(path, []byte("disk-size: 5000\n"), 0644))
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "disk size")

	require.NoError(t, os.WriteFile(path, []byte("algorithms: [elevator]\n"), 0644))
	_, err = LoadConfig(path)
	assert.ErrorIs(t, err, sched.ErrUnknownAlgorithm)
}

func TestConfig_Validate(t *testing.T) {
	config := DefaultConfig()
	config.Head = 201
	assert.Error(t, config.Validate())

	config = DefaultConfig()
	config.Requests = 21
	assert.Error(t, config.Validate())

	config = DefaultConfig()
	config.TrackWidth = 0
	assert.Error(t, config.Validate())
}

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

package common

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/elevator/pkg/disk/sched"
)

//go:embed config.yaml
var DefaultConfigFile []byte

// Limits of the values accepted for a visualization.
const (
	MaxDiskSize = 1000
	MaxRequests = 20
)

type Config struct {
	DiskSize int `yaml:"disk-size"`
	Head     int `yaml:"head"`
	Requests int `yaml:"requests"`

	Algorithms []sched.Algorithm `yaml:"algorithms"`

	Speed      time.Duration `yaml:"speed"` // Pause at every stop of the animation.
	TrackWidth int           `yaml:"track-width"`

	Addr string `yaml:"addr"`
}

// DefaultConfig returns the configuration in DefaultConfigFile.
func DefaultConfig() Config {
	var config Config
	if err := yaml.Unmarshal(DefaultConfigFile, &config); err != nil {
		panic(err)
	}

	return config
}

// LoadConfig reads the configuration file at path, creating it with the
// default configuration if it does not exist. Missing values are filled in
// from the default configuration.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	if err := TryMkdir(filepath.Dir(path)); err != nil {
		return config, err
	}

	if err := TryCreate(path, DefaultConfigFile); err != nil {
		return config, err
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		return config, fmt.Errorf("config %s: %w", path, err)
	}

	logrus.WithField("path", path).Debug("Loaded configuration")
	return config, config.Validate()
}

func (config Config) Validate() error {
	switch {
	case config.DiskSize < 1 || config.DiskSize > MaxDiskSize:
		return fmt.Errorf("config: disk size %d not in [1, %d]", config.DiskSize, MaxDiskSize)
	case config.Head < 0 || config.Head > config.DiskSize:
		return fmt.Errorf("config: head %d not in [0, %d]", config.Head, config.DiskSize)
	case config.Requests < 1 || config.Requests > MaxRequests:
		return fmt.Errorf("config: request count %d not in [1, %d]", config.Requests, MaxRequests)
	case config.TrackWidth < 1:
		return fmt.Errorf("config: track width %d must be positive", config.TrackWidth)
	}

	return nil
}

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

package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"laptudirm.com/x/elevator/pkg/common"
	"laptudirm.com/x/elevator/pkg/disk/track"
)

func Animate(config *common.Config) *cobra.Command {
	var in inputs

	var (
		speed   time.Duration
		width   int
		frame   time.Duration
		noClear bool
	)

	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Animate the head of every algorithm on the terminal",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			w, algos, err := in.workload(cmd, config)
			if err != nil {
				return err
			}

			outcomes, err := w.Run(algos...)
			if err != nil {
				return err
			}

			if !cmd.Flag("speed").Changed {
				speed = config.Speed
			}

			if !cmd.Flag("width").Changed {
				width = config.TrackWidth
			}

			player := track.Player{
				Out:      cmd.OutOrStdout(),
				DiskSize: w.DiskSize,
				Width:    width,
				Delay:    frame,
				Pause:    speed,
				Clear:    !noClear,
			}

			return player.Play(track.NewSession(outcomes))
		},
	}

	in.register(cmd)
	cmd.Flags().DurationVarP(&speed, "speed", "s", 0, "Pause after every serviced request (default: from config)")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "Width of the drawn track (default: from config)")
	cmd.Flags().DurationVar(&frame, "frame", 20*time.Millisecond, "Delay between two frames of a movement")
	cmd.Flags().BoolVar(&noClear, "no-clear", false, "Print every frame instead of redrawing in place")

	return cmd
}

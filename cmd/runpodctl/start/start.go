// Copyright 2025 Emiliano Spinella (eminwux)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package start

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eminwux/runpodctl/cmd/config"
	"github.com/eminwux/runpodctl/cmd/runpodctl/shared"
	"github.com/eminwux/runpodctl/internal/controller"
)

type StartResult = controller.StartResult

type startController interface {
	StartPod(req controller.StartRequest) (StartResult, error)
}

// MockControllerKey is used to inject mock controllers in tests via context.
type MockControllerKey struct{}

func NewStartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "start",
		Aliases:       []string{"run", "resume"},
		Short:         "Start a stopped pod",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := controller.StartRequest{
				PodID:  strings.TrimSpace(viper.GetString(config.RUNPODCTL_START_POD_ID.ViperKey)),
				All:    viper.GetBool(config.RUNPODCTL_START_ALL.ViperKey),
				MaxBid: viper.GetFloat64(config.RUNPODCTL_START_MAX_BID.ViperKey),
				Spot:   viper.GetBool(config.RUNPODCTL_START_SPOT.ViperKey),
			}

			// Check for mock controller in context (for testing)
			var ctrl startController
			if mockCtrl, ok := cmd.Context().Value(MockControllerKey{}).(startController); ok {
				ctrl = mockCtrl
			} else {
				realCtrl, err := shared.ControllerFromCmd(cmd)
				if err != nil {
					return err
				}
				ctrl = realCtrl
			}

			result, err := ctrl.StartPod(req)
			if err != nil {
				return err
			}

			started := 0
			for _, outcome := range result.Pods {
				if outcome.OK {
					started++
					cmd.Printf("Started pod %s\n", outcome.PodID)
				} else {
					cmd.Printf("Failed to start pod %s\n", outcome.PodID)
				}
			}
			cmd.Printf("DONE | Started %d of %d pods\n", started, len(result.Pods))
			return nil
		},
	}

	cmd.Flags().String("podId", "", "Pod to start")
	_ = viper.BindPFlag(config.RUNPODCTL_START_POD_ID.ViperKey, cmd.Flags().Lookup("podId"))

	cmd.Flags().Bool("all", false, "Start every pod")
	_ = viper.BindPFlag(config.RUNPODCTL_START_ALL.ViperKey, cmd.Flags().Lookup("all"))

	cmd.Flags().Bool("spot", false, "Resume with a spot bid")
	_ = viper.BindPFlag(config.RUNPODCTL_START_SPOT.ViperKey, cmd.Flags().Lookup("spot"))

	cmd.Flags().Float64("max_bid", 0, "Maximum hourly bid per GPU when resuming spot pods")
	_ = viper.BindPFlag(config.RUNPODCTL_START_MAX_BID.ViperKey, cmd.Flags().Lookup("max_bid"))

	return cmd
}

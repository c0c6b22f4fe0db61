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

package stop

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eminwux/runpodctl/cmd/config"
	"github.com/eminwux/runpodctl/cmd/runpodctl/shared"
	"github.com/eminwux/runpodctl/internal/controller"
)

type StopResult = controller.StopResult

type stopController interface {
	StopPod(req controller.StopRequest) (StopResult, error)
}

// MockControllerKey is used to inject mock controllers in tests via context.
type MockControllerKey struct{}

func NewStopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "stop",
		Short:         "Stop a running pod",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := controller.StopRequest{
				PodID: strings.TrimSpace(viper.GetString(config.RUNPODCTL_STOP_POD_ID.ViperKey)),
				All:   viper.GetBool(config.RUNPODCTL_STOP_ALL.ViperKey),
			}

			// Check for mock controller in context (for testing)
			var ctrl stopController
			if mockCtrl, ok := cmd.Context().Value(MockControllerKey{}).(stopController); ok {
				ctrl = mockCtrl
			} else {
				realCtrl, err := shared.ControllerFromCmd(cmd)
				if err != nil {
					return err
				}
				ctrl = realCtrl
			}

			result, err := ctrl.StopPod(req)
			if err != nil {
				return err
			}

			stopped := 0
			for _, outcome := range result.Pods {
				if outcome.OK {
					stopped++
					cmd.Printf("Stopped pod %s\n", outcome.PodID)
				} else {
					cmd.Printf("Failed to stop pod %s\n", outcome.PodID)
				}
			}
			cmd.Printf("DONE | Stopped %d of %d pods\n", stopped, len(result.Pods))
			return nil
		},
	}

	cmd.Flags().String("podId", "", "Pod to stop")
	_ = viper.BindPFlag(config.RUNPODCTL_STOP_POD_ID.ViperKey, cmd.Flags().Lookup("podId"))

	cmd.Flags().Bool("all", false, "Stop every pod")
	_ = viper.BindPFlag(config.RUNPODCTL_STOP_ALL.ViperKey, cmd.Flags().Lookup("all"))

	return cmd
}

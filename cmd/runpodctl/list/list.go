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

package list

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eminwux/runpodctl/cmd/config"
	"github.com/eminwux/runpodctl/cmd/runpodctl/shared"
	"github.com/eminwux/runpodctl/internal/controller"
)

type ListResult = controller.ListResult

type listController interface {
	ListPods() (ListResult, error)
}

// MockControllerKey is used to inject mock controllers in tests via context.
type MockControllerKey struct{}

func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list",
		Aliases:       []string{"ls", "get"},
		Short:         "List pods",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := shared.ParseOutputFormat(cmd)
			if err != nil {
				return err
			}

			// Check for mock controller in context (for testing)
			var ctrl listController
			if mockCtrl, ok := cmd.Context().Value(MockControllerKey{}).(listController); ok {
				ctrl = mockCtrl
			} else {
				realCtrl, err := shared.ControllerFromCmd(cmd)
				if err != nil {
					return err
				}
				ctrl = realCtrl
			}

			result, err := ctrl.ListPods()
			if err != nil {
				return err
			}

			switch format {
			case shared.OutputFormatYAML:
				return shared.PrintYAML(cmd, result.Pods)
			case shared.OutputFormatJSON:
				return shared.PrintJSON(cmd, result.Pods)
			case shared.OutputFormatTable:
			}

			if len(result.Pods) == 0 {
				cmd.Println("No pods found")
				return nil
			}

			cmd.Printf("Found %d pods:\n", len(result.Pods))
			headers := []string{"POD ID", "NAME", "CLOUD", "TYPE", "GPU", "COUNT", "COST/HR", "STATUS", "ADDRESS"}
			rows := make([][]string, 0, len(result.Pods))
			for _, pod := range result.Pods {
				rows = append(rows, []string{
					pod.PodID,
					pod.PodName,
					pod.CloudType.String(),
					pod.InstanceType(),
					pod.GPUDisplayName.DisplayName(),
					strconv.Itoa(pod.GPUCount),
					fmt.Sprintf("$%.2f", pod.CostPerHr),
					pod.DesiredStatus.String(),
					pod.Address(),
				})
			}
			shared.PrintTable(cmd, headers, rows)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output format (table, yaml, json)")
	_ = viper.BindPFlag(config.RUNPODCTL_LIST_OUTPUT.ViperKey, cmd.Flags().Lookup("output"))

	return cmd
}

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

package gputypes

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eminwux/runpodctl/cmd/config"
	"github.com/eminwux/runpodctl/cmd/runpodctl/shared"
	"github.com/eminwux/runpodctl/internal/controller"
)

type GPUTypesResult = controller.GPUTypesResult

type gpuTypesController interface {
	GetGPUTypes(req controller.GPUTypesRequest) (GPUTypesResult, error)
}

// MockControllerKey is used to inject mock controllers in tests via context.
type MockControllerKey struct{}

func NewGPUTypesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gputypes",
		Aliases:       []string{"gpus"},
		Short:         "List available GPU types and prices",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := shared.ParseOutputFormat(cmd)
			if err != nil {
				return err
			}

			req := controller.GPUTypesRequest{
				GPUCount: viper.GetInt(config.RUNPODCTL_GPUTYPES_GPU_COUNT.ViperKey),
			}

			// Check for mock controller in context (for testing)
			var ctrl gpuTypesController
			if mockCtrl, ok := cmd.Context().Value(MockControllerKey{}).(gpuTypesController); ok {
				ctrl = mockCtrl
			} else {
				realCtrl, err := shared.ControllerFromCmd(cmd)
				if err != nil {
					return err
				}
				ctrl = realCtrl
			}

			result, err := ctrl.GetGPUTypes(req)
			if err != nil {
				return err
			}

			switch format {
			case shared.OutputFormatYAML:
				return shared.PrintYAML(cmd, result.GPUTypes)
			case shared.OutputFormatJSON:
				return shared.PrintJSON(cmd, result.GPUTypes)
			case shared.OutputFormatTable:
			}

			if len(result.GPUTypes) == 0 {
				cmd.Println("No GPU types found")
				return nil
			}

			headers := []string{"GPU TYPE", "NAME", "MEMORY", "SECURE", "COMMUNITY", "MIN BID", "ON-DEMAND"}
			rows := make([][]string, 0, len(result.GPUTypes))
			for _, g := range result.GPUTypes {
				rows = append(rows, []string{
					string(g.ID),
					g.DisplayName,
					strconv.Itoa(g.MemoryInGB) + "GB",
					strconv.FormatBool(g.SecureCloud),
					strconv.FormatBool(g.CommunityCloud),
					formatPrice(g.MinimumBidPrice),
					formatPrice(g.OnDemandPrice),
				})
			}
			shared.PrintTable(cmd, headers, rows)
			return nil
		},
	}

	cmd.Flags().Int("gpuCount", 1, "GPU count to quote prices for")
	_ = viper.BindPFlag(config.RUNPODCTL_GPUTYPES_GPU_COUNT.ViperKey, cmd.Flags().Lookup("gpuCount"))

	cmd.Flags().StringP("output", "o", "", "Output format (table, yaml, json)")
	_ = viper.BindPFlag(config.RUNPODCTL_GPUTYPES_OUTPUT.ViperKey, cmd.Flags().Lookup("output"))

	return cmd
}

func formatPrice(p *float64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("$%.2f", *p)
}

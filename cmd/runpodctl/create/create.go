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

package create

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eminwux/runpodctl/cmd/config"
	"github.com/eminwux/runpodctl/cmd/runpodctl/shared"
	"github.com/eminwux/runpodctl/internal/controller"
)

type CreateResult = controller.CreateResult

type createController interface {
	CreatePod(req controller.CreateRequest) (CreateResult, error)
}

// MockControllerKey is used to inject mock controllers in tests via context.
type MockControllerKey struct{}

func NewCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "create",
		Short:         "Create a new GPU pod",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := controller.CreateRequest{
				PodName:           strings.TrimSpace(viper.GetString(config.RUNPODCTL_CREATE_POD_NAME.ViperKey)),
				GPUType:           strings.TrimSpace(viper.GetString(config.RUNPODCTL_CREATE_GPU_TYPE.ViperKey)),
				ImageName:         strings.TrimSpace(viper.GetString(config.RUNPODCTL_CREATE_IMAGE_NAME.ViperKey)),
				TemplateID:        strings.TrimSpace(viper.GetString(config.RUNPODCTL_CREATE_TEMPLATE_ID.ViperKey)),
				CloudType:         strings.TrimSpace(viper.GetString(config.RUNPODCTL_CREATE_CLOUD_TYPE.ViperKey)),
				Spot:              viper.GetBool(config.RUNPODCTL_CREATE_SPOT.ViperKey),
				MaxBid:            viper.GetFloat64(config.RUNPODCTL_CREATE_MAX_BID.ViperKey),
				Args:              viper.GetString(config.RUNPODCTL_CREATE_ARGS.ViperKey),
				VolumePath:        viper.GetString(config.RUNPODCTL_CREATE_VOLUME_PATH.ViperKey),
				ContainerDiskSize: viper.GetInt(config.RUNPODCTL_CREATE_CONTAINER_DISK_SIZE.ViperKey),
				VolumeSize:        viper.GetInt(config.RUNPODCTL_CREATE_VOLUME_SIZE.ViperKey),
				GPUCount:          viper.GetInt(config.RUNPODCTL_CREATE_GPU_COUNT.ViperKey),
				MinVCPUCount:      viper.GetInt(config.RUNPODCTL_CREATE_MIN_VCPU_COUNT.ViperKey),
				MinMemoryInGB:     viper.GetInt(config.RUNPODCTL_CREATE_MIN_MEMORY_IN_GB.ViperKey),
			}

			// Check for mock controller in context (for testing)
			var ctrl createController
			if mockCtrl, ok := cmd.Context().Value(MockControllerKey{}).(createController); ok {
				ctrl = mockCtrl
			} else {
				realCtrl, err := shared.ControllerFromCmd(cmd)
				if err != nil {
					return err
				}
				ctrl = realCtrl
			}

			result, err := ctrl.CreatePod(req)
			if err != nil {
				return err
			}

			label := "ON_DEMAND"
			if result.Spot {
				label = "SPOT"
			}

			switch {
			case result.Outbid:
				cmd.Printf("Failed to create %s pod %s - outbid at max_bid:%.2f\n", label, result.PodName, result.MaxBid)
			case result.Created:
				pod := result.Pod
				cmd.Printf("Created %s pod %s (%s)\n", label, pod.PodName, pod.PodID)
				cmd.Printf("  gpu: %s x%d\n", pod.GPUDisplayName.DisplayName(), pod.GPUCount)
				cmd.Printf("  cost: $%.2f/hr\n", pod.CostPerHr)
				cmd.Printf("  ssh: %s\n", pod.Address())
				cmd.Printf("DONE | Created pod %s\n", pod.PodID)
			default:
				cmd.Printf("Failed to create %s pod %s - max_bid:%.2f spot:%t\n",
					label, result.PodName, result.MaxBid, result.Spot)
			}
			return nil
		},
	}

	cmd.Flags().String("podName", "", "Pod name (defaults to the GPU type plus pod count)")
	_ = viper.BindPFlag(config.RUNPODCTL_CREATE_POD_NAME.ViperKey, cmd.Flags().Lookup("podName"))

	cmd.Flags().String("gpuTypeId", "", "GPU type, e.g. \"NVIDIA GeForce RTX 3090\" or \"RTX 3090\"")
	_ = viper.BindPFlag(config.RUNPODCTL_CREATE_GPU_TYPE.ViperKey, cmd.Flags().Lookup("gpuTypeId"))

	cmd.Flags().String("imageName", "", "Container image to run")
	_ = viper.BindPFlag(config.RUNPODCTL_CREATE_IMAGE_NAME.ViperKey, cmd.Flags().Lookup("imageName"))

	cmd.Flags().String("templateId", "", "Pod template to deploy from (overrides --imageName)")
	_ = viper.BindPFlag(config.RUNPODCTL_CREATE_TEMPLATE_ID.ViperKey, cmd.Flags().Lookup("templateId"))

	cmd.Flags().String("cloudType", "", "Cloud type (COMMUNITY or SECURE)")
	_ = viper.BindPFlag(config.RUNPODCTL_CREATE_CLOUD_TYPE.ViperKey, cmd.Flags().Lookup("cloudType"))

	cmd.Flags().Bool("spot", false, "Rent an interruptible spot pod")
	_ = viper.BindPFlag(config.RUNPODCTL_CREATE_SPOT.ViperKey, cmd.Flags().Lookup("spot"))

	cmd.Flags().Float64("max_bid", 0, "Maximum hourly bid per GPU for spot pods")
	_ = viper.BindPFlag(config.RUNPODCTL_CREATE_MAX_BID.ViperKey, cmd.Flags().Lookup("max_bid"))

	cmd.Flags().String("args", "", "Arguments passed to the container")
	_ = viper.BindPFlag(config.RUNPODCTL_CREATE_ARGS.ViperKey, cmd.Flags().Lookup("args"))

	cmd.Flags().String("volumePath", "/workspace", "Volume mount path inside the pod")
	_ = viper.BindPFlag(config.RUNPODCTL_CREATE_VOLUME_PATH.ViperKey, cmd.Flags().Lookup("volumePath"))

	cmd.Flags().Int("containerDiskSize", 10, "Container disk size in GB")
	_ = viper.BindPFlag(config.RUNPODCTL_CREATE_CONTAINER_DISK_SIZE.ViperKey, cmd.Flags().Lookup("containerDiskSize"))

	cmd.Flags().Int("volumeSize", 10, "Persistent volume size in GB")
	_ = viper.BindPFlag(config.RUNPODCTL_CREATE_VOLUME_SIZE.ViperKey, cmd.Flags().Lookup("volumeSize"))

	cmd.Flags().Int("gpuCount", 1, "Number of GPUs")
	_ = viper.BindPFlag(config.RUNPODCTL_CREATE_GPU_COUNT.ViperKey, cmd.Flags().Lookup("gpuCount"))

	cmd.Flags().Int("minVcpuCount", 1, "Minimum vCPU count")
	_ = viper.BindPFlag(config.RUNPODCTL_CREATE_MIN_VCPU_COUNT.ViperKey, cmd.Flags().Lookup("minVcpuCount"))

	cmd.Flags().Int("minMemoryInGb", 1, "Minimum memory in GB")
	_ = viper.BindPFlag(config.RUNPODCTL_CREATE_MIN_MEMORY_IN_GB.ViperKey, cmd.Flags().Lookup("minMemoryInGb"))

	return cmd
}

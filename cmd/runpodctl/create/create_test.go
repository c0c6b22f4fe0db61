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

//go:build !integration

package create_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/viper"

	createcmd "github.com/eminwux/runpodctl/cmd/runpodctl/create"
	"github.com/eminwux/runpodctl/internal/controller"
	"github.com/eminwux/runpodctl/internal/errdefs"
	"github.com/eminwux/runpodctl/pkg/runpod"
)

type fakeCreateController struct {
	CreatePodFn func(req controller.CreateRequest) (controller.CreateResult, error)
}

func (f *fakeCreateController) CreatePod(req controller.CreateRequest) (controller.CreateResult, error) {
	return f.CreatePodFn(req)
}

func TestNewCreateCmdRunE(t *testing.T) {
	t.Cleanup(func() {
		viper.Reset()
	})

	tests := []struct {
		name       string
		args       []string
		createFn   func(req controller.CreateRequest) (controller.CreateResult, error)
		wantErr    error
		wantOutput []string
	}{
		{
			name: "spot pod created",
			args: []string{
				"--gpuTypeId", "NVIDIA GeForce RTX 3080 Ti",
				"--imageName", "pytorch/pytorch:latest",
				"--spot", "--max_bid", "0.20",
			},
			createFn: func(req controller.CreateRequest) (controller.CreateResult, error) {
				if req.GPUType != "NVIDIA GeForce RTX 3080 Ti" {
					t.Errorf("req.GPUType = %q", req.GPUType)
				}
				if !req.Spot || req.MaxBid != 0.20 {
					t.Errorf("unexpected spot fields: %+v", req)
				}
				if req.GPUCount != 1 || req.VolumePath != "/workspace" {
					t.Errorf("defaults not applied: %+v", req)
				}
				return controller.CreateResult{
					Pod: &runpod.Instance{
						PodID:          "pod1",
						PodHostID:      "host1",
						PodName:        "NVIDIA_GeForce_RTX_3080_Ti0",
						CostPerHr:      0.2,
						GPUDisplayName: runpod.GPUTypeRTX3080Ti,
						GPUCount:       1,
						Spot:           true,
					},
					PodName: "NVIDIA_GeForce_RTX_3080_Ti0",
					Spot:    true,
					MaxBid:  0.20,
					Created: true,
				}, nil
			},
			wantOutput: []string{
				"Created SPOT pod NVIDIA_GeForce_RTX_3080_Ti0 (pod1)",
				"ssh: host1@ssh.runpod.io",
				"DONE | Created pod pod1",
			},
		},
		{
			name: "outbid reported",
			args: []string{
				"--gpuTypeId", "RTX 3090",
				"--imageName", "img",
				"--spot", "--max_bid", "0.05",
			},
			createFn: func(_ controller.CreateRequest) (controller.CreateResult, error) {
				return controller.CreateResult{
					PodName: "p",
					Spot:    true,
					MaxBid:  0.05,
					Outbid:  true,
				}, nil
			},
			wantOutput: []string{"Failed to create SPOT pod p - outbid at max_bid:0.05"},
		},
		{
			name: "remote refusal reported",
			args: []string{
				"--gpuTypeId", "RTX 3090",
				"--imageName", "img",
			},
			createFn: func(_ controller.CreateRequest) (controller.CreateResult, error) {
				return controller.CreateResult{PodName: "p"}, nil
			},
			wantOutput: []string{"Failed to create ON_DEMAND pod p - max_bid:0.00 spot:false"},
		},
		{
			name: "validation error surfaces",
			args: []string{"--imageName", "img"},
			createFn: func(_ controller.CreateRequest) (controller.CreateResult, error) {
				return controller.CreateResult{}, errdefs.ErrGPUTypeRequired
			},
			wantErr: errdefs.ErrGPUTypeRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()

			cmd := createcmd.NewCreateCmd()
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs(tt.args)

			ctx := context.WithValue(context.Background(), createcmd.MockControllerKey{}, &fakeCreateController{
				CreatePodFn: tt.createFn,
			})
			cmd.SetContext(ctx)

			err := cmd.Execute()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Execute() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			for _, want := range tt.wantOutput {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q; got:\n%s", want, out.String())
				}
			}
		})
	}
}

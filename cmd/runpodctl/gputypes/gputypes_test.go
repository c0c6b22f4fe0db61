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

package gputypes_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/viper"

	gputypescmd "github.com/eminwux/runpodctl/cmd/runpodctl/gputypes"
	"github.com/eminwux/runpodctl/internal/controller"
	"github.com/eminwux/runpodctl/pkg/runpod"
)

type fakeGPUTypesController struct {
	GetGPUTypesFn func(req controller.GPUTypesRequest) (controller.GPUTypesResult, error)
}

func (f *fakeGPUTypesController) GetGPUTypes(req controller.GPUTypesRequest) (controller.GPUTypesResult, error) {
	return f.GetGPUTypesFn(req)
}

func TestNewGPUTypesCmdRunE(t *testing.T) {
	t.Cleanup(func() {
		viper.Reset()
	})

	bid := 0.14
	onDemand := 0.34
	ctrl := &fakeGPUTypesController{
		GetGPUTypesFn: func(req controller.GPUTypesRequest) (controller.GPUTypesResult, error) {
			if req.GPUCount != 2 {
				t.Errorf("req.GPUCount = %d, want 2", req.GPUCount)
			}
			return controller.GPUTypesResult{
				GPUTypes: []runpod.GPUTypeInfo{
					{
						ID:              "NVIDIA GeForce RTX 3090",
						DisplayName:     "RTX 3090",
						MemoryInGB:      24,
						CommunityCloud:  true,
						MinimumBidPrice: &bid,
						OnDemandPrice:   &onDemand,
					},
					{
						ID:          "NVIDIA A100 80GB PCIe",
						DisplayName: "A100 80GB",
						MemoryInGB:  80,
						SecureCloud: true,
					},
				},
			}, nil
		},
	}

	cmd := gputypescmd.NewGPUTypesCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--gpuCount", "2"})
	cmd.SetContext(context.WithValue(context.Background(), gputypescmd.MockControllerKey{}, ctrl))

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{
		"GPU TYPE",
		"RTX 3090", "24GB", "$0.14", "$0.34",
		"A100 80GB", "80GB", "-",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q; got:\n%s", want, out.String())
		}
	}
}

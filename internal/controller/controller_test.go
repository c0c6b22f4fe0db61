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

package controller_test

import (
	"context"
	"testing"

	"github.com/eminwux/runpodctl/internal/controller"
	"github.com/eminwux/runpodctl/internal/logging"
	"github.com/eminwux/runpodctl/internal/rpapi"
	"github.com/eminwux/runpodctl/pkg/runpod"
)

// fakeClient implements rpapi.Client with overridable functions. Calls
// without an override fail the test.
type fakeClient struct {
	t *testing.T

	TestConnectionFn             func(ctx context.Context) bool
	GetPodsFn                    func(ctx context.Context) ([]runpod.Instance, error)
	GetPodByIDFn                 func(ctx context.Context, podID string) (*runpod.Instance, error)
	CreateInstanceFn             func(ctx context.Context, spec rpapi.CreateSpec) (*runpod.Instance, error)
	CreateInstanceFromTemplateFn func(ctx context.Context, spec rpapi.CreateSpec) (*runpod.Instance, error)
	StartInstanceFn              func(ctx context.Context, opts rpapi.StartOptions) bool
	StopInstanceFn               func(ctx context.Context, podID string) bool
	DestroyInstanceFn            func(ctx context.Context, podID string) bool
	GetOnDemandPriceFn           func(ctx context.Context, gpuType runpod.GPUTypeID, gpuCount int) *float64
	GetCurrentBidFn              func(ctx context.Context, gpuType runpod.GPUTypeID, gpuCount int) *float64
	GetGPUTypesFn                func(ctx context.Context, gpuCount int) ([]runpod.GPUTypeInfo, error)
}

func (f *fakeClient) TestConnection(ctx context.Context) bool {
	if f.TestConnectionFn == nil {
		return true
	}
	return f.TestConnectionFn(ctx)
}

func (f *fakeClient) GetPods(ctx context.Context) ([]runpod.Instance, error) {
	if f.GetPodsFn == nil {
		f.t.Fatal("unexpected GetPods call")
	}
	return f.GetPodsFn(ctx)
}

func (f *fakeClient) GetPodByID(ctx context.Context, podID string) (*runpod.Instance, error) {
	if f.GetPodByIDFn == nil {
		f.t.Fatal("unexpected GetPodByID call")
	}
	return f.GetPodByIDFn(ctx, podID)
}

func (f *fakeClient) CreateInstance(ctx context.Context, spec rpapi.CreateSpec) (*runpod.Instance, error) {
	if f.CreateInstanceFn == nil {
		f.t.Fatal("unexpected CreateInstance call")
	}
	return f.CreateInstanceFn(ctx, spec)
}

func (f *fakeClient) CreateInstanceFromTemplate(ctx context.Context, spec rpapi.CreateSpec) (*runpod.Instance, error) {
	if f.CreateInstanceFromTemplateFn == nil {
		f.t.Fatal("unexpected CreateInstanceFromTemplate call")
	}
	return f.CreateInstanceFromTemplateFn(ctx, spec)
}

func (f *fakeClient) StartInstance(ctx context.Context, opts rpapi.StartOptions) bool {
	if f.StartInstanceFn == nil {
		f.t.Fatal("unexpected StartInstance call")
	}
	return f.StartInstanceFn(ctx, opts)
}

func (f *fakeClient) StopInstance(ctx context.Context, podID string) bool {
	if f.StopInstanceFn == nil {
		f.t.Fatal("unexpected StopInstance call")
	}
	return f.StopInstanceFn(ctx, podID)
}

func (f *fakeClient) DestroyInstance(ctx context.Context, podID string) bool {
	if f.DestroyInstanceFn == nil {
		f.t.Fatal("unexpected DestroyInstance call")
	}
	return f.DestroyInstanceFn(ctx, podID)
}

func (f *fakeClient) GetOnDemandPrice(ctx context.Context, gpuType runpod.GPUTypeID, gpuCount int) *float64 {
	if f.GetOnDemandPriceFn == nil {
		f.t.Fatal("unexpected GetOnDemandPrice call")
	}
	return f.GetOnDemandPriceFn(ctx, gpuType, gpuCount)
}

func (f *fakeClient) GetCurrentBid(ctx context.Context, gpuType runpod.GPUTypeID, gpuCount int) *float64 {
	if f.GetCurrentBidFn == nil {
		f.t.Fatal("unexpected GetCurrentBid call")
	}
	return f.GetCurrentBidFn(ctx, gpuType, gpuCount)
}

func (f *fakeClient) GetGPUTypes(ctx context.Context, gpuCount int) ([]runpod.GPUTypeInfo, error) {
	if f.GetGPUTypesFn == nil {
		f.t.Fatal("unexpected GetGPUTypes call")
	}
	return f.GetGPUTypesFn(ctx, gpuCount)
}

func newTestExec(t *testing.T, api *fakeClient) *controller.Exec {
	t.Helper()
	api.t = t
	return controller.NewControllerExecForTesting(
		context.Background(),
		logging.NewNoopLogger(),
		controller.Options{APIKey: "test-key"},
		api,
	)
}

func testPod(id string, gpuCount int, spot bool) runpod.Instance {
	return runpod.Instance{
		PodID:          id,
		PodHostID:      id + "-host",
		PodName:        "pod-" + id,
		ImageName:      "img",
		CostPerHr:      0.5,
		GPUDisplayName: runpod.GPUTypeRTX3090,
		GPUCount:       gpuCount,
		VCPUCount:      8,
		MemoryInGB:     30,
		CloudType:      runpod.CloudTypeCommunity,
		Spot:           spot,
		DesiredStatus:  runpod.PodStatusRunning,
	}
}

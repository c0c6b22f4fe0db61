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

package rpapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eminwux/runpodctl/internal/errdefs"
	"github.com/eminwux/runpodctl/pkg/runpod"
)

// podTypeInterruptable is the remote enum value for spot pods. The
// spelling matches the remote schema.
const podTypeInterruptable = "INTERRUPTABLE"

type machinePayload struct {
	PodHostID      string `json:"podHostId"`
	GPUDisplayName string `json:"gpuDisplayName"`
	SecureCloud    bool   `json:"secureCloud"`
}

type podPayload struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	PodType       string         `json:"podType"`
	ImageName     string         `json:"imageName"`
	CostPerHr     float64        `json:"costPerHr"`
	GPUCount      int            `json:"gpuCount"`
	VCPUCount     int            `json:"vcpuCount"`
	MemoryInGB    int            `json:"memoryInGb"`
	DesiredStatus string         `json:"desiredStatus"`
	Machine       machinePayload `json:"machine"`
}

// toInstance maps a pod payload onto the domain snapshot. A GPU display
// name that fails to resolve degrades to GPUTypeUnknown instead of
// aborting the caller.
func (c *client) toInstance(ctx context.Context, p podPayload) runpod.Instance {
	gpuType, err := runpod.GPUTypeFromDisplayName(p.Machine.GPUDisplayName)
	if err != nil {
		c.logger.DebugContext(ctx, "unrecognized gpu display name",
			"podId", p.ID, "gpuDisplayName", p.Machine.GPUDisplayName)
		gpuType = runpod.GPUTypeUnknown
	}

	cloud := runpod.CloudTypeCommunity
	if p.Machine.SecureCloud {
		cloud = runpod.CloudTypeSecure
	}

	status, err := runpod.ParsePodStatus(p.DesiredStatus)
	if err != nil {
		status = runpod.PodStatus(p.DesiredStatus)
	}

	return runpod.Instance{
		PodID:          p.ID,
		PodHostID:      p.Machine.PodHostID,
		PodName:        p.Name,
		ImageName:      p.ImageName,
		CostPerHr:      p.CostPerHr,
		GPUDisplayName: gpuType,
		GPUCount:       p.GPUCount,
		VCPUCount:      p.VCPUCount,
		MemoryInGB:     p.MemoryInGB,
		CloudType:      cloud,
		Spot:           p.PodType == podTypeInterruptable,
		DesiredStatus:  status,
	}
}

// GetPods lists every pod the caller owns, in the order the API returns
// them.
func (c *client) GetPods(ctx context.Context) ([]runpod.Instance, error) {
	raw, err := c.gql.ExecRaw(ctx, queryMyPods, nil)
	if err != nil {
		c.logger.ErrorContext(ctx, "pod listing failed", "query", "myPods", "error", err)
		return nil, fmt.Errorf("%w: failed to get pods: %w", errdefs.ErrAPIQuery, err)
	}

	var resp struct {
		Myself struct {
			Pods []podPayload `json:"pods"`
		} `json:"myself"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode pod listing: %w", errdefs.ErrAPIQuery, err)
	}

	pods := make([]runpod.Instance, 0, len(resp.Myself.Pods))
	for _, p := range resp.Myself.Pods {
		pods = append(pods, c.toInstance(ctx, p))
	}
	return pods, nil
}

// GetPodByID fetches one pod. A remote internal-server-error answer on
// this path means the pod id does not exist and yields (nil, nil); any
// other failure is a client error.
func (c *client) GetPodByID(ctx context.Context, podID string) (*runpod.Instance, error) {
	raw, err := c.gql.ExecRaw(ctx, queryPodByID, map[string]interface{}{"podId": podID})
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		c.logger.ErrorContext(ctx, "pod lookup failed", "query", "pod", "podId", podID, "error", err)
		return nil, fmt.Errorf("%w: failed to get pod %s: %w", errdefs.ErrAPIQuery, podID, err)
	}

	var resp struct {
		Pod *podPayload `json:"pod"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode pod %s: %w", errdefs.ErrAPIQuery, podID, err)
	}
	if resp.Pod == nil {
		return nil, nil
	}

	inst := c.toInstance(ctx, *resp.Pod)
	return &inst, nil
}

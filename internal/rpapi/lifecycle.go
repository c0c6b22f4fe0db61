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

	"github.com/eminwux/runpodctl/pkg/runpod"
)

// StartOptions selects the pod to resume and how to resume it. Spot
// pods need a fresh bid, on-demand pods only their gpu count.
type StartOptions struct {
	PodID    string
	GPUCount int
	MaxBid   float64
	Spot     bool
}

// StartInstance resumes a stopped pod. Asking to start a pod that is
// already running counts as success.
func (c *client) StartInstance(ctx context.Context, opts StartOptions) bool {
	mutation := mutationResumePod
	vars := map[string]interface{}{
		"podId":    opts.PodID,
		"gpuCount": opts.GPUCount,
	}
	if opts.Spot {
		mutation = mutationBidResumePod
		vars["bidPerGpu"] = opts.MaxBid
	}

	raw, err := c.gql.ExecRaw(ctx, mutation, vars)
	if err != nil {
		if isAlreadyRunning(err) {
			c.logger.DebugContext(ctx, "pod already running", "podId", opts.PodID)
			return true
		}
		c.logger.ErrorContext(ctx, "pod resume failed",
			"podId", opts.PodID, "spot", opts.Spot, "error", err)
		return false
	}

	var resp map[string]*struct {
		ID            string `json:"id"`
		DesiredStatus string `json:"desiredStatus"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		c.logger.ErrorContext(ctx, "pod resume returned malformed payload", "podId", opts.PodID, "error", err)
		return false
	}
	for _, pod := range resp {
		if pod != nil && pod.ID == opts.PodID && pod.DesiredStatus == runpod.PodStatusRunning.String() {
			return true
		}
	}

	c.logger.ErrorContext(ctx, "pod resume returned no matching pod", "podId", opts.PodID)
	return false
}

// StopInstance stops a running pod. Success means the API echoes the
// pod back in the exited state.
func (c *client) StopInstance(ctx context.Context, podID string) bool {
	raw, err := c.gql.ExecRaw(ctx, mutationStopPod, map[string]interface{}{"podId": podID})
	if err != nil {
		c.logger.ErrorContext(ctx, "pod stop failed", "podId", podID, "error", err)
		return false
	}

	var resp struct {
		PodStop *struct {
			ID            string `json:"id"`
			DesiredStatus string `json:"desiredStatus"`
		} `json:"podStop"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		c.logger.ErrorContext(ctx, "pod stop returned malformed payload", "podId", podID, "error", err)
		return false
	}
	if resp.PodStop == nil {
		c.logger.ErrorContext(ctx, "pod stop returned no pod", "podId", podID)
		return false
	}

	ok := resp.PodStop.ID == podID && resp.PodStop.DesiredStatus == runpod.PodStatusExited.String()
	if !ok {
		c.logger.ErrorContext(ctx, "pod stop left pod in unexpected state",
			"podId", podID, "desiredStatus", resp.PodStop.DesiredStatus)
	}
	return ok
}

// DestroyInstance terminates a pod. The mutation returns null on
// success, so any non-error answer counts.
func (c *client) DestroyInstance(ctx context.Context, podID string) bool {
	_, err := c.gql.ExecRaw(ctx, mutationTerminatePod, map[string]interface{}{
		"input": map[string]interface{}{"podId": podID},
	})
	if err != nil {
		c.logger.ErrorContext(ctx, "pod terminate failed", "podId", podID, "error", err)
		return false
	}
	return true
}

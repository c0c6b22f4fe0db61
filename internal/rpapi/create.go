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
	"time"

	"github.com/eminwux/runpodctl/internal/errdefs"
	"github.com/eminwux/runpodctl/pkg/runpod"
)

// CreateSpec describes the pod to provision. TemplateID is only
// consulted by CreateInstanceFromTemplate.
type CreateSpec struct {
	PodName           string
	GPUTypeID         runpod.GPUTypeID
	ImageName         string
	TemplateID        string
	CloudType         runpod.CloudType
	Spot              bool
	MaxBid            float64
	Args              string
	VolumePath        string
	ContainerDiskSize int
	VolumeSize        int
	GPUCount          int
	MinVCPUCount      int
	MinMemoryInGB     int
}

func (s CreateSpec) input() map[string]interface{} {
	in := map[string]interface{}{
		"name":              s.PodName,
		"gpuTypeId":         s.GPUTypeID.DisplayName(),
		"cloudType":         s.CloudType.String(),
		"dockerArgs":        s.Args,
		"volumeMountPath":   s.VolumePath,
		"containerDiskInGb": s.ContainerDiskSize,
		"volumeInGb":        s.VolumeSize,
		"gpuCount":          s.GPUCount,
		"minVcpuCount":      s.MinVCPUCount,
		"minMemoryInGb":     s.MinMemoryInGB,
	}
	if s.TemplateID != "" {
		in["templateId"] = s.TemplateID
	} else {
		in["imageName"] = s.ImageName
	}
	if s.Spot {
		in["bidPerGpu"] = s.MaxBid
	}
	return in
}

// CreateInstance provisions a pod from a raw image name and waits for
// it to appear in the pod listing before returning its snapshot.
func (c *client) CreateInstance(ctx context.Context, spec CreateSpec) (*runpod.Instance, error) {
	spec.TemplateID = ""
	return c.deployPod(ctx, spec)
}

// CreateInstanceFromTemplate provisions a pod from a saved template.
func (c *client) CreateInstanceFromTemplate(ctx context.Context, spec CreateSpec) (*runpod.Instance, error) {
	return c.deployPod(ctx, spec)
}

func (c *client) deployPod(ctx context.Context, spec CreateSpec) (*runpod.Instance, error) {
	mutation := mutationDeployOnDemandPod
	field := "podFindAndDeployOnDemand"
	if spec.Spot {
		mutation = mutationRentSpotPod
		field = "podRentInterruptable"
	}

	raw, err := c.gql.ExecRaw(ctx, mutation, map[string]interface{}{"input": spec.input()})
	if err != nil {
		if isOutbid(err) {
			return nil, fmt.Errorf("%w: bid %.2f for %s", errdefs.ErrOutbid, spec.MaxBid, spec.GPUTypeID)
		}
		c.logger.ErrorContext(ctx, "pod deployment rejected",
			"mutation", field, "podName", spec.PodName, "gpuTypeId", spec.GPUTypeID, "error", err)
		return nil, nil
	}

	var resp map[string]struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		c.logger.ErrorContext(ctx, "pod deployment returned malformed payload", "error", err)
		return nil, nil
	}
	podID := resp[field].ID
	if podID == "" {
		c.logger.ErrorContext(ctx, "pod deployment returned no pod id", "mutation", field)
		return nil, nil
	}

	c.logger.InfoContext(ctx, "pod deployed, waiting for provisioning",
		"podId", podID, "podName", spec.PodName)
	return c.waitForPod(ctx, podID)
}

// waitForPod polls the listing until the new pod shows up or the
// provisioning deadline expires.
func (c *client) waitForPod(ctx context.Context, podID string) (*runpod.Instance, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()
	deadline := time.NewTimer(c.provisionTimeout)
	defer deadline.Stop()

	for {
		pod, err := c.GetPodByID(ctx, podID)
		if err != nil {
			return nil, err
		}
		if pod != nil {
			return pod, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline.C:
			return nil, fmt.Errorf("%w: pod %s after %s", errdefs.ErrProvisionTimeout, podID, c.provisionTimeout)
		case <-ticker.C:
		}
	}
}

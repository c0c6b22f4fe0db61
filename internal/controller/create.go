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

package controller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/eminwux/runpodctl/internal/errdefs"
	"github.com/eminwux/runpodctl/internal/rpapi"
	"github.com/eminwux/runpodctl/pkg/runpod"
)

// CreateRequest carries the validated command-line options for a pod
// creation.
type CreateRequest struct {
	PodName           string
	GPUType           string
	ImageName         string
	TemplateID        string
	CloudType         string
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

// CreateResult reports what was provisioned. Outbid is set instead of
// an error when a spot bid lost, so callers can render it as an
// outcome rather than a failure.
type CreateResult struct {
	Pod       *runpod.Instance
	PodName   string
	GPUTypeID runpod.GPUTypeID
	CloudType runpod.CloudType
	Spot      bool
	MaxBid    float64
	Created   bool
	Outbid    bool
}

// CreatePod provisions a new pod according to the request. The pod
// name defaults to the GPU type id suffixed with the current pod
// count.
func (b *Exec) CreatePod(req CreateRequest) (CreateResult, error) {
	var res CreateResult

	gpuType, err := runpod.GPUTypeFromDisplayName(req.GPUType)
	if err != nil {
		return res, fmt.Errorf("%w: %q", errdefs.ErrGPUTypeRequired, req.GPUType)
	}
	res.GPUTypeID = gpuType

	if req.TemplateID == "" && req.ImageName == "" {
		return res, errdefs.ErrImageOrTemplateRequired
	}
	if req.Spot && req.MaxBid <= 0 {
		return res, errdefs.ErrMaxBidRequired
	}
	res.Spot = req.Spot
	res.MaxBid = req.MaxBid

	cloud := runpod.CloudTypeCommunity
	if req.CloudType != "" {
		cloud, err = runpod.ParseCloudType(req.CloudType)
		if err != nil {
			return res, err
		}
	}
	res.CloudType = cloud

	if err := b.ensureConnected(); err != nil {
		return res, err
	}

	podName := strings.TrimSpace(req.PodName)
	if podName == "" {
		pods, err := b.api.GetPods(b.ctx)
		if err != nil {
			return res, err
		}
		podName = strings.ReplaceAll(gpuType.DisplayName(), " ", "_") + strconv.Itoa(len(pods))
	}
	res.PodName = podName

	spec := rpapi.CreateSpec{
		PodName:           podName,
		GPUTypeID:         gpuType,
		ImageName:         req.ImageName,
		TemplateID:        req.TemplateID,
		CloudType:         cloud,
		Spot:              req.Spot,
		MaxBid:            req.MaxBid,
		Args:              req.Args,
		VolumePath:        req.VolumePath,
		ContainerDiskSize: req.ContainerDiskSize,
		VolumeSize:        req.VolumeSize,
		GPUCount:          req.GPUCount,
		MinVCPUCount:      req.MinVCPUCount,
		MinMemoryInGB:     req.MinMemoryInGB,
	}

	var pod *runpod.Instance
	if req.TemplateID != "" {
		pod, err = b.api.CreateInstanceFromTemplate(b.ctx, spec)
	} else {
		pod, err = b.api.CreateInstance(b.ctx, spec)
	}
	if err != nil {
		if errors.Is(err, errdefs.ErrOutbid) {
			b.logger.WarnContext(b.ctx, "spot bid lost", "podName", podName, "maxBid", req.MaxBid)
			res.Outbid = true
			return res, nil
		}
		return res, err
	}

	res.Pod = pod
	res.Created = pod != nil
	return res, nil
}

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
	"fmt"

	"github.com/eminwux/runpodctl/internal/errdefs"
	"github.com/eminwux/runpodctl/internal/rpapi"
)

// PodOutcome records one pod's result inside a multi-pod operation.
type PodOutcome struct {
	PodID string
	OK    bool
}

type StartRequest struct {
	PodID  string
	All    bool
	MaxBid float64
	Spot   bool
}

type StartResult struct {
	Pods []PodOutcome
}

// StartPod resumes one pod by id, or every pod when All is set. Each
// pod resumes with its own gpu count.
func (b *Exec) StartPod(req StartRequest) (StartResult, error) {
	var res StartResult

	if req.PodID == "" && !req.All {
		return res, errdefs.ErrPodSelectorRequired
	}
	if req.Spot && req.MaxBid <= 0 {
		return res, errdefs.ErrMaxBidRequired
	}

	if err := b.ensureConnected(); err != nil {
		return res, err
	}

	if req.All {
		pods, err := b.api.GetPods(b.ctx)
		if err != nil {
			return res, err
		}
		for _, pod := range pods {
			ok := b.api.StartInstance(b.ctx, rpapi.StartOptions{
				PodID:    pod.PodID,
				GPUCount: pod.GPUCount,
				MaxBid:   req.MaxBid,
				Spot:     req.Spot || pod.Spot,
			})
			res.Pods = append(res.Pods, PodOutcome{PodID: pod.PodID, OK: ok})
		}
		return res, nil
	}

	pod, err := b.api.GetPodByID(b.ctx, req.PodID)
	if err != nil {
		return res, err
	}
	if pod == nil {
		return res, fmt.Errorf("%w: %s", errdefs.ErrPodNotFound, req.PodID)
	}

	ok := b.api.StartInstance(b.ctx, rpapi.StartOptions{
		PodID:    pod.PodID,
		GPUCount: pod.GPUCount,
		MaxBid:   req.MaxBid,
		Spot:     req.Spot || pod.Spot,
	})
	res.Pods = append(res.Pods, PodOutcome{PodID: pod.PodID, OK: ok})
	return res, nil
}

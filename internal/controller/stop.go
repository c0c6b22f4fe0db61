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
	"github.com/eminwux/runpodctl/internal/errdefs"
)

type StopRequest struct {
	PodID string
	All   bool
}

type StopResult struct {
	Pods []PodOutcome
}

// StopPod stops one pod by id, or every pod when All is set. Per-pod
// failures are reported in the outcomes, not as an error.
func (b *Exec) StopPod(req StopRequest) (StopResult, error) {
	var res StopResult

	if req.PodID == "" && !req.All {
		return res, errdefs.ErrPodSelectorRequired
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
			ok := b.api.StopInstance(b.ctx, pod.PodID)
			res.Pods = append(res.Pods, PodOutcome{PodID: pod.PodID, OK: ok})
		}
		return res, nil
	}

	ok := b.api.StopInstance(b.ctx, req.PodID)
	res.Pods = append(res.Pods, PodOutcome{PodID: req.PodID, OK: ok})
	return res, nil
}

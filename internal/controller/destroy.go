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

type DestroyRequest struct {
	PodID string
	All   bool
}

type DestroyResult struct {
	Pods []PodOutcome
}

// DestroyPod terminates one pod by id, or every pod when All is set.
// Termination releases the pod's volume; there is no undo.
func (b *Exec) DestroyPod(req DestroyRequest) (DestroyResult, error) {
	var res DestroyResult

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
			ok := b.api.DestroyInstance(b.ctx, pod.PodID)
			res.Pods = append(res.Pods, PodOutcome{PodID: pod.PodID, OK: ok})
		}
		return res, nil
	}

	ok := b.api.DestroyInstance(b.ctx, req.PodID)
	res.Pods = append(res.Pods, PodOutcome{PodID: req.PodID, OK: ok})
	return res, nil
}

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
	"github.com/eminwux/runpodctl/pkg/runpod"
)

type GPUTypesRequest struct {
	GPUCount int
}

type GPUTypesResult struct {
	GPUTypes []runpod.GPUTypeInfo
}

// GetGPUTypes lists the GPU offerings with pricing quoted for the
// requested gpu count, defaulting to a single gpu.
func (b *Exec) GetGPUTypes(req GPUTypesRequest) (GPUTypesResult, error) {
	var res GPUTypesResult

	count := req.GPUCount
	if count <= 0 {
		count = 1
	}

	if err := b.ensureConnected(); err != nil {
		return res, err
	}

	types, err := b.api.GetGPUTypes(b.ctx, count)
	if err != nil {
		return res, err
	}

	res.GPUTypes = types
	return res, nil
}

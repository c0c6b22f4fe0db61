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

// ListResult reports the pods the account currently holds, in the
// order the API lists them.
type ListResult struct {
	Pods []runpod.Instance
}

func (b *Exec) ListPods() (ListResult, error) {
	var res ListResult

	if err := b.ensureConnected(); err != nil {
		return res, err
	}

	pods, err := b.api.GetPods(b.ctx)
	if err != nil {
		return res, err
	}

	res.Pods = pods
	return res, nil
}

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

package errdefs

import (
	"errors"
)

var (
	ErrConfig         = errors.New("config error")
	ErrLoggerNotFound = errors.New("logger not found in context")

	ErrAPIKeyRequired = errors.New("runpod API key is required")
	ErrNotConnected   = errors.New("runpod API is not connected")
	ErrAPIQuery       = errors.New("runpod API query failed")

	ErrPodNotFound         = errors.New("pod not found")
	ErrPodSelectorRequired = errors.New("either a pod id or --all is required")

	ErrOutbid           = errors.New("bid is below the current minimum")
	ErrProvisionTimeout = errors.New("timed out waiting for pod to provision")

	ErrGPUTypeRequired         = errors.New("gpu type is required")
	ErrMaxBidRequired          = errors.New("max bid is required for spot pods")
	ErrImageOrTemplateRequired = errors.New("either an image name or a template id is required")
)

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

// Package runpod defines the value types exchanged with the RunPod API:
// cloud tiers, GPU SKUs, desired pod states and pod instance snapshots.
package runpod

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownCloudType = errors.New("unknown cloud type")
	ErrUnknownPodStatus = errors.New("unknown pod status")
)

// CloudType is the pricing/availability tier a pod runs on.
type CloudType string

const (
	CloudTypeCommunity CloudType = "COMMUNITY"
	CloudTypeSecure    CloudType = "SECURE"
)

func (c CloudType) String() string {
	return string(c)
}

// ParseCloudType resolves a case-insensitive tier name.
func ParseCloudType(s string) (CloudType, error) {
	switch CloudType(strings.ToUpper(strings.TrimSpace(s))) {
	case CloudTypeCommunity:
		return CloudTypeCommunity, nil
	case CloudTypeSecure:
		return CloudTypeSecure, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCloudType, s)
	}
}

// PodStatus is the desired state of a pod as requested by the user,
// not necessarily its actual provisioning phase.
type PodStatus string

const (
	PodStatusRunning PodStatus = "RUNNING"
	PodStatusExited  PodStatus = "EXITED"
)

func (p PodStatus) String() string {
	return string(p)
}

// ParsePodStatus resolves a case-insensitive desired-status name.
func ParsePodStatus(s string) (PodStatus, error) {
	switch PodStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case PodStatusRunning:
		return PodStatusRunning, nil
	case PodStatusExited:
		return PodStatusExited, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPodStatus, s)
	}
}

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

package runpod

import "fmt"

// SSHAddress is the fixed connection endpoint every pod is reachable at.
const SSHAddress = "ssh.runpod.io"

// Instance is a snapshot of one remote pod. It is built fresh from each
// API response and never mutated afterwards.
type Instance struct {
	PodID          string    `json:"podId"          yaml:"podId"`
	PodHostID      string    `json:"podHostId"      yaml:"podHostId"`
	PodName        string    `json:"podName"        yaml:"podName"`
	ImageName      string    `json:"imageName"      yaml:"imageName"`
	CostPerHr      float64   `json:"costPerHr"      yaml:"costPerHr"`
	GPUDisplayName GPUTypeID `json:"gpuDisplayName" yaml:"gpuDisplayName"`
	GPUCount       int       `json:"gpuCount"       yaml:"gpuCount"`
	VCPUCount      int       `json:"vcpuCount"      yaml:"vcpuCount"`
	MemoryInGB     int       `json:"memoryInGb"     yaml:"memoryInGb"`
	CloudType      CloudType `json:"cloudType"      yaml:"cloudType"`
	Spot           bool      `json:"spot"           yaml:"spot"`
	DesiredStatus  PodStatus `json:"desiredStatus"  yaml:"desiredStatus"`
}

// Address returns the SSH address for the pod. The proxy routes on the
// pod host id.
func (i Instance) Address() string {
	return i.PodHostID + "@" + SSHAddress
}

// InstanceType renders the pricing mode for display.
func (i Instance) InstanceType() string {
	if i.Spot {
		return "SPOT"
	}
	return "ON_DEMAND"
}

func (i Instance) String() string {
	return fmt.Sprintf("%s - %s - $%.2f/hr - %s:%s:%s",
		i.PodID, i.GPUDisplayName, i.CostPerHr, i.CloudType, i.InstanceType(), i.DesiredStatus)
}

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

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownGPUType = errors.New("unknown GPU type")

// GPUTypeID identifies a GPU SKU the API rents out. The set is closed:
// it must match the identifier strings the remote API accepts.
type GPUTypeID string

const (
	// GPUTypeUnknown marks a pod whose GPU display name did not resolve
	// to a known SKU. Listings carry it instead of failing.
	GPUTypeUnknown GPUTypeID = "unknown"

	GPUTypeRTXA4000  GPUTypeID = "RTX_A4000"
	GPUTypeRTXA4500  GPUTypeID = "RTX_A4500"
	GPUTypeRTXA5000  GPUTypeID = "RTX_A5000"
	GPUTypeRTXA6000  GPUTypeID = "RTX_A6000"
	GPUTypeA10080GB  GPUTypeID = "A100_80GB"
	GPUTypeA40       GPUTypeID = "A40"
	GPUTypeRTX3070   GPUTypeID = "RTX_3070"
	GPUTypeRTX3080   GPUTypeID = "RTX_3080"
	GPUTypeRTX3080Ti GPUTypeID = "RTX_3080_TI"
	GPUTypeRTX3090   GPUTypeID = "RTX_3090"
	GPUTypeV100FHHL  GPUTypeID = "V100_FHHL"
	GPUTypeV100SXM2  GPUTypeID = "V100_SXM2"
	GPUTypeTeslaV100 GPUTypeID = "TESLA_V100"
)

// gpuDisplayNames maps each SKU to the vendor display string the API
// uses as its gpuTypeId.
var gpuDisplayNames = map[GPUTypeID]string{
	GPUTypeRTXA4000:  "NVIDIA RTX A4000",
	GPUTypeRTXA4500:  "NVIDIA RTX A4500",
	GPUTypeRTXA5000:  "NVIDIA RTX A5000",
	GPUTypeRTXA6000:  "NVIDIA RTX A6000",
	GPUTypeA10080GB:  "NVIDIA A100 80GB PCIe",
	GPUTypeA40:       "NVIDIA A40",
	GPUTypeRTX3070:   "NVIDIA GeForce RTX 3070",
	GPUTypeRTX3080:   "NVIDIA GeForce RTX 3080",
	GPUTypeRTX3080Ti: "NVIDIA GeForce RTX 3080 Ti",
	GPUTypeRTX3090:   "NVIDIA GeForce RTX 3090",
	GPUTypeV100FHHL:  "Tesla V100-FHHL-16GB",
	GPUTypeV100SXM2:  "Tesla V100-SXM2-16GB",
	GPUTypeTeslaV100: "Tesla V100-PCIE-16GB",
}

// gpuTypesByDisplayName is the reverse-lookup table, built once at init.
var gpuTypesByDisplayName = func() map[string]GPUTypeID {
	m := make(map[string]GPUTypeID, len(gpuDisplayNames))
	for id, name := range gpuDisplayNames {
		m[name] = id
	}
	return m
}()

func (g GPUTypeID) String() string {
	return string(g)
}

// DisplayName returns the vendor display string the API expects as a
// gpuTypeId, or the raw value for unknown SKUs.
func (g GPUTypeID) DisplayName() string {
	if name, ok := gpuDisplayNames[g]; ok {
		return name
	}
	return string(g)
}

// GPUTypes returns every known SKU.
func GPUTypes() []GPUTypeID {
	ids := make([]GPUTypeID, 0, len(gpuDisplayNames))
	for id := range gpuDisplayNames {
		ids = append(ids, id)
	}
	return ids
}

// GPUTypeFromDisplayName resolves a GPU SKU from either the full vendor
// display string ("NVIDIA GeForce RTX 3080 Ti") or the normalized short
// form the machine records carry ("RTX 3080 Ti"). Unknown strings yield
// an error wrapping ErrUnknownGPUType.
func GPUTypeFromDisplayName(s string) (GPUTypeID, error) {
	trimmed := strings.TrimSpace(s)
	if id, ok := gpuTypesByDisplayName[trimmed]; ok {
		return id, nil
	}
	norm := GPUTypeID(strings.ToUpper(strings.ReplaceAll(trimmed, " ", "_")))
	if _, ok := gpuDisplayNames[norm]; ok {
		return norm, nil
	}
	return GPUTypeUnknown, fmt.Errorf("%w: %q", ErrUnknownGPUType, s)
}

// GPUTypeInfo is one row of the API's GPU pricing table. Price pointers
// are nil when the corresponding tier has no published price for the
// requested GPU count.
type GPUTypeInfo struct {
	ID              GPUTypeID `json:"id"              yaml:"id"`
	DisplayName     string    `json:"displayName"     yaml:"displayName"`
	MemoryInGB      int       `json:"memoryInGb"      yaml:"memoryInGb"`
	SecureCloud     bool      `json:"secureCloud"     yaml:"secureCloud"`
	CommunityCloud  bool      `json:"communityCloud"  yaml:"communityCloud"`
	MinimumBidPrice *float64  `json:"minimumBidPrice" yaml:"minimumBidPrice"`
	OnDemandPrice   *float64  `json:"onDemandPrice"   yaml:"onDemandPrice"`
}

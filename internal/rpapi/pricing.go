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

package rpapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eminwux/runpodctl/internal/errdefs"
	"github.com/eminwux/runpodctl/pkg/runpod"
)

type gpuTypePayload struct {
	ID             string `json:"id"`
	DisplayName    string `json:"displayName"`
	MemoryInGB     int    `json:"memoryInGb"`
	SecureCloud    bool   `json:"secureCloud"`
	CommunityCloud bool   `json:"communityCloud"`
	LowestPrice    *struct {
		MinimumBidPrice      *float64 `json:"minimumBidPrice"`
		UninterruptablePrice *float64 `json:"uninterruptablePrice"`
	} `json:"lowestPrice"`
}

// GetGPUTypes lists the GPU SKUs the API offers, with pricing quoted
// for the given gpu count. SKUs this build does not recognize are kept
// with their raw id.
func (c *client) GetGPUTypes(ctx context.Context, gpuCount int) ([]runpod.GPUTypeInfo, error) {
	raw, err := c.gql.ExecRaw(ctx, queryGPUTypes, map[string]interface{}{"gpuCount": gpuCount})
	if err != nil {
		c.logger.ErrorContext(ctx, "gpu type listing failed", "query", "gpuTypes", "error", err)
		return nil, fmt.Errorf("%w: failed to get gpu types: %w", errdefs.ErrAPIQuery, err)
	}

	var resp struct {
		GPUTypes []gpuTypePayload `json:"gpuTypes"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode gpu types: %w", errdefs.ErrAPIQuery, err)
	}

	infos := make([]runpod.GPUTypeInfo, 0, len(resp.GPUTypes))
	for _, g := range resp.GPUTypes {
		info := runpod.GPUTypeInfo{
			ID:             runpod.GPUTypeID(g.ID),
			DisplayName:    g.DisplayName,
			MemoryInGB:     g.MemoryInGB,
			SecureCloud:    g.SecureCloud,
			CommunityCloud: g.CommunityCloud,
		}
		if g.LowestPrice != nil {
			info.MinimumBidPrice = g.LowestPrice.MinimumBidPrice
			info.OnDemandPrice = g.LowestPrice.UninterruptablePrice
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// GetOnDemandPrice quotes the current on-demand hourly price for a GPU
// type, or nil when the API cannot answer.
func (c *client) GetOnDemandPrice(ctx context.Context, gpuType runpod.GPUTypeID, gpuCount int) *float64 {
	info := c.gpuTypeByID(ctx, gpuType, gpuCount)
	if info == nil {
		return nil
	}
	return info.OnDemandPrice
}

// GetCurrentBid quotes the minimum spot bid for a GPU type, or nil when
// the API cannot answer.
func (c *client) GetCurrentBid(ctx context.Context, gpuType runpod.GPUTypeID, gpuCount int) *float64 {
	info := c.gpuTypeByID(ctx, gpuType, gpuCount)
	if info == nil {
		return nil
	}
	return info.MinimumBidPrice
}

func (c *client) gpuTypeByID(ctx context.Context, gpuType runpod.GPUTypeID, gpuCount int) *runpod.GPUTypeInfo {
	raw, err := c.gql.ExecRaw(ctx, queryGPUTypeByID, map[string]interface{}{
		"gpuTypeId": gpuType.DisplayName(),
		"gpuCount":  gpuCount,
	})
	if err != nil {
		c.logger.ErrorContext(ctx, "gpu type lookup failed", "gpuTypeId", gpuType, "error", err)
		return nil
	}

	var resp struct {
		GPUTypes []gpuTypePayload `json:"gpuTypes"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		c.logger.ErrorContext(ctx, "gpu type lookup returned malformed payload", "gpuTypeId", gpuType, "error", err)
		return nil
	}
	if len(resp.GPUTypes) == 0 {
		c.logger.DebugContext(ctx, "gpu type lookup returned no rows", "gpuTypeId", gpuType)
		return nil
	}

	g := resp.GPUTypes[0]
	info := runpod.GPUTypeInfo{
		ID:             runpod.GPUTypeID(g.ID),
		DisplayName:    g.DisplayName,
		MemoryInGB:     g.MemoryInGB,
		SecureCloud:    g.SecureCloud,
		CommunityCloud: g.CommunityCloud,
	}
	if g.LowestPrice != nil {
		info.MinimumBidPrice = g.LowestPrice.MinimumBidPrice
		info.OnDemandPrice = g.LowestPrice.UninterruptablePrice
	}
	return &info
}

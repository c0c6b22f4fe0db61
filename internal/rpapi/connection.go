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
)

// guestUserID is what the API reports for unauthenticated callers.
const guestUserID = "guest"

// TestConnection verifies the API key by asking who we are. Any failure
// counts as not connected.
func (c *client) TestConnection(ctx context.Context) bool {
	raw, err := c.gql.ExecRaw(ctx, queryMyself, nil)
	if err != nil {
		c.logger.ErrorContext(ctx, "connection check failed", "query", "myself", "error", err)
		return false
	}

	var resp struct {
		Myself struct {
			ID string `json:"id"`
		} `json:"myself"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		c.logger.ErrorContext(ctx, "connection check returned malformed payload", "error", err)
		return false
	}

	if resp.Myself.ID == "" || resp.Myself.ID == guestUserID {
		c.logger.DebugContext(ctx, "connection check rejected", "userId", resp.Myself.ID)
		return false
	}

	c.logger.DebugContext(ctx, "connection check passed", "userId", resp.Myself.ID)
	return true
}

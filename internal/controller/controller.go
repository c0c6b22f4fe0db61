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

// Package controller holds the business logic between the CLI commands
// and the API client. Commands hand it validated options and render
// the result structs it returns.
package controller

import (
	"context"
	"log/slog"
	"time"

	"github.com/eminwux/runpodctl/internal/errdefs"
	"github.com/eminwux/runpodctl/internal/rpapi"
)

type Exec struct {
	ctx    context.Context
	logger *slog.Logger
	opts   Options
	api    rpapi.Client
}

type Options struct {
	APIURL           string
	APIKey           string
	ProvisionTimeout time.Duration
}

func NewControllerExec(ctx context.Context, logger *slog.Logger, opts Options) *Exec {
	return &Exec{
		ctx:    ctx,
		logger: logger,
		opts:   opts,
		api: rpapi.NewClient(logger, rpapi.Options{
			URL:              opts.APIURL,
			APIKey:           opts.APIKey,
			ProvisionTimeout: opts.ProvisionTimeout,
		}),
	}
}

// NewControllerExecForTesting allows injecting a fake API client.
func NewControllerExecForTesting(ctx context.Context, logger *slog.Logger, opts Options, api rpapi.Client) *Exec {
	return &Exec{
		ctx:    ctx,
		logger: logger,
		opts:   opts,
		api:    api,
	}
}

// ensureConnected verifies the API key before any operation that would
// otherwise fail with an opaque remote error.
func (b *Exec) ensureConnected() error {
	if !b.api.TestConnection(b.ctx) {
		return errdefs.ErrNotConnected
	}
	return nil
}

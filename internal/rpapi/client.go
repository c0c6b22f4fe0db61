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

// Package rpapi implements the client for the RunPod GraphQL API. It
// translates typed requests into GraphQL operations and raw JSON
// responses back into pkg/runpod domain values.
package rpapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	graphql "github.com/hasura/go-graphql-client"

	"github.com/eminwux/runpodctl/pkg/runpod"
)

const (
	// DefaultURL is the production GraphQL endpoint.
	DefaultURL = "https://api.runpod.io/graphql"

	// DefaultProvisionTimeout bounds how long a creation call waits for
	// the new pod to become visible.
	DefaultProvisionTimeout = 5 * time.Minute

	// defaultPollInterval is the pause between existence checks while a
	// pod provisions.
	defaultPollInterval = 3 * time.Second
)

// Client exposes one method per remote operation.
type Client interface {
	TestConnection(ctx context.Context) bool
	GetPods(ctx context.Context) ([]runpod.Instance, error)
	GetPodByID(ctx context.Context, podID string) (*runpod.Instance, error)
	CreateInstance(ctx context.Context, spec CreateSpec) (*runpod.Instance, error)
	CreateInstanceFromTemplate(ctx context.Context, spec CreateSpec) (*runpod.Instance, error)
	StartInstance(ctx context.Context, opts StartOptions) bool
	StopInstance(ctx context.Context, podID string) bool
	DestroyInstance(ctx context.Context, podID string) bool
	GetOnDemandPrice(ctx context.Context, gpuType runpod.GPUTypeID, gpuCount int) *float64
	GetCurrentBid(ctx context.Context, gpuType runpod.GPUTypeID, gpuCount int) *float64
	GetGPUTypes(ctx context.Context, gpuCount int) ([]runpod.GPUTypeInfo, error)
}

// Options configures a client.
type Options struct {
	// URL is the GraphQL endpoint; DefaultURL when empty.
	URL string
	// APIKey authenticates the caller. It rides both as an api_key
	// query parameter on the endpoint and as a bearer header.
	APIKey string
	// ProvisionTimeout bounds creation polling; DefaultProvisionTimeout
	// when zero.
	ProvisionTimeout time.Duration
}

// gqlExecutor is the seam between the client and the GraphQL transport.
// *graphql.Client satisfies it; tests substitute fakes.
type gqlExecutor interface {
	ExecRaw(ctx context.Context, query string, variables map[string]interface{}, options ...graphql.Option) ([]byte, error)
}

type client struct {
	logger           *slog.Logger
	gql              gqlExecutor
	provisionTimeout time.Duration
	pollInterval     time.Duration
}

// NewClient builds a client talking to the remote API.
func NewClient(logger *slog.Logger, opts Options) Client {
	endpoint := opts.URL
	if endpoint == "" {
		endpoint = DefaultURL
	}
	if opts.APIKey != "" {
		sep := "?"
		if strings.Contains(endpoint, "?") {
			sep = "&"
		}
		endpoint += sep + "api_key=" + url.QueryEscape(opts.APIKey)
	}

	httpClient := &http.Client{
		Transport: &authTransport{apiKey: opts.APIKey, base: http.DefaultTransport},
	}

	timeout := opts.ProvisionTimeout
	if timeout <= 0 {
		timeout = DefaultProvisionTimeout
	}

	return &client{
		logger:           logger,
		gql:              graphql.NewClient(endpoint, httpClient),
		provisionTimeout: timeout,
		pollInterval:     defaultPollInterval,
	}
}

// NewClientForTesting wires an arbitrary executor and timing, bypassing
// the HTTP transport setup.
func NewClientForTesting(
	logger *slog.Logger,
	gql gqlExecutor,
	provisionTimeout time.Duration,
	pollInterval time.Duration,
) Client {
	return &client{
		logger:           logger,
		gql:              gql,
		provisionTimeout: provisionTimeout,
		pollInterval:     pollInterval,
	}
}

// authTransport adds the bearer header and JSON content type to every
// request.
type authTransport struct {
	apiKey string
	base   http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if t.apiKey != "" {
		clone.Header.Set("Authorization", "Bearer "+t.apiKey)
	}
	clone.Header.Set("Content-Type", "application/json")
	return t.base.RoundTrip(clone)
}

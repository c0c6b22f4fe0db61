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

// Package shared holds the helpers every verb command uses to pull the
// logger and a configured controller out of the command context.
package shared

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eminwux/runpodctl/cmd/config"
	"github.com/eminwux/runpodctl/cmd/types"
	"github.com/eminwux/runpodctl/internal/controller"
	"github.com/eminwux/runpodctl/internal/errdefs"
	"github.com/eminwux/runpodctl/internal/logging"
)

// LoggerFromCmd extracts the slog logger from the Cobra command
// context, falling back to a noop logger when verbose mode never put
// one there.
func LoggerFromCmd(cmd *cobra.Command) (*slog.Logger, error) {
	logger, ok := cmd.Context().Value(types.CtxLogger).(*slog.Logger)
	if !ok || logger == nil {
		return logging.NewNoopLogger(), nil
	}
	return logger, nil
}

// ControllerFromCmd instantiates a controller.Exec configured with the
// shared persistent flags (API key, API URL, provision timeout).
func ControllerFromCmd(cmd *cobra.Command) (*controller.Exec, error) {
	logger, err := LoggerFromCmd(cmd)
	if err != nil {
		return nil, err
	}

	apiKey := strings.TrimSpace(config.RUNPOD_API_KEY.ValueOrDefault())
	if apiKey == "" {
		return nil, fmt.Errorf("%w (--api-key, RUNPOD_API_KEY or the config file)", errdefs.ErrAPIKeyRequired)
	}

	opts := controller.Options{
		APIURL: viper.GetString(config.RUNPOD_API_URL.ViperKey),
		APIKey: apiKey,
	}

	if raw := strings.TrimSpace(config.RUNPOD_PROVISION_TIMEOUT.ValueOrDefault()); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid provision timeout %q: %w", errdefs.ErrConfig, raw, err)
		}
		opts.ProvisionTimeout = timeout
	}

	return controller.NewControllerExec(cmd.Context(), logger, opts), nil
}

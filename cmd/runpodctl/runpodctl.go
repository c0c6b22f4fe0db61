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

// Package runpodctl assembles the root command for the runpod CLI.
package runpodctl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eminwux/runpodctl/cmd/config"
	createcmd "github.com/eminwux/runpodctl/cmd/runpodctl/create"
	destroycmd "github.com/eminwux/runpodctl/cmd/runpodctl/destroy"
	gputypescmd "github.com/eminwux/runpodctl/cmd/runpodctl/gputypes"
	listcmd "github.com/eminwux/runpodctl/cmd/runpodctl/list"
	startcmd "github.com/eminwux/runpodctl/cmd/runpodctl/start"
	stopcmd "github.com/eminwux/runpodctl/cmd/runpodctl/stop"
	versioncmd "github.com/eminwux/runpodctl/cmd/runpodctl/version"
	"github.com/eminwux/runpodctl/cmd/types"
	"github.com/eminwux/runpodctl/internal/errdefs"
	"github.com/eminwux/runpodctl/internal/logging"
)

type ConfigLoader interface {
	LoadConfig() error
}

// MockConfigLoaderKey is used to inject mock config loaders in tests via context.
type MockConfigLoaderKey struct{}

func NewRunpodctlCmd() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "runpodctl",
		Short: "runpodctl provisions and manages RunPod GPU pods",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var logger *slog.Logger
			if viper.GetBool(config.RUNPODCTL_ROOT_VERBOSE.ViperKey) {
				logLevel := viper.GetString(config.RUNPODCTL_ROOT_LOG_LEVEL.ViperKey)
				if logLevel == "" {
					logLevel = "info"
				}

				levelVar := new(slog.LevelVar)
				levelVar.Set(logging.ParseLevel(logLevel))
				logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: levelVar}))

				ctx := cmd.Context()
				ctx = context.WithValue(ctx, types.CtxLogger, logger)
				ctx = context.WithValue(ctx, types.CtxLevelVar, levelVar)
				cmd.SetContext(ctx)
				logger.DebugContext(cmd.Context(), "enabling verbose", "log-level", logLevel)
			}

			// Check for mock config loader in context (for testing)
			var loader ConfigLoader
			if mockLoader, ok := cmd.Context().Value(MockConfigLoaderKey{}).(ConfigLoader); ok {
				loader = mockLoader
			} else {
				loader = &realConfigLoader{}
			}

			if err := loader.LoadConfig(); err != nil {
				if logger != nil {
					logger.DebugContext(cmd.Context(), "config error", "error", err)
				}
				return fmt.Errorf("%w: %w", errdefs.ErrConfig, err)
			}
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	if err := SetupRunpodctlCmd(cmd); err != nil {
		return nil, fmt.Errorf("failed to setup runpodctl command: %w", err)
	}

	return cmd, nil
}

func SetupRunpodctlCmd(rootCmd *cobra.Command) error {
	rootCmd.AddCommand(createcmd.NewCreateCmd())
	rootCmd.AddCommand(startcmd.NewStartCmd())
	rootCmd.AddCommand(stopcmd.NewStopCmd())
	rootCmd.AddCommand(destroycmd.NewDestroyCmd())
	rootCmd.AddCommand(listcmd.NewListCmd())
	rootCmd.AddCommand(gputypescmd.NewGPUTypesCmd())
	rootCmd.AddCommand(versioncmd.NewVersionCmd())

	return SetPersistentFlags(rootCmd)
}

func SetPersistentFlags(rootCmd *cobra.Command) error {
	rootCmd.PersistentFlags().String("config", "", "config file (default is ~/.runpodctl/config.yaml)")
	if err := viper.BindPFlag(config.RUNPODCTL_ROOT_CONFIG_FILE.ViperKey, rootCmd.PersistentFlags().Lookup("config")); err != nil {
		return err
	}

	rootCmd.PersistentFlags().String("api-key", "", "RunPod API key")
	if err := viper.BindPFlag(config.RUNPOD_API_KEY.ViperKey, rootCmd.PersistentFlags().Lookup("api-key")); err != nil {
		return err
	}

	rootCmd.PersistentFlags().String("api-url", "", "RunPod GraphQL endpoint")
	if err := viper.BindPFlag(config.RUNPOD_API_URL.ViperKey, rootCmd.PersistentFlags().Lookup("api-url")); err != nil {
		return err
	}

	rootCmd.PersistentFlags().String("provision-timeout", "", "How long to wait for a new pod to provision (e.g. 5m)")
	if err := viper.BindPFlag(config.RUNPOD_PROVISION_TIMEOUT.ViperKey, rootCmd.PersistentFlags().Lookup("provision-timeout")); err != nil {
		return err
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	if err := viper.BindPFlag(config.RUNPODCTL_ROOT_VERBOSE.ViperKey, rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		return err
	}

	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	if err := viper.BindPFlag(config.RUNPODCTL_ROOT_LOG_LEVEL.ViperKey, rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		return err
	}

	return nil
}

type realConfigLoader struct{}

func (r *realConfigLoader) LoadConfig() error {
	return loadConfig()
}

func loadConfig() error {
	configFile := viper.GetString(config.RUNPODCTL_ROOT_CONFIG_FILE.ViperKey)
	if configFile == "" {
		configFile = config.DefaultConfigFile()
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(filepath.Dir(configFile))
	} else {
		viper.SetConfigFile(configFile)
	}
	_ = config.RUNPODCTL_ROOT_CONFIG_FILE.BindEnv()

	if err := config.RUNPODCTL_ROOT_CONFIG_FILE.Set(configFile); err != nil {
		return fmt.Errorf("%w: failed to set config file: %w", errdefs.ErrConfig, err)
	}

	_ = config.RUNPOD_API_KEY.BindEnv()
	_ = config.RUNPOD_API_URL.BindEnv()
	_ = config.RUNPOD_PROVISION_TIMEOUT.BindEnv()

	_ = config.RUNPODCTL_ROOT_LOG_LEVEL.BindEnv()
	if viper.GetString(config.RUNPODCTL_ROOT_LOG_LEVEL.ViperKey) == "" {
		viper.Set(config.RUNPODCTL_ROOT_LOG_LEVEL.ViperKey, "info")
	}

	if err := viper.ReadInConfig(); err != nil {
		// File not found is OK, flags and env still apply
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) && !os.IsNotExist(err) {
			return fmt.Errorf("%w: %w", errdefs.ErrConfig, err)
		}
	}

	return nil
}

// LoadConfig is a public wrapper for use outside the command tree.
func LoadConfig() error {
	return loadConfig()
}

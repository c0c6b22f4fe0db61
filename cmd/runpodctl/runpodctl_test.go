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

//go:build !integration

package runpodctl_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/eminwux/runpodctl/cmd/config"
	"github.com/eminwux/runpodctl/cmd/runpodctl"
	"github.com/eminwux/runpodctl/internal/errdefs"
)

type fakeConfigLoader struct {
	loadConfigFn func() error
}

func (f *fakeConfigLoader) LoadConfig() error {
	if f.loadConfigFn == nil {
		return nil
	}
	return f.loadConfigFn()
}

func TestNewRunpodctlCmd(t *testing.T) {
	t.Cleanup(viper.Reset)

	cmd, err := runpodctl.NewRunpodctlCmd()
	if err != nil {
		t.Fatalf("NewRunpodctlCmd() error = %v, want nil", err)
	}

	if cmd.Use != "runpodctl" {
		t.Errorf("Use mismatch: got %q, want %q", cmd.Use, "runpodctl")
	}

	expectedSubcommands := []string{"create", "start", "stop", "destroy", "list", "gputypes", "version"}
	for _, subcmdName := range expectedSubcommands {
		found := false
		for _, c := range cmd.Commands() {
			if c.Name() == subcmdName {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not found", subcmdName)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	tests := []struct {
		name      string
		setup     func(t *testing.T)
		wantErr   bool
		wantErrIs error
		checkKeys map[string]string
	}{
		{
			name: "empty config file uses default search path",
			setup: func(t *testing.T) {
				t.Setenv("HOME", t.TempDir())
				viper.Set(config.RUNPODCTL_ROOT_CONFIG_FILE.ViperKey, "")
			},
			wantErr: false,
		},
		{
			name: "missing explicit config file is tolerated",
			setup: func(t *testing.T) {
				viper.Set(config.RUNPODCTL_ROOT_CONFIG_FILE.ViperKey,
					filepath.Join(t.TempDir(), "nonexistent", "config.yaml"))
			},
			wantErr: false,
		},
		{
			name: "valid yaml file is read",
			setup: func(t *testing.T) {
				configFile := filepath.Join(t.TempDir(), "config.yaml")
				configContent := `runpod:
  apiKey: file-key
  url: https://example.test/graphql
runpodctl:
  logLevel: warn
`
				if err := os.WriteFile(configFile, []byte(configContent), 0o644); err != nil {
					t.Fatalf("failed to write config file: %v", err)
				}
				viper.Set(config.RUNPODCTL_ROOT_CONFIG_FILE.ViperKey, configFile)
			},
			wantErr: false,
			checkKeys: map[string]string{
				config.RUNPOD_API_KEY.ViperKey:           "file-key",
				config.RUNPOD_API_URL.ViperKey:           "https://example.test/graphql",
				config.RUNPODCTL_ROOT_LOG_LEVEL.ViperKey: "warn",
			},
		},
		{
			name: "malformed yaml file fails",
			setup: func(t *testing.T) {
				configFile := filepath.Join(t.TempDir(), "config.yaml")
				if err := os.WriteFile(configFile, []byte("runpod: [unclosed"), 0o644); err != nil {
					t.Fatalf("failed to write config file: %v", err)
				}
				viper.Set(config.RUNPODCTL_ROOT_CONFIG_FILE.ViperKey, configFile)
			},
			wantErr:   true,
			wantErrIs: errdefs.ErrConfig,
		},
		{
			name: "log level default is set",
			setup: func(t *testing.T) {
				t.Setenv("HOME", t.TempDir())
				viper.Set(config.RUNPODCTL_ROOT_CONFIG_FILE.ViperKey, "")
				viper.Set(config.RUNPODCTL_ROOT_LOG_LEVEL.ViperKey, "")
			},
			wantErr: false,
			checkKeys: map[string]string{
				config.RUNPODCTL_ROOT_LOG_LEVEL.ViperKey: "info",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			tt.setup(t)

			err := runpodctl.LoadConfig()

			if tt.wantErr {
				if err == nil {
					t.Fatalf("LoadConfig() error = nil, want error")
				}
				if tt.wantErrIs != nil && !errors.Is(err, tt.wantErrIs) {
					t.Fatalf("LoadConfig() error = %v, want errors.Is %v", err, tt.wantErrIs)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig() error = %v, want nil", err)
			}

			for key, want := range tt.checkKeys {
				if got := viper.GetString(key); got != want {
					t.Errorf("viper.GetString(%q) = %q, want %q", key, got, want)
				}
			}
		})
	}
}

func TestLoadConfigFlagOverridesFile(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Reset()

	configFile := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `runpod:
  apiKey: file-key
  url: https://file.test/graphql
`
	if err := os.WriteFile(configFile, []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cmd, err := runpodctl.NewRunpodctlCmd()
	if err != nil {
		t.Fatalf("NewRunpodctlCmd() error = %v", err)
	}

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--config", configFile, "--api-key", "flag-key"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v, want nil", err)
	}

	if got := viper.GetString(config.RUNPOD_API_KEY.ViperKey); got != "flag-key" {
		t.Errorf("api key = %q, want flag value %q to win over file value", got, "flag-key")
	}
	if got := viper.GetString(config.RUNPOD_API_URL.ViperKey); got != "https://file.test/graphql" {
		t.Errorf("api url = %q, want file value", got)
	}
}

func TestPersistentPreRunEConfigError(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Reset()

	cmd, err := runpodctl.NewRunpodctlCmd()
	if err != nil {
		t.Fatalf("NewRunpodctlCmd() error = %v", err)
	}

	loader := &fakeConfigLoader{
		loadConfigFn: func() error { return errors.New("boom") },
	}
	ctx := context.WithValue(context.Background(), runpodctl.MockConfigLoaderKey{}, runpodctl.ConfigLoader(loader))
	cmd.SetContext(ctx)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{})

	err = cmd.Execute()
	if err == nil {
		t.Fatal("Execute() error = nil, want config error")
	}
	if !errors.Is(err, errdefs.ErrConfig) {
		t.Errorf("Execute() error = %v, want errors.Is errdefs.ErrConfig", err)
	}
}

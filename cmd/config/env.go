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

package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Var struct {
	Key        string // e.g. "RUNPOD_API_KEY"
	ViperKey   string // optional, e.g. "runpod.apiKey"
	CobraKey   string // optional, e.g. "api-key"
	Default    string // optional
	HasDefault bool
}

func DefineKV(envName, viperKey string, defaultVal ...string) Var {
	v := Var{Key: envName, ViperKey: viperKey}
	if len(defaultVal) > 0 {
		v.Default = defaultVal[0]
		v.HasDefault = true
	}
	return v
}

func Define(envName string, defaultVal ...string) Var {
	return DefineKV(envName, "", defaultVal...)
}

func (v *Var) EnvKey() string               { return v.Key }
func (v *Var) EnvVar() string               { return v.Key }
func (v *Var) DefaultValue() (string, bool) { return v.Default, v.HasDefault }

// ValueOrDefault defines precedence: viper (if ViperKey set and value present) → OS env → default → "".
func (v *Var) ValueOrDefault() string {
	if v.ViperKey != "" && viper.IsSet(v.ViperKey) {
		return viper.GetString(v.ViperKey)
	}
	if val, ok := os.LookupEnv(v.Key); ok {
		return val
	}
	if v.HasDefault {
		return v.Default
	}
	return ""
}

// BindEnv is safe if ViperKey is empty: does nothing.
func (v *Var) BindEnv() error {
	if v.ViperKey == "" {
		return nil
	}
	return viper.BindEnv(v.ViperKey, v.Key)
}

func (v *Var) Set(value string) error {
	return os.Setenv(v.Key, value)
}

func (v *Var) SetDefault(val string) {
	v.Default = val
	v.HasDefault = true
	if v.ViperKey != "" {
		viper.SetDefault(v.ViperKey, val)
	}
}

func KV(v Var, value string) string { return v.Key + "=" + value }

// DefaultConfigFile returns the per-user config path.
func DefaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "runpodctl.yaml"
	}
	return filepath.Join(home, ".runpodctl", "config.yaml")
}

// ---- Declare statically (Viper key optional per var) ----.
var (
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_ROOT_VERBOSE = DefineKV("RUNPODCTL_VERBOSE", "runpodctl.verbose")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_ROOT_CONFIG_FILE = DefineKV("RUNPODCTL_CONFIG_FILE", "runpodctl.configFile")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_ROOT_LOG_LEVEL = DefineKV("RUNPODCTL_LOG_LEVEL", "runpodctl.logLevel", "info")

	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPOD_API_KEY = DefineKV("RUNPOD_API_KEY", "runpod.apiKey")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPOD_API_URL = DefineKV("RUNPOD_API_URL", "runpod.url", "https://api.runpod.io/graphql")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPOD_PROVISION_TIMEOUT = DefineKV("RUNPOD_PROVISION_TIMEOUT", "runpod.provisionTimeout", "5m")

	// Create command variables
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_CREATE_POD_NAME = DefineKV("RUNPODCTL_CREATE_POD_NAME", "machine.podName")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_CREATE_GPU_TYPE = DefineKV("RUNPODCTL_CREATE_GPU_TYPE", "machine.gpuTypeId")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_CREATE_IMAGE_NAME = DefineKV("RUNPODCTL_CREATE_IMAGE_NAME", "machine.imageName")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_CREATE_TEMPLATE_ID = DefineKV("RUNPODCTL_CREATE_TEMPLATE_ID", "machine.templateId")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_CREATE_VOLUME_PATH = DefineKV("RUNPODCTL_CREATE_VOLUME_PATH", "machine.volumePath", "/workspace")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_CREATE_ARGS = DefineKV("RUNPODCTL_CREATE_ARGS", "machine.args")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_CREATE_CONTAINER_DISK_SIZE = DefineKV("RUNPODCTL_CREATE_CONTAINER_DISK_SIZE", "machine.containerDiskSize", "10")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_CREATE_VOLUME_SIZE = DefineKV("RUNPODCTL_CREATE_VOLUME_SIZE", "machine.volumeSize", "10")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_CREATE_GPU_COUNT = DefineKV("RUNPODCTL_CREATE_GPU_COUNT", "machine.gpuCount", "1")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_CREATE_MIN_VCPU_COUNT = DefineKV("RUNPODCTL_CREATE_MIN_VCPU_COUNT", "machine.minVcpuCount", "1")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_CREATE_MIN_MEMORY_IN_GB = DefineKV("RUNPODCTL_CREATE_MIN_MEMORY_IN_GB", "machine.minMemoryInGb", "1")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_CREATE_CLOUD_TYPE = DefineKV("RUNPODCTL_CREATE_CLOUD_TYPE", "create.cloudType")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_CREATE_SPOT = DefineKV("RUNPODCTL_CREATE_SPOT", "create.spot")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_CREATE_MAX_BID = DefineKV("RUNPODCTL_CREATE_MAX_BID", "create.maxBid")

	// Start command variables
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_START_POD_ID = DefineKV("RUNPODCTL_START_POD_ID", "start.podId")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_START_ALL = DefineKV("RUNPODCTL_START_ALL", "start.all")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_START_MAX_BID = DefineKV("RUNPODCTL_START_MAX_BID", "start.maxBid")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_START_SPOT = DefineKV("RUNPODCTL_START_SPOT", "start.spot")

	// Stop command variables
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_STOP_POD_ID = DefineKV("RUNPODCTL_STOP_POD_ID", "stop.podId")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_STOP_ALL = DefineKV("RUNPODCTL_STOP_ALL", "stop.all")

	// Destroy command variables
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_DESTROY_POD_ID = DefineKV("RUNPODCTL_DESTROY_POD_ID", "destroy.podId")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_DESTROY_ALL = DefineKV("RUNPODCTL_DESTROY_ALL", "destroy.all")

	// List command variables
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_LIST_OUTPUT = DefineKV("RUNPODCTL_LIST_OUTPUT", "list.output")

	// GPU types command variables
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_GPUTYPES_GPU_COUNT = DefineKV("RUNPODCTL_GPUTYPES_GPU_COUNT", "gputypes.gpuCount", "1")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	RUNPODCTL_GPUTYPES_OUTPUT = DefineKV("RUNPODCTL_GPUTYPES_OUTPUT", "gputypes.output")
)

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

package version_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/eminwux/runpodctl/cmd/config"
	versioncmd "github.com/eminwux/runpodctl/cmd/runpodctl/version"
)

type fakeVersionProvider struct {
	version string
}

func (f *fakeVersionProvider) Version() string {
	return f.version
}

func TestNewVersionCmd(t *testing.T) {
	cmd := versioncmd.NewVersionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	cmd.SetContext(context.Background())

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out.String(), config.Version) {
		t.Errorf("output = %q, want %q", out.String(), config.Version)
	}
}

func TestNewVersionCmdWithMockProvider(t *testing.T) {
	cmd := versioncmd.NewVersionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	cmd.SetContext(context.WithValue(context.Background(), versioncmd.MockVersionProviderKey{}, &fakeVersionProvider{version: "v9.9.9"}))

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out.String(), "v9.9.9") {
		t.Errorf("output = %q, want v9.9.9", out.String())
	}
}

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

package destroy_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/viper"

	destroycmd "github.com/eminwux/runpodctl/cmd/runpodctl/destroy"
	"github.com/eminwux/runpodctl/internal/controller"
	"github.com/eminwux/runpodctl/internal/errdefs"
)

type fakeDestroyController struct {
	DestroyPodFn func(req controller.DestroyRequest) (controller.DestroyResult, error)
}

func (f *fakeDestroyController) DestroyPod(req controller.DestroyRequest) (controller.DestroyResult, error) {
	return f.DestroyPodFn(req)
}

func TestNewDestroyCmdRunE(t *testing.T) {
	t.Cleanup(func() {
		viper.Reset()
	})

	tests := []struct {
		name       string
		args       []string
		destroyFn  func(req controller.DestroyRequest) (controller.DestroyResult, error)
		wantErr    error
		wantOutput []string
	}{
		{
			name: "destroy single pod",
			args: []string{"--podId", "pod1"},
			destroyFn: func(req controller.DestroyRequest) (controller.DestroyResult, error) {
				if req.PodID != "pod1" || req.All {
					t.Errorf("unexpected request: %+v", req)
				}
				return controller.DestroyResult{
					Pods: []controller.PodOutcome{{PodID: "pod1", OK: true}},
				}, nil
			},
			wantOutput: []string{"Destroyed pod pod1", "DONE | Destroyed 1 of 1 pods"},
		},
		{
			name: "destroy all",
			args: []string{"--all"},
			destroyFn: func(req controller.DestroyRequest) (controller.DestroyResult, error) {
				if !req.All {
					t.Errorf("expected All, got %+v", req)
				}
				return controller.DestroyResult{
					Pods: []controller.PodOutcome{
						{PodID: "pod1", OK: true},
						{PodID: "pod2", OK: true},
					},
				}, nil
			},
			wantOutput: []string{"DONE | Destroyed 2 of 2 pods"},
		},
		{
			name: "missing selector surfaces controller error",
			args: []string{},
			destroyFn: func(_ controller.DestroyRequest) (controller.DestroyResult, error) {
				return controller.DestroyResult{}, errdefs.ErrPodSelectorRequired
			},
			wantErr: errdefs.ErrPodSelectorRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()

			cmd := destroycmd.NewDestroyCmd()
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs(tt.args)

			ctx := context.WithValue(context.Background(), destroycmd.MockControllerKey{}, &fakeDestroyController{
				DestroyPodFn: tt.destroyFn,
			})
			cmd.SetContext(ctx)

			err := cmd.Execute()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Execute() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			for _, want := range tt.wantOutput {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q; got:\n%s", want, out.String())
				}
			}
		})
	}
}

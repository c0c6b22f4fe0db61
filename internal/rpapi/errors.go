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
	"errors"
	"strings"

	graphql "github.com/hasura/go-graphql-client"
)

// Remote error classification. The API signals conditions through error
// messages and extension codes rather than dedicated fields, so these
// strings are part of its contract.
const (
	codeInternalServerError = "INTERNAL_SERVER_ERROR"
	msgOutbid               = "outbid"
	msgNotInExitedState     = "Cannot resume a pod that is not in exited state"
)

func graphErrors(err error) (graphql.Errors, bool) {
	var gqlErrs graphql.Errors
	if errors.As(err, &gqlErrs) && len(gqlErrs) > 0 {
		return gqlErrs, true
	}
	return nil, false
}

// isNotFound reports whether the remote answered with the
// internal-server-error extension code it uses for unknown pod ids.
func isNotFound(err error) bool {
	gqlErrs, ok := graphErrors(err)
	if !ok {
		return false
	}
	code, ok := gqlErrs[0].Extensions["code"].(string)
	return ok && code == codeInternalServerError
}

// isOutbid reports whether a bid was rejected as below the current
// minimum.
func isOutbid(err error) bool {
	gqlErrs, ok := graphErrors(err)
	if !ok {
		return false
	}
	for _, e := range gqlErrs {
		if strings.Contains(e.Message, msgOutbid) {
			return true
		}
	}
	return false
}

// isAlreadyRunning reports whether a resume was refused because the pod
// is not in the exited state, which means it already runs.
func isAlreadyRunning(err error) bool {
	gqlErrs, ok := graphErrors(err)
	if !ok {
		return false
	}
	return strings.Contains(gqlErrs[0].Message, msgNotInExitedState)
}

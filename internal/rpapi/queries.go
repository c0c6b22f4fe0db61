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

// GraphQL documents for every remote operation. Field selections match
// what the response decoders in this package read.
const (
	queryMyself = `query myself {
		myself {
			id
		}
	}`

	queryMyPods = `query myPods {
		myself {
			pods {
				id
				name
				podType
				gpuCount
				vcpuCount
				memoryInGb
				imageName
				costPerHr
				desiredStatus
				machine {
					podHostId
					gpuDisplayName
					secureCloud
				}
			}
		}
	}`

	queryPodByID = `query pod($podId: String!) {
		pod(input: {podId: $podId}) {
			id
			name
			podType
			costPerHr
			gpuCount
			vcpuCount
			memoryInGb
			imageName
			desiredStatus
			machine {
				podHostId
				gpuDisplayName
				secureCloud
			}
		}
	}`

	mutationRentSpotPod = `mutation rentSpotPod($input: PodRentInterruptableInput!) {
		podRentInterruptable(input: $input) {
			id
			name
			imageName
			podType
			costPerHr
			gpuCount
			vcpuCount
			memoryInGb
			desiredStatus
			machine {
				podHostId
				gpuDisplayName
				secureCloud
			}
		}
	}`

	mutationDeployOnDemandPod = `mutation deployOnDemandPod($input: PodFindAndDeployOnDemandInput!) {
		podFindAndDeployOnDemand(input: $input) {
			id
			name
			imageName
			podType
			costPerHr
			gpuCount
			vcpuCount
			memoryInGb
			desiredStatus
			machine {
				podHostId
				gpuDisplayName
				secureCloud
			}
		}
	}`

	mutationStopPod = `mutation stopPod($podId: String!) {
		podStop(input: {podId: $podId}) {
			id
			desiredStatus
		}
	}`

	mutationTerminatePod = `mutation terminatePod($input: PodTerminateInput!) {
		podTerminate(input: $input)
	}`

	mutationBidResumePod = `mutation bidResumePod($podId: String!, $bidPerGpu: Float!, $gpuCount: Int!) {
		podBidResume(input: {podId: $podId, bidPerGpu: $bidPerGpu, gpuCount: $gpuCount}) {
			id
			desiredStatus
		}
	}`

	mutationResumePod = `mutation resumePod($podId: String!, $gpuCount: Int!) {
		podResume(input: {podId: $podId, gpuCount: $gpuCount}) {
			id
			desiredStatus
		}
	}`

	queryGPUTypes = `query gpuTypes($gpuCount: Int!) {
		gpuTypes {
			id
			displayName
			memoryInGb
			secureCloud
			communityCloud
			lowestPrice(input: {gpuCount: $gpuCount}) {
				minimumBidPrice
				uninterruptablePrice
			}
		}
	}`

	queryGPUTypeByID = `query gpuTypeById($gpuTypeId: String!, $gpuCount: Int!) {
		gpuTypes(input: {id: $gpuTypeId}) {
			id
			displayName
			memoryInGb
			secureCloud
			communityCloud
			lowestPrice(input: {gpuCount: $gpuCount}) {
				minimumBidPrice
				uninterruptablePrice
			}
		}
	}`
)

// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

// Package header provides the common resource header for cmdline documents.
//
// Declaration documents, template reports and validation results all start
// with the same Kubernetes-style fields:
//
//	kind: Application
//	apiVersion: cmdline.nvidia.com/v1alpha1
//	metadata:
//	  timestamp: "2025-01-15T10:30:00Z"
//	  version: v1.0.0
//
// # Usage
//
// Build a header with functional options:
//
//	h := header.New(
//	    header.WithKind(header.KindApplication),
//	    header.WithAPIVersion(header.APIVersion),
//	    header.WithMetadata("source", "git.yaml"),
//	)
//
// Or initialize one embedded in a result:
//
//	result.Init(header.KindValidationResult, header.APIVersion, version)
//
// Decoders check the kind and version with Validate before trusting the body.
package header

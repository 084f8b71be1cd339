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

package defaults

// Request limits for the HTTP API.
const (
	// MaxBulkTemplates is the maximum number of templates in one bulk parse request.
	MaxBulkTemplates = 100

	// MaxRequestBodyBytes caps request bodies read by API handlers.
	MaxRequestBodyBytes = 1 << 20

	// RateLimit is the default sustained request rate per second.
	RateLimit = 100

	// RateLimitBurst is the default request burst size.
	RateLimitBurst = 200
)

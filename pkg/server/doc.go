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

// Package server provides the HTTP server shared by cmdline services.
//
// # Architecture
//
// A Server routes caller supplied handlers through a fixed middleware chain:
//
//   - Prometheus request metrics (cmdline_http_*)
//   - API version negotiation from application/vnd.nvidia.cmdline.v1+json
//   - Request ID tracking (X-Request-Id, UUID)
//   - Panic recovery
//   - Rate limiting using a token bucket (golang.org/x/time/rate)
//   - Debug request logging
//
// System endpoints bypass the chain:
//
//	GET /health   liveness
//	GET /ready    readiness, 503 until the listener is bound and during shutdown
//	GET /metrics  Prometheus exposition
//
// A root handler at "/" lists the registered routes unless the caller
// registers its own.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("cmdlined"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/templates": handleTemplates,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run stops on SIGINT, SIGTERM or context cancellation and drains in-flight
// requests within Config.ShutdownTimeout.
//
// # Configuration
//
// NewConfig reads PORT, SHUTDOWN_TIMEOUT_SECONDS and RATE_LIMIT from the
// environment on top of the values in the defaults package.
//
// # Errors
//
// Handlers report failures with WriteError or WriteErrorFromErr. Structured
// errors from the errors package are mapped to HTTP status codes with
// HTTPStatusFromCode; every reply carries the request ID.
package server

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

// Package api implements the cmdlined HTTP API.
//
// # Endpoints
//
// GET /v1/templates - Parse a single option template
//
//	Query parameters:
//	  - template: the option template (required; may be empty)
//	  - strict: true/false - reject unrecognized tokens (default: false)
//
//	Example:
//	  curl "http://localhost:8080/v1/templates?template=-n%20%7C%20--name%20%3CNAME%3E"
//
//	Response:
//	  {"template": {"template": "-n | --name <NAME>", "longName": "name",
//	   "shortName": "n", "valueNames": ["NAME"]},
//	   "tokens": [...], "dropped": []}
//
// POST /v1/templates - Parse a list of templates
//
//	Body:
//	  {"templates": ["--verbose", "-o <FILE>"], "strict": false}
//
//	More than the configured maximum is rejected with INVALID_REQUEST;
//	a null entry is rejected with INVALID_ARGUMENT.
//
// POST /v1/validate - Validate a declaration document
//
//	The body is a YAML (Content-Type containing "yaml") or JSON document of
//	kind Application. The response is a ValidationResult.
//
// # Errors
//
// Failures use the server package's ErrorResponse. Strict-mode template
// rejections are reported as 422 INVALID_TEMPLATE.
//
// # Metrics
//
//   - cmdline_templates_parsed_total{mode, result}
//   - cmdline_template_tokens_dropped_total
//   - cmdline_validations_total{status}
package api

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

// Package validator lints declaration trees built by the declare package.
//
// # Overview
//
// The validator walks every command of an application, root included, and
// applies a fixed set of rules to its options, arguments and sub-commands.
// Each finding becomes a Check; the result carries a header, summary counts
// and an overall pass/fail status.
//
// # Rules
//
//   - option-template (warning): the permissive template parser dropped tokens
//   - option-name: an option has neither a long nor a short name
//   - duplicate-option: two options in one command share a name
//   - duplicate-command: two sibling commands share a name
//   - argument-order: a required argument follows an optional one
//   - argument-repeatable: a repeatable argument is not the last one
//
// # Usage
//
//	v := validator.New(validator.WithVersion(version))
//	result, err := v.Validate(ctx, app)
//	if err != nil {
//	    return err
//	}
//	for _, c := range result.Checks {
//	    fmt.Printf("%s %s: %s\n", c.Rule, c.Path, c.Message)
//	}
//
// Warnings fail the validation only with WithWarningsAsErrors. Individual
// rules can be switched off with WithDisabledRules.
package validator

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

// Package cli implements the cmdlinectl command-line interface.
//
// # Commands
//
// parse - Parse option templates:
//
//	cmdlinectl parse [--strict] [--explain] [--format yaml|json|table] [--output FILE] -- TEMPLATE...
//
// Prints the descriptor of every template: its raw text, long name, short
// name and value placeholder names. With --explain the classified tokens and
// the dropped tokens are included. With --strict a template containing an
// unrecognized token fails the command.
//
// inspect - Print a normalized declaration document:
//
//	cmdlinectl inspect --file app.yaml [--format ...] [--output FILE]
//
// validate - Check a declaration document:
//
//	cmdlinectl validate --file app.yaml [--fail-on-error] [--warnings-as-errors] [--disable RULE]
//
// # Global Flags
//
//	--log-level    log level: debug, info, warn, error (env: LOG_LEVEL)
//	--help, -h     show command help
//	--version, -v  show version information
//
// # Output Formats
//
// YAML (default), JSON and table. Output goes to stdout unless --output is set.
package cli

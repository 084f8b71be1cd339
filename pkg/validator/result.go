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

package validator

import (
	"time"

	"github.com/NVIDIA/cmdline/pkg/header"
)

// ValidationStatus represents the overall validation outcome.
type ValidationStatus string

const (
	// ValidationStatusPass indicates no rule reported an error.
	ValidationStatusPass ValidationStatus = "pass"

	// ValidationStatusFail indicates one or more rules reported an error.
	ValidationStatusFail ValidationStatus = "fail"
)

// Severity grades a single finding.
type Severity string

const (
	// SeverityError findings fail the validation.
	SeverityError Severity = "error"

	// SeverityWarning findings are reported but do not fail the validation
	// unless warnings are treated as errors.
	SeverityWarning Severity = "warning"
)

// ValidationResult represents the complete validation outcome.
type ValidationResult struct {
	header.Header `json:",inline" yaml:",inline"`

	// Application is the name of the validated application.
	Application string `json:"application" yaml:"application"`

	// Source is the path of the declaration document, when known.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Summary contains aggregate validation statistics.
	Summary ValidationSummary `json:"summary" yaml:"summary"`

	// Checks contains one entry per finding.
	Checks []Check `json:"checks" yaml:"checks"`
}

// ValidationSummary contains aggregate statistics about the validation.
type ValidationSummary struct {
	// Commands is the number of commands visited, including the root.
	Commands int `json:"commands" yaml:"commands"`

	// Options is the number of options inspected.
	Options int `json:"options" yaml:"options"`

	// Arguments is the number of positional arguments inspected.
	Arguments int `json:"arguments" yaml:"arguments"`

	// Errors is the count of error findings.
	Errors int `json:"errors" yaml:"errors"`

	// Warnings is the count of warning findings.
	Warnings int `json:"warnings" yaml:"warnings"`

	// Status is the overall validation status.
	Status ValidationStatus `json:"status" yaml:"status"`

	// Duration is how long the validation took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Check is a single rule finding.
type Check struct {
	// Rule is the name of the rule that produced the finding.
	Rule Rule `json:"rule" yaml:"rule"`

	// Severity grades the finding.
	Severity Severity `json:"severity" yaml:"severity"`

	// Path is the space separated command path, e.g. "git remote add".
	Path string `json:"path" yaml:"path"`

	// Subject names the offending option, argument or command.
	Subject string `json:"subject" yaml:"subject"`

	// Message describes the finding.
	Message string `json:"message" yaml:"message"`
}

// NewValidationResult creates a new ValidationResult with initialized slices.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Checks: make([]Check, 0),
	}
}

// Failed reports whether the validation status is fail.
func (r *ValidationResult) Failed() bool {
	return r.Summary.Status == ValidationStatusFail
}

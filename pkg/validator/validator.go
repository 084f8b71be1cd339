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
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/NVIDIA/cmdline/pkg/declare"
	"github.com/NVIDIA/cmdline/pkg/errors"
	"github.com/NVIDIA/cmdline/pkg/header"
)

// Validator checks declaration trees against the rules in this package.
type Validator struct {
	// Version is the validator version (typically the CLI version).
	Version string

	// WarningsAsErrors makes warning findings fail the validation.
	WarningsAsErrors bool

	// Disabled lists rules that are not evaluated.
	Disabled map[Rule]bool
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the Validator version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// WithWarningsAsErrors returns an Option that makes warnings fail the validation.
func WithWarningsAsErrors(enabled bool) Option {
	return func(v *Validator) {
		v.WarningsAsErrors = enabled
	}
}

// WithDisabledRules returns an Option that skips the given rules.
func WithDisabledRules(rules ...Rule) Option {
	return func(v *Validator) {
		if v.Disabled == nil {
			v.Disabled = make(map[Rule]bool, len(rules))
		}
		for _, r := range rules {
			v.Disabled[r] = true
		}
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs every enabled rule over each command of app, root included.
// The context is checked before each command; cancellation aborts with the
// context error.
func (v *Validator) Validate(ctx context.Context, app *declare.Application) (*ValidationResult, error) {
	start := time.Now()

	if app == nil {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "application cannot be nil")
	}

	result := NewValidationResult()
	result.Init(header.KindValidationResult, header.APIVersion, v.Version)
	result.Application = app.Name()

	err := app.Walk(func(names []string, c *declare.Command) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		path := strings.Join(names, " ")
		result.Summary.Commands++
		result.Summary.Options += len(c.Options())
		result.Summary.Arguments += len(c.Arguments())

		for _, rule := range Rules() {
			if v.Disabled[rule] {
				continue
			}
			for _, check := range ruleFuncs[rule](path, c) {
				v.record(result, check)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Summary.Duration = time.Since(start)
	result.Summary.Status = ValidationStatusPass
	if result.Summary.Errors > 0 || (v.WarningsAsErrors && result.Summary.Warnings > 0) {
		result.Summary.Status = ValidationStatusFail
	}

	slog.Debug("validation completed",
		"application", result.Application,
		"commands", result.Summary.Commands,
		"errors", result.Summary.Errors,
		"warnings", result.Summary.Warnings,
		"status", result.Summary.Status,
		"duration", result.Summary.Duration)

	return result, nil
}

func (v *Validator) record(result *ValidationResult, check Check) {
	switch check.Severity {
	case SeverityError:
		result.Summary.Errors++
	case SeverityWarning:
		result.Summary.Warnings++
	}
	result.Checks = append(result.Checks, check)

	slog.Debug("declaration finding",
		"rule", check.Rule,
		"severity", check.Severity,
		"path", check.Path,
		"subject", check.Subject)
}

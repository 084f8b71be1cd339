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

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cmdline/pkg/defaults"
	"github.com/NVIDIA/cmdline/pkg/validator"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Check a declaration document for conflicts",
		Description: `Validate the command tree described by a declaration document.

# Rules

  option-template      templates with unrecognized tokens (warning)
  option-name          options without a long or short name
  duplicate-option     options sharing a name within one command
  duplicate-command    sub-commands sharing a name
  argument-order       required arguments following optional ones
  argument-repeatable  repeatable arguments that are not last

# Examples

  cmdlinectl validate --file app.yaml
  cmdlinectl validate -f app.yaml --disable argument-order --format json

Fail the command when any error is found (useful for CI/CD):
  cmdlinectl validate -f app.yaml --fail-on-error`,
		Flags: []cli.Flag{
			fileFlag(),
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "exit with non-zero status if validation fails",
			},
			&cli.BoolFlag{
				Name:  "warnings-as-errors",
				Usage: "treat warnings as errors when computing the status",
			},
			&cli.StringSliceFlag{
				Name:  "disable",
				Usage: "rule to skip; may be repeated",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			disabled, err := parseRules(cmd.StringSlice("disable"))
			if err != nil {
				return err
			}

			path := cmd.String("file")
			slog.Info("loading declaration", "path", path)

			app, err := loadApplication(path)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLIValidateTimeout)
			defer cancel()

			v := validator.New(
				validator.WithVersion(version),
				validator.WithWarningsAsErrors(cmd.Bool("warnings-as-errors")),
				validator.WithDisabledRules(disabled...),
			)

			result, err := v.Validate(ctx, app)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			result.Source = path

			if err := writeOutput(ctx, cmd, outFormat, result); err != nil {
				return fmt.Errorf("failed to serialize validation result: %w", err)
			}

			slog.Info("validation completed",
				"status", result.Summary.Status,
				"errors", result.Summary.Errors,
				"warnings", result.Summary.Warnings,
				"duration", result.Summary.Duration)

			if cmd.Bool("fail-on-error") && result.Failed() {
				return fmt.Errorf("validation failed: %d error(s), %d warning(s)",
					result.Summary.Errors, result.Summary.Warnings)
			}

			return nil
		},
	}
}

// parseRules converts rule names into validator rules, rejecting unknown names.
func parseRules(names []string) ([]validator.Rule, error) {
	known := make(map[validator.Rule]bool)
	for _, r := range validator.Rules() {
		known[r] = true
	}

	rules := make([]validator.Rule, 0, len(names))
	for _, n := range names {
		r := validator.Rule(n)
		if !known[r] {
			return nil, fmt.Errorf("unknown rule: %q (supported: %v)", n, validator.Rules())
		}
		rules = append(rules, r)
	}
	return rules, nil
}

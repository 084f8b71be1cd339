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

	"github.com/NVIDIA/cmdline/pkg/template"
)

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Parse option templates into descriptors",
		ArgsUsage:             "-- TEMPLATE [TEMPLATE...]",
		Description: `Parse one or more option templates and print the resulting descriptors.

A template is a sequence of tokens separated by spaces or '|':
  --name    long name (ASCII letters only after "--")
  -n        short name (exactly one ASCII letter after "-")
  <NAME>    value placeholder, ASCII letters only (also [NAME])

Tokens that match none of these are dropped. With --strict, any dropped
token fails the command instead.

Templates usually begin with '-', so separate them from flags with "--".

# Examples

Parse a single template:
  cmdlinectl parse -- "-n | --name <NAME>"

Show every token and how it was classified:
  cmdlinectl parse --explain -- "--output <FILE> extra"

Reject unrecognized tokens:
  cmdlinectl parse --strict --format json -- "--verbose" "-x | --bogus? <V>"`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "fail on tokens that are not a long name, short name or value placeholder",
			},
			&cli.BoolFlag{
				Name:  "explain",
				Usage: "include the classified tokens and the dropped tokens in the output",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			templates := cmd.Args().Slice()
			if len(templates) == 0 {
				return fmt.Errorf("at least one template is required")
			}

			p := template.NewParser(template.WithStrict(cmd.Bool("strict")))
			explain := cmd.Bool("explain")

			reports := make([]template.Report, 0, len(templates))
			for _, raw := range templates {
				if _, err := p.Parse(raw); err != nil {
					return fmt.Errorf("template %q: %w", raw, err)
				}
				reports = append(reports, p.Inspect(raw))
			}

			slog.Debug("templates parsed", "count", len(reports), "strict", p.Strict())

			return writeOutput(ctx, cmd, outFormat, parseOutput(reports, explain))
		},
	}
}

// parseOutput returns the value printed by parse: descriptors, or full
// reports when explain is set. A single template is printed unwrapped.
func parseOutput(reports []template.Report, explain bool) any {
	if explain {
		if len(reports) == 1 {
			return reports[0]
		}
		return reports
	}

	templates := make([]template.Template, 0, len(reports))
	for _, r := range reports {
		templates = append(templates, r.Template)
	}
	if len(templates) == 1 {
		return templates[0]
	}
	return templates
}

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

	"github.com/NVIDIA/cmdline/pkg/declare"
)

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:                  "inspect",
		EnableShellCompletion: true,
		Usage:                 "Print the normalized form of a declaration document",
		Description: `Load a declaration document, build the command tree it describes and
print the tree back as a document. Defaults are filled in: argument types
default to "string" and the argument separator is allowed unless disabled.

# Examples

  cmdlinectl inspect --file app.yaml
  cmdlinectl inspect -f app.yaml --format json -o app.json`,
		Flags: []cli.Flag{
			fileFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			path := cmd.String("file")
			slog.Info("loading declaration", "path", path)

			app, err := loadApplication(path)
			if err != nil {
				return err
			}

			return writeOutput(ctx, cmd, outFormat, declare.Describe(app))
		},
	}
}

// loadApplication reads and builds the declaration document at path.
func loadApplication(path string) (*declare.Application, error) {
	doc, err := declare.LoadDocument(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load declaration from %q: %w", path, err)
	}

	app, err := doc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build declaration from %q: %w", path, err)
	}
	return app, nil
}

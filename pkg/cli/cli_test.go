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
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cmdline/pkg/serializer"
	"github.com/NVIDIA/cmdline/pkg/validator"
)

const appDocument = `kind: Application
apiVersion: cmdline.nvidia.com/v1alpha1
spec:
  name: git
  options:
    - template: "-v | --verbose"
  commands:
    - name: commit
      options:
        - template: "-m | --message <MESSAGE>"
      arguments:
        - name: paths
          type: file
          optional: true
          repeatable: true
`

const conflictDocument = `kind: Application
apiVersion: cmdline.nvidia.com/v1alpha1
spec:
  name: tool
  options:
    - template: "-o | --output <FILE>"
    - template: "--output <DIR>"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	return newRootCmd().Run(context.Background(), append([]string{name}, args...))
}

func readJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{name: "yaml", format: "yaml", wantFormat: serializer.FormatYAML},
		{name: "json", format: "json", wantFormat: serializer.FormatJSON},
		{name: "table", format: "table", wantFormat: serializer.FormatTable},
		{name: "xml", format: "xml", wantErr: true},
		{name: "empty", format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: tt.format,
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if tt.wantErr {
						assert.Error(t, err)
						return nil
					}
					assert.NoError(t, err)
					assert.Equal(t, tt.wantFormat, got)
					return nil
				},
			}

			require.NoError(t, cmd.Run(context.Background(), []string{"test"}))
		})
	}
}

func TestRootCmd_CommandStructure(t *testing.T) {
	root := newRootCmd()
	assert.Equal(t, name, root.Name)

	var names []string
	for _, c := range root.Commands {
		names = append(names, c.Name)
		assert.NotEmpty(t, c.Usage, "command %s has no usage", c.Name)
		assert.NotNil(t, c.Action, "command %s has no action", c.Name)
	}
	assert.Equal(t, []string{"parse", "inspect", "validate"}, names)
}

func TestParseCmd_DescribesNameGrammar(t *testing.T) {
	desc := parseCmd().Description
	assert.NotContains(t, desc, "digits")
	assert.Contains(t, desc, `long name (ASCII letters only after "--")`)
	assert.Contains(t, desc, `short name (exactly one ASCII letter after "-")`)
}

func TestParseCmd(t *testing.T) {
	t.Run("single template", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "out.json")
		require.NoError(t, run(t, "parse", "--format", "json", "--output", out, "--", "-n | --name <NAME>"))

		var got map[string]any
		readJSON(t, out, &got)
		assert.Equal(t, "-n | --name <NAME>", got["template"])
		assert.Equal(t, "name", got["longName"])
		assert.Equal(t, "n", got["shortName"])
		assert.Equal(t, []any{"NAME"}, got["valueNames"])
	})

	t.Run("multiple templates", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "out.json")
		require.NoError(t, run(t, "parse", "--format", "json", "--output", out, "--", "--verbose", "-o <FILE>"))

		var got []map[string]any
		readJSON(t, out, &got)
		require.Len(t, got, 2)
		assert.Equal(t, "verbose", got[0]["longName"])
		assert.Equal(t, "o", got[1]["shortName"])
	})

	t.Run("explain lists dropped tokens", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "out.json")
		require.NoError(t, run(t, "parse", "--explain", "--format", "json", "--output", out, "--", "--output <FILE> extra"))

		var got map[string]any
		readJSON(t, out, &got)
		assert.Equal(t, []any{"extra"}, got["dropped"])
		assert.Len(t, got["tokens"], 3)
	})

	t.Run("strict rejects unknown tokens", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "out.json")
		err := run(t, "parse", "--strict", "--output", out, "--", "--output <FILE> extra")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "extra")
		assert.NoFileExists(t, out)
	})

	t.Run("no templates", func(t *testing.T) {
		err := run(t, "parse")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one template")
	})

	t.Run("unknown format", func(t *testing.T) {
		err := run(t, "parse", "--format", "xml", "--", "--verbose")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown output format")
	})
}

func TestInspectCmd(t *testing.T) {
	path := writeFile(t, "app.yaml", appDocument)
	out := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, run(t, "inspect", "--file", path, "--format", "json", "--output", out))

	var got map[string]any
	readJSON(t, out, &got)
	assert.Equal(t, "Application", got["kind"])

	spec, ok := got["spec"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "git", spec["name"])
	assert.Equal(t, true, spec["allowArgumentSeparator"])
}

func TestInspectCmd_MissingFile(t *testing.T) {
	err := run(t, "inspect", "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load declaration")
}

func TestValidateCmd(t *testing.T) {
	t.Run("passing document", func(t *testing.T) {
		path := writeFile(t, "app.yaml", appDocument)
		out := filepath.Join(t.TempDir(), "out.json")

		require.NoError(t, run(t, "validate", "--file", path, "--fail-on-error", "--format", "json", "--output", out))

		var got validator.ValidationResult
		readJSON(t, out, &got)
		assert.Equal(t, validator.ValidationStatusPass, got.Summary.Status)
		assert.Equal(t, path, got.Source)
		assert.Equal(t, "git", got.Application)
	})

	t.Run("conflicts without fail-on-error", func(t *testing.T) {
		path := writeFile(t, "tool.yaml", conflictDocument)
		out := filepath.Join(t.TempDir(), "out.json")

		require.NoError(t, run(t, "validate", "--file", path, "--format", "json", "--output", out))

		var got validator.ValidationResult
		readJSON(t, out, &got)
		assert.Equal(t, validator.ValidationStatusFail, got.Summary.Status)
		require.NotEmpty(t, got.Checks)
		assert.Equal(t, validator.RuleDuplicateOption, got.Checks[0].Rule)
	})

	t.Run("conflicts with fail-on-error", func(t *testing.T) {
		path := writeFile(t, "tool.yaml", conflictDocument)
		out := filepath.Join(t.TempDir(), "out.json")

		err := run(t, "validate", "--file", path, "--fail-on-error", "--output", out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
		assert.FileExists(t, out)
	})

	t.Run("disabled rule", func(t *testing.T) {
		path := writeFile(t, "tool.yaml", conflictDocument)
		out := filepath.Join(t.TempDir(), "out.json")

		require.NoError(t, run(t, "validate", "--file", path, "--disable", "duplicate-option",
			"--fail-on-error", "--format", "json", "--output", out))
	})

	t.Run("unknown rule", func(t *testing.T) {
		path := writeFile(t, "tool.yaml", conflictDocument)
		err := run(t, "validate", "--file", path, "--disable", "bogus")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown rule")
	})
}

func TestParseRules(t *testing.T) {
	rules, err := parseRules([]string{"option-name", "argument-order"})
	require.NoError(t, err)
	assert.Equal(t, []validator.Rule{validator.RuleOptionName, validator.RuleArgumentOrder}, rules)

	_, err = parseRules([]string{"nope"})
	assert.Error(t, err)
}

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

package declare

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/cmdline/pkg/errors"
	"github.com/NVIDIA/cmdline/pkg/header"
	"github.com/NVIDIA/cmdline/pkg/serializer"
)

func TestLoadDocument(t *testing.T) {
	doc, err := LoadDocument(filepath.Join("testdata", "app.yaml"))
	require.NoError(t, err)

	assert.Equal(t, header.KindApplication, doc.Kind)
	assert.Equal(t, "git", doc.Spec.Name)
	assert.True(t, doc.Spec.StrictArguments)
	require.Len(t, doc.Spec.Commands, 2)
	assert.Equal(t, ArgumentFile, doc.Spec.Commands[0].Arguments[0].Type)
}

func TestLoadDocument_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		code errors.ErrorCode
	}{
		{"missing file", filepath.Join("testdata", "nope.yaml"), errors.ErrCodeNotFound},
		{"wrong kind", filepath.Join("testdata", "wrong-kind.json"), errors.ErrCodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadDocument(tt.path)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.CodeOf(err), err.Error())
		})
	}
}

func TestDocument_Build(t *testing.T) {
	doc, err := LoadDocument(filepath.Join("testdata", "app.yaml"))
	require.NoError(t, err)

	app, err := doc.Build()
	require.NoError(t, err)

	assert.Equal(t, "git", app.Name())
	assert.Equal(t, "distributed version control", app.Description())
	assert.True(t, app.StrictArguments())
	assert.True(t, app.AllowArgumentSeparator())

	verbose, ok := app.Option("v")
	require.True(t, ok)
	assert.Equal(t, "verbose output", verbose.Description())

	commit, ok := app.Command("commit")
	require.True(t, ok)
	message, ok := commit.Option("--message")
	require.True(t, ok)
	if diff := cmp.Diff([]string{"MESSAGE"}, message.Template().ValueNames()); diff != "" {
		t.Errorf("value names mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, message.Arguments(), 1)
	assert.Equal(t, ArgumentString, message.Arguments()[0].Type())

	paths := commit.Arguments()[0]
	assert.False(t, paths.Required())
	assert.True(t, paths.Repeatable())

	var names []string
	require.NoError(t, app.Walk(func(path []string, _ *Command) error {
		names = append(names, strings.Join(path, "/"))
		return nil
	}))
	want := []string{"git", "git/commit", "git/remote", "git/remote/add"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestDocument_BuildMissingTemplate(t *testing.T) {
	doc, err := LoadDocument(filepath.Join("testdata", "missing-template.yaml"))
	require.NoError(t, err)

	_, err = doc.Build()
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidArgument, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "spec.commands[0].options[0]")
}

func TestDocument_BuildStrictTemplates(t *testing.T) {
	input := `
kind: Application
spec:
  name: tool
  strictTemplates: true
  options:
    - template: "--name (NAME)"
`
	doc, err := DecodeDocument(serializer.FormatYAML, strings.NewReader(input))
	require.NoError(t, err)

	_, err = doc.Build()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidTemplate))

	doc.Spec.StrictTemplates = false
	app, err := doc.Build()
	require.NoError(t, err)
	opt, ok := app.Option("name")
	require.True(t, ok)
	assert.Empty(t, opt.Template().ValueNames())
}

func TestDescribe_KeepsStrictTemplates(t *testing.T) {
	input := `
kind: Application
spec:
  name: tool
  strictTemplates: true
  options:
    - template: "-o | --output <FILE>"
`
	doc, err := DecodeDocument(serializer.FormatYAML, strings.NewReader(input))
	require.NoError(t, err)

	app, err := doc.Build()
	require.NoError(t, err)
	assert.True(t, app.StrictTemplates())

	out := Describe(app)
	assert.True(t, out.Spec.StrictTemplates)

	again, err := out.Build()
	require.NoError(t, err)
	assert.True(t, again.StrictTemplates())
}

func TestDocument_BuildBlankTemplate(t *testing.T) {
	input := `{"kind":"Application","spec":{"name":"tool","options":[{"template":"  "}]}}`
	doc, err := DecodeDocument(serializer.FormatJSON, strings.NewReader(input))
	require.NoError(t, err)

	_, err = doc.Build()
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidArgument, errors.CodeOf(err))
}

func TestDecodeDocument_Errors(t *testing.T) {
	tests := []struct {
		name   string
		format serializer.Format
		input  string
	}{
		{"table format", serializer.FormatTable, "x"},
		{"malformed", serializer.FormatJSON, "{"},
		{"unknown field", serializer.FormatYAML, "kind: Application\nspec:\n  name: x\n  bogus: 1\n"},
		{"wrong kind", serializer.FormatYAML, "kind: Other\nspec:\n  name: x\n"},
		{"wrong version", serializer.FormatYAML, "kind: Application\napiVersion: v9\nspec:\n  name: x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDocument(tt.format, strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err), err.Error())
		})
	}
}

func TestDescribe_RoundTrip(t *testing.T) {
	app, err := NewApplication("git",
		StrictArguments(true),
		ArgumentSeparator(false),
		Root(
			Description("version control"),
			WithOption("-v | --verbose", OptionDescription("verbose output")),
			SubCommand("commit",
				WithOption("-m | --message <MESSAGE>",
					OptionArgument("message", ArgumentString)),
				WithArgument("paths", ArgumentFile, Optional(), Repeatable()),
				EntryPoint(func(context.Context) error { return nil })),
		))
	require.NoError(t, err)

	doc := Describe(app)
	assert.Equal(t, header.KindApplication, doc.Kind)
	assert.Equal(t, header.APIVersion, doc.APIVersion)

	var buf bytes.Buffer
	require.NoError(t, serializer.NewWriter(serializer.FormatYAML, &buf).Serialize(context.Background(), doc))

	decoded, err := DecodeDocument(serializer.FormatYAML, &buf)
	require.NoError(t, err)
	if diff := cmp.Diff(doc, decoded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	rebuilt, err := decoded.Build()
	require.NoError(t, err)
	assert.False(t, rebuilt.AllowArgumentSeparator())
	commit, ok := rebuilt.Command("commit")
	require.True(t, ok)
	assert.Equal(t, "-m | --message <MESSAGE>", commit.Options()[0].Template().Raw())
	assert.True(t, commit.Arguments()[0].Repeatable())
}

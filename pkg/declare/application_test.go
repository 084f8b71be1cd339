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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/cmdline/pkg/errors"
)

func TestNewApplication_Defaults(t *testing.T) {
	app, err := NewApplication("tool")
	require.NoError(t, err)

	assert.Equal(t, "tool", app.Name())
	assert.False(t, app.StrictArguments())
	assert.True(t, app.AllowArgumentSeparator())
	assert.Empty(t, app.Commands())
	assert.Empty(t, app.Options())
	assert.Empty(t, app.Arguments())
}

func TestNewApplication(t *testing.T) {
	ran := ""
	app, err := NewApplication("git",
		StrictArguments(true),
		ArgumentSeparator(false),
		Root(
			Description("version control"),
			WithOption("-v | --verbose"),
			EntryPoint(func(context.Context) error {
				ran = "git"
				return nil
			})),
		Root(SubCommand("status")),
	)
	require.NoError(t, err)

	assert.Equal(t, "version control", app.Description())
	assert.True(t, app.StrictArguments())
	assert.False(t, app.AllowArgumentSeparator())

	_, ok := app.Command("status")
	assert.True(t, ok)
	_, ok = app.Option("verbose")
	assert.True(t, ok)

	count := 0
	require.NoError(t, app.Walk(func([]string, *Command) error {
		count++
		return nil
	}))
	assert.Equal(t, 2, count)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "git", ran)
}

func TestNewApplication_Errors(t *testing.T) {
	_, err := NewApplication("")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidArgument, errors.CodeOf(err))

	_, err = NewApplication("tool", Root(WithOption("")))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidArgument))
}

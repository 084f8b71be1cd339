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
	"fmt"
	"slices"
	"strings"

	"github.com/NVIDIA/cmdline/pkg/errors"
)

// EntryPointFunc is invoked when a command is selected.
type EntryPointFunc func(ctx context.Context) error

// Command is a named container of sub-commands, options and positional
// arguments. Commands are immutable once built.
type Command struct {
	name        string
	description string
	entryPoint  EntryPointFunc
	commands    []*Command
	options     []*Option
	arguments   []*Argument
}

// Setting configures a Command during construction.
type Setting func(*Command) error

// Description sets the help text of the command.
func Description(description string) Setting {
	return func(c *Command) error {
		c.description = description
		return nil
	}
}

// EntryPoint sets the function run when the command is selected.
func EntryPoint(fn EntryPointFunc) Setting {
	return func(c *Command) error {
		if fn == nil {
			return errors.New(errors.ErrCodeInvalidArgument, "entry point is required")
		}
		c.entryPoint = fn
		return nil
	}
}

// SubCommand declares a nested command.
func SubCommand(name string, settings ...Setting) Setting {
	return func(c *Command) error {
		sub, err := NewCommand(name, settings...)
		if err != nil {
			return err
		}
		c.commands = append(c.commands, sub)
		return nil
	}
}

// WithOption declares an option on the command.
func WithOption(tmpl string, settings ...OptionSetting) Setting {
	return func(c *Command) error {
		opt, err := NewOption(tmpl, settings...)
		if err != nil {
			return err
		}
		c.options = append(c.options, opt)
		return nil
	}
}

// WithArgument declares a positional argument on the command.
func WithArgument(name string, typ ArgumentType, settings ...ArgumentSetting) Setting {
	return func(c *Command) error {
		a, err := NewArgument(name, typ, settings...)
		if err != nil {
			return err
		}
		c.arguments = append(c.arguments, a)
		return nil
	}
}

func withCommand(sub *Command) Setting {
	return func(c *Command) error {
		c.commands = append(c.commands, sub)
		return nil
	}
}

func withOption(opt *Option) Setting {
	return func(c *Command) error {
		c.options = append(c.options, opt)
		return nil
	}
}

func withArgument(a *Argument) Setting {
	return func(c *Command) error {
		c.arguments = append(c.arguments, a)
		return nil
	}
}

// NewCommand declares a command. A blank name fails with
// ErrCodeInvalidArgument; the first failing setting aborts construction.
func NewCommand(name string, settings ...Setting) (*Command, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "command name is required")
	}

	c := &Command{name: name}
	for _, setting := range settings {
		if err := setting(c); err != nil {
			return nil, fmt.Errorf("command %q: %w", name, err)
		}
	}
	return c, nil
}

// Name returns the command name.
func (c *Command) Name() string { return c.name }

// Description returns the help text.
func (c *Command) Description() string { return c.description }

// EntryPoint returns the function run for the command, or nil.
func (c *Command) EntryPoint() EntryPointFunc { return c.entryPoint }

// Commands returns a copy of the sub-commands.
func (c *Command) Commands() []*Command { return slices.Clone(c.commands) }

// Options returns a copy of the options.
func (c *Command) Options() []*Option { return slices.Clone(c.options) }

// Arguments returns a copy of the positional arguments.
func (c *Command) Arguments() []*Argument { return slices.Clone(c.arguments) }

// Command returns the first direct sub-command called name.
func (c *Command) Command(name string) (*Command, bool) {
	for _, sub := range c.commands {
		if sub.name == name {
			return sub, true
		}
	}
	return nil, false
}

// Option returns the first option whose long or short name is name.
// Leading dashes in name are ignored.
func (c *Command) Option(name string) (*Option, bool) {
	for _, opt := range c.options {
		if opt.Matches(name) {
			return opt, true
		}
	}
	return nil, false
}

// Run invokes the entry point of the command.
func (c *Command) Run(ctx context.Context) error {
	if c.entryPoint == nil {
		return errors.NewWithContext(errors.ErrCodeNotFound,
			fmt.Sprintf("command %q has no entry point", c.name),
			map[string]any{"command": c.name})
	}
	return c.entryPoint(ctx)
}

// WalkFunc is called for every command visited by Walk. path holds the
// command names from the walk root down to c.
type WalkFunc func(path []string, c *Command) error

// Walk visits c and its sub-commands depth-first in declaration order.
// The first error returned by fn stops the walk.
func (c *Command) Walk(fn WalkFunc) error {
	return c.walk(nil, fn)
}

func (c *Command) walk(parent []string, fn WalkFunc) error {
	path := append(slices.Clone(parent), c.name)
	if err := fn(path, c); err != nil {
		return err
	}
	for _, sub := range c.commands {
		if err := sub.walk(path, fn); err != nil {
			return err
		}
	}
	return nil
}

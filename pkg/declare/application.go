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
	"log/slog"
)

// Application is the root of a declaration tree. Its root command carries
// the application name together with the top-level commands, options and
// arguments.
type Application struct {
	root                   *Command
	strictArguments        bool
	strictTemplates        bool
	allowArgumentSeparator bool
}

type appConfig struct {
	strictArguments        bool
	strictTemplates        bool
	allowArgumentSeparator bool
	root                   []Setting
}

// AppSetting configures an Application during construction.
type AppSetting func(*appConfig)

// StrictArguments makes unknown arguments an error instead of being ignored.
func StrictArguments(strict bool) AppSetting {
	return func(c *appConfig) {
		c.strictArguments = strict
	}
}

// StrictTemplates records that option templates were parsed in strict mode.
func StrictTemplates(strict bool) AppSetting {
	return func(c *appConfig) {
		c.strictTemplates = strict
	}
}

// ArgumentSeparator controls whether "--" ends option parsing.
func ArgumentSeparator(allow bool) AppSetting {
	return func(c *appConfig) {
		c.allowArgumentSeparator = allow
	}
}

// Root adds settings for the root command. It may be given more than once.
func Root(settings ...Setting) AppSetting {
	return func(c *appConfig) {
		c.root = append(c.root, settings...)
	}
}

// NewApplication declares an application called name.
func NewApplication(name string, settings ...AppSetting) (*Application, error) {
	cfg := &appConfig{allowArgumentSeparator: true}
	for _, setting := range settings {
		setting(cfg)
	}

	root, err := NewCommand(name, cfg.root...)
	if err != nil {
		return nil, err
	}

	app := &Application{
		root:                   root,
		strictArguments:        cfg.strictArguments,
		strictTemplates:        cfg.strictTemplates,
		allowArgumentSeparator: cfg.allowArgumentSeparator,
	}

	slog.Debug("application declared",
		"name", name,
		"commands", len(root.commands),
		"options", len(root.options),
		"arguments", len(root.arguments))

	return app, nil
}

// Name returns the application name.
func (a *Application) Name() string { return a.root.Name() }

// Description returns the application help text.
func (a *Application) Description() string { return a.root.Description() }

// Root returns the root command.
func (a *Application) Root() *Command { return a.root }

// StrictArguments reports whether unknown arguments are errors.
func (a *Application) StrictArguments() bool { return a.strictArguments }

// StrictTemplates reports whether option templates were parsed in strict mode.
func (a *Application) StrictTemplates() bool { return a.strictTemplates }

// AllowArgumentSeparator reports whether "--" ends option parsing.
func (a *Application) AllowArgumentSeparator() bool { return a.allowArgumentSeparator }

// Commands returns a copy of the top-level commands.
func (a *Application) Commands() []*Command { return a.root.Commands() }

// Options returns a copy of the top-level options.
func (a *Application) Options() []*Option { return a.root.Options() }

// Arguments returns a copy of the top-level arguments.
func (a *Application) Arguments() []*Argument { return a.root.Arguments() }

// Command returns the top-level command called name.
func (a *Application) Command(name string) (*Command, bool) { return a.root.Command(name) }

// Option returns the top-level option with the given long or short name.
func (a *Application) Option(name string) (*Option, bool) { return a.root.Option(name) }

// Walk visits the root command and every nested command depth-first.
func (a *Application) Walk(fn WalkFunc) error { return a.root.Walk(fn) }

// Run invokes the root entry point.
func (a *Application) Run(ctx context.Context) error { return a.root.Run(ctx) }

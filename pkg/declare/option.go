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
	"fmt"
	"slices"
	"strings"

	"github.com/NVIDIA/cmdline/pkg/errors"
	"github.com/NVIDIA/cmdline/pkg/template"
)

// Option is a named switch declared by an option template such as
// "-o | --output <FILE>".
type Option struct {
	template    template.Template
	description string
	arguments   []*Argument
}

type optionConfig struct {
	description string
	parser      *template.Parser
	arguments   []*Argument
}

// OptionSetting configures an Option during construction.
type OptionSetting func(*optionConfig) error

// OptionDescription sets the help text of the option.
func OptionDescription(description string) OptionSetting {
	return func(c *optionConfig) error {
		c.description = description
		return nil
	}
}

// OptionArgument declares a value the option consumes.
func OptionArgument(name string, typ ArgumentType, settings ...ArgumentSetting) OptionSetting {
	return func(c *optionConfig) error {
		a, err := NewArgument(name, typ, settings...)
		if err != nil {
			return err
		}
		c.arguments = append(c.arguments, a)
		return nil
	}
}

// OptionParser sets the parser used for the option template.
// Without it templates are parsed permissively.
func OptionParser(p *template.Parser) OptionSetting {
	return func(c *optionConfig) error {
		c.parser = p
		return nil
	}
}

func withOptionArgument(a *Argument) OptionSetting {
	return func(c *optionConfig) error {
		c.arguments = append(c.arguments, a)
		return nil
	}
}

// NewOption declares an option from its template.
// A blank template fails with ErrCodeInvalidArgument. A strict parser
// rejects templates with unrecognized tokens.
func NewOption(tmpl string, settings ...OptionSetting) (*Option, error) {
	if strings.TrimSpace(tmpl) == "" {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "option template is required")
	}

	cfg, err := applyOptionSettings(settings)
	if err != nil {
		return nil, fmt.Errorf("option %q: %w", tmpl, err)
	}

	t, err := cfg.parser.Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("option %q: %w", tmpl, err)
	}
	return newOption(t, cfg), nil
}

func applyOptionSettings(settings []OptionSetting) (*optionConfig, error) {
	cfg := &optionConfig{}
	for _, setting := range settings {
		if err := setting(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func newOption(t template.Template, cfg *optionConfig) *Option {
	return &Option{
		template:    t,
		description: cfg.description,
		arguments:   slices.Clone(cfg.arguments),
	}
}

// Template returns the parsed template descriptor.
func (o *Option) Template() template.Template { return o.template }

// Name returns the long name, or "" when the template declares none.
func (o *Option) Name() string { return o.template.LongName() }

// ShortName returns the short name, or "" when the template declares none.
func (o *Option) ShortName() string { return o.template.ShortName() }

// Description returns the help text.
func (o *Option) Description() string { return o.description }

// Arguments returns a copy of the values the option consumes.
func (o *Option) Arguments() []*Argument { return slices.Clone(o.arguments) }

// Matches reports whether name is the long or short name of the option.
// Leading dashes in name are ignored.
func (o *Option) Matches(name string) bool {
	name = strings.TrimLeft(name, "-")
	if name == "" {
		return false
	}
	return name == o.template.LongName() || name == o.template.ShortName()
}

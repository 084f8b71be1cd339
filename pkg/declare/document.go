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
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/NVIDIA/cmdline/pkg/errors"
	"github.com/NVIDIA/cmdline/pkg/header"
	"github.com/NVIDIA/cmdline/pkg/serializer"
	"github.com/NVIDIA/cmdline/pkg/template"
)

// Document is the serialized form of an Application.
type Document struct {
	header.Header `json:",inline" yaml:",inline"`

	Spec ApplicationSpec `json:"spec" yaml:"spec"`
}

// ApplicationSpec describes the application and its root container.
type ApplicationSpec struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// StrictArguments makes unknown arguments an error.
	StrictArguments bool `json:"strictArguments,omitempty" yaml:"strictArguments,omitempty"`

	// AllowArgumentSeparator defaults to true when omitted.
	AllowArgumentSeparator *bool `json:"allowArgumentSeparator,omitempty" yaml:"allowArgumentSeparator,omitempty"`

	// StrictTemplates rejects option templates with unrecognized tokens.
	StrictTemplates bool `json:"strictTemplates,omitempty" yaml:"strictTemplates,omitempty"`

	Options   []OptionSpec   `json:"options,omitempty" yaml:"options,omitempty"`
	Arguments []ArgumentSpec `json:"arguments,omitempty" yaml:"arguments,omitempty"`
	Commands  []CommandSpec  `json:"commands,omitempty" yaml:"commands,omitempty"`
}

// CommandSpec describes a command.
type CommandSpec struct {
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Options     []OptionSpec   `json:"options,omitempty" yaml:"options,omitempty"`
	Arguments   []ArgumentSpec `json:"arguments,omitempty" yaml:"arguments,omitempty"`
	Commands    []CommandSpec  `json:"commands,omitempty" yaml:"commands,omitempty"`
}

// OptionSpec describes an option. Template is a pointer so that a missing
// template can be told apart from an empty one.
type OptionSpec struct {
	Template    *string        `json:"template" yaml:"template"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Arguments   []ArgumentSpec `json:"arguments,omitempty" yaml:"arguments,omitempty"`
}

// ArgumentSpec describes a positional argument. Type defaults to string.
type ArgumentSpec struct {
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Type        ArgumentType `json:"type,omitempty" yaml:"type,omitempty"`
	Optional    bool         `json:"optional,omitempty" yaml:"optional,omitempty"`
	Repeatable  bool         `json:"repeatable,omitempty" yaml:"repeatable,omitempty"`
}

// LoadDocument reads a declaration document from a local YAML or JSON file.
// Unknown fields are rejected.
func LoadDocument(path string) (*Document, error) {
	doc, err := serializer.FromFile[Document](path, serializer.WithStrictFields(true))
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.WrapWithContext(errors.ErrCodeNotFound, "declaration document not found", err,
				map[string]any{"path": path})
		}
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "failed to load declaration document", err,
			map[string]any{"path": path})
	}

	if err := doc.Validate(header.KindApplication); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("declaration document loaded", "path", path, "application", doc.Spec.Name)
	return doc, nil
}

// DecodeDocument reads a declaration document in the given format.
func DecodeDocument(format serializer.Format, r io.Reader) (*Document, error) {
	reader, err := serializer.NewReader(format, r, serializer.WithStrictFields(true))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "unsupported document format", err)
	}

	var doc Document
	if err := reader.Deserialize(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to decode declaration document", err)
	}

	if err := doc.Validate(header.KindApplication); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Build constructs the Application the document describes. Errors name the
// path of the offending element.
func (d *Document) Build() (*Application, error) {
	parser := template.NewParser(template.WithStrict(d.Spec.StrictTemplates))

	settings, err := buildContainer("spec", parser, d.Spec.Options, d.Spec.Arguments, d.Spec.Commands)
	if err != nil {
		return nil, err
	}
	if d.Spec.Description != "" {
		settings = append(settings, Description(d.Spec.Description))
	}

	allowSeparator := true
	if d.Spec.AllowArgumentSeparator != nil {
		allowSeparator = *d.Spec.AllowArgumentSeparator
	}

	return NewApplication(d.Spec.Name,
		StrictArguments(d.Spec.StrictArguments),
		StrictTemplates(d.Spec.StrictTemplates),
		ArgumentSeparator(allowSeparator),
		Root(settings...))
}

func buildContainer(path string, parser *template.Parser, options []OptionSpec, arguments []ArgumentSpec, commands []CommandSpec) ([]Setting, error) {
	settings := make([]Setting, 0, len(options)+len(arguments)+len(commands))

	for i, spec := range options {
		opt, err := buildOption(parser, spec)
		if err != nil {
			return nil, fmt.Errorf("%s.options[%d]: %w", path, i, err)
		}
		settings = append(settings, withOption(opt))
	}

	for i, spec := range arguments {
		a, err := buildArgument(spec)
		if err != nil {
			return nil, fmt.Errorf("%s.arguments[%d]: %w", path, i, err)
		}
		settings = append(settings, withArgument(a))
	}

	for i, spec := range commands {
		cmdPath := fmt.Sprintf("%s.commands[%d]", path, i)
		sub, err := buildContainer(cmdPath, parser, spec.Options, spec.Arguments, spec.Commands)
		if err != nil {
			return nil, err
		}
		if spec.Description != "" {
			sub = append(sub, Description(spec.Description))
		}
		cmd, err := NewCommand(spec.Name, sub...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cmdPath, err)
		}
		settings = append(settings, withCommand(cmd))
	}

	return settings, nil
}

func buildOption(parser *template.Parser, spec OptionSpec) (*Option, error) {
	t, err := parser.ParseRef(spec.Template)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(t.Raw()) == "" {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "option template is required")
	}

	cfg := &optionConfig{description: spec.Description, parser: parser}
	for i, argSpec := range spec.Arguments {
		a, err := buildArgument(argSpec)
		if err != nil {
			return nil, fmt.Errorf("arguments[%d]: %w", i, err)
		}
		if err := withOptionArgument(a)(cfg); err != nil {
			return nil, err
		}
	}
	return newOption(t, cfg), nil
}

func buildArgument(spec ArgumentSpec) (*Argument, error) {
	typ := spec.Type
	if typ == "" {
		typ = ArgumentString
	}

	var settings []ArgumentSetting
	if spec.Description != "" {
		settings = append(settings, ArgumentDescription(spec.Description))
	}
	if spec.Optional {
		settings = append(settings, Optional())
	}
	if spec.Repeatable {
		settings = append(settings, Repeatable())
	}
	return NewArgument(spec.Name, typ, settings...)
}

// Describe converts an Application back into a document.
func Describe(app *Application) *Document {
	root := app.Root()
	allowSeparator := app.AllowArgumentSeparator()

	doc := &Document{
		Spec: ApplicationSpec{
			Name:                   root.Name(),
			Description:            root.Description(),
			StrictArguments:        app.StrictArguments(),
			StrictTemplates:        app.StrictTemplates(),
			AllowArgumentSeparator: &allowSeparator,
			Options:                describeOptions(root.options),
			Arguments:              describeArguments(root.arguments),
			Commands:               describeCommands(root.commands),
		},
	}
	doc.Kind = header.KindApplication
	doc.APIVersion = header.APIVersion
	return doc
}

func describeCommands(commands []*Command) []CommandSpec {
	if len(commands) == 0 {
		return nil
	}
	specs := make([]CommandSpec, 0, len(commands))
	for _, c := range commands {
		specs = append(specs, CommandSpec{
			Name:        c.name,
			Description: c.description,
			Options:     describeOptions(c.options),
			Arguments:   describeArguments(c.arguments),
			Commands:    describeCommands(c.commands),
		})
	}
	return specs
}

func describeOptions(options []*Option) []OptionSpec {
	if len(options) == 0 {
		return nil
	}
	specs := make([]OptionSpec, 0, len(options))
	for _, o := range options {
		raw := o.template.Raw()
		specs = append(specs, OptionSpec{
			Template:    &raw,
			Description: o.description,
			Arguments:   describeArguments(o.arguments),
		})
	}
	return specs
}

func describeArguments(arguments []*Argument) []ArgumentSpec {
	if len(arguments) == 0 {
		return nil
	}
	specs := make([]ArgumentSpec, 0, len(arguments))
	for _, a := range arguments {
		specs = append(specs, ArgumentSpec{
			Name:        a.name,
			Description: a.description,
			Type:        a.typ,
			Optional:    !a.required,
			Repeatable:  a.repeatable,
		})
	}
	return specs
}

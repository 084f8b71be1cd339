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
	"strings"

	"github.com/NVIDIA/cmdline/pkg/errors"
)

// ArgumentType is the kind of value a positional argument accepts.
type ArgumentType string

const (
	ArgumentString     ArgumentType = "string"
	ArgumentBoolean    ArgumentType = "boolean"
	ArgumentInteger    ArgumentType = "integer"
	ArgumentFile       ArgumentType = "file"
	ArgumentEnumerable ArgumentType = "enumerable"
)

// SupportedArgumentTypes returns the names of all argument types.
func SupportedArgumentTypes() []string {
	return []string{
		string(ArgumentString),
		string(ArgumentBoolean),
		string(ArgumentInteger),
		string(ArgumentFile),
		string(ArgumentEnumerable),
	}
}

// IsValid reports whether t is a known argument type.
func (t ArgumentType) IsValid() bool {
	switch t {
	case ArgumentString, ArgumentBoolean, ArgumentInteger, ArgumentFile, ArgumentEnumerable:
		return true
	default:
		return false
	}
}

// String returns the type name.
func (t ArgumentType) String() string {
	return string(t)
}

// ParseArgumentType converts a case-insensitive name to an ArgumentType.
func ParseArgumentType(s string) (ArgumentType, error) {
	t := ArgumentType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", errors.NewWithContext(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("unknown argument type %q", s),
			map[string]any{"supported": SupportedArgumentTypes()})
	}
	return t, nil
}

// MarshalText implements encoding.TextMarshaler.
func (t ArgumentType) MarshalText() ([]byte, error) {
	return []byte(t), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ArgumentType) UnmarshalText(text []byte) error {
	parsed, err := ParseArgumentType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Argument is a positional value accepted by a command or an option.
// Arguments are required and single-valued unless configured otherwise.
type Argument struct {
	name        string
	description string
	typ         ArgumentType
	required    bool
	repeatable  bool
}

// ArgumentSetting configures an Argument during construction.
type ArgumentSetting func(*Argument)

// ArgumentDescription sets the help text of the argument.
func ArgumentDescription(description string) ArgumentSetting {
	return func(a *Argument) {
		a.description = description
	}
}

// Optional marks the argument as not required.
func Optional() ArgumentSetting {
	return func(a *Argument) {
		a.required = false
	}
}

// Repeatable allows the argument to be given more than once.
func Repeatable() ArgumentSetting {
	return func(a *Argument) {
		a.repeatable = true
	}
}

// NewArgument declares a positional argument.
func NewArgument(name string, typ ArgumentType, settings ...ArgumentSetting) (*Argument, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "argument name is required")
	}
	if !typ.IsValid() {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("argument %q has unknown type %q", name, typ),
			map[string]any{"argument": name, "type": string(typ)})
	}

	a := &Argument{
		name:     name,
		typ:      typ,
		required: true,
	}
	for _, setting := range settings {
		setting(a)
	}
	return a, nil
}

// Name returns the argument name.
func (a *Argument) Name() string { return a.name }

// Description returns the help text.
func (a *Argument) Description() string { return a.description }

// Type returns the value type.
func (a *Argument) Type() ArgumentType { return a.typ }

// Required reports whether the argument must be supplied.
func (a *Argument) Required() bool { return a.required }

// Repeatable reports whether the argument may be supplied more than once.
func (a *Argument) Repeatable() bool { return a.repeatable }

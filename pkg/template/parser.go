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

package template

import (
	"strings"

	"github.com/NVIDIA/cmdline/pkg/errors"
)

// Parser turns templates into descriptors. The zero value and a nil *Parser
// both parse permissively.
type Parser struct {
	strict bool
}

// Option is a functional option for configuring a Parser.
type Option func(*Parser)

// WithStrict returns an Option that makes Parse fail on unrecognized tokens
// instead of dropping them.
func WithStrict(strict bool) Option {
	return func(p *Parser) {
		p.strict = strict
	}
}

// NewParser creates a Parser with the provided options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Strict reports whether the parser rejects unrecognized tokens.
func (p *Parser) Strict() bool {
	return p != nil && p.strict
}

// Report describes how a template was parsed.
type Report struct {
	// Template is the resulting descriptor.
	Template Template `json:"template" yaml:"template"`

	// Tokens lists every token in order of appearance with its kind.
	Tokens []Token `json:"tokens" yaml:"tokens"`

	// Dropped lists the tokens that did not contribute to the descriptor.
	Dropped []string `json:"dropped" yaml:"dropped"`
}

// Inspect parses template permissively and reports every token, including
// the ones that were dropped. Inspect never fails, even in strict mode.
func (p *Parser) Inspect(template string) Report {
	var (
		longName   string
		shortName  string
		valueNames []string
	)

	parts := Tokenize(template)
	report := Report{
		Tokens:  make([]Token, 0, len(parts)),
		Dropped: []string{},
	}

	for _, part := range parts {
		kind := Classify(part)
		switch kind {
		case TokenValue:
			valueNames = append(valueNames, ExtractValuePlaceholderName(part))
		case TokenLongName:
			longName = ExtractLongName(part)
		case TokenShortName:
			shortName = ExtractShortName(part)
		case TokenUnknown:
			report.Dropped = append(report.Dropped, part)
		}
		report.Tokens = append(report.Tokens, Token{Text: part, Kind: kind})
	}

	report.Template = Template{
		raw:        template,
		longName:   longName,
		shortName:  shortName,
		valueNames: valueNames,
	}
	return report
}

// Parse parses template. In permissive mode (the default) it never fails.
// In strict mode it returns an ErrCodeInvalidTemplate error naming every
// unrecognized token.
func (p *Parser) Parse(template string) (Template, error) {
	report := p.Inspect(template)
	if p.Strict() && len(report.Dropped) > 0 {
		return Template{}, errors.NewWithContext(errors.ErrCodeInvalidTemplate,
			"template contains unrecognized tokens: "+strings.Join(report.Dropped, ", "),
			map[string]any{
				"template": template,
				"dropped":  report.Dropped,
			})
	}
	return report.Template, nil
}

// ParseRef parses the template behind a pointer. A nil pointer is an absent
// template and fails with ErrCodeInvalidArgument; an empty string is valid.
func (p *Parser) ParseRef(template *string) (Template, error) {
	if template == nil {
		return Template{}, errors.New(errors.ErrCodeInvalidArgument, "template is required")
	}
	return p.Parse(*template)
}

// Parse parses template with the permissive default rules.
func Parse(template string) Template {
	return (*Parser)(nil).Inspect(template).Template
}

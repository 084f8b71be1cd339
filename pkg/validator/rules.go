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

package validator

import (
	"fmt"
	"strings"

	"github.com/NVIDIA/cmdline/pkg/declare"
	"github.com/NVIDIA/cmdline/pkg/template"
)

// Rule names a declaration check.
type Rule string

const (
	// RuleOptionTemplate flags templates whose tokens were dropped by the
	// permissive parser.
	RuleOptionTemplate Rule = "option-template"

	// RuleOptionName flags options with neither a long nor a short name.
	RuleOptionName Rule = "option-name"

	// RuleDuplicateOption flags options in one command sharing a name.
	RuleDuplicateOption Rule = "duplicate-option"

	// RuleDuplicateCommand flags sibling commands sharing a name.
	RuleDuplicateCommand Rule = "duplicate-command"

	// RuleArgumentOrder flags required arguments following optional ones.
	RuleArgumentOrder Rule = "argument-order"

	// RuleArgumentRepeatable flags repeatable arguments that are not last.
	RuleArgumentRepeatable Rule = "argument-repeatable"
)

// Rules returns every rule in evaluation order.
func Rules() []Rule {
	return []Rule{
		RuleOptionTemplate,
		RuleOptionName,
		RuleDuplicateOption,
		RuleDuplicateCommand,
		RuleArgumentOrder,
		RuleArgumentRepeatable,
	}
}

// ruleFunc inspects a single command and returns its findings.
type ruleFunc func(path string, c *declare.Command) []Check

var ruleFuncs = map[Rule]ruleFunc{
	RuleOptionTemplate:     checkOptionTemplates,
	RuleOptionName:         checkOptionNames,
	RuleDuplicateOption:    checkDuplicateOptions,
	RuleDuplicateCommand:   checkDuplicateCommands,
	RuleArgumentOrder:      checkArgumentOrder,
	RuleArgumentRepeatable: checkArgumentRepeatable,
}

func checkOptionTemplates(path string, c *declare.Command) []Check {
	var checks []Check
	for _, opt := range c.Options() {
		raw := opt.Template().Raw()
		report := (*template.Parser)(nil).Inspect(raw)
		if len(report.Dropped) == 0 {
			continue
		}
		checks = append(checks, Check{
			Rule:     RuleOptionTemplate,
			Severity: SeverityWarning,
			Path:     path,
			Subject:  raw,
			Message:  "unrecognized tokens ignored: " + strings.Join(report.Dropped, ", "),
		})
	}
	return checks
}

func checkOptionNames(path string, c *declare.Command) []Check {
	var checks []Check
	for _, opt := range c.Options() {
		if opt.Name() != "" || opt.ShortName() != "" {
			continue
		}
		checks = append(checks, Check{
			Rule:     RuleOptionName,
			Severity: SeverityError,
			Path:     path,
			Subject:  opt.Template().Raw(),
			Message:  "option declares neither a long nor a short name",
		})
	}
	return checks
}

func checkDuplicateOptions(path string, c *declare.Command) []Check {
	var checks []Check
	seen := make(map[string]string)
	for _, opt := range c.Options() {
		for _, name := range opt.Template().Names() {
			raw := opt.Template().Raw()
			if first, ok := seen[name]; ok {
				checks = append(checks, Check{
					Rule:     RuleDuplicateOption,
					Severity: SeverityError,
					Path:     path,
					Subject:  raw,
					Message:  fmt.Sprintf("%s is already declared by %q", name, first),
				})
				continue
			}
			seen[name] = raw
		}
	}
	return checks
}

func checkDuplicateCommands(path string, c *declare.Command) []Check {
	var checks []Check
	seen := make(map[string]struct{})
	for _, sub := range c.Commands() {
		if _, ok := seen[sub.Name()]; ok {
			checks = append(checks, Check{
				Rule:     RuleDuplicateCommand,
				Severity: SeverityError,
				Path:     path,
				Subject:  sub.Name(),
				Message:  fmt.Sprintf("command %q is declared more than once", sub.Name()),
			})
			continue
		}
		seen[sub.Name()] = struct{}{}
	}
	return checks
}

func checkArgumentOrder(path string, c *declare.Command) []Check {
	var checks []Check
	optional := ""
	for _, a := range c.Arguments() {
		if !a.Required() {
			if optional == "" {
				optional = a.Name()
			}
			continue
		}
		if optional != "" {
			checks = append(checks, Check{
				Rule:     RuleArgumentOrder,
				Severity: SeverityError,
				Path:     path,
				Subject:  a.Name(),
				Message:  fmt.Sprintf("required argument follows optional argument %q", optional),
			})
		}
	}
	return checks
}

func checkArgumentRepeatable(path string, c *declare.Command) []Check {
	var checks []Check
	args := c.Arguments()
	for i, a := range args {
		if !a.Repeatable() || i == len(args)-1 {
			continue
		}
		checks = append(checks, Check{
			Rule:     RuleArgumentRepeatable,
			Severity: SeverityError,
			Path:     path,
			Subject:  a.Name(),
			Message:  "repeatable argument must be the last positional argument",
		})
	}
	return checks
}

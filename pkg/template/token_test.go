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
	"testing"
)

func TestIsLongNameToken(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		// valid
		{token: "--name", want: true},
		{token: "--Name", want: true},
		{token: "--x", want: true},

		// invalid
		{token: "--name1", want: false},
		{token: "--name$", want: false},
		{token: "--na-me", want: false},
		{token: "---name", want: false},
		{token: "--", want: false},
		{token: "-n", want: false},
		{token: "-$", want: false},
		{token: "name", want: false},
		{token: "<argument>", want: false},
		{token: "[argument]", want: false},
		{token: "", want: false},
		{token: "—name", want: false},
		{token: "--näme", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := IsLongNameToken(tt.token); got != tt.want {
				t.Errorf("IsLongNameToken(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestIsShortNameToken(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		// valid
		{token: "-n", want: true},
		{token: "-N", want: true},

		// invalid
		{token: "-1", want: false},
		{token: "-$", want: false},
		{token: "-", want: false},
		{token: "-nm", want: false},
		{token: "--n", want: false},
		{token: "--name", want: false},
		{token: "n", want: false},
		{token: "<n>", want: false},
		{token: "-ä", want: false},
		{token: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := IsShortNameToken(tt.token); got != tt.want {
				t.Errorf("IsShortNameToken(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestIsValuePlaceholderToken(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		// valid
		{token: "<argument>", want: true},
		{token: "[argument]", want: true},
		{token: "<RequiredArgument>", want: true},
		{token: "[OptionalArgument]", want: true},
		{token: "<<argument>>", want: true},
		{token: "<[argument]>", want: true},

		// invalid
		{token: "(argument)", want: false},
		{token: "{argument}", want: false},
		{token: "<argument]", want: false},
		{token: "[argument>", want: false},
		{token: "<argument", want: false},
		{token: "argument>", want: false},
		{token: "<>", want: false},
		{token: "[]", want: false},
		{token: "<arg1>", want: false},
		{token: "<arg-name>", want: false},
		{token: "--name", want: false},
		{token: "-n", want: false},
		{token: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := IsValuePlaceholderToken(tt.token); got != tt.want {
				t.Errorf("IsValuePlaceholderToken(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestExtractors(t *testing.T) {
	tests := []struct {
		name    string
		extract func(string) string
		token   string
		want    string
	}{
		{name: "long name", extract: ExtractLongName, token: "--name", want: "name"},
		{name: "long name without dashes", extract: ExtractLongName, token: "name", want: "name"},
		{name: "long name unvalidated", extract: ExtractLongName, token: "---na-me", want: "na-me"},
		{name: "short name", extract: ExtractShortName, token: "-n", want: "n"},
		{name: "short name empty", extract: ExtractShortName, token: "", want: ""},
		{name: "required value", extract: ExtractValuePlaceholderName, token: "<RequiredArgument>", want: "RequiredArgument"},
		{name: "optional value", extract: ExtractValuePlaceholderName, token: "[OptionalArgument]", want: "OptionalArgument"},
		{name: "nested brackets", extract: ExtractValuePlaceholderName, token: "<[Value]>", want: "Value"},
		{name: "inner brackets kept", extract: ExtractValuePlaceholderName, token: "<a<b>", want: "a<b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.extract(tt.token); got != tt.want {
				t.Errorf("extract(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

// A token recognized as a long name loses exactly its two leading dashes.
func TestExtractLongName_StripsOnlyDashes(t *testing.T) {
	for _, token := range []string{"--a", "--name", "--VeryLongOptionName"} {
		if !IsLongNameToken(token) {
			t.Fatalf("expected %q to be a long name token", token)
		}
		if got := ExtractLongName(token); got != token[2:] {
			t.Errorf("ExtractLongName(%q) = %q, want %q", token, got, token[2:])
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		token string
		want  TokenKind
	}{
		{token: "<value>", want: TokenValue},
		{token: "[value]", want: TokenValue},
		{token: "--name", want: TokenLongName},
		{token: "-n", want: TokenShortName},
		{token: "--n@me", want: TokenUnknown},
		{token: "name", want: TokenUnknown},
		{token: "-", want: TokenUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := Classify(tt.token); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     []string
	}{
		{name: "empty", template: "", want: nil},
		{name: "only separators", template: " | || ", want: nil},
		{name: "single", template: "--name", want: []string{"--name"}},
		{name: "pipe with spaces", template: "-n | --name", want: []string{"-n", "--name"}},
		{name: "pipe without spaces", template: "-n|--name", want: []string{"-n", "--name"}},
		{name: "repeated separators", template: "  -n ||  --name   <Value> ", want: []string{"-n", "--name", "<Value>"}},
		{name: "tabs are not separators", template: "-n\t--name", want: []string{"-n\t--name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.template)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %q, want %q", tt.template, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Tokenize(%q)[%d] = %q, want %q", tt.template, i, got[i], tt.want[i])
				}
			}
		})
	}
}

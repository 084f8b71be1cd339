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
)

const (
	longPrefix  = "--"
	shortPrefix = "-"

	// placeholderCutset is trimmed from both ends of a value placeholder.
	placeholderCutset = "<>[]"
)

// TokenKind classifies a single template token.
type TokenKind string

const (
	// TokenValue is a <Name> or [Name] value placeholder.
	TokenValue TokenKind = "value"
	// TokenLongName is a --name token.
	TokenLongName TokenKind = "long"
	// TokenShortName is a -n token.
	TokenShortName TokenKind = "short"
	// TokenUnknown is any token the parser drops.
	TokenUnknown TokenKind = "unknown"
)

// String returns the string representation of the TokenKind.
func (k TokenKind) String() string {
	return string(k)
}

// Token is a classified piece of a template.
type Token struct {
	Text string    `json:"text" yaml:"text"`
	Kind TokenKind `json:"kind" yaml:"kind"`
}

// Tokenize splits a template on spaces and pipes, discarding the empty
// segments produced by consecutive separators.
func Tokenize(template string) []string {
	return strings.FieldsFunc(template, isSeparator)
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '|'
}

// Classify returns the kind of token. Value placeholders are checked first,
// then long names, then short names.
func Classify(token string) TokenKind {
	switch {
	case IsValuePlaceholderToken(token):
		return TokenValue
	case IsLongNameToken(token):
		return TokenLongName
	case IsShortNameToken(token):
		return TokenShortName
	default:
		return TokenUnknown
	}
}

// IsLongNameToken reports whether token is "--" followed by one or more
// ASCII letters.
func IsLongNameToken(token string) bool {
	return strings.HasPrefix(token, longPrefix) && isLetters(token[len(longPrefix):])
}

// IsShortNameToken reports whether token is "-" followed by exactly one
// ASCII letter.
func IsShortNameToken(token string) bool {
	return len(token) == 2 && strings.HasPrefix(token, shortPrefix) && isLetter(token[1])
}

// IsValuePlaceholderToken reports whether token is wrapped as <inner> or
// [inner] and the text left after trimming brackets is one or more ASCII
// letters.
func IsValuePlaceholderToken(token string) bool {
	required := strings.HasPrefix(token, "<") && strings.HasSuffix(token, ">")
	optional := strings.HasPrefix(token, "[") && strings.HasSuffix(token, "]")
	if !required && !optional {
		return false
	}
	return isLetters(strings.Trim(token, placeholderCutset))
}

// ExtractLongName strips the leading dashes from token. It does not check
// the shape of the token; use IsLongNameToken for that.
func ExtractLongName(token string) string {
	return strings.TrimLeft(token, shortPrefix)
}

// ExtractShortName strips the leading dash from token.
func ExtractShortName(token string) string {
	return strings.TrimLeft(token, shortPrefix)
}

// ExtractValuePlaceholderName strips the placeholder brackets from both ends
// of token.
func ExtractValuePlaceholderName(token string) string {
	return strings.Trim(token, placeholderCutset)
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

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
	"encoding/binary"
	"encoding/json"
	"slices"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

// Template is the immutable, parsed form of an option template.
// The zero value is the descriptor of the empty template.
type Template struct {
	raw        string
	longName   string
	shortName  string
	valueNames []string
}

// New creates a Template from already parsed parts. Most callers want Parse;
// New exists for building expected values and for decoders.
func New(raw, longName, shortName string, valueNames ...string) Template {
	return Template{
		raw:        raw,
		longName:   longName,
		shortName:  shortName,
		valueNames: slices.Clone(valueNames),
	}
}

// Raw returns the original template string, unmodified.
func (t Template) Raw() string {
	return t.raw
}

// LongName returns the long name without dashes, or "" if none was declared.
func (t Template) LongName() string {
	return t.longName
}

// ShortName returns the single-letter short name, or "" if none was declared.
func (t Template) ShortName() string {
	return t.shortName
}

// ValueNames returns the value placeholder names in declaration order.
// The returned slice is a copy and never nil.
func (t Template) ValueNames() []string {
	if len(t.valueNames) == 0 {
		return []string{}
	}
	return slices.Clone(t.valueNames)
}

// IsEmpty reports whether the template declared nothing usable.
func (t Template) IsEmpty() bool {
	return t.longName == "" && t.shortName == "" && len(t.valueNames) == 0
}

// Names returns the option switches the template declares, short form first,
// e.g. ["-n", "--name"].
func (t Template) Names() []string {
	names := make([]string, 0, 2)
	if t.shortName != "" {
		names = append(names, shortPrefix+t.shortName)
	}
	if t.longName != "" {
		names = append(names, longPrefix+t.longName)
	}
	return names
}

// String returns the raw template.
func (t Template) String() string {
	return t.raw
}

// Equal reports whether t and other have the same raw template, long name,
// short name and value names in the same order.
func (t Template) Equal(other Template) bool {
	return t.raw == other.raw &&
		t.longName == other.longName &&
		t.shortName == other.shortName &&
		slices.Equal(t.valueNames, other.valueNames)
}

// Hash returns a hash consistent with Equal: equal templates hash equally.
func (t Template) Hash() uint64 {
	d := xxhash.New()
	writeField(d, t.raw)
	writeField(d, t.longName)
	writeField(d, t.shortName)
	for _, v := range t.valueNames {
		writeField(d, v)
	}
	return d.Sum64()
}

// fields are length-prefixed so ("ab","c") and ("a","bc") hash differently.
func writeField(d *xxhash.Digest, s string) {
	var size [8]byte
	binary.LittleEndian.PutUint64(size[:], uint64(len(s)))
	_, _ = d.Write(size[:])
	_, _ = d.WriteString(s)
}

// Fields is the serializable view of a Template.
type Fields struct {
	Template   string   `json:"template" yaml:"template"`
	LongName   string   `json:"longName" yaml:"longName"`
	ShortName  string   `json:"shortName" yaml:"shortName"`
	ValueNames []string `json:"valueNames" yaml:"valueNames"`
}

// Fields returns the exported view of t.
func (t Template) Fields() Fields {
	return Fields{
		Template:   t.raw,
		LongName:   t.longName,
		ShortName:  t.shortName,
		ValueNames: t.ValueNames(),
	}
}

// MarshalJSON implements json.Marshaler.
func (t Template) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Fields())
}

// UnmarshalJSON implements json.Unmarshaler. Only the template string is
// trusted; the remaining fields are derived by parsing it again.
func (t *Template) UnmarshalJSON(data []byte) error {
	var f Fields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*t = Parse(f.Template)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t Template) MarshalYAML() (any, error) {
	return t.Fields(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same rules as UnmarshalJSON.
func (t *Template) UnmarshalYAML(node *yaml.Node) error {
	var f Fields
	if err := node.Decode(&f); err != nil {
		return err
	}
	*t = Parse(f.Template)
	return nil
}

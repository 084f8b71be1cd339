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

package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/cmdline/pkg/errors"
)

func TestKind_IsValid(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{kind: KindApplication, want: true},
		{kind: KindTemplateReport, want: true},
		{kind: KindValidationResult, want: true},
		{kind: "Recipe", want: false},
		{kind: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.IsValid())
		})
	}
}

func TestNew(t *testing.T) {
	h := New(
		WithKind(KindApplication),
		WithAPIVersion(APIVersion),
		WithMetadata("source", "git.yaml"),
	)

	assert.Equal(t, KindApplication, h.Kind)
	assert.Equal(t, APIVersion, h.APIVersion)
	assert.Equal(t, "git.yaml", h.Metadata["source"])
}

func TestWithMetadata_NilMap(t *testing.T) {
	h := &Header{}
	WithMetadata("k", "v")(h)
	assert.Equal(t, map[string]string{"k": "v"}, h.Metadata)
}

func TestInit(t *testing.T) {
	var h Header
	h.Init(KindValidationResult, APIVersion, "v1.0.0")

	assert.Equal(t, KindValidationResult, h.Kind)
	assert.Equal(t, "v1.0.0", h.Metadata["version"])
	assert.NotEmpty(t, h.Metadata["timestamp"])

	h.Init(KindTemplateReport, APIVersion, "")
	assert.NotContains(t, h.Metadata, "version")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		header  Header
		wantErr bool
	}{
		{name: "matching", header: Header{Kind: KindApplication, APIVersion: APIVersion}},
		{name: "empty version", header: Header{Kind: KindApplication}},
		{name: "wrong kind", header: Header{Kind: KindValidationResult, APIVersion: APIVersion}, wantErr: true},
		{name: "missing kind", header: Header{APIVersion: APIVersion}, wantErr: true},
		{name: "wrong version", header: Header{Kind: KindApplication, APIVersion: "v2"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.header.Validate(KindApplication)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
		})
	}
}

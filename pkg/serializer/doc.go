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

// Package serializer reads and writes cmdline resources in several formats.
//
// Supported output formats:
//   - JSON: Machine-readable structured data with indentation
//   - YAML: Human-readable, the default for declaration documents
//   - Table: Flattened FIELD/VALUE listing for terminals (write-only)
//
// # Writing
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, report); err != nil {
//	    return err
//	}
//
// # Reading
//
//	doc, err := serializer.FromFile[declare.Document]("git.yaml")
//
// The format is detected from the file extension (.json, .yaml, .yml).
//
// # HTTP
//
//	serializer.RespondJSON(w, http.StatusOK, report)
//
// Responses are encoded into a buffer first so an encoding failure never
// leaves a partial body behind.
package serializer

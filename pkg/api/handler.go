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

package api

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/cmdline/pkg/declare"
	"github.com/NVIDIA/cmdline/pkg/defaults"
	"github.com/NVIDIA/cmdline/pkg/errors"
	"github.com/NVIDIA/cmdline/pkg/serializer"
	"github.com/NVIDIA/cmdline/pkg/server"
	"github.com/NVIDIA/cmdline/pkg/template"
	"github.com/NVIDIA/cmdline/pkg/validator"
)

// BulkTemplateRequest is the body of POST /v1/templates. A null entry is an
// absent template and is rejected.
type BulkTemplateRequest struct {
	Templates []*string `json:"templates" yaml:"templates"`
	Strict    bool      `json:"strict,omitempty" yaml:"strict,omitempty"`
}

// BulkTemplateResponse lists one report per requested template, in order.
type BulkTemplateResponse struct {
	Count   int               `json:"count" yaml:"count"`
	Results []template.Report `json:"results" yaml:"results"`
}

// Handler serves the template and validation endpoints.
type Handler struct {
	maxBulk      int
	maxBodyBytes int64
	version      string
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithMaxBulk limits the number of templates in one bulk request.
func WithMaxBulk(n int) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxBulk = n
		}
	}
}

// WithMaxBodyBytes limits the size of request bodies.
func WithMaxBodyBytes(n int64) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// WithVersion sets the version recorded in validation results.
func WithVersion(version string) HandlerOption {
	return func(h *Handler) {
		h.version = version
	}
}

// NewHandler creates a Handler with the provided options.
func NewHandler(opts ...HandlerOption) *Handler {
	h := &Handler{
		maxBulk:      defaults.MaxBulkTemplates,
		maxBodyBytes: defaults.MaxRequestBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns the handler map for server.WithHandler.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/templates": h.HandleTemplates,
		"/v1/validate":  h.HandleValidate,
	}
}

// HandleTemplates parses one template from the query string (GET) or a
// list of templates from a JSON body (POST).
func (h *Handler) HandleTemplates(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.TemplateHandlerTimeout)
	defer cancel()

	switch r.Method {
	case http.MethodGet:
		h.handleGetTemplate(w, r)
	case http.MethodPost:
		h.handleBulkTemplates(ctx, w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{"GET", "POST"},
			})
	}
}

func (h *Handler) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	strict, err := parseBoolParam(query.Get("strict"))
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Invalid strict parameter", false, map[string]any{"error": err.Error()})
		return
	}

	var raw *string
	if values, ok := query["template"]; ok && len(values) > 0 {
		raw = &values[0]
	}

	report, err := parseReport(template.NewParser(template.WithStrict(strict)), raw)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to parse template", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, report)
}

func (h *Handler) handleBulkTemplates(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	reader, err := serializer.NewReader(serializer.FormatJSON, http.MaxBytesReader(w, r.Body, h.maxBodyBytes),
		serializer.WithStrictFields(true))
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to read request", nil)
		return
	}

	var req BulkTemplateRequest
	if err := reader.Deserialize(&req); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Invalid request body", false, map[string]any{"error": err.Error()})
		return
	}

	if len(req.Templates) == 0 {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"At least one template is required", false, nil)
		return
	}
	if len(req.Templates) > h.maxBulk {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Too many templates", false, map[string]any{
				"count": len(req.Templates),
				"max":   h.maxBulk,
			})
		return
	}

	results, err := parseAll(ctx, template.NewParser(template.WithStrict(req.Strict)), req.Templates)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to parse templates", nil)
		return
	}

	slog.Debug("bulk templates parsed", "count", len(results), "strict", req.Strict)

	serializer.RespondJSON(w, http.StatusOK, BulkTemplateResponse{
		Count:   len(results),
		Results: results,
	})
}

// parseAll parses every template concurrently. When several entries fail,
// the error of the lowest index is returned.
func parseAll(ctx context.Context, p *template.Parser, templates []*string) ([]template.Report, error) {
	results := make([]template.Report, len(templates))
	errs := make([]error, len(templates))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, raw := range templates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := parseReport(p, raw)
			if err != nil {
				errs[i] = indexed(i, err)
				return nil
			}
			results[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return nil, errors.Wrap(errors.ErrCodeTimeout, "template parsing timed out", err)
		}
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "template parsing canceled", err)
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// indexed prefixes err with the position of the failing template.
func indexed(i int, err error) error {
	var se *errors.StructuredError
	if !stderrors.As(err, &se) {
		return fmt.Errorf("templates[%d]: %w", i, err)
	}
	ctx := make(map[string]any, len(se.Context)+1)
	for k, v := range se.Context {
		ctx[k] = v
	}
	ctx["index"] = i
	return errors.NewWithContext(se.Code, fmt.Sprintf("templates[%d]: %s", i, se.Message), ctx)
}

// parseReport parses raw and records the outcome in the parse metrics.
func parseReport(p *template.Parser, raw *string) (template.Report, error) {
	mode := modePermissive
	if p.Strict() {
		mode = modeStrict
	}

	if _, err := p.ParseRef(raw); err != nil {
		templatesParsed.WithLabelValues(mode, string(errors.CodeOf(err))).Inc()
		return template.Report{}, err
	}

	report := p.Inspect(*raw)
	templatesParsed.WithLabelValues(mode, resultOK).Inc()
	tokensDropped.Add(float64(len(report.Dropped)))
	return report, nil
}

// HandleValidate decodes a declaration document from the body, builds it
// and returns the validation result.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.ValidateHandlerTimeout)
	defer cancel()

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{"POST"},
			})
		return
	}
	defer r.Body.Close()

	format := serializer.FormatFromContentType(r.Header.Get("Content-Type"))
	doc, err := declare.DecodeDocument(format, http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid declaration document", nil)
		return
	}

	app, err := doc.Build()
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid declaration", map[string]any{"element": err.Error()})
		return
	}

	result, err := validator.New(validator.WithVersion(h.version)).Validate(ctx, app)
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			err = errors.Wrap(errors.ErrCodeTimeout, "validation timed out", err)
		}
		server.WriteErrorFromErr(w, r, err, "Validation failed", nil)
		return
	}

	validations.WithLabelValues(string(result.Summary.Status)).Inc()
	serializer.RespondJSON(w, http.StatusOK, result)
}

func parseBoolParam(value string) (bool, error) {
	if value == "" {
		return false, nil
	}
	return strconv.ParseBool(value)
}

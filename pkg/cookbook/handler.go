// Copyright (c) 2025, The Cookbook Authors.  All rights reserved.
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

package cookbook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/devdonalds/cookbook/pkg/defaults"
	cberrors "github.com/devdonalds/cookbook/pkg/errors"
	"github.com/devdonalds/cookbook/pkg/serializer"
	"github.com/devdonalds/cookbook/pkg/server"
	"gopkg.in/yaml.v3"
)

// HandleEntry inserts the entry in a POST body (JSON, or YAML by
// Content-Type) and answers with an empty JSON object.
func (r *Registry) HandleEntry(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		methodNotAllowed(w, req, http.MethodPost)
		return
	}
	defer req.Body.Close()

	in, err := ParseEntryInput(req.Body, req.Header.Get("Content-Type"))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			server.WriteError(w, req, http.StatusRequestEntityTooLarge, cberrors.ErrCodePayloadTooLarge,
				"Request body too large", false, map[string]any{
					"limit": tooLarge.Limit,
				})
			return
		}
		writeFailure(w, req, cberrors.WrapWithContext(cberrors.ErrCodeInvalidRequest,
			KindInvalidInput.Message(), err, map[string]any{
				"kind": string(KindInvalidInput),
			}), "Failed to decode entry")
		return
	}

	if err := r.Insert(*in); err != nil {
		writeFailure(w, req, err, "Failed to insert entry")
		return
	}

	serializer.RespondJSON(w, http.StatusOK, struct{}{})
}

// HandleSummary resolves the recipe named by the name query parameter.
func (r *Registry) HandleSummary(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		methodNotAllowed(w, req, http.MethodGet)
		return
	}

	ctx, cancel := context.WithTimeout(req.Context(), defaults.SummaryHandlerTimeout)
	defer cancel()

	name := req.URL.Query().Get("name")
	if strings.TrimSpace(name) == "" {
		server.WriteError(w, req, http.StatusBadRequest, cberrors.ErrCodeInvalidRequest,
			"name query parameter is required", false, map[string]any{
				"kind": string(KindRootNotFound),
			})
		return
	}

	resolveCtx, resolveCancel := context.WithTimeout(ctx, defaults.SummaryResolveTimeout)
	defer resolveCancel()

	report, err := r.Resolve(resolveCtx, name)
	if err != nil {
		writeFailure(w, req, err, "Failed to summarize recipe")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	serializer.RespondJSON(w, http.StatusOK, report)
}

// ParseEntryInput decodes an entry body. YAML content types use YAML;
// everything else is JSON with numbers kept exact.
func ParseEntryInput(body io.Reader, contentType string) (*EntryInput, error) {
	if body == nil {
		return nil, fmt.Errorf("request body is empty")
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	var in EntryInput
	switch serializer.FormatFromContentType(contentType) {
	case serializer.FormatYAML:
		if err := yaml.Unmarshal(data, &in); err != nil {
			return nil, fmt.Errorf("failed to decode YAML body: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&in); err != nil {
			return nil, fmt.Errorf("failed to decode JSON body: %w", err)
		}
	}

	return &in, nil
}

// toStructured maps registry and resolution failures onto INVALID_REQUEST
// and context expiry onto TIMEOUT.
func toStructured(err error) error {
	var e *Error
	if errors.As(err, &e) {
		details := map[string]any{
			"kind": string(e.Kind),
		}
		if e.Name != "" {
			details["name"] = e.Name
		}
		if len(e.Path) > 0 {
			details["path"] = e.Path
		}
		if e.Detail != "" {
			details["detail"] = e.Detail
		}
		return cberrors.NewWithContext(cberrors.ErrCodeInvalidRequest, e.Kind.Message(), details)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return cberrors.Wrap(cberrors.ErrCodeTimeout, "resolution timed out", err)
	}

	return err
}

// writeFailure reports err to the client. Rejected input is routine and
// logged at debug; anything unclassified is logged as an error.
func writeFailure(w http.ResponseWriter, req *http.Request, err error, fallbackMessage string) {
	serr := toStructured(err)

	code := cberrors.CodeOf(serr)
	if code == cberrors.ErrCodeInternal {
		slog.Error("unexpected cookbook error", "path", req.URL.Path, "error", err)
	} else {
		slog.Debug("request rejected", "path", req.URL.Path, "code", code, "error", err)
	}

	server.WriteErrorFromErr(w, req, serr, fallbackMessage, nil)
}

func methodNotAllowed(w http.ResponseWriter, req *http.Request, allowed string) {
	w.Header().Set("Allow", allowed)
	server.WriteError(w, req, http.StatusMethodNotAllowed, cberrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  req.Method,
			"allowed": []string{allowed},
		})
}

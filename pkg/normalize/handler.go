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

package normalize

import (
	"encoding/json"
	"log/slog"
	"net/http"

	cberrors "github.com/devdonalds/cookbook/pkg/errors"
	"github.com/devdonalds/cookbook/pkg/serializer"
	"github.com/devdonalds/cookbook/pkg/server"
)

// ParseRequest is the body accepted by HandleParse.
type ParseRequest struct {
	Input string `json:"input"`
}

// ParseResponse carries the normalized name.
type ParseResponse struct {
	Msg string `json:"msg"`
}

// HandleParse normalizes the input field of a JSON body.
func HandleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, cberrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodPost},
			})
		return
	}
	defer r.Body.Close()

	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, cberrors.ErrCodeInvalidRequest,
			"Invalid request body", false, map[string]any{
				"error": err.Error(),
			})
		return
	}

	parsed, err := Normalize(req.Input)
	if err != nil {
		slog.Debug("name rejected", "input", req.Input)
		server.WriteError(w, r, http.StatusBadRequest, cberrors.ErrCodeInvalidRequest,
			"this string is cooked", false, map[string]any{
				"input": req.Input,
			})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ParseResponse{Msg: parsed})
}

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

package server

import (
	"errors"
	"net/http"
	"time"

	cberrors "github.com/devdonalds/cookbook/pkg/errors"
	"github.com/devdonalds/cookbook/pkg/serializer"
	"github.com/google/uuid"
)

// HTTPStatusFromCode maps an error code to its HTTP status.
func HTTPStatusFromCode(code cberrors.ErrorCode) int {
	switch code {
	case cberrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case cberrors.ErrCodeNotFound:
		return http.StatusNotFound
	case cberrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case cberrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case cberrors.ErrCodePayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case cberrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case cberrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case cberrors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code cberrors.ErrorCode) bool {
	switch code {
	case cberrors.ErrCodeTimeout, cberrors.ErrCodeUnavailable,
		cberrors.ErrCodeRateLimitExceeded, cberrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails combines two detail maps; keys in b win.
// Returns nil when both are empty so the field is omitted.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// WriteError writes an ErrorResponse with the request's ID.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code cberrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes err as an ErrorResponse. A StructuredError in the
// chain decides status, code and message; anything else is an internal error
// reported with fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, extraDetails map[string]any) {

	var se *cberrors.StructuredError
	if errors.As(err, &se) {
		details := mergeDetails(se.Context, extraDetails)
		if se.Cause != nil {
			if details == nil {
				details = make(map[string]any, 1)
			}
			details["error"] = se.Cause.Error()
		}
		WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message,
			retryableFromCode(se.Code), details)
		return
	}

	details := mergeDetails(extraDetails, map[string]any{"error": err.Error()})
	WriteError(w, r, http.StatusInternalServerError, cberrors.ErrCodeInternal,
		fallbackMessage, true, details)
}

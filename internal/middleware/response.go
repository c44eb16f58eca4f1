// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package middleware provides the HTTP middleware chain of the gateway.
package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/econsultation/econsultation-service/pkg/constants"
)

// errorBody is the error envelope shared with the backend API
type errorBody struct {
	Message string `json:"message"`
}

// WriteError writes an error envelope with the given status
func WriteError(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", constants.ContentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorBody{Message: message}); err != nil {
		slog.DebugContext(r.Context(), "failed to write error response", "error", err)
	}
}

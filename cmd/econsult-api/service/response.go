// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/econsultation/econsultation-service/internal/middleware"
	"github.com/econsultation/econsultation-service/pkg/constants"
	"github.com/econsultation/econsultation-service/pkg/errors"
)

// envelope mirrors the backend's success envelope
type envelope struct {
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// listEnvelope carries a page of results
type listEnvelope struct {
	Data        any `json:"data"`
	Total       int `json:"total"`
	CurrentPage int `json:"current_page,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", constants.ContentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.DebugContext(r.Context(), "failed to write response", "error", err)
	}
}

func writeData(w http.ResponseWriter, r *http.Request, status int, data any, message string) {
	writeJSON(w, r, status, envelope{Data: data, Message: message})
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := wrapError(r.Context(), err)
	middleware.WriteError(w, r, status, message)
}

// decodeBody decodes a JSON request body into payload
func decodeBody(r *http.Request, payload any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		if stderrors.Is(err, io.EOF) {
			return errors.NewValidation("request body is required")
		}
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return errors.NewPayloadTooLarge(fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit), err)
		}
		return errors.NewValidation("invalid request body", err)
	}
	return nil
}

// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"log/slog"
	"net/http"
	"sort"

	"github.com/econsultation/econsultation-service/internal/middleware"
)

func (a *API) livez(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK\n"))
}

func (a *API) readyz(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(a.readiness))
	for name := range a.readiness {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := a.readiness[name](r.Context()); err != nil {
			slog.WarnContext(r.Context(), "service not ready", "dependency", name, "error", err)
			middleware.WriteError(w, r, http.StatusServiceUnavailable, name+" is not ready")
			return
		}
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK\n"))
}

// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/internal/domain/port"
	"github.com/econsultation/econsultation-service/pkg/constants"
	"github.com/econsultation/econsultation-service/pkg/log"
)

// AuthenticationMiddleware resolves the bearer token into a principal and
// stores it on the request context. Paths in public skip authentication.
func AuthenticationMiddleware(authenticator port.Authenticator, public ...string) func(http.Handler) http.Handler {
	skip := make(map[string]struct{}, len(public))
	for _, p := range public {
		skip[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skip[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r)
			principal, err := authenticator.ParsePrincipal(r.Context(), token)
			if err != nil {
				slog.DebugContext(r.Context(), "request not authenticated", "error", err)
				WriteError(w, r, http.StatusUnauthorized, "authentication required")
				return
			}
			if principal.Token == "" {
				principal.Token = token
			}

			ctx := model.ContextWithPrincipal(r.Context(), principal)
			ctx = log.AppendCtx(ctx, slog.String("user_id", principal.UserID))
			ctx = log.AppendCtx(ctx, slog.String("role", string(principal.EffectiveRole())))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken returns the token of an "Authorization: Bearer" header, or ""
func bearerToken(r *http.Request) string {
	header := r.Header.Get(constants.AuthorizationHeader)
	if len(header) < len(constants.BearerPrefix) || !strings.EqualFold(header[:len(constants.BearerPrefix)], constants.BearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(constants.BearerPrefix):])
}

// RequireCapability refuses requests whose principal lacks the capability.
// The policy is evaluated once, here, for every protected route.
func RequireCapability(capability model.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := model.PrincipalFromContext(r.Context())
			if !ok {
				WriteError(w, r, http.StatusUnauthorized, "authentication required")
				return
			}
			if !principal.Can(capability) {
				slog.InfoContext(r.Context(), "capability denied",
					"capability", capability,
					"role", principal.EffectiveRole(),
				)
				WriteError(w, r, http.StatusForbidden, "this action is not permitted for your role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

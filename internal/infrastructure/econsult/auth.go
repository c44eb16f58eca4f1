// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package econsult

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/econsultation/econsultation-service/pkg/constants"
	"github.com/econsultation/econsultation-service/pkg/errors"
)

// bearerRoundTripper injects the Authorization header. The caller's own
// token, when present on the request context, always wins; otherwise the
// configured token source is used.
type bearerRoundTripper struct {
	source oauth2.TokenSource
}

// RoundTrip implements httpclient.RoundTripper
func (rt *bearerRoundTripper) RoundTrip(req *http.Request, next func(*http.Request) (*http.Response, error)) (*http.Response, error) {
	ctx := req.Context()

	if token, ok := ctx.Value(constants.AuthorizationContextID).(string); ok && token != "" {
		req.Header.Set(constants.AuthorizationHeader, constants.BearerPrefix+token)
		return next(req)
	}

	if rt.source == nil {
		slog.DebugContext(ctx, "no bearer token available for backend request", "path", req.URL.Path)
		return next(req)
	}

	tok, err := rt.source.Token()
	if err != nil {
		return nil, errors.NewUnauthorized("failed to obtain backend token", err)
	}
	tok.SetAuthHeader(req)
	return next(req)
}

// newTokenSource picks the service-to-service token source: OAuth client
// credentials when configured, else a static token, else none.
func newTokenSource(ctx context.Context, cfg Config) oauth2.TokenSource {
	if cfg.OAuthTokenURL != "" {
		cc := clientcredentials.Config{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			TokenURL:     cfg.OAuthTokenURL,
			Scopes:       cfg.OAuthScopes,
		}
		slog.InfoContext(ctx, "backend client using OAuth client credentials", "token_url", cfg.OAuthTokenURL)
		return cc.TokenSource(context.WithoutCancel(ctx))
	}

	if cfg.StaticToken != "" {
		return &staticTokenSource{token: &oauth2.Token{
			AccessToken: cfg.StaticToken,
			TokenType:   "Bearer",
			Expiry:      parseTokenExpiry(cfg.StaticToken),
		}}
	}

	return nil
}

// staticTokenSource serves a fixed token until it expires
type staticTokenSource struct {
	token *oauth2.Token
}

// Token implements oauth2.TokenSource
func (s *staticTokenSource) Token() (*oauth2.Token, error) {
	if !s.token.Valid() {
		return nil, fmt.Errorf("static backend token expired at %s", s.token.Expiry.Format(time.RFC3339))
	}
	return s.token, nil
}

// parseTokenExpiry reads the exp claim without verifying the signature; the
// backend verifies it. Opaque or exp-less tokens never expire locally.
func parseTokenExpiry(token string) time.Time {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}

	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}

	return exp.Time
}

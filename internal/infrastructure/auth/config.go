// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package auth turns bearer tokens into principals, either with a shared
// HMAC secret or against a JWKS endpoint.
package auth

import (
	"os"
	"time"
)

// JWTAuthConfig holds the token validation settings
type JWTAuthConfig struct {
	// Secret validates HS256 tokens issued by the backend
	Secret string

	// JWKSURL is the key set used for RS256 tokens
	JWKSURL string

	// Issuer is the expected iss claim; required with JWKSURL
	Issuer string

	// Audience is the expected aud claim, if any
	Audience string

	// CacheTTL is how long fetched keys are reused
	CacheTTL time.Duration

	// ClockSkew tolerated on exp and nbf
	ClockSkew time.Duration
}

// NewJWTAuthConfigFromEnv creates a JWTAuthConfig from environment variables
func NewJWTAuthConfigFromEnv() JWTAuthConfig {
	config := JWTAuthConfig{
		Secret:    os.Getenv("JWT_SECRET"),
		JWKSURL:   os.Getenv("JWKS_URL"),
		Issuer:    os.Getenv("JWT_ISSUER"),
		Audience:  os.Getenv("AUDIENCE"),
		CacheTTL:  5 * time.Minute,
		ClockSkew: time.Minute,
	}
	if ttl, err := time.ParseDuration(os.Getenv("JWKS_CACHE_TTL")); err == nil && ttl > 0 {
		config.CacheTTL = ttl
	}
	return config
}

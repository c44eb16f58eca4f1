// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package constants

// ContextKey is the unified type for all context keys to prevent type mismatches
type ContextKey string

// Context keys for various middleware and service contexts
const (
	// PrincipalContextID is the context key for the authenticated principal
	PrincipalContextID ContextKey = "principal"

	// AuthorizationContextID is the context key for the raw bearer token
	AuthorizationContextID ContextKey = "authorization"

	// RequestIDContextKey is the context key for request ID
	RequestIDContextKey ContextKey = "request-id"
)

// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package constants

// AuthorizationHeader is the header name for the authorization
const AuthorizationHeader = "Authorization"

// BearerPrefix precedes the token in the Authorization header
const BearerPrefix = "Bearer "

// ContentTypeJSON is the media type of every request and response body
const ContentTypeJSON = "application/json"

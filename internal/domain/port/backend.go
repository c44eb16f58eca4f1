// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package port

import "context"

// Backend is everything the e-consultation REST API offers. Both the HTTP
// client and the in-memory mock implement it.
type Backend interface {
	DirectoryReader
	DirectoryWriter
	DraftReader
	DraftWriter
	CommentRequestReader
	CommentRequestWriter
	AssignmentReader
	AssignmentWriter
	ReflectionReader
	ReflectionWriter
	// IsReady reports whether the backend can serve requests
	IsReady(ctx context.Context) error
}

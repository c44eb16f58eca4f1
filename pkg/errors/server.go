// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package errors

import "errors"

// Unexpected represents an unexpected error in the application.
type Unexpected struct {
	base
}

// Error returns the error message for Unexpected.
func (u Unexpected) Error() string {
	return u.error()
}

// Unwrap returns the wrapped error, if any.
func (u Unexpected) Unwrap() error {
	return u.err
}

// NewUnexpected creates a new Unexpected error with the provided message.
func NewUnexpected(message string, err ...error) Unexpected {
	return Unexpected{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}

// ServiceUnavailable represents a service unavailability error in the application.
type ServiceUnavailable struct {
	base
}

// Error returns the error message for ServiceUnavailable.
func (su ServiceUnavailable) Error() string {
	return su.error()
}

// Unwrap returns the wrapped error, if any.
func (su ServiceUnavailable) Unwrap() error {
	return su.err
}

// NewServiceUnavailable creates a new ServiceUnavailable error with the provided message.
func NewServiceUnavailable(message string, err ...error) ServiceUnavailable {
	return ServiceUnavailable{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}

// Remote represents a failed call to the e-consultation backend.
// Non-2xx responses carry the backend status code and the message from the
// error envelope. Network failures carry StatusCode 0 and are otherwise
// handled exactly like HTTP failures.
type Remote struct {
	base
	StatusCode int
}

// Error returns the backend's message for HTTP failures, and the message
// with its cause for network failures.
func (r Remote) Error() string {
	if r.StatusCode != 0 {
		return r.message
	}
	return r.error()
}

// Unwrap returns the wrapped error, if any.
func (r Remote) Unwrap() error {
	return r.err
}

// Network reports whether the call failed before any response was received.
func (r Remote) Network() bool {
	return r.StatusCode == 0
}

// NewRemote creates a new Remote error for a backend response with the given status.
func NewRemote(statusCode int, message string, err ...error) Remote {
	return Remote{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
		StatusCode: statusCode,
	}
}

// NewNetwork creates a Remote error for a call that never reached the backend.
func NewNetwork(message string, err ...error) Remote {
	return NewRemote(0, message, err...)
}

// IsRemote reports whether err (or anything it wraps) is a Remote error.
func IsRemote(err error) bool {
	var remote Remote
	return errors.As(err, &remote)
}

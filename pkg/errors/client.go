// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package errors

import "errors"

// Validation represents a validation error in the application.
type Validation struct {
	base
}

// Error returns the error message for Validation.
func (v Validation) Error() string {
	return v.error()
}

// NewValidation creates a new Validation error with the provided message.
func NewValidation(message string, err ...error) Validation {
	return Validation{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}

// PayloadTooLarge reports a request body over the accepted size.
type PayloadTooLarge struct {
	base
}

// Error returns the error message for PayloadTooLarge.
func (p PayloadTooLarge) Error() string {
	return p.error()
}

// NewPayloadTooLarge creates a new PayloadTooLarge error with the provided message.
func NewPayloadTooLarge(message string, err ...error) PayloadTooLarge {
	return PayloadTooLarge{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}

// NotFound represents a not found error in the application.
type NotFound struct {
	base
}

// Error returns the error message for NotFound.
func (v NotFound) Error() string {
	return v.error()
}

// NewNotFound creates a new NotFound error with the provided message.
func NewNotFound(message string, err ...error) NotFound {
	return NotFound{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}

// Conflict represents a conflict error in the application.
type Conflict struct {
	base
}

// Error returns the error message for Conflict.
func (c Conflict) Error() string {
	return c.error()
}

// NewConflict creates a new Conflict error with the provided message.
func NewConflict(message string, err ...error) Conflict {
	return Conflict{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}

// Unauthorized represents a missing or invalid credential.
type Unauthorized struct {
	base
}

// Error returns the error message for Unauthorized.
func (u Unauthorized) Error() string {
	return u.error()
}

// NewUnauthorized creates a new Unauthorized error with the provided message.
func NewUnauthorized(message string, err ...error) Unauthorized {
	return Unauthorized{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}

// Forbidden represents an authenticated caller acting outside its role.
type Forbidden struct {
	base
}

// Error returns the error message for Forbidden.
func (f Forbidden) Error() string {
	return f.error()
}

// NewForbidden creates a new Forbidden error with the provided message.
func NewForbidden(message string, err ...error) Forbidden {
	return Forbidden{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}

// InvalidState represents a workflow transition that the current state does not allow,
// e.g. accepting a comment request that was already rejected.
type InvalidState struct {
	base
}

// Error returns the error message for InvalidState.
func (i InvalidState) Error() string {
	return i.error()
}

// NewInvalidState creates a new InvalidState error with the provided message.
func NewInvalidState(message string, err ...error) InvalidState {
	return InvalidState{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}

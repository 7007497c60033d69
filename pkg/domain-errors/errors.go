// Package domainerrors provides coded errors shared by services and the HTTP
// transport. Services attach a Code describing the failure class; the
// transport layer alone decides how a code maps to a status line.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a domain failure. Codes are stable identifiers and appear
// verbatim in JSON error envelopes.
type Code string

const (
	// CodeValidation marks a single field failing its own validation rule.
	CodeValidation Code = "validation_error"
	// CodeBadRequest marks a malformed or unparseable request.
	CodeBadRequest Code = "bad_request"
	// CodeAgeRestricted marks a business-rule rejection of an underage user.
	// Distinct from CodeValidation: the submitted date itself was well formed.
	CodeAgeRestricted Code = "age_restricted"
	// CodeConflict marks a uniqueness violation at registration time.
	CodeConflict Code = "conflict"
	// CodeNotFound marks a lookup miss, including the payor-not-matched case.
	CodeNotFound Code = "not_found"
	// CodeInvariantViolation marks a broken model invariant at construction.
	CodeInvariantViolation Code = "invariant_violation"
	// CodeInternal marks unexpected infrastructure failures.
	CodeInternal Code = "internal_error"
)

// Error is a domain error with a classification code. It implements the
// standard error interface and supports errors.As/Is chains via Unwrap.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a domain error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap annotates err with a code and message while keeping it unwrappable.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for errors
// that did not originate in the domain.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps a domain code to an HTTP status. Unknown codes fall
// through to 500 so new codes fail closed.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeValidation, CodeBadRequest, CodeInvariantViolation:
		return http.StatusBadRequest
	case CodeAgeRestricted:
		return http.StatusForbidden
	case CodeConflict:
		return http.StatusConflict
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

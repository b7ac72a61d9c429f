// Package domainerrors defines the closed error taxonomy shared by the score
// core and its transport boundary. Every failure a caller can observe carries
// exactly one Code; the HTTP layer translates codes to status codes without
// inspecting anything else.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a failure class.
type Code string

const (
	// CodeValidation means the caller supplied bad, missing, or out-of-range
	// input. Recoverable by correcting the request.
	CodeValidation Code = "validation_error"

	// CodeNotFound means the caller asked for a score id that is not
	// registered. A client or configuration mistake, not a data problem.
	CodeNotFound Code = "not_found"

	// CodeInternal covers everything else: a calculator defect, a broken
	// output contract, an unexpected panic. Not caller-recoverable.
	CodeInternal Code = "internal_error"

	// CodeBadRequest is used only by the transport layer for requests that
	// never reach the core (malformed JSON bodies, wrong content type).
	CodeBadRequest Code = "bad_request"
)

// Error is the error value propagated from the point of failure to the
// boundary unchanged. Details hold structured diagnostics (offending fields,
// received values, wrapped failures) and are never shown for internal errors.
type Error struct {
	Code    Code
	Message string
	Details map[string]any
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New constructs an Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf constructs an Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error, preserving it for
// server-side diagnostics via Unwrap.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// WithDetails returns the same error with structured details attached.
func (e *Error) WithDetails(details map[string]any) *Error {
	e.Details = details
	return e
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
// that did not originate from this package. The conservative default keeps
// unclassified failures from masquerading as caller mistakes.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// DetailsOf extracts structured details from err, or nil.
func DetailsOf(err error) map[string]any {
	var de *Error
	if errors.As(err, &de) {
		return de.Details
	}
	return nil
}

// ToHTTPStatus maps an error code to the HTTP status the boundary renders.
// Unknown ids map to 404 as the service has always done; the core itself is
// transport-agnostic.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeValidation:
		return http.StatusUnprocessableEntity
	case CodeNotFound:
		return http.StatusNotFound
	case CodeBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

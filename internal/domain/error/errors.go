// Package error defines domain-specific errors for the Hub Manager application.
package error

import "errors"

// Kind classifies a domain error. Controllers translate the kind into an HTTP status.
type Kind string

const (
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindInvalidInput Kind = "invalid_input"
	KindInvalidDate  Kind = "invalid_date"
)

// ErrorCode is a stable machine readable code.
// Format: AREA-XXYYYY where XX is category and YYYY is specific error.
type ErrorCode string

// DomainError represents a classified domain error with code and message.
type DomainError struct {
	Kind    Kind
	Code    ErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// New creates a new DomainError.
func New(kind Kind, code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NotFound creates a DomainError of KindNotFound.
func NotFound(code ErrorCode, message string, err error) *DomainError {
	return New(KindNotFound, code, message, err)
}

// Conflict creates a DomainError of KindConflict.
func Conflict(code ErrorCode, message string, err error) *DomainError {
	return New(KindConflict, code, message, err)
}

// InvalidInput creates a DomainError of KindInvalidInput.
func InvalidInput(code ErrorCode, message string, err error) *DomainError {
	return New(KindInvalidInput, code, message, err)
}

// As extracts the DomainError from an error chain.
func As(err error) (*DomainError, bool) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}

// IsKind reports whether err carries a DomainError of the given kind.
func IsKind(err error, kind Kind) bool {
	domainErr, ok := As(err)
	return ok && domainErr.Kind == kind
}

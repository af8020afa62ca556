package error

import "errors"

var (
	// ErrEmailQueueFailed is returned when an email cannot be written to the outbox.
	ErrEmailQueueFailed = errors.New("failed to queue email")

	// ErrInvalidTemplate is returned for a job naming a template that does not exist.
	ErrInvalidTemplate = errors.New("invalid email template")
)

const (
	ErrCodeEmailQueueFailed ErrorCode = "EMAIL-010001"

	ErrCodePermanentEmailFailure ErrorCode = "EMAIL-020002"
	ErrCodeTemporaryEmailFailure ErrorCode = "EMAIL-020003"

	ErrCodeInvalidTemplate ErrorCode = "EMAIL-030001"
)

// KindEmail classifies failures of the outgoing mail pipeline. They never reach HTTP clients.
const KindEmail Kind = "email"

// NewEmailError creates a KindEmail error.
func NewEmailError(code ErrorCode, message string, err error) *DomainError {
	return New(KindEmail, code, message, err)
}

// IsPermanentEmailFailure reports whether a send failure should not be retried.
func IsPermanentEmailFailure(err error) bool {
	domainErr, ok := As(err)
	return ok && domainErr.Code == ErrCodePermanentEmailFailure
}

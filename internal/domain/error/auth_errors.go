package error

import "errors"

// Authentication domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register with an existing email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login credentials are invalid.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotApproved is returned when a registered user has not been approved yet.
	ErrUserNotApproved = errors.New("user pending approval")

	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")

	// ErrWeakPassword is returned when the provided password does not meet requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrAdminRequired is returned when a non admin calls an admin operation.
	ErrAdminRequired = errors.New("admin access required")
)

const (
	// Registration errors (01XXXX)
	ErrCodeEmailExists   ErrorCode = "AUTH-010001"
	ErrCodeWeakPassword  ErrorCode = "AUTH-010003"
	ErrCodeMissingFields ErrorCode = "AUTH-010005"

	// Login errors (02XXXX)
	ErrCodeInvalidCredentials ErrorCode = "AUTH-020001"
	ErrCodeUserNotFound       ErrorCode = "AUTH-020002"
	ErrCodeRateLimited        ErrorCode = "AUTH-020003"
	ErrCodeUserNotApproved    ErrorCode = "AUTH-020004"

	// Token errors (03XXXX)
	ErrCodeInvalidToken ErrorCode = "AUTH-030001"
	ErrCodeExpiredToken ErrorCode = "AUTH-030002"
	ErrCodeMissingToken ErrorCode = "AUTH-030003"

	// Role errors (04XXXX)
	ErrCodeAdminRequired ErrorCode = "AUTH-040001"
	ErrCodeSelfDelete    ErrorCode = "AUTH-040002"
)

// NewUnauthorizedError creates a KindUnauthorized error.
func NewUnauthorizedError(code ErrorCode, message string, err error) *DomainError {
	return New(KindUnauthorized, code, message, err)
}

// NewForbiddenError creates a KindForbidden error.
func NewForbiddenError(code ErrorCode, message string, err error) *DomainError {
	return New(KindForbidden, code, message, err)
}

// NewUserNotFoundError wraps ErrUserNotFound.
func NewUserNotFoundError() *DomainError {
	return NotFound(ErrCodeUserNotFound, "User not found", ErrUserNotFound)
}

package error

import "errors"

// Holiday and time restriction domain errors.
var (
	// ErrHolidayNotFound is returned when a custom holiday is not found.
	ErrHolidayNotFound = errors.New("holiday not found")

	// ErrHolidayDateExists is returned when the hub already has a custom holiday on that date.
	ErrHolidayDateExists = errors.New("a holiday already exists on this date")

	// ErrPresetHolidayImmutable is returned when deleting a preset holiday.
	ErrPresetHolidayImmutable = errors.New("preset holidays cannot be deleted")

	// ErrInvalidHolidayType is returned for an unknown holiday type.
	ErrInvalidHolidayType = errors.New("invalid holiday type")

	// ErrTimeRestrictionNotFound is returned when a time restriction is not found.
	ErrTimeRestrictionNotFound = errors.New("time restriction not found")

	// ErrInvalidAplicaA is returned for an unknown aplica_a value.
	ErrInvalidAplicaA = errors.New("invalid aplica_a value")
)

const (
	// Holiday errors (01XXXX)
	ErrCodeHolidayNotFound        ErrorCode = "CAL-010001"
	ErrCodeHolidayDateExists      ErrorCode = "CAL-010002"
	ErrCodePresetHolidayImmutable ErrorCode = "CAL-010003"
	ErrCodeInvalidHolidayType     ErrorCode = "CAL-010004"
	ErrCodeMissingHolidayName     ErrorCode = "CAL-010005"

	// Time restriction errors (02XXXX)
	ErrCodeTimeRestrictionNotFound ErrorCode = "CAL-020001"
	ErrCodeInvalidAplicaA          ErrorCode = "CAL-020002"
	ErrCodeMissingZona             ErrorCode = "CAL-020003"
)

// NewHolidayNotFoundError wraps ErrHolidayNotFound.
func NewHolidayNotFoundError() *DomainError {
	return NotFound(ErrCodeHolidayNotFound, "Holiday not found", ErrHolidayNotFound)
}

// NewTimeRestrictionNotFoundError wraps ErrTimeRestrictionNotFound.
func NewTimeRestrictionNotFoundError() *DomainError {
	return NotFound(ErrCodeTimeRestrictionNotFound, "Time restriction not found", ErrTimeRestrictionNotFound)
}

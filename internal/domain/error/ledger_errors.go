package error

import "errors"

// Dated entry domain errors.
var (
	// ErrInvalidMonth is returned when a month is outside 1-12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidDateFormat is returned when a date is not YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("date must use the YYYY-MM-DD format")

	// ErrInvalidAttendanceStatus is returned for an empty attendance status.
	ErrInvalidAttendanceStatus = errors.New("invalid attendance status")

	// ErrLiquidationNotFound is returned when a liquidation entry is not found.
	ErrLiquidationNotFound = errors.New("liquidation not found")

	// ErrKilosLitrosNotFound is returned when a kilos/litros entry is not found.
	ErrKilosLitrosNotFound = errors.New("kilos/litros entry not found")

	// ErrNegativeMeasure is returned when a measure that must be positive is negative.
	ErrNegativeMeasure = errors.New("measures cannot be negative")
)

const (
	// Date errors (01XXXX)
	ErrCodeInvalidMonth      ErrorCode = "LEDGER-010001"
	ErrCodeInvalidDateFormat ErrorCode = "LEDGER-010002"
	ErrCodeInvalidYear       ErrorCode = "LEDGER-010003"

	// Attendance errors (02XXXX)
	ErrCodeInvalidAttendanceStatus ErrorCode = "LEDGER-020001"

	// Liquidation errors (03XXXX)
	ErrCodeLiquidationNotFound ErrorCode = "LEDGER-030001"

	// Kilos/litros errors (04XXXX)
	ErrCodeKilosLitrosNotFound ErrorCode = "LEDGER-040001"
	ErrCodeNegativeMeasure     ErrorCode = "LEDGER-040002"
)

// NewInvalidMonthError wraps ErrInvalidMonth with KindInvalidDate.
func NewInvalidMonthError() *DomainError {
	return New(KindInvalidDate, ErrCodeInvalidMonth, "Month must be between 1 and 12", ErrInvalidMonth)
}

// NewInvalidDateFormatError wraps ErrInvalidDateFormat with KindInvalidDate.
func NewInvalidDateFormatError(value string) *DomainError {
	return New(KindInvalidDate, ErrCodeInvalidDateFormat, "Invalid date "+value+", expected YYYY-MM-DD", ErrInvalidDateFormat)
}

// NewLiquidationNotFoundError wraps ErrLiquidationNotFound.
func NewLiquidationNotFoundError() *DomainError {
	return NotFound(ErrCodeLiquidationNotFound, "Liquidation not found", ErrLiquidationNotFound)
}

// NewKilosLitrosNotFoundError wraps ErrKilosLitrosNotFound.
func NewKilosLitrosNotFoundError() *DomainError {
	return NotFound(ErrCodeKilosLitrosNotFound, "Kilos/litros entry not found", ErrKilosLitrosNotFound)
}

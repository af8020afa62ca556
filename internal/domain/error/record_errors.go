package error

import "errors"

// Purchase, contact and generic record domain errors.
var (
	ErrPurchaseNotFound = errors.New("purchase not found")
	ErrContactNotFound  = errors.New("contact not found")
	ErrRecordNotFound   = errors.New("record not found")

	// ErrInvalidCategory is returned when a record category is not in the catalog.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrEmptyUpload is returned when an uploaded file has no content.
	ErrEmptyUpload = errors.New("uploaded file is empty")

	// ErrInvalidQuantity is returned for a negative purchase quantity or price.
	ErrInvalidQuantity = errors.New("price and quantity cannot be negative")
)

const (
	ErrCodePurchaseNotFound ErrorCode = "REC-010001"
	ErrCodeInvalidQuantity  ErrorCode = "REC-010002"
	ErrCodeMissingItem      ErrorCode = "REC-010003"

	ErrCodeContactNotFound ErrorCode = "REC-020001"
	ErrCodeMissingContact  ErrorCode = "REC-020002"

	ErrCodeRecordNotFound     ErrorCode = "REC-030001"
	ErrCodeInvalidCategory    ErrorCode = "REC-030002"
	ErrCodeEmptyUpload        ErrorCode = "REC-030003"
	ErrCodeMissingRecordTitle ErrorCode = "REC-030004"
)

// NewPurchaseNotFoundError wraps ErrPurchaseNotFound.
func NewPurchaseNotFoundError() *DomainError {
	return NotFound(ErrCodePurchaseNotFound, "Purchase not found", ErrPurchaseNotFound)
}

// NewContactNotFoundError wraps ErrContactNotFound.
func NewContactNotFoundError() *DomainError {
	return NotFound(ErrCodeContactNotFound, "Contact not found", ErrContactNotFound)
}

// NewRecordNotFoundError wraps ErrRecordNotFound.
func NewRecordNotFoundError() *DomainError {
	return NotFound(ErrCodeRecordNotFound, "Record not found", ErrRecordNotFound)
}

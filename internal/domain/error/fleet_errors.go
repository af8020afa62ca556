package error

import (
	"errors"
	"fmt"
)

// Fleet domain errors.
var (
	// ErrVehicleNotFound is returned when a vehicle is not found within the hub.
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrPlateExists is returned when a vehicle plate is already registered.
	ErrPlateExists = errors.New("plate already exists")

	// ErrInvalidVehicleType is returned when the vehicle type is not in the catalog.
	ErrInvalidVehicleType = errors.New("invalid vehicle type")

	// ErrIncidentNotFound is returned when an incident is not found within the hub.
	ErrIncidentNotFound = errors.New("incident not found")

	// ErrMalformedDate is the sentinel wrapped by DateParseError.
	ErrMalformedDate = errors.New("malformed date")
)

const (
	// Vehicle errors (01XXXX)
	ErrCodeVehicleNotFound    ErrorCode = "FLEET-010001"
	ErrCodePlateExists        ErrorCode = "FLEET-010002"
	ErrCodeInvalidVehicleType ErrorCode = "FLEET-010003"
	ErrCodeMissingPlate       ErrorCode = "FLEET-010004"

	// Incident errors (02XXXX)
	ErrCodeIncidentNotFound ErrorCode = "FLEET-020001"
	ErrCodeIncidentDate     ErrorCode = "FLEET-020002"
	ErrCodeMissingTitle     ErrorCode = "FLEET-020003"
	ErrCodeNegativeIncident ErrorCode = "FLEET-020004"
)

// DateParseError reports an incident date that matches none of the accepted layouts.
type DateParseError struct {
	RecordID string
	Value    string
}

// Error implements the error interface.
func (e *DateParseError) Error() string {
	if e.RecordID == "" {
		return fmt.Sprintf("cannot parse date %q", e.Value)
	}
	return fmt.Sprintf("cannot parse date %q of record %s", e.Value, e.RecordID)
}

// Unwrap returns ErrMalformedDate so callers can use errors.Is.
func (e *DateParseError) Unwrap() error {
	return ErrMalformedDate
}

// NewVehicleNotFoundError wraps ErrVehicleNotFound.
func NewVehicleNotFoundError() *DomainError {
	return NotFound(ErrCodeVehicleNotFound, "Vehicle not found", ErrVehicleNotFound)
}

// NewIncidentNotFoundError wraps ErrIncidentNotFound.
func NewIncidentNotFoundError() *DomainError {
	return NotFound(ErrCodeIncidentNotFound, "Incident not found", ErrIncidentNotFound)
}

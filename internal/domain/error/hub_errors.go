package error

import "errors"

// Hub domain errors.
var (
	// ErrHubNotFound is returned when a hub is not found.
	ErrHubNotFound = errors.New("hub not found")

	// ErrEmptyUpdate is returned when an update payload carries no fields.
	ErrEmptyUpdate = errors.New("no fields to update")

	// ErrEmployeeNotFound is returned when an employee is not found within the hub.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrRouteNotFound is returned when a route is not found within the hub.
	ErrRouteNotFound = errors.New("route not found")

	// ErrRouteNameExists is returned when a hub already has a route with the same name.
	ErrRouteNameExists = errors.New("route name already exists in this hub")
)

const (
	// Hub errors (01XXXX)
	ErrCodeHubNotFound    ErrorCode = "HUB-010001"
	ErrCodeEmptyUpdate    ErrorCode = "HUB-010002"
	ErrCodeMissingHubName ErrorCode = "HUB-010003"

	// Employee errors (02XXXX)
	ErrCodeEmployeeNotFound ErrorCode = "HUB-020001"
	ErrCodeMissingEmployee  ErrorCode = "HUB-020002"

	// Route errors (03XXXX)
	ErrCodeRouteNotFound   ErrorCode = "HUB-030001"
	ErrCodeRouteNameExists ErrorCode = "HUB-030002"
	ErrCodeMissingRoute    ErrorCode = "HUB-030003"
)

// NewHubNotFoundError wraps ErrHubNotFound.
func NewHubNotFoundError() *DomainError {
	return NotFound(ErrCodeHubNotFound, "Hub not found", ErrHubNotFound)
}

// NewEmptyUpdateError wraps ErrEmptyUpdate.
func NewEmptyUpdateError() *DomainError {
	return InvalidInput(ErrCodeEmptyUpdate, "No fields to update", ErrEmptyUpdate)
}

// NewEmployeeNotFoundError wraps ErrEmployeeNotFound.
func NewEmployeeNotFoundError() *DomainError {
	return NotFound(ErrCodeEmployeeNotFound, "Employee not found", ErrEmployeeNotFound)
}

// NewRouteNotFoundError wraps ErrRouteNotFound.
func NewRouteNotFoundError() *DomainError {
	return NotFound(ErrCodeRouteNotFound, "Route not found", ErrRouteNotFound)
}

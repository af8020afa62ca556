package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/domain/entity"
)

// VehicleRepository defines the interface for vehicle persistence operations.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	FindByID(ctx context.Context, hubID, id uuid.UUID) (*entity.Vehicle, error)
	ListByHub(ctx context.Context, hubID uuid.UUID) ([]*entity.Vehicle, error)
	Update(ctx context.Context, vehicle *entity.Vehicle) error

	// Delete removes the vehicle and its incidents.
	Delete(ctx context.Context, hubID, id uuid.UUID) error

	// ExistsByPlate checks plates across every hub, ignoring excludeID when set.
	ExistsByPlate(ctx context.Context, plate string, excludeID *uuid.UUID) (bool, error)
}

// IncidentRepository defines the interface for incident persistence operations.
type IncidentRepository interface {
	Create(ctx context.Context, incident *entity.Incident) error
	FindByID(ctx context.Context, hubID, id uuid.UUID) (*entity.Incident, error)

	// ListByHub returns the hub incidents, newest first, optionally of one vehicle.
	ListByHub(ctx context.Context, hubID uuid.UUID, vehicleID *uuid.UUID) ([]*entity.Incident, error)

	Update(ctx context.Context, incident *entity.Incident) error
	Delete(ctx context.Context, hubID, id uuid.UUID) error
}

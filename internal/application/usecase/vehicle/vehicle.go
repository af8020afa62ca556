// Package vehicle contains fleet vehicle use cases.
package vehicle

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/application/usecase/scope"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
	"github.com/hubmanager/backend/internal/domain/valueobject"
)

// ListVehiclesUseCase lists the vehicles of a hub.
type ListVehiclesUseCase struct {
	hubRepo     adapter.HubRepository
	vehicleRepo adapter.VehicleRepository
}

// NewListVehiclesUseCase creates a new ListVehiclesUseCase instance.
func NewListVehiclesUseCase(hubRepo adapter.HubRepository, vehicleRepo adapter.VehicleRepository) *ListVehiclesUseCase {
	return &ListVehiclesUseCase{hubRepo: hubRepo, vehicleRepo: vehicleRepo}
}

// Execute returns the hub vehicles ordered by plate.
func (uc *ListVehiclesUseCase) Execute(ctx context.Context, hubID uuid.UUID) ([]*entity.Vehicle, error) {
	if _, err := scope.RequireHub(ctx, uc.hubRepo, hubID); err != nil {
		return nil, err
	}
	vehicles, err := uc.vehicleRepo.ListByHub(ctx, hubID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

// CreateVehicleInput represents the input for vehicle creation.
type CreateVehicleInput struct {
	HubID       uuid.UUID
	Plate       string
	VehicleType string
}

// CreateVehicleUseCase handles vehicle creation.
type CreateVehicleUseCase struct {
	hubRepo     adapter.HubRepository
	vehicleRepo adapter.VehicleRepository
	catalog     *valueobject.Catalog
}

// NewCreateVehicleUseCase creates a new CreateVehicleUseCase instance.
func NewCreateVehicleUseCase(hubRepo adapter.HubRepository, vehicleRepo adapter.VehicleRepository, catalog *valueobject.Catalog) *CreateVehicleUseCase {
	return &CreateVehicleUseCase{hubRepo: hubRepo, vehicleRepo: vehicleRepo, catalog: catalog}
}

// Execute creates the vehicle. Plates are unique across every hub.
func (uc *CreateVehicleUseCase) Execute(ctx context.Context, input CreateVehicleInput) (*entity.Vehicle, error) {
	plate := entity.NormalizePlate(input.Plate)
	if plate == "" {
		return nil, domainerror.InvalidInput(domainerror.ErrCodeMissingPlate, "Plate is required", nil)
	}
	if !uc.catalog.IsVehicleType(input.VehicleType) {
		return nil, newInvalidTypeError(input.VehicleType)
	}
	if _, err := scope.RequireHub(ctx, uc.hubRepo, input.HubID); err != nil {
		return nil, err
	}

	exists, err := uc.vehicleRepo.ExistsByPlate(ctx, plate, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check plate: %w", err)
	}
	if exists {
		return nil, newPlateExistsError()
	}

	vehicle := entity.NewVehicle(input.HubID, plate, input.VehicleType)
	if err := uc.vehicleRepo.Create(ctx, vehicle); err != nil {
		if errors.Is(err, domainerror.ErrPlateExists) {
			return nil, newPlateExistsError()
		}
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}
	return vehicle, nil
}

// UpdateVehicleInput represents the input for vehicle update. Nil fields are left untouched.
type UpdateVehicleInput struct {
	HubID       uuid.UUID
	VehicleID   uuid.UUID
	Plate       *string
	VehicleType *string
}

// UpdateVehicleUseCase handles partial vehicle updates.
type UpdateVehicleUseCase struct {
	vehicleRepo adapter.VehicleRepository
	catalog     *valueobject.Catalog
}

// NewUpdateVehicleUseCase creates a new UpdateVehicleUseCase instance.
func NewUpdateVehicleUseCase(vehicleRepo adapter.VehicleRepository, catalog *valueobject.Catalog) *UpdateVehicleUseCase {
	return &UpdateVehicleUseCase{vehicleRepo: vehicleRepo, catalog: catalog}
}

// Execute applies the update.
func (uc *UpdateVehicleUseCase) Execute(ctx context.Context, input UpdateVehicleInput) (*entity.Vehicle, error) {
	if input.Plate == nil && input.VehicleType == nil {
		return nil, domainerror.NewEmptyUpdateError()
	}

	vehicle, err := uc.vehicleRepo.FindByID(ctx, input.HubID, input.VehicleID)
	if err != nil {
		return nil, scope.MapNotFound(err, domainerror.ErrVehicleNotFound, domainerror.NewVehicleNotFoundError, "find vehicle")
	}

	if input.VehicleType != nil {
		if !uc.catalog.IsVehicleType(*input.VehicleType) {
			return nil, newInvalidTypeError(*input.VehicleType)
		}
		vehicle.VehicleType = *input.VehicleType
	}

	if input.Plate != nil {
		plate := entity.NormalizePlate(*input.Plate)
		if plate == "" {
			return nil, domainerror.InvalidInput(domainerror.ErrCodeMissingPlate, "Plate is required", nil)
		}
		if plate != vehicle.Plate {
			exists, err := uc.vehicleRepo.ExistsByPlate(ctx, plate, &vehicle.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check plate: %w", err)
			}
			if exists {
				return nil, newPlateExistsError()
			}
		}
		vehicle.Plate = plate
	}

	if err := uc.vehicleRepo.Update(ctx, vehicle); err != nil {
		if errors.Is(err, domainerror.ErrPlateExists) {
			return nil, newPlateExistsError()
		}
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}
	return vehicle, nil
}

// DeleteVehicleUseCase deletes a vehicle and its incidents.
type DeleteVehicleUseCase struct {
	vehicleRepo adapter.VehicleRepository
}

// NewDeleteVehicleUseCase creates a new DeleteVehicleUseCase instance.
func NewDeleteVehicleUseCase(vehicleRepo adapter.VehicleRepository) *DeleteVehicleUseCase {
	return &DeleteVehicleUseCase{vehicleRepo: vehicleRepo}
}

// Execute deletes the vehicle.
func (uc *DeleteVehicleUseCase) Execute(ctx context.Context, hubID, vehicleID uuid.UUID) error {
	if err := uc.vehicleRepo.Delete(ctx, hubID, vehicleID); err != nil {
		return scope.MapNotFound(err, domainerror.ErrVehicleNotFound, domainerror.NewVehicleNotFoundError, "delete vehicle")
	}
	return nil
}

func newPlateExistsError() *domainerror.DomainError {
	return domainerror.Conflict(domainerror.ErrCodePlateExists, "Plate already registered", domainerror.ErrPlateExists)
}

func newInvalidTypeError(vehicleType string) *domainerror.DomainError {
	return domainerror.InvalidInput(
		domainerror.ErrCodeInvalidVehicleType,
		fmt.Sprintf("Invalid vehicle type %q", vehicleType),
		domainerror.ErrInvalidVehicleType,
	)
}

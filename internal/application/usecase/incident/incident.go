// Package incident contains vehicle incident use cases.
package incident

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/application/usecase/scope"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

// ListIncidentsInput represents the input for listing incidents.
type ListIncidentsInput struct {
	HubID     uuid.UUID
	VehicleID *uuid.UUID
}

// ListIncidentsUseCase lists the incidents of a hub.
type ListIncidentsUseCase struct {
	hubRepo      adapter.HubRepository
	incidentRepo adapter.IncidentRepository
}

// NewListIncidentsUseCase creates a new ListIncidentsUseCase instance.
func NewListIncidentsUseCase(hubRepo adapter.HubRepository, incidentRepo adapter.IncidentRepository) *ListIncidentsUseCase {
	return &ListIncidentsUseCase{hubRepo: hubRepo, incidentRepo: incidentRepo}
}

// Execute returns the incidents, optionally of one vehicle.
func (uc *ListIncidentsUseCase) Execute(ctx context.Context, input ListIncidentsInput) ([]*entity.Incident, error) {
	if _, err := scope.RequireHub(ctx, uc.hubRepo, input.HubID); err != nil {
		return nil, err
	}
	incidents, err := uc.incidentRepo.ListByHub(ctx, input.HubID, input.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	return incidents, nil
}

// CreateIncidentInput represents the input for incident creation.
type CreateIncidentInput struct {
	HubID       uuid.UUID
	VehicleID   uuid.UUID
	Title       string
	Description string
	Date        string
	Cost        decimal.Decimal
	Km          int
}

// CreateIncidentUseCase handles incident creation.
type CreateIncidentUseCase struct {
	vehicleRepo  adapter.VehicleRepository
	incidentRepo adapter.IncidentRepository
}

// NewCreateIncidentUseCase creates a new CreateIncidentUseCase instance.
func NewCreateIncidentUseCase(vehicleRepo adapter.VehicleRepository, incidentRepo adapter.IncidentRepository) *CreateIncidentUseCase {
	return &CreateIncidentUseCase{vehicleRepo: vehicleRepo, incidentRepo: incidentRepo}
}

// Execute creates the incident for a vehicle of the hub.
func (uc *CreateIncidentUseCase) Execute(ctx context.Context, input CreateIncidentInput) (*entity.Incident, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.InvalidInput(domainerror.ErrCodeMissingTitle, "Title is required", nil)
	}
	if err := validateIncident(input.Date, input.Cost, input.Km); err != nil {
		return nil, err
	}

	if _, err := uc.vehicleRepo.FindByID(ctx, input.HubID, input.VehicleID); err != nil {
		return nil, scope.MapNotFound(err, domainerror.ErrVehicleNotFound, domainerror.NewVehicleNotFoundError, "find vehicle")
	}

	incident := entity.NewIncident(input.HubID, input.VehicleID, title, strings.TrimSpace(input.Description), input.Date, input.Cost, input.Km)
	if err := uc.incidentRepo.Create(ctx, incident); err != nil {
		return nil, fmt.Errorf("failed to create incident: %w", err)
	}
	return incident, nil
}

// UpdateIncidentInput represents the input for incident update. Nil fields are left untouched.
type UpdateIncidentInput struct {
	HubID       uuid.UUID
	IncidentID  uuid.UUID
	Title       *string
	Description *string
	Date        *string
	Cost        *decimal.Decimal
	Km          *int
}

func (in UpdateIncidentInput) empty() bool {
	return in.Title == nil && in.Description == nil && in.Date == nil && in.Cost == nil && in.Km == nil
}

// UpdateIncidentUseCase handles partial incident updates.
type UpdateIncidentUseCase struct {
	incidentRepo adapter.IncidentRepository
}

// NewUpdateIncidentUseCase creates a new UpdateIncidentUseCase instance.
func NewUpdateIncidentUseCase(incidentRepo adapter.IncidentRepository) *UpdateIncidentUseCase {
	return &UpdateIncidentUseCase{incidentRepo: incidentRepo}
}

// Execute applies the update.
func (uc *UpdateIncidentUseCase) Execute(ctx context.Context, input UpdateIncidentInput) (*entity.Incident, error) {
	if input.empty() {
		return nil, domainerror.NewEmptyUpdateError()
	}

	incident, err := uc.incidentRepo.FindByID(ctx, input.HubID, input.IncidentID)
	if err != nil {
		return nil, scope.MapNotFound(err, domainerror.ErrIncidentNotFound, domainerror.NewIncidentNotFoundError, "find incident")
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domainerror.InvalidInput(domainerror.ErrCodeMissingTitle, "Title is required", nil)
		}
		incident.Title = title
	}
	if input.Description != nil {
		incident.Description = strings.TrimSpace(*input.Description)
	}
	if input.Date != nil {
		incident.Date = strings.TrimSpace(*input.Date)
	}
	if input.Cost != nil {
		incident.Cost = *input.Cost
	}
	if input.Km != nil {
		incident.Km = *input.Km
	}
	if err := validateIncident(incident.Date, incident.Cost, incident.Km); err != nil {
		return nil, err
	}

	if err := uc.incidentRepo.Update(ctx, incident); err != nil {
		return nil, fmt.Errorf("failed to update incident: %w", err)
	}
	return incident, nil
}

// DeleteIncidentUseCase deletes an incident.
type DeleteIncidentUseCase struct {
	incidentRepo adapter.IncidentRepository
}

// NewDeleteIncidentUseCase creates a new DeleteIncidentUseCase instance.
func NewDeleteIncidentUseCase(incidentRepo adapter.IncidentRepository) *DeleteIncidentUseCase {
	return &DeleteIncidentUseCase{incidentRepo: incidentRepo}
}

// Execute deletes the incident.
func (uc *DeleteIncidentUseCase) Execute(ctx context.Context, hubID, incidentID uuid.UUID) error {
	if err := uc.incidentRepo.Delete(ctx, hubID, incidentID); err != nil {
		return scope.MapNotFound(err, domainerror.ErrIncidentNotFound, domainerror.NewIncidentNotFoundError, "delete incident")
	}
	return nil
}

func validateIncident(date string, cost decimal.Decimal, km int) error {
	if _, err := ParseDate(date, ""); err != nil {
		return domainerror.New(
			domainerror.KindInvalidDate,
			domainerror.ErrCodeIncidentDate,
			"Date must be DD/MM/YYYY or YYYY-MM-DD",
			err,
		)
	}
	if cost.IsNegative() || km < 0 {
		return domainerror.InvalidInput(domainerror.ErrCodeNegativeIncident, "Cost and km cannot be negative", nil)
	}
	return nil
}

// Package restriction contains low emission zone time restriction use cases.
package restriction

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/application/usecase/scope"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

// ListUseCase lists the time restrictions of a hub.
type ListUseCase struct {
	hubRepo         adapter.HubRepository
	restrictionRepo adapter.TimeRestrictionRepository
}

// NewListUseCase creates a new ListUseCase instance.
func NewListUseCase(hubRepo adapter.HubRepository, restrictionRepo adapter.TimeRestrictionRepository) *ListUseCase {
	return &ListUseCase{hubRepo: hubRepo, restrictionRepo: restrictionRepo}
}

// Execute returns the restrictions of the hub.
func (uc *ListUseCase) Execute(ctx context.Context, hubID uuid.UUID) ([]*entity.TimeRestriction, error) {
	if _, err := scope.RequireHub(ctx, uc.hubRepo, hubID); err != nil {
		return nil, err
	}
	restrictions, err := uc.restrictionRepo.ListByHub(ctx, hubID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time restrictions: %w", err)
	}
	return restrictions, nil
}

// CreateInput represents the input for time restriction creation.
type CreateInput struct {
	HubID   uuid.UUID
	Zona    string
	Horario string
	Dias    string
	AplicaA entity.AplicaA
	Notas   string
}

// CreateUseCase handles time restriction creation.
type CreateUseCase struct {
	hubRepo         adapter.HubRepository
	restrictionRepo adapter.TimeRestrictionRepository
}

// NewCreateUseCase creates a new CreateUseCase instance.
func NewCreateUseCase(hubRepo adapter.HubRepository, restrictionRepo adapter.TimeRestrictionRepository) *CreateUseCase {
	return &CreateUseCase{hubRepo: hubRepo, restrictionRepo: restrictionRepo}
}

// Execute creates the restriction. An empty aplica_a means every vehicle.
func (uc *CreateUseCase) Execute(ctx context.Context, input CreateInput) (*entity.TimeRestriction, error) {
	zona := strings.TrimSpace(input.Zona)
	if zona == "" {
		return nil, domainerror.InvalidInput(domainerror.ErrCodeMissingZona, "Zona is required", nil)
	}
	aplicaA := input.AplicaA
	if aplicaA == "" {
		aplicaA = entity.AplicaTodos
	}
	if err := validateAplicaA(aplicaA); err != nil {
		return nil, err
	}
	if _, err := scope.RequireHub(ctx, uc.hubRepo, input.HubID); err != nil {
		return nil, err
	}

	restriction := entity.NewTimeRestriction(
		input.HubID,
		zona,
		strings.TrimSpace(input.Horario),
		strings.TrimSpace(input.Dias),
		aplicaA,
		strings.TrimSpace(input.Notas),
	)
	if err := uc.restrictionRepo.Create(ctx, restriction); err != nil {
		return nil, fmt.Errorf("failed to create time restriction: %w", err)
	}
	return restriction, nil
}

// UpdateInput represents the input for time restriction update. Nil fields are left untouched.
type UpdateInput struct {
	HubID         uuid.UUID
	RestrictionID uuid.UUID
	Zona          *string
	Horario       *string
	Dias          *string
	AplicaA       *entity.AplicaA
	Notas         *string
}

func (in UpdateInput) empty() bool {
	return in.Zona == nil && in.Horario == nil && in.Dias == nil && in.AplicaA == nil && in.Notas == nil
}

// UpdateUseCase handles partial time restriction updates.
type UpdateUseCase struct {
	restrictionRepo adapter.TimeRestrictionRepository
}

// NewUpdateUseCase creates a new UpdateUseCase instance.
func NewUpdateUseCase(restrictionRepo adapter.TimeRestrictionRepository) *UpdateUseCase {
	return &UpdateUseCase{restrictionRepo: restrictionRepo}
}

// Execute applies the update.
func (uc *UpdateUseCase) Execute(ctx context.Context, input UpdateInput) (*entity.TimeRestriction, error) {
	if input.empty() {
		return nil, domainerror.NewEmptyUpdateError()
	}
	if input.AplicaA != nil {
		if err := validateAplicaA(*input.AplicaA); err != nil {
			return nil, err
		}
	}

	restriction, err := uc.restrictionRepo.FindByID(ctx, input.HubID, input.RestrictionID)
	if err != nil {
		return nil, scope.MapNotFound(err, domainerror.ErrTimeRestrictionNotFound, domainerror.NewTimeRestrictionNotFoundError, "find time restriction")
	}

	if input.Zona != nil {
		zona := strings.TrimSpace(*input.Zona)
		if zona == "" {
			return nil, domainerror.InvalidInput(domainerror.ErrCodeMissingZona, "Zona is required", nil)
		}
		restriction.Zona = zona
	}
	if input.Horario != nil {
		restriction.Horario = strings.TrimSpace(*input.Horario)
	}
	if input.Dias != nil {
		restriction.Dias = strings.TrimSpace(*input.Dias)
	}
	if input.AplicaA != nil {
		restriction.AplicaA = *input.AplicaA
	}
	if input.Notas != nil {
		restriction.Notas = strings.TrimSpace(*input.Notas)
	}

	if err := uc.restrictionRepo.Update(ctx, restriction); err != nil {
		return nil, fmt.Errorf("failed to update time restriction: %w", err)
	}
	return restriction, nil
}

// DeleteUseCase deletes a time restriction.
type DeleteUseCase struct {
	restrictionRepo adapter.TimeRestrictionRepository
}

// NewDeleteUseCase creates a new DeleteUseCase instance.
func NewDeleteUseCase(restrictionRepo adapter.TimeRestrictionRepository) *DeleteUseCase {
	return &DeleteUseCase{restrictionRepo: restrictionRepo}
}

// Execute deletes the restriction.
func (uc *DeleteUseCase) Execute(ctx context.Context, hubID, restrictionID uuid.UUID) error {
	if err := uc.restrictionRepo.Delete(ctx, hubID, restrictionID); err != nil {
		return scope.MapNotFound(err, domainerror.ErrTimeRestrictionNotFound, domainerror.NewTimeRestrictionNotFoundError, "delete time restriction")
	}
	return nil
}

func validateAplicaA(a entity.AplicaA) error {
	if !a.IsValid() {
		return domainerror.InvalidInput(
			domainerror.ErrCodeInvalidAplicaA,
			fmt.Sprintf("Invalid aplica_a %q", a),
			domainerror.ErrInvalidAplicaA,
		)
	}
	return nil
}

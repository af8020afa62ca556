// Package hub contains hub registry use cases.
package hub

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

// ListHubsUseCase lists every hub.
type ListHubsUseCase struct {
	hubRepo adapter.HubRepository
}

// NewListHubsUseCase creates a new ListHubsUseCase instance.
func NewListHubsUseCase(hubRepo adapter.HubRepository) *ListHubsUseCase {
	return &ListHubsUseCase{hubRepo: hubRepo}
}

// Execute returns all hubs ordered by name.
func (uc *ListHubsUseCase) Execute(ctx context.Context) ([]*entity.Hub, error) {
	hubs, err := uc.hubRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hubs: %w", err)
	}
	return hubs, nil
}

// GetHubUseCase loads a single hub.
type GetHubUseCase struct {
	hubRepo adapter.HubRepository
}

// NewGetHubUseCase creates a new GetHubUseCase instance.
func NewGetHubUseCase(hubRepo adapter.HubRepository) *GetHubUseCase {
	return &GetHubUseCase{hubRepo: hubRepo}
}

// Execute returns the hub or a NotFound error.
func (uc *GetHubUseCase) Execute(ctx context.Context, hubID uuid.UUID) (*entity.Hub, error) {
	return scope.RequireHub(ctx, uc.hubRepo, hubID)
}

// CreateHubInput represents the input for hub creation.
type CreateHubInput struct {
	Name        string
	Description string
	Location    string
}

// CreateHubUseCase handles hub creation.
type CreateHubUseCase struct {
	hubRepo adapter.HubRepository
}

// NewCreateHubUseCase creates a new CreateHubUseCase instance.
func NewCreateHubUseCase(hubRepo adapter.HubRepository) *CreateHubUseCase {
	return &CreateHubUseCase{hubRepo: hubRepo}
}

// Execute creates the hub.
func (uc *CreateHubUseCase) Execute(ctx context.Context, input CreateHubInput) (*entity.Hub, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.InvalidInput(domainerror.ErrCodeMissingHubName, "Hub name is required", nil)
	}

	hub := entity.NewHub(name, strings.TrimSpace(input.Description), strings.TrimSpace(input.Location))
	if err := uc.hubRepo.Create(ctx, hub); err != nil {
		return nil, fmt.Errorf("failed to create hub: %w", err)
	}
	return hub, nil
}

// UpdateHubInput represents the input for hub update. Nil fields are left untouched.
type UpdateHubInput struct {
	HubID       uuid.UUID
	Name        *string
	Description *string
	Location    *string
}

// UpdateHubUseCase handles partial hub updates.
type UpdateHubUseCase struct {
	hubRepo adapter.HubRepository
}

// NewUpdateHubUseCase creates a new UpdateHubUseCase instance.
func NewUpdateHubUseCase(hubRepo adapter.HubRepository) *UpdateHubUseCase {
	return &UpdateHubUseCase{hubRepo: hubRepo}
}

// Execute applies the update. A payload without fields is InvalidInput.
func (uc *UpdateHubUseCase) Execute(ctx context.Context, input UpdateHubInput) (*entity.Hub, error) {
	if input.Name == nil && input.Description == nil && input.Location == nil {
		return nil, domainerror.NewEmptyUpdateError()
	}

	hub, err := scope.RequireHub(ctx, uc.hubRepo, input.HubID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.InvalidInput(domainerror.ErrCodeMissingHubName, "Hub name is required", nil)
		}
		hub.Name = name
	}
	if input.Description != nil {
		hub.Description = strings.TrimSpace(*input.Description)
	}
	if input.Location != nil {
		hub.Location = strings.TrimSpace(*input.Location)
	}

	if err := uc.hubRepo.Update(ctx, hub); err != nil {
		return nil, scope.MapNotFound(err, domainerror.ErrHubNotFound, domainerror.NewHubNotFoundError, "update hub")
	}
	return hub, nil
}

// DeleteHubUseCase deletes a hub with every record scoped to it.
type DeleteHubUseCase struct {
	hubRepo adapter.HubRepository
}

// NewDeleteHubUseCase creates a new DeleteHubUseCase instance.
func NewDeleteHubUseCase(hubRepo adapter.HubRepository) *DeleteHubUseCase {
	return &DeleteHubUseCase{hubRepo: hubRepo}
}

// Execute deletes the hub.
func (uc *DeleteHubUseCase) Execute(ctx context.Context, hubID uuid.UUID) error {
	if err := uc.hubRepo.Delete(ctx, hubID); err != nil {
		return scope.MapNotFound(err, domainerror.ErrHubNotFound, domainerror.NewHubNotFoundError, "delete hub")
	}
	return nil
}

// Package route contains delivery route use cases.
package route

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/application/usecase/scope"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

// ListRoutesUseCase lists the routes of a hub.
type ListRoutesUseCase struct {
	hubRepo   adapter.HubRepository
	routeRepo adapter.RouteRepository
}

// NewListRoutesUseCase creates a new ListRoutesUseCase instance.
func NewListRoutesUseCase(hubRepo adapter.HubRepository, routeRepo adapter.RouteRepository) *ListRoutesUseCase {
	return &ListRoutesUseCase{hubRepo: hubRepo, routeRepo: routeRepo}
}

// Execute returns the hub routes ordered by name.
func (uc *ListRoutesUseCase) Execute(ctx context.Context, hubID uuid.UUID) ([]*entity.Route, error) {
	if _, err := scope.RequireHub(ctx, uc.hubRepo, hubID); err != nil {
		return nil, err
	}
	routes, err := uc.routeRepo.ListByHub(ctx, hubID)
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	return routes, nil
}

// CreateRouteInput represents the input for route creation.
type CreateRouteInput struct {
	HubID uuid.UUID
	Name  string
}

// CreateRouteUseCase handles route creation.
type CreateRouteUseCase struct {
	hubRepo   adapter.HubRepository
	routeRepo adapter.RouteRepository
}

// NewCreateRouteUseCase creates a new CreateRouteUseCase instance.
func NewCreateRouteUseCase(hubRepo adapter.HubRepository, routeRepo adapter.RouteRepository) *CreateRouteUseCase {
	return &CreateRouteUseCase{hubRepo: hubRepo, routeRepo: routeRepo}
}

// Execute creates the route. Names are unique within the hub.
func (uc *CreateRouteUseCase) Execute(ctx context.Context, input CreateRouteInput) (*entity.Route, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.InvalidInput(domainerror.ErrCodeMissingRoute, "Route name is required", nil)
	}
	if _, err := scope.RequireHub(ctx, uc.hubRepo, input.HubID); err != nil {
		return nil, err
	}

	exists, err := uc.routeRepo.ExistsByName(ctx, input.HubID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check route name: %w", err)
	}
	if exists {
		return nil, newRouteExistsError()
	}

	route := entity.NewRoute(input.HubID, name)
	if err := uc.routeRepo.Create(ctx, route); err != nil {
		if errors.Is(err, domainerror.ErrRouteNameExists) {
			return nil, newRouteExistsError()
		}
		return nil, fmt.Errorf("failed to create route: %w", err)
	}
	return route, nil
}

// DeleteRouteUseCase deletes a route with its liquidation and kilos/litros entries.
type DeleteRouteUseCase struct {
	routeRepo adapter.RouteRepository
}

// NewDeleteRouteUseCase creates a new DeleteRouteUseCase instance.
func NewDeleteRouteUseCase(routeRepo adapter.RouteRepository) *DeleteRouteUseCase {
	return &DeleteRouteUseCase{routeRepo: routeRepo}
}

// Execute deletes the route.
func (uc *DeleteRouteUseCase) Execute(ctx context.Context, hubID, routeID uuid.UUID) error {
	if err := uc.routeRepo.Delete(ctx, hubID, routeID); err != nil {
		return scope.MapNotFound(err, domainerror.ErrRouteNotFound, domainerror.NewRouteNotFoundError, "delete route")
	}
	return nil
}

func newRouteExistsError() *domainerror.DomainError {
	return domainerror.Conflict(domainerror.ErrCodeRouteNameExists, "A route with this name already exists", domainerror.ErrRouteNameExists)
}

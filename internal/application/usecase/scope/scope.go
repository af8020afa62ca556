// Package scope resolves the hub a request is scoped to.
package scope

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

// RequireHub loads the hub or returns a NotFound domain error.
func RequireHub(ctx context.Context, hubRepo adapter.HubRepository, hubID uuid.UUID) (*entity.Hub, error) {
	hub, err := hubRepo.FindByID(ctx, hubID)
	if err != nil {
		if errors.Is(err, domainerror.ErrHubNotFound) {
			return nil, domainerror.NewHubNotFoundError()
		}
		return nil, fmt.Errorf("failed to find hub: %w", err)
	}
	return hub, nil
}

// MapNotFound turns a repository sentinel into its domain error and wraps anything else.
func MapNotFound(err, sentinel error, notFound func() *domainerror.DomainError, action string) error {
	if errors.Is(err, sentinel) {
		return notFound()
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// RequireRoute loads a route of the hub or returns a NotFound domain error.
func RequireRoute(ctx context.Context, routeRepo adapter.RouteRepository, hubID, routeID uuid.UUID) (*entity.Route, error) {
	route, err := routeRepo.FindByID(ctx, hubID, routeID)
	if err != nil {
		return nil, MapNotFound(err, domainerror.ErrRouteNotFound, domainerror.NewRouteNotFoundError, "find route")
	}
	return route, nil
}

// RouteNames indexes route names by id.
func RouteNames(routes []*entity.Route) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(routes))
	for _, r := range routes {
		names[r.ID] = r.Name
	}
	return names
}

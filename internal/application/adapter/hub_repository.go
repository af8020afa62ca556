package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/domain/entity"
)

// HubRepository defines the interface for hub persistence operations.
type HubRepository interface {
	Create(ctx context.Context, hub *entity.Hub) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Hub, error)
	FindByName(ctx context.Context, name string) (*entity.Hub, error)
	List(ctx context.Context) ([]*entity.Hub, error)
	Update(ctx context.Context, hub *entity.Hub) error

	// Delete removes the hub and every record scoped to it in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context) (int64, error)
}

// EmployeeRepository defines the interface for employee persistence operations.
// Lookups are scoped to a hub: an employee of another hub is not found.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	FindByID(ctx context.Context, hubID, id uuid.UUID) (*entity.Employee, error)
	ListByHub(ctx context.Context, hubID uuid.UUID) ([]*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error

	// Delete removes the employee and its attendance entries.
	Delete(ctx context.Context, hubID, id uuid.UUID) error

	Count(ctx context.Context) (int64, error)
}

// RouteRepository defines the interface for route persistence operations.
type RouteRepository interface {
	Create(ctx context.Context, route *entity.Route) error
	FindByID(ctx context.Context, hubID, id uuid.UUID) (*entity.Route, error)
	ListByHub(ctx context.Context, hubID uuid.UUID) ([]*entity.Route, error)
	ExistsByName(ctx context.Context, hubID uuid.UUID, name string) (bool, error)

	// Delete removes the route and its liquidation and kilos/litros entries.
	Delete(ctx context.Context, hubID, id uuid.UUID) error
}

// ContactRepository defines the interface for contact persistence operations.
type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	FindByID(ctx context.Context, hubID, id uuid.UUID) (*entity.Contact, error)
	ListByHub(ctx context.Context, hubID uuid.UUID) ([]*entity.Contact, error)
	Update(ctx context.Context, contact *entity.Contact) error
	Delete(ctx context.Context, hubID, id uuid.UUID) error
}

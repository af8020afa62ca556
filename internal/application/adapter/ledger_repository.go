package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/domain/entity"
)

// AttendanceRepository defines the interface for attendance persistence operations.
type AttendanceRepository interface {
	// Upsert inserts or replaces the entry keyed by (employee_id, hub_id, date) atomically.
	Upsert(ctx context.Context, entry *entity.AttendanceEntry) (*entity.AttendanceEntry, error)

	// ListByHubAndRange returns entries with start <= date <= end ordered by date.
	ListByHubAndRange(ctx context.Context, hubID uuid.UUID, start, end string) ([]*entity.AttendanceEntry, error)
}

// LiquidationRepository defines the interface for liquidation persistence operations.
type LiquidationRepository interface {
	// Upsert inserts or replaces the entry keyed by (route_id, date) atomically.
	Upsert(ctx context.Context, entry *entity.LiquidationEntry) (*entity.LiquidationEntry, error)

	FindByID(ctx context.Context, hubID, id uuid.UUID) (*entity.LiquidationEntry, error)

	// ListByHubAndRange returns entries in [start, end], optionally of one route.
	ListByHubAndRange(ctx context.Context, hubID uuid.UUID, start, end string, routeID *uuid.UUID) ([]*entity.LiquidationEntry, error)

	Delete(ctx context.Context, hubID, id uuid.UUID) error
}

// KilosLitrosRepository defines the interface for kilos/litros persistence operations.
type KilosLitrosRepository interface {
	// Upsert inserts or replaces the entry keyed by (route_id, date, repartidor) atomically.
	Upsert(ctx context.Context, entry *entity.KilosLitrosEntry) (*entity.KilosLitrosEntry, error)

	FindByID(ctx context.Context, hubID, id uuid.UUID) (*entity.KilosLitrosEntry, error)
	ListByHubAndRange(ctx context.Context, hubID uuid.UUID, start, end string, routeID *uuid.UUID) ([]*entity.KilosLitrosEntry, error)
	Delete(ctx context.Context, hubID, id uuid.UUID) error
}

package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/domain/entity"
)

// HolidayRepository defines the interface for custom holiday persistence operations.
type HolidayRepository interface {
	Create(ctx context.Context, holiday *entity.Holiday) error
	FindByID(ctx context.Context, hubID, id uuid.UUID) (*entity.Holiday, error)
	ListByHubAndRange(ctx context.Context, hubID uuid.UUID, start, end string) ([]*entity.Holiday, error)
	ExistsByDate(ctx context.Context, hubID uuid.UUID, date string) (bool, error)
	Delete(ctx context.Context, hubID, id uuid.UUID) error
}

// TimeRestrictionRepository defines the interface for time restriction persistence operations.
type TimeRestrictionRepository interface {
	Create(ctx context.Context, restriction *entity.TimeRestriction) error
	FindByID(ctx context.Context, hubID, id uuid.UUID) (*entity.TimeRestriction, error)
	ListByHub(ctx context.Context, hubID uuid.UUID) ([]*entity.TimeRestriction, error)
	Update(ctx context.Context, restriction *entity.TimeRestriction) error
	Delete(ctx context.Context, hubID, id uuid.UUID) error
	CountByHub(ctx context.Context, hubID uuid.UUID) (int64, error)
}

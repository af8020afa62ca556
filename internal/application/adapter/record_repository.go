package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/domain/entity"
)

// PurchaseRepository defines the interface for purchase persistence operations.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	FindByID(ctx context.Context, hubID, id uuid.UUID) (*entity.Purchase, error)
	ListByHub(ctx context.Context, hubID uuid.UUID) ([]*entity.Purchase, error)
	Update(ctx context.Context, purchase *entity.Purchase) error
	Delete(ctx context.Context, hubID, id uuid.UUID) error
}

// RecordFilter narrows a generic record listing. Zero values mean no filter.
type RecordFilter struct {
	HubID    *uuid.UUID
	Category string
}

// RecordRepository defines the interface for generic record persistence operations.
type RecordRepository interface {
	Create(ctx context.Context, record *entity.Record) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Record, error)
	List(ctx context.Context, filter RecordFilter) ([]*entity.Record, error)
	Update(ctx context.Context, record *entity.Record) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)

	// CountByCategory returns the number of records per category name.
	CountByCategory(ctx context.Context) (map[string]int64, error)
}

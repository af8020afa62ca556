package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
	"github.com/hubmanager/backend/internal/integration/persistence/model"
)

// purchaseRepository implements the adapter.PurchaseRepository interface.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository instance.
func NewPurchaseRepository(db *gorm.DB) adapter.PurchaseRepository {
	return &purchaseRepository{db: db}
}

// Create creates a new purchase.
func (r *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	return r.db.WithContext(ctx).Create(model.PurchaseFromEntity(purchase)).Error
}

// FindByID retrieves a purchase of the hub.
func (r *purchaseRepository) FindByID(ctx context.Context, hubID, id uuid.UUID) (*entity.Purchase, error) {
	var purchaseModel model.PurchaseModel
	result := r.db.WithContext(ctx).Where("id = ? AND hub_id = ?", id, hubID).First(&purchaseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPurchaseNotFound
		}
		return nil, result.Error
	}
	return purchaseModel.ToEntity(), nil
}

// ListByHub returns the hub purchases, newest first.
func (r *purchaseRepository) ListByHub(ctx context.Context, hubID uuid.UUID) ([]*entity.Purchase, error) {
	var models []model.PurchaseModel
	if err := r.db.WithContext(ctx).Where("hub_id = ?", hubID).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	purchases := make([]*entity.Purchase, len(models))
	for i := range models {
		purchases[i] = models[i].ToEntity()
	}
	return purchases, nil
}

// Update updates an existing purchase, rewriting its total.
func (r *purchaseRepository) Update(ctx context.Context, purchase *entity.Purchase) error {
	return r.db.WithContext(ctx).Save(model.PurchaseFromEntity(purchase)).Error
}

// Delete removes a purchase of the hub.
func (r *purchaseRepository) Delete(ctx context.Context, hubID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.PurchaseModel{}, "id = ? AND hub_id = ?", id, hubID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrPurchaseNotFound
	}
	return nil
}

// recordRepository implements the adapter.RecordRepository interface.
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new generic record repository instance.
func NewRecordRepository(db *gorm.DB) adapter.RecordRepository {
	return &recordRepository{db: db}
}

// Create creates a new record.
func (r *recordRepository) Create(ctx context.Context, record *entity.Record) error {
	return r.db.WithContext(ctx).Create(model.RecordFromEntity(record)).Error
}

// FindByID retrieves a record by its ID.
func (r *recordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Record, error) {
	var recordModel model.RecordModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return recordModel.ToEntity(), nil
}

// List returns records matching the filter, newest first.
func (r *recordRepository) List(ctx context.Context, filter adapter.RecordFilter) ([]*entity.Record, error) {
	var models []model.RecordModel
	query := r.db.WithContext(ctx)
	if filter.HubID != nil {
		query = query.Where("hub_id = ?", *filter.HubID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	records := make([]*entity.Record, len(models))
	for i := range models {
		records[i] = models[i].ToEntity()
	}
	return records, nil
}

// Update updates an existing record.
func (r *recordRepository) Update(ctx context.Context, record *entity.Record) error {
	return r.db.WithContext(ctx).Save(model.RecordFromEntity(record)).Error
}

// Delete removes a record.
func (r *recordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.RecordModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecordNotFound
	}
	return nil
}

// Count returns the number of records.
func (r *recordRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.RecordModel{}).Count(&count).Error
	return count, err
}

// categoryCount is a raw row of the records-by-category query.
type categoryCount struct {
	Category string
	Total    int64
}

// CountByCategory returns the number of records per category.
func (r *recordRepository) CountByCategory(ctx context.Context) (map[string]int64, error) {
	var rows []categoryCount
	result := r.db.WithContext(ctx).
		Model(&model.RecordModel{}).
		Select("category, COUNT(*) AS total").
		Group("category").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Total
	}
	return counts, nil
}

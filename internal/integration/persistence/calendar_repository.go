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

// holidayRepository implements the adapter.HolidayRepository interface.
type holidayRepository struct {
	db *gorm.DB
}

// NewHolidayRepository creates a new holiday repository instance.
func NewHolidayRepository(db *gorm.DB) adapter.HolidayRepository {
	return &holidayRepository{db: db}
}

// Create creates a new custom holiday.
func (r *holidayRepository) Create(ctx context.Context, holiday *entity.Holiday) error {
	result := r.db.WithContext(ctx).Create(model.HolidayFromEntity(holiday))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrHolidayDateExists
		}
		return result.Error
	}
	return nil
}

// FindByID retrieves a custom holiday of the hub.
func (r *holidayRepository) FindByID(ctx context.Context, hubID, id uuid.UUID) (*entity.Holiday, error) {
	var holidayModel model.HolidayModel
	result := r.db.WithContext(ctx).Where("id = ? AND hub_id = ?", id, hubID).First(&holidayModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrHolidayNotFound
		}
		return nil, result.Error
	}
	return holidayModel.ToEntity(), nil
}

// ListByHubAndRange returns the custom holidays in [start, end] ordered by date.
func (r *holidayRepository) ListByHubAndRange(ctx context.Context, hubID uuid.UUID, start, end string) ([]*entity.Holiday, error) {
	var models []model.HolidayModel
	result := r.db.WithContext(ctx).
		Where("hub_id = ? AND date >= ? AND date <= ?", hubID, start, end).
		Order("date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	holidays := make([]*entity.Holiday, len(models))
	for i := range models {
		holidays[i] = models[i].ToEntity()
	}
	return holidays, nil
}

// ExistsByDate checks if the hub has a custom holiday on date.
func (r *holidayRepository) ExistsByDate(ctx context.Context, hubID uuid.UUID, date string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.HolidayModel{}).
		Where("hub_id = ? AND date = ?", hubID, date).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Delete removes a custom holiday of the hub.
func (r *holidayRepository) Delete(ctx context.Context, hubID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.HolidayModel{}, "id = ? AND hub_id = ?", id, hubID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrHolidayNotFound
	}
	return nil
}

// timeRestrictionRepository implements the adapter.TimeRestrictionRepository interface.
type timeRestrictionRepository struct {
	db *gorm.DB
}

// NewTimeRestrictionRepository creates a new time restriction repository instance.
func NewTimeRestrictionRepository(db *gorm.DB) adapter.TimeRestrictionRepository {
	return &timeRestrictionRepository{db: db}
}

// Create creates a new time restriction.
func (r *timeRestrictionRepository) Create(ctx context.Context, restriction *entity.TimeRestriction) error {
	return r.db.WithContext(ctx).Create(model.TimeRestrictionFromEntity(restriction)).Error
}

// FindByID retrieves a time restriction of the hub.
func (r *timeRestrictionRepository) FindByID(ctx context.Context, hubID, id uuid.UUID) (*entity.TimeRestriction, error) {
	var restrictionModel model.TimeRestrictionModel
	result := r.db.WithContext(ctx).Where("id = ? AND hub_id = ?", id, hubID).First(&restrictionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTimeRestrictionNotFound
		}
		return nil, result.Error
	}
	return restrictionModel.ToEntity(), nil
}

// ListByHub returns the hub restrictions in creation order.
func (r *timeRestrictionRepository) ListByHub(ctx context.Context, hubID uuid.UUID) ([]*entity.TimeRestriction, error) {
	var models []model.TimeRestrictionModel
	if err := r.db.WithContext(ctx).Where("hub_id = ?", hubID).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	restrictions := make([]*entity.TimeRestriction, len(models))
	for i := range models {
		restrictions[i] = models[i].ToEntity()
	}
	return restrictions, nil
}

// Update updates an existing time restriction.
func (r *timeRestrictionRepository) Update(ctx context.Context, restriction *entity.TimeRestriction) error {
	return r.db.WithContext(ctx).Save(model.TimeRestrictionFromEntity(restriction)).Error
}

// Delete removes a time restriction of the hub.
func (r *timeRestrictionRepository) Delete(ctx context.Context, hubID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TimeRestrictionModel{}, "id = ? AND hub_id = ?", id, hubID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTimeRestrictionNotFound
	}
	return nil
}

// CountByHub returns the number of restrictions of the hub.
func (r *timeRestrictionRepository) CountByHub(ctx context.Context, hubID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TimeRestrictionModel{}).Where("hub_id = ?", hubID).Count(&count).Error
	return count, err
}

package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
	"github.com/hubmanager/backend/internal/integration/persistence/model"
)

// upsertClause builds a single INSERT ... ON CONFLICT (key) DO UPDATE statement.
// The key columns must be backed by a unique index.
func upsertClause(keys []string, updates []string) clause.OnConflict {
	columns := make([]clause.Column, len(keys))
	for i, key := range keys {
		columns[i] = clause.Column{Name: key}
	}
	return clause.OnConflict{
		Columns:   columns,
		DoUpdates: clause.AssignmentColumns(updates),
	}
}

// attendanceRepository implements the adapter.AttendanceRepository interface.
type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository instance.
func NewAttendanceRepository(db *gorm.DB) adapter.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Upsert writes the entry keyed by (employee_id, hub_id, date) and returns the stored row.
func (r *attendanceRepository) Upsert(ctx context.Context, entry *entity.AttendanceEntry) (*entity.AttendanceEntry, error) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.UpdatedAt = time.Now().UTC()

	attendanceModel := model.AttendanceFromEntity(entry)
	result := r.db.WithContext(ctx).
		Clauses(upsertClause(
			[]string{"employee_id", "hub_id", "date"},
			[]string{"status", "extra_hours", "diet", "updated_at"},
		)).
		Create(attendanceModel)
	if result.Error != nil {
		return nil, result.Error
	}

	var stored model.AttendanceModel
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND hub_id = ? AND date = ?", entry.EmployeeID, entry.HubID, entry.Date).
		First(&stored).Error
	if err != nil {
		return nil, err
	}
	return stored.ToEntity(), nil
}

// ListByHubAndRange returns attendance in [start, end] ordered by date.
func (r *attendanceRepository) ListByHubAndRange(ctx context.Context, hubID uuid.UUID, start, end string) ([]*entity.AttendanceEntry, error) {
	var models []model.AttendanceModel
	result := r.db.WithContext(ctx).
		Where("hub_id = ? AND date >= ? AND date <= ?", hubID, start, end).
		Order("date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	entries := make([]*entity.AttendanceEntry, len(models))
	for i := range models {
		entries[i] = models[i].ToEntity()
	}
	return entries, nil
}

// liquidationRepository implements the adapter.LiquidationRepository interface.
type liquidationRepository struct {
	db *gorm.DB
}

// NewLiquidationRepository creates a new liquidation repository instance.
func NewLiquidationRepository(db *gorm.DB) adapter.LiquidationRepository {
	return &liquidationRepository{db: db}
}

// Upsert writes the entry keyed by (route_id, date). Diferencia is rewritten with its inputs.
func (r *liquidationRepository) Upsert(ctx context.Context, entry *entity.LiquidationEntry) (*entity.LiquidationEntry, error) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	now := time.Now().UTC()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	result := r.db.WithContext(ctx).
		Clauses(upsertClause(
			[]string{"route_id", "date"},
			[]string{"hub_id", "repartidor", "metalico", "ingreso", "diferencia", "comentario", "updated_at"},
		)).
		Create(model.LiquidationFromEntity(entry))
	if result.Error != nil {
		return nil, result.Error
	}

	var stored model.LiquidationModel
	if err := r.db.WithContext(ctx).Where("route_id = ? AND date = ?", entry.RouteID, entry.Date).First(&stored).Error; err != nil {
		return nil, err
	}
	return stored.ToEntity(), nil
}

// FindByID retrieves a liquidation entry of the hub.
func (r *liquidationRepository) FindByID(ctx context.Context, hubID, id uuid.UUID) (*entity.LiquidationEntry, error) {
	var liquidationModel model.LiquidationModel
	result := r.db.WithContext(ctx).Where("id = ? AND hub_id = ?", id, hubID).First(&liquidationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrLiquidationNotFound
		}
		return nil, result.Error
	}
	return liquidationModel.ToEntity(), nil
}

// ListByHubAndRange returns liquidations in [start, end] ordered by date.
func (r *liquidationRepository) ListByHubAndRange(ctx context.Context, hubID uuid.UUID, start, end string, routeID *uuid.UUID) ([]*entity.LiquidationEntry, error) {
	var models []model.LiquidationModel
	query := r.db.WithContext(ctx).Where("hub_id = ? AND date >= ? AND date <= ?", hubID, start, end)
	if routeID != nil {
		query = query.Where("route_id = ?", *routeID)
	}
	if err := query.Order("date ASC, created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	entries := make([]*entity.LiquidationEntry, len(models))
	for i := range models {
		entries[i] = models[i].ToEntity()
	}
	return entries, nil
}

// Delete removes a liquidation entry of the hub.
func (r *liquidationRepository) Delete(ctx context.Context, hubID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.LiquidationModel{}, "id = ? AND hub_id = ?", id, hubID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrLiquidationNotFound
	}
	return nil
}

// kilosLitrosRepository implements the adapter.KilosLitrosRepository interface.
type kilosLitrosRepository struct {
	db *gorm.DB
}

// NewKilosLitrosRepository creates a new kilos/litros repository instance.
func NewKilosLitrosRepository(db *gorm.DB) adapter.KilosLitrosRepository {
	return &kilosLitrosRepository{db: db}
}

// Upsert writes the entry keyed by (route_id, date, repartidor).
func (r *kilosLitrosRepository) Upsert(ctx context.Context, entry *entity.KilosLitrosEntry) (*entity.KilosLitrosEntry, error) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	now := time.Now().UTC()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	result := r.db.WithContext(ctx).
		Clauses(upsertClause(
			[]string{"route_id", "date", "repartidor"},
			[]string{"hub_id", "clientes", "kilos", "litros", "bultos", "updated_at"},
		)).
		Create(model.KilosLitrosFromEntity(entry))
	if result.Error != nil {
		return nil, result.Error
	}

	var stored model.KilosLitrosModel
	err := r.db.WithContext(ctx).
		Where("route_id = ? AND date = ? AND repartidor = ?", entry.RouteID, entry.Date, entry.Repartidor).
		First(&stored).Error
	if err != nil {
		return nil, err
	}
	return stored.ToEntity(), nil
}

// FindByID retrieves a kilos/litros entry of the hub.
func (r *kilosLitrosRepository) FindByID(ctx context.Context, hubID, id uuid.UUID) (*entity.KilosLitrosEntry, error) {
	var kilosModel model.KilosLitrosModel
	result := r.db.WithContext(ctx).Where("id = ? AND hub_id = ?", id, hubID).First(&kilosModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrKilosLitrosNotFound
		}
		return nil, result.Error
	}
	return kilosModel.ToEntity(), nil
}

// ListByHubAndRange returns kilos/litros entries in [start, end] ordered by date.
func (r *kilosLitrosRepository) ListByHubAndRange(ctx context.Context, hubID uuid.UUID, start, end string, routeID *uuid.UUID) ([]*entity.KilosLitrosEntry, error) {
	var models []model.KilosLitrosModel
	query := r.db.WithContext(ctx).Where("hub_id = ? AND date >= ? AND date <= ?", hubID, start, end)
	if routeID != nil {
		query = query.Where("route_id = ?", *routeID)
	}
	if err := query.Order("date ASC, repartidor ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	entries := make([]*entity.KilosLitrosEntry, len(models))
	for i := range models {
		entries[i] = models[i].ToEntity()
	}
	return entries, nil
}

// Delete removes a kilos/litros entry of the hub.
func (r *kilosLitrosRepository) Delete(ctx context.Context, hubID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.KilosLitrosModel{}, "id = ? AND hub_id = ?", id, hubID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrKilosLitrosNotFound
	}
	return nil
}

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

// vehicleRepository implements the adapter.VehicleRepository interface.
type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository instance.
func NewVehicleRepository(db *gorm.DB) adapter.VehicleRepository {
	return &vehicleRepository{db: db}
}

// Create creates a new vehicle.
func (r *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	result := r.db.WithContext(ctx).Create(model.VehicleFromEntity(vehicle))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrPlateExists
		}
		return result.Error
	}
	return nil
}

// FindByID retrieves a vehicle of the hub.
func (r *vehicleRepository) FindByID(ctx context.Context, hubID, id uuid.UUID) (*entity.Vehicle, error) {
	var vehicleModel model.VehicleModel
	result := r.db.WithContext(ctx).Where("id = ? AND hub_id = ?", id, hubID).First(&vehicleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrVehicleNotFound
		}
		return nil, result.Error
	}
	return vehicleModel.ToEntity(), nil
}

// ListByHub returns the hub vehicles ordered by plate.
func (r *vehicleRepository) ListByHub(ctx context.Context, hubID uuid.UUID) ([]*entity.Vehicle, error) {
	var models []model.VehicleModel
	if err := r.db.WithContext(ctx).Where("hub_id = ?", hubID).Order("plate ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	vehicles := make([]*entity.Vehicle, len(models))
	for i := range models {
		vehicles[i] = models[i].ToEntity()
	}
	return vehicles, nil
}

// Update updates an existing vehicle.
func (r *vehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	result := r.db.WithContext(ctx).Save(model.VehicleFromEntity(vehicle))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrPlateExists
		}
		return result.Error
	}
	return nil
}

// Delete removes the vehicle and its incidents.
func (r *vehicleRepository) Delete(ctx context.Context, hubID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.VehicleModel{}, "id = ? AND hub_id = ?", id, hubID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrVehicleNotFound
		}
		return tx.Where("vehicle_id = ?", id).Delete(&model.IncidentModel{}).Error
	})
}

// ExistsByPlate checks plates across every hub.
func (r *vehicleRepository) ExistsByPlate(ctx context.Context, plate string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.VehicleModel{}).Where("plate = ?", plate)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// incidentRepository implements the adapter.IncidentRepository interface.
type incidentRepository struct {
	db *gorm.DB
}

// NewIncidentRepository creates a new incident repository instance.
func NewIncidentRepository(db *gorm.DB) adapter.IncidentRepository {
	return &incidentRepository{db: db}
}

// Create creates a new incident.
func (r *incidentRepository) Create(ctx context.Context, incident *entity.Incident) error {
	return r.db.WithContext(ctx).Create(model.IncidentFromEntity(incident)).Error
}

// FindByID retrieves an incident of the hub.
func (r *incidentRepository) FindByID(ctx context.Context, hubID, id uuid.UUID) (*entity.Incident, error) {
	var incidentModel model.IncidentModel
	result := r.db.WithContext(ctx).Where("id = ? AND hub_id = ?", id, hubID).First(&incidentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrIncidentNotFound
		}
		return nil, result.Error
	}
	return incidentModel.ToEntity(), nil
}

// ListByHub returns the hub incidents, newest first.
func (r *incidentRepository) ListByHub(ctx context.Context, hubID uuid.UUID, vehicleID *uuid.UUID) ([]*entity.Incident, error) {
	var models []model.IncidentModel
	query := r.db.WithContext(ctx).Where("hub_id = ?", hubID)
	if vehicleID != nil {
		query = query.Where("vehicle_id = ?", *vehicleID)
	}
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	incidents := make([]*entity.Incident, len(models))
	for i := range models {
		incidents[i] = models[i].ToEntity()
	}
	return incidents, nil
}

// Update updates an existing incident.
func (r *incidentRepository) Update(ctx context.Context, incident *entity.Incident) error {
	return r.db.WithContext(ctx).Save(model.IncidentFromEntity(incident)).Error
}

// Delete removes an incident of the hub.
func (r *incidentRepository) Delete(ctx context.Context, hubID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.IncidentModel{}, "id = ? AND hub_id = ?", id, hubID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrIncidentNotFound
	}
	return nil
}

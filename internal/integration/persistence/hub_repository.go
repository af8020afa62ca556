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

// hubScopedTables lists every table carrying a hub_id, children before parents.
var hubScopedTables = []interface{}{
	&model.AttendanceModel{},
	&model.EmployeeModel{},
	&model.LiquidationModel{},
	&model.KilosLitrosModel{},
	&model.RouteModel{},
	&model.IncidentModel{},
	&model.VehicleModel{},
	&model.PurchaseModel{},
	&model.ContactModel{},
	&model.HolidayModel{},
	&model.TimeRestrictionModel{},
	&model.RecordModel{},
}

// hubRepository implements the adapter.HubRepository interface.
type hubRepository struct {
	db *gorm.DB
}

// NewHubRepository creates a new hub repository instance.
func NewHubRepository(db *gorm.DB) adapter.HubRepository {
	return &hubRepository{db: db}
}

// Create creates a new hub in the database.
func (r *hubRepository) Create(ctx context.Context, hub *entity.Hub) error {
	return r.db.WithContext(ctx).Create(model.HubFromEntity(hub)).Error
}

// FindByID retrieves a hub by its ID.
func (r *hubRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hub, error) {
	var hubModel model.HubModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&hubModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrHubNotFound
		}
		return nil, result.Error
	}
	return hubModel.ToEntity(), nil
}

// FindByName retrieves a hub by its exact name.
func (r *hubRepository) FindByName(ctx context.Context, name string) (*entity.Hub, error) {
	var hubModel model.HubModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&hubModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrHubNotFound
		}
		return nil, result.Error
	}
	return hubModel.ToEntity(), nil
}

// List returns every hub ordered by name.
func (r *hubRepository) List(ctx context.Context) ([]*entity.Hub, error) {
	var models []model.HubModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	hubs := make([]*entity.Hub, len(models))
	for i := range models {
		hubs[i] = models[i].ToEntity()
	}
	return hubs, nil
}

// Update updates an existing hub.
func (r *hubRepository) Update(ctx context.Context, hub *entity.Hub) error {
	return r.db.WithContext(ctx).Save(model.HubFromEntity(hub)).Error
}

// Delete removes the hub and every scoped record in one transaction.
func (r *hubRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range hubScopedTables {
			if err := tx.Where("hub_id = ?", id).Delete(table).Error; err != nil {
				return err
			}
		}
		result := tx.Delete(&model.HubModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrHubNotFound
		}
		return nil
	})
}

// Count returns the number of hubs.
func (r *hubRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.HubModel{}).Count(&count).Error
	return count, err
}

// employeeRepository implements the adapter.EmployeeRepository interface.
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository instance.
func NewEmployeeRepository(db *gorm.DB) adapter.EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create creates a new employee.
func (r *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	return r.db.WithContext(ctx).Create(model.EmployeeFromEntity(employee)).Error
}

// FindByID retrieves an employee of the hub.
func (r *employeeRepository) FindByID(ctx context.Context, hubID, id uuid.UUID) (*entity.Employee, error) {
	var employeeModel model.EmployeeModel
	result := r.db.WithContext(ctx).Where("id = ? AND hub_id = ?", id, hubID).First(&employeeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEmployeeNotFound
		}
		return nil, result.Error
	}
	return employeeModel.ToEntity(), nil
}

// ListByHub returns the hub employees in creation order.
func (r *employeeRepository) ListByHub(ctx context.Context, hubID uuid.UUID) ([]*entity.Employee, error) {
	var models []model.EmployeeModel
	result := r.db.WithContext(ctx).Where("hub_id = ?", hubID).Order("created_at ASC, name ASC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	employees := make([]*entity.Employee, len(models))
	for i := range models {
		employees[i] = models[i].ToEntity()
	}
	return employees, nil
}

// Update updates an existing employee.
func (r *employeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	return r.db.WithContext(ctx).Save(model.EmployeeFromEntity(employee)).Error
}

// Delete removes the employee and its attendance.
func (r *employeeRepository) Delete(ctx context.Context, hubID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.EmployeeModel{}, "id = ? AND hub_id = ?", id, hubID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrEmployeeNotFound
		}
		return tx.Where("employee_id = ?", id).Delete(&model.AttendanceModel{}).Error
	})
}

// Count returns the number of employees across hubs.
func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.EmployeeModel{}).Count(&count).Error
	return count, err
}

// routeRepository implements the adapter.RouteRepository interface.
type routeRepository struct {
	db *gorm.DB
}

// NewRouteRepository creates a new route repository instance.
func NewRouteRepository(db *gorm.DB) adapter.RouteRepository {
	return &routeRepository{db: db}
}

// Create creates a new route.
func (r *routeRepository) Create(ctx context.Context, route *entity.Route) error {
	result := r.db.WithContext(ctx).Create(model.RouteFromEntity(route))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrRouteNameExists
		}
		return result.Error
	}
	return nil
}

// FindByID retrieves a route of the hub.
func (r *routeRepository) FindByID(ctx context.Context, hubID, id uuid.UUID) (*entity.Route, error) {
	var routeModel model.RouteModel
	result := r.db.WithContext(ctx).Where("id = ? AND hub_id = ?", id, hubID).First(&routeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRouteNotFound
		}
		return nil, result.Error
	}
	return routeModel.ToEntity(), nil
}

// ListByHub returns the hub routes ordered by name.
func (r *routeRepository) ListByHub(ctx context.Context, hubID uuid.UUID) ([]*entity.Route, error) {
	var models []model.RouteModel
	if err := r.db.WithContext(ctx).Where("hub_id = ?", hubID).Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	routes := make([]*entity.Route, len(models))
	for i := range models {
		routes[i] = models[i].ToEntity()
	}
	return routes, nil
}

// ExistsByName checks if the hub already has a route with that name.
func (r *routeRepository) ExistsByName(ctx context.Context, hubID uuid.UUID, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.RouteModel{}).
		Where("hub_id = ? AND name = ?", hubID, name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Delete removes the route and its dated entries.
func (r *routeRepository) Delete(ctx context.Context, hubID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.RouteModel{}, "id = ? AND hub_id = ?", id, hubID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrRouteNotFound
		}
		if err := tx.Where("route_id = ?", id).Delete(&model.LiquidationModel{}).Error; err != nil {
			return err
		}
		return tx.Where("route_id = ?", id).Delete(&model.KilosLitrosModel{}).Error
	})
}

// contactRepository implements the adapter.ContactRepository interface.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository instance.
func NewContactRepository(db *gorm.DB) adapter.ContactRepository {
	return &contactRepository{db: db}
}

// Create creates a new contact.
func (r *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	return r.db.WithContext(ctx).Create(model.ContactFromEntity(contact)).Error
}

// FindByID retrieves a contact of the hub.
func (r *contactRepository) FindByID(ctx context.Context, hubID, id uuid.UUID) (*entity.Contact, error) {
	var contactModel model.ContactModel
	result := r.db.WithContext(ctx).Where("id = ? AND hub_id = ?", id, hubID).First(&contactModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrContactNotFound
		}
		return nil, result.Error
	}
	return contactModel.ToEntity(), nil
}

// ListByHub returns the hub contacts ordered by name.
func (r *contactRepository) ListByHub(ctx context.Context, hubID uuid.UUID) ([]*entity.Contact, error) {
	var models []model.ContactModel
	if err := r.db.WithContext(ctx).Where("hub_id = ?", hubID).Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	contacts := make([]*entity.Contact, len(models))
	for i := range models {
		contacts[i] = models[i].ToEntity()
	}
	return contacts, nil
}

// Update updates an existing contact.
func (r *contactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	return r.db.WithContext(ctx).Save(model.ContactFromEntity(contact)).Error
}

// Delete removes a contact of the hub.
func (r *contactRepository) Delete(ctx context.Context, hubID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ContactModel{}, "id = ? AND hub_id = ?", id, hubID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrContactNotFound
	}
	return nil
}

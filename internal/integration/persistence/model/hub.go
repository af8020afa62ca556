package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/domain/entity"
)

// HubModel represents the hubs table in the database.
type HubModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(150);not null;index"`
	Description string    `gorm:"type:text"`
	Location    string    `gorm:"type:varchar(150)"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the HubModel.
func (HubModel) TableName() string {
	return "hubs"
}

// ToEntity converts a HubModel to a domain Hub entity.
func (m *HubModel) ToEntity() *entity.Hub {
	return &entity.Hub{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Location:    m.Location,
		CreatedAt:   m.CreatedAt,
	}
}

// HubFromEntity creates a HubModel from a domain Hub entity.
func HubFromEntity(hub *entity.Hub) *HubModel {
	return &HubModel{
		ID:          hub.ID,
		Name:        hub.Name,
		Description: hub.Description,
		Location:    hub.Location,
		CreatedAt:   hub.CreatedAt,
	}
}

// EmployeeModel represents the employees table in the database.
type EmployeeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	HubID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(150);not null"`
	Position  string    `gorm:"type:varchar(150)"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the EmployeeModel.
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToEntity converts an EmployeeModel to a domain Employee entity.
func (m *EmployeeModel) ToEntity() *entity.Employee {
	return &entity.Employee{
		ID:        m.ID,
		HubID:     m.HubID,
		Name:      m.Name,
		Position:  m.Position,
		CreatedAt: m.CreatedAt,
	}
}

// EmployeeFromEntity creates an EmployeeModel from a domain Employee entity.
func EmployeeFromEntity(e *entity.Employee) *EmployeeModel {
	return &EmployeeModel{
		ID:        e.ID,
		HubID:     e.HubID,
		Name:      e.Name,
		Position:  e.Position,
		CreatedAt: e.CreatedAt,
	}
}

// RouteModel represents the routes table. Names are unique per hub.
type RouteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	HubID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_routes_hub_name,priority:1"`
	Name      string    `gorm:"type:varchar(150);not null;uniqueIndex:idx_routes_hub_name,priority:2"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the RouteModel.
func (RouteModel) TableName() string {
	return "routes"
}

// ToEntity converts a RouteModel to a domain Route entity.
func (m *RouteModel) ToEntity() *entity.Route {
	return &entity.Route{
		ID:        m.ID,
		HubID:     m.HubID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

// RouteFromEntity creates a RouteModel from a domain Route entity.
func RouteFromEntity(r *entity.Route) *RouteModel {
	return &RouteModel{
		ID:        r.ID,
		HubID:     r.HubID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
	}
}

// ContactModel represents the contacts table in the database.
type ContactModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	HubID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(150);not null"`
	Position  string    `gorm:"type:varchar(150)"`
	Phone     string    `gorm:"type:varchar(40)"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ContactModel.
func (ContactModel) TableName() string {
	return "contacts"
}

// ToEntity converts a ContactModel to a domain Contact entity.
func (m *ContactModel) ToEntity() *entity.Contact {
	return &entity.Contact{
		ID:        m.ID,
		HubID:     m.HubID,
		Name:      m.Name,
		Position:  m.Position,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
	}
}

// ContactFromEntity creates a ContactModel from a domain Contact entity.
func ContactFromEntity(c *entity.Contact) *ContactModel {
	return &ContactModel{
		ID:        c.ID,
		HubID:     c.HubID,
		Name:      c.Name,
		Position:  c.Position,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hubmanager/backend/internal/domain/entity"
)

// VehicleModel represents the vehicles table. Plates are unique across hubs.
type VehicleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	HubID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Plate       string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	VehicleType string    `gorm:"type:varchar(30);not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the VehicleModel.
func (VehicleModel) TableName() string {
	return "vehicles"
}

// ToEntity converts a VehicleModel to a domain Vehicle entity.
func (m *VehicleModel) ToEntity() *entity.Vehicle {
	return &entity.Vehicle{
		ID:          m.ID,
		HubID:       m.HubID,
		Plate:       m.Plate,
		VehicleType: m.VehicleType,
		CreatedAt:   m.CreatedAt,
	}
}

// VehicleFromEntity creates a VehicleModel from a domain Vehicle entity.
func VehicleFromEntity(v *entity.Vehicle) *VehicleModel {
	return &VehicleModel{
		ID:          v.ID,
		HubID:       v.HubID,
		Plate:       v.Plate,
		VehicleType: v.VehicleType,
		CreatedAt:   v.CreatedAt,
	}
}

// IncidentModel represents the incidents table in the database.
// Date keeps the user supplied text; parsing happens at summary time.
type IncidentModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VehicleID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	HubID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title       string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Date        string          `gorm:"type:varchar(20);not null"`
	Cost        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Km          int             `gorm:"not null;default:0"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IncidentModel.
func (IncidentModel) TableName() string {
	return "incidents"
}

// ToEntity converts an IncidentModel to a domain Incident entity.
func (m *IncidentModel) ToEntity() *entity.Incident {
	return &entity.Incident{
		ID:          m.ID,
		VehicleID:   m.VehicleID,
		HubID:       m.HubID,
		Title:       m.Title,
		Description: m.Description,
		Date:        m.Date,
		Cost:        m.Cost,
		Km:          m.Km,
		CreatedAt:   m.CreatedAt,
	}
}

// IncidentFromEntity creates an IncidentModel from a domain Incident entity.
func IncidentFromEntity(i *entity.Incident) *IncidentModel {
	return &IncidentModel{
		ID:          i.ID,
		VehicleID:   i.VehicleID,
		HubID:       i.HubID,
		Title:       i.Title,
		Description: i.Description,
		Date:        i.Date,
		Cost:        i.Cost,
		Km:          i.Km,
		CreatedAt:   i.CreatedAt,
	}
}

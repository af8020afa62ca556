package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/domain/entity"
)

// HolidayModel represents the custom holidays table. Dates are unique per hub.
type HolidayModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	HubID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_holidays_hub_date,priority:1"`
	Date      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_holidays_hub_date,priority:2"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Type      string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the HolidayModel.
func (HolidayModel) TableName() string {
	return "holidays"
}

// ToEntity converts a HolidayModel to a domain Holiday entity.
func (m *HolidayModel) ToEntity() *entity.Holiday {
	return &entity.Holiday{
		ID:        m.ID,
		HubID:     m.HubID,
		Date:      m.Date,
		Name:      m.Name,
		Type:      entity.HolidayType(m.Type),
		CreatedAt: m.CreatedAt,
	}
}

// HolidayFromEntity creates a HolidayModel from a domain Holiday entity.
func HolidayFromEntity(h *entity.Holiday) *HolidayModel {
	return &HolidayModel{
		ID:        h.ID,
		HubID:     h.HubID,
		Date:      h.Date,
		Name:      h.Name,
		Type:      string(h.Type),
		CreatedAt: h.CreatedAt,
	}
}

// TimeRestrictionModel represents the time_restrictions table in the database.
type TimeRestrictionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	HubID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Zona      string    `gorm:"type:varchar(200);not null"`
	Horario   string    `gorm:"type:varchar(200)"`
	Dias      string    `gorm:"type:varchar(100)"`
	AplicaA   string    `gorm:"type:varchar(30);not null"`
	Notas     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the TimeRestrictionModel.
func (TimeRestrictionModel) TableName() string {
	return "time_restrictions"
}

// ToEntity converts a TimeRestrictionModel to a domain TimeRestriction entity.
func (m *TimeRestrictionModel) ToEntity() *entity.TimeRestriction {
	return &entity.TimeRestriction{
		ID:        m.ID,
		HubID:     m.HubID,
		Zona:      m.Zona,
		Horario:   m.Horario,
		Dias:      m.Dias,
		AplicaA:   entity.AplicaA(m.AplicaA),
		Notas:     m.Notas,
		CreatedAt: m.CreatedAt,
	}
}

// TimeRestrictionFromEntity creates a TimeRestrictionModel from a domain TimeRestriction entity.
func TimeRestrictionFromEntity(t *entity.TimeRestriction) *TimeRestrictionModel {
	return &TimeRestrictionModel{
		ID:        t.ID,
		HubID:     t.HubID,
		Zona:      t.Zona,
		Horario:   t.Horario,
		Dias:      t.Dias,
		AplicaA:   string(t.AplicaA),
		Notas:     t.Notas,
		CreatedAt: t.CreatedAt,
	}
}

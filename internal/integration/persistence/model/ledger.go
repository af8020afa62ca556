package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hubmanager/backend/internal/domain/entity"
)

// AttendanceModel represents the attendance table.
// (employee_id, hub_id, date) is the upsert key.
type AttendanceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_key,priority:1"`
	HubID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_key,priority:2;index:idx_attendance_hub_date,priority:1"`
	Date       string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_attendance_key,priority:3;index:idx_attendance_hub_date,priority:2"`
	Status     string    `gorm:"type:varchar(5);not null"`
	ExtraHours float64   `gorm:"not null;default:0"`
	Diet       int       `gorm:"not null;default:0"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the AttendanceModel.
func (AttendanceModel) TableName() string {
	return "attendance"
}

// ToEntity converts an AttendanceModel to a domain AttendanceEntry entity.
func (m *AttendanceModel) ToEntity() *entity.AttendanceEntry {
	return &entity.AttendanceEntry{
		ID:         m.ID,
		EmployeeID: m.EmployeeID,
		HubID:      m.HubID,
		Date:       m.Date,
		Status:     entity.AttendanceStatus(m.Status),
		ExtraHours: m.ExtraHours,
		Diet:       m.Diet,
		UpdatedAt:  m.UpdatedAt,
	}
}

// AttendanceFromEntity creates an AttendanceModel from a domain AttendanceEntry entity.
func AttendanceFromEntity(a *entity.AttendanceEntry) *AttendanceModel {
	return &AttendanceModel{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		HubID:      a.HubID,
		Date:       a.Date,
		Status:     string(a.Status),
		ExtraHours: a.ExtraHours,
		Diet:       a.Diet,
		UpdatedAt:  a.UpdatedAt,
	}
}

// LiquidationModel represents the liquidations table. (route_id, date) is the upsert key.
// Diferencia is written from the entity on every save and never updated on its own.
type LiquidationModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RouteID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_liquidations_key,priority:1"`
	HubID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_liquidations_hub_date,priority:1"`
	Date       string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_liquidations_key,priority:2;index:idx_liquidations_hub_date,priority:2"`
	Repartidor string          `gorm:"type:varchar(150)"`
	Metalico   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Ingreso    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Diferencia decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Comentario string          `gorm:"type:text"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the LiquidationModel.
func (LiquidationModel) TableName() string {
	return "liquidations"
}

// ToEntity converts a LiquidationModel to a domain LiquidationEntry entity.
func (m *LiquidationModel) ToEntity() *entity.LiquidationEntry {
	return &entity.LiquidationEntry{
		ID:         m.ID,
		RouteID:    m.RouteID,
		HubID:      m.HubID,
		Date:       m.Date,
		Repartidor: m.Repartidor,
		Metalico:   m.Metalico,
		Ingreso:    m.Ingreso,
		Comentario: m.Comentario,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// LiquidationFromEntity creates a LiquidationModel from a domain LiquidationEntry entity.
func LiquidationFromEntity(l *entity.LiquidationEntry) *LiquidationModel {
	return &LiquidationModel{
		ID:         l.ID,
		RouteID:    l.RouteID,
		HubID:      l.HubID,
		Date:       l.Date,
		Repartidor: l.Repartidor,
		Metalico:   l.Metalico,
		Ingreso:    l.Ingreso,
		Diferencia: l.Diferencia(),
		Comentario: l.Comentario,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

// KilosLitrosModel represents the kilos_litros table.
// (route_id, date, repartidor) is the upsert key.
type KilosLitrosModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	HubID      uuid.UUID `gorm:"type:uuid;not null;index:idx_kilos_litros_hub_date,priority:1"`
	RouteID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_kilos_litros_key,priority:1"`
	Date       string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_kilos_litros_key,priority:2;index:idx_kilos_litros_hub_date,priority:2"`
	Repartidor string    `gorm:"type:varchar(150);not null;default:'';uniqueIndex:idx_kilos_litros_key,priority:3"`
	Clientes   int       `gorm:"not null;default:0"`
	Kilos      float64   `gorm:"not null;default:0"`
	Litros     float64   `gorm:"not null;default:0"`
	Bultos     int       `gorm:"not null;default:0"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the KilosLitrosModel.
func (KilosLitrosModel) TableName() string {
	return "kilos_litros"
}

// ToEntity converts a KilosLitrosModel to a domain KilosLitrosEntry entity.
func (m *KilosLitrosModel) ToEntity() *entity.KilosLitrosEntry {
	return &entity.KilosLitrosEntry{
		ID:         m.ID,
		HubID:      m.HubID,
		RouteID:    m.RouteID,
		Date:       m.Date,
		Repartidor: m.Repartidor,
		Clientes:   m.Clientes,
		Kilos:      m.Kilos,
		Litros:     m.Litros,
		Bultos:     m.Bultos,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// KilosLitrosFromEntity creates a KilosLitrosModel from a domain KilosLitrosEntry entity.
func KilosLitrosFromEntity(k *entity.KilosLitrosEntry) *KilosLitrosModel {
	return &KilosLitrosModel{
		ID:         k.ID,
		HubID:      k.HubID,
		RouteID:    k.RouteID,
		Date:       k.Date,
		Repartidor: k.Repartidor,
		Clientes:   k.Clientes,
		Kilos:      k.Kilos,
		Litros:     k.Litros,
		Bultos:     k.Bultos,
		CreatedAt:  k.CreatedAt,
		UpdatedAt:  k.UpdatedAt,
	}
}

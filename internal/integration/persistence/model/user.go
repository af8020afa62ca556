// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/domain/entity"
)

// UserModel represents the user table in the database.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName     string    `gorm:"type:varchar(150);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	IsApproved   bool      `gorm:"not null;default:false;index"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		FullName:     m.FullName,
		PasswordHash: m.PasswordHash,
		IsAdmin:      m.IsAdmin,
		IsApproved:   m.IsApproved,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// UserFromEntity creates a UserModel from a domain User entity.
func UserFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:           user.ID,
		Email:        user.Email,
		FullName:     user.FullName,
		PasswordHash: user.PasswordHash,
		IsAdmin:      user.IsAdmin,
		IsApproved:   user.IsApproved,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// All returns every table model, in dependency order, for auto-migration.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&HubModel{},
		&EmployeeModel{},
		&RouteModel{},
		&ContactModel{},
		&VehicleModel{},
		&IncidentModel{},
		&AttendanceModel{},
		&LiquidationModel{},
		&KilosLitrosModel{},
		&HolidayModel{},
		&TimeRestrictionModel{},
		&PurchaseModel{},
		&RecordModel{},
		&EmailQueueModel{},
	}
}

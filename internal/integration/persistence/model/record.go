package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hubmanager/backend/internal/domain/entity"
)

// PurchaseModel represents the purchases table. Total is stored for reporting and
// always rewritten from price and quantity.
type PurchaseModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	HubID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Item           string          `gorm:"type:varchar(200);not null"`
	Specifications string          `gorm:"type:text"`
	Supplier       string          `gorm:"type:varchar(200)"`
	Price          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Quantity       int             `gorm:"not null;default:1"`
	Total          decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the PurchaseModel.
func (PurchaseModel) TableName() string {
	return "purchases"
}

// ToEntity converts a PurchaseModel to a domain Purchase entity.
func (m *PurchaseModel) ToEntity() *entity.Purchase {
	return &entity.Purchase{
		ID:             m.ID,
		HubID:          m.HubID,
		Item:           m.Item,
		Specifications: m.Specifications,
		Supplier:       m.Supplier,
		Price:          m.Price,
		Quantity:       m.Quantity,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// PurchaseFromEntity creates a PurchaseModel from a domain Purchase entity.
func PurchaseFromEntity(p *entity.Purchase) *PurchaseModel {
	return &PurchaseModel{
		ID:             p.ID,
		HubID:          p.HubID,
		Item:           p.Item,
		Specifications: p.Specifications,
		Supplier:       p.Supplier,
		Price:          p.Price,
		Quantity:       p.Quantity,
		Total:          p.Total(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// RecordModel represents the generic records table.
// Data is stored as a JSON object and FileData as base64 text.
type RecordModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	HubID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Category    string    `gorm:"type:varchar(100);not null;index"`
	Title       string    `gorm:"type:varchar(300);not null"`
	Description string    `gorm:"type:text"`
	Data        string    `gorm:"type:text;not null;default:'{}'"`
	FileName    string    `gorm:"type:varchar(300)"`
	FileData    string    `gorm:"type:text"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the RecordModel.
func (RecordModel) TableName() string {
	return "records"
}

// ToEntity converts a RecordModel to a domain Record entity.
func (m *RecordModel) ToEntity() *entity.Record {
	data := map[string]interface{}{}
	if m.Data != "" {
		if err := json.Unmarshal([]byte(m.Data), &data); err != nil {
			slog.Warn("Failed to unmarshal record data", "error", err, "record_id", m.ID)
		}
	}
	return &entity.Record{
		ID:          m.ID,
		HubID:       m.HubID,
		Category:    m.Category,
		Title:       m.Title,
		Description: m.Description,
		Data:        data,
		FileName:    m.FileName,
		FileData:    m.FileData,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// RecordFromEntity creates a RecordModel from a domain Record entity.
func RecordFromEntity(r *entity.Record) *RecordModel {
	data, err := json.Marshal(r.Data)
	if err != nil || r.Data == nil {
		if err != nil {
			slog.Error("Failed to marshal record data", "error", err, "record_id", r.ID)
		}
		data = []byte("{}")
	}
	return &RecordModel{
		ID:          r.ID,
		HubID:       r.HubID,
		Category:    r.Category,
		Title:       r.Title,
		Description: r.Description,
		Data:        string(data),
		FileName:    r.FileName,
		FileData:    r.FileData,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

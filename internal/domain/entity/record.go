package entity

import (
	"time"

	"github.com/google/uuid"
)

// Record is a generic categorized document of a hub with an optional inline attachment.
// FileData holds the base64 encoded file content.
type Record struct {
	ID          uuid.UUID
	HubID       uuid.UUID
	Category    string
	Title       string
	Description string
	Data        map[string]interface{}
	FileName    string
	FileData    string
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewRecord creates a new Record.
func NewRecord(hubID uuid.UUID, category, title, description string, data map[string]interface{}, createdBy uuid.UUID) *Record {
	now := time.Now().UTC()
	if data == nil {
		data = map[string]interface{}{}
	}
	return &Record{
		ID:          uuid.New(),
		HubID:       hubID,
		Category:    category,
		Title:       title,
		Description: description,
		Data:        data,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Attach stores a file inline on the record.
func (r *Record) Attach(fileName, encoded string) {
	r.FileName = fileName
	r.FileData = encoded
	r.UpdatedAt = time.Now().UTC()
}

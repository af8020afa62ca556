package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/domain/entity"
)

// EmailQueueModel is a row of the email outbox.
type EmailQueueModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Template       string    `gorm:"type:varchar(50);not null"`
	RecipientEmail string    `gorm:"type:varchar(255);not null;index"`
	RecipientName  string    `gorm:"type:varchar(255)"`
	Subject        string    `gorm:"type:varchar(500);not null"`
	Data           string    `gorm:"type:text;not null"`
	Status         string    `gorm:"type:varchar(20);not null;index:idx_email_queue_due,priority:1"`
	Attempts       int       `gorm:"not null"`
	MaxAttempts    int       `gorm:"not null"`
	LastError      string    `gorm:"type:text"`
	ProviderID     string    `gorm:"type:varchar(100)"`
	CreatedAt      time.Time `gorm:"not null"`
	NextAttemptAt  time.Time `gorm:"not null;index:idx_email_queue_due,priority:2"`
	ClaimedAt      *time.Time
	ProcessedAt    *time.Time
}

// TableName returns the table name for the EmailQueueModel.
func (EmailQueueModel) TableName() string {
	return "email_queue"
}

// ToEntity converts an EmailQueueModel to a domain EmailJob.
func (m *EmailQueueModel) ToEntity() *entity.EmailJob {
	data := map[string]string{}
	if m.Data != "" {
		if err := json.Unmarshal([]byte(m.Data), &data); err != nil {
			slog.Warn("Discarding unreadable email template data", "error", err, "job_id", m.ID)
		}
	}

	return &entity.EmailJob{
		ID:             m.ID,
		Template:       entity.EmailTemplate(m.Template),
		RecipientEmail: m.RecipientEmail,
		RecipientName:  m.RecipientName,
		Subject:        m.Subject,
		Data:           data,
		Status:         entity.EmailStatus(m.Status),
		Attempts:       m.Attempts,
		MaxAttempts:    m.MaxAttempts,
		LastError:      m.LastError,
		ProviderID:     m.ProviderID,
		CreatedAt:      m.CreatedAt,
		NextAttemptAt:  m.NextAttemptAt,
		ClaimedAt:      m.ClaimedAt,
		ProcessedAt:    m.ProcessedAt,
	}
}

// EmailQueueModelFromEntity creates an EmailQueueModel from a domain EmailJob.
func EmailQueueModelFromEntity(job *entity.EmailJob) *EmailQueueModel {
	data, err := json.Marshal(job.Data)
	if err != nil {
		data = []byte("{}")
	}

	return &EmailQueueModel{
		ID:             job.ID,
		Template:       string(job.Template),
		RecipientEmail: job.RecipientEmail,
		RecipientName:  job.RecipientName,
		Subject:        job.Subject,
		Data:           string(data),
		Status:         string(job.Status),
		Attempts:       job.Attempts,
		MaxAttempts:    job.MaxAttempts,
		LastError:      job.LastError,
		ProviderID:     job.ProviderID,
		CreatedAt:      job.CreatedAt,
		NextAttemptAt:  job.NextAttemptAt,
		ClaimedAt:      job.ClaimedAt,
		ProcessedAt:    job.ProcessedAt,
	}
}

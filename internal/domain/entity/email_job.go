package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailStatus is the delivery state of a queued email.
type EmailStatus string

const (
	EmailStatusPending    EmailStatus = "pending"
	EmailStatusProcessing EmailStatus = "processing"
	EmailStatusSent       EmailStatus = "sent"
	EmailStatusFailed     EmailStatus = "failed"
)

// EmailTemplate names the template an email is rendered with.
type EmailTemplate string

const (
	TemplateRegistrationPending EmailTemplate = "registration_pending"
	TemplateAccountApproved     EmailTemplate = "account_approved"
)

// DefaultEmailMaxAttempts bounds delivery attempts before a job is given up.
const DefaultEmailMaxAttempts = 3

// emailRetryDelays is indexed by the number of failed attempts so far.
var emailRetryDelays = []time.Duration{time.Minute, 5 * time.Minute, 15 * time.Minute}

// EmailJob is an account email waiting in the outbox.
type EmailJob struct {
	ID             uuid.UUID
	Template       EmailTemplate
	RecipientEmail string
	RecipientName  string
	Subject        string
	Data           map[string]string
	Status         EmailStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ProviderID     string
	CreatedAt      time.Time
	NextAttemptAt  time.Time
	ClaimedAt      *time.Time
	ProcessedAt    *time.Time
}

// NewEmailJob creates a pending job due immediately.
func NewEmailJob(template EmailTemplate, recipientEmail, recipientName, subject string, data map[string]string, now time.Time) *EmailJob {
	now = now.UTC()
	if data == nil {
		data = map[string]string{}
	}
	return &EmailJob{
		ID:             uuid.New(),
		Template:       template,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        subject,
		Data:           data,
		Status:         EmailStatusPending,
		MaxAttempts:    DefaultEmailMaxAttempts,
		CreatedAt:      now,
		NextAttemptAt:  now,
	}
}

// Delivered records a successful hand off to the provider.
func (j *EmailJob) Delivered(providerID string, now time.Time) {
	now = now.UTC()
	j.Status = EmailStatusSent
	j.ProviderID = providerID
	j.LastError = ""
	j.ProcessedAt = &now
}

// Failed records a delivery error. Permanent errors and exhausted jobs stop;
// anything else goes back to pending with a growing delay.
func (j *EmailJob) Failed(err error, permanent bool, now time.Time) {
	now = now.UTC()
	j.Attempts++
	j.LastError = err.Error()

	if permanent || j.Attempts >= j.MaxAttempts {
		j.Status = EmailStatusFailed
		j.ProcessedAt = &now
		return
	}

	delay := emailRetryDelays[len(emailRetryDelays)-1]
	if j.Attempts-1 < len(emailRetryDelays) {
		delay = emailRetryDelays[j.Attempts-1]
	}
	j.Status = EmailStatusPending
	j.ClaimedAt = nil
	j.NextAttemptAt = now.Add(delay)
}

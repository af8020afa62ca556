package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailJob_FailedBacksOffThenGivesUp(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	job := NewEmailJob(TemplateAccountApproved, "ana@hub.es", "Ana", "Cuenta aprobada", nil, now)
	require.NotNil(t, job.Data)

	job.Failed(errors.New("503"), false, now)
	assert.Equal(t, EmailStatusPending, job.Status)
	assert.Equal(t, now.Add(time.Minute), job.NextAttemptAt)

	job.Failed(errors.New("503"), false, now)
	assert.Equal(t, now.Add(5*time.Minute), job.NextAttemptAt)

	job.Failed(errors.New("503"), false, now)
	assert.Equal(t, EmailStatusFailed, job.Status)
	assert.Equal(t, 3, job.Attempts)
	require.NotNil(t, job.ProcessedAt)
}

func TestEmailJob_PermanentFailureStopsAtOnce(t *testing.T) {
	now := time.Now()
	job := NewEmailJob(TemplateRegistrationPending, "admin@hub.es", "", "Nuevo registro", nil, now)

	job.Failed(errors.New("invalid recipient"), true, now)

	assert.Equal(t, EmailStatusFailed, job.Status)
	assert.Equal(t, 1, job.Attempts)
	assert.Equal(t, "invalid recipient", job.LastError)
}

func TestEmailJob_Delivered(t *testing.T) {
	now := time.Now()
	job := NewEmailJob(TemplateAccountApproved, "ana@hub.es", "Ana", "Cuenta aprobada", nil, now)
	job.LastError = "503"

	job.Delivered("re_123", now)

	assert.Equal(t, EmailStatusSent, job.Status)
	assert.Equal(t, "re_123", job.ProviderID)
	assert.Empty(t, job.LastError)
}

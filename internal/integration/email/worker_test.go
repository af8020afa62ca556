package email_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/domain/entity"
	"github.com/hubmanager/backend/internal/integration/email"
	"github.com/hubmanager/backend/internal/integration/email/templates"
	"github.com/hubmanager/backend/internal/integration/persistence"
	"github.com/hubmanager/backend/internal/integration/persistence/model"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time          { return c.now }
func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newQueue(t *testing.T) adapter.EmailQueueRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return persistence.NewEmailQueueRepository(db)
}

func newWorker(t *testing.T, queue adapter.EmailQueueRepository, sender adapter.EmailSender, c *clock) *email.Worker {
	t.Helper()
	renderer, err := templates.NewRenderer()
	require.NoError(t, err)
	return email.NewWorker(queue, sender, renderer, email.DefaultWorkerConfig(), c.Now)
}

func startOfDay() *clock {
	return &clock{now: time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)}
}

func TestWorker_SendsQueuedApproval(t *testing.T) {
	ctx := context.Background()
	c := startOfDay()
	queue := newQueue(t)
	sender := email.NewRecordingSender()
	service := email.NewService(queue, "http://localhost:3000", c.Now)

	require.NoError(t, service.QueueAccountApprovedEmail(ctx, adapter.QueueAccountApprovedInput{
		UserEmail: "ana@hub.es",
		UserName:  "Ana",
	}))

	newWorker(t, queue, sender, c).ProcessNow(ctx)

	require.Len(t, sender.Sent(), 1)
	sent := sender.Sent()[0]
	assert.Equal(t, "ana@hub.es", sent.To)
	assert.Equal(t, "Tu cuenta ha sido aprobada - Hub Manager", sent.Subject)
	assert.Contains(t, sent.HTML, "http://localhost:3000/login")
	assert.Contains(t, sent.Text, "http://localhost:3000/login")

	jobs, err := queue.ListByRecipient(ctx, "ana@hub.es")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, entity.EmailStatusSent, jobs[0].Status)
	assert.Equal(t, "local-1", jobs[0].ProviderID)
	require.NotNil(t, jobs[0].ProcessedAt)
	assert.True(t, jobs[0].ProcessedAt.Equal(c.now))
}

func TestWorker_RetriesTemporaryFailuresAfterBackoff(t *testing.T) {
	ctx := context.Background()
	c := startOfDay()
	queue := newQueue(t)
	sender := email.NewRecordingSender()
	sender.FailWith(errors.New("503"), false)
	service := email.NewService(queue, "http://localhost:3000", c.Now)
	worker := newWorker(t, queue, sender, c)

	require.NoError(t, service.QueueRegistrationPendingEmail(ctx, adapter.QueueRegistrationPendingInput{
		AdminEmail:   "admin@hub.test",
		NewUserEmail: "new@hub.es",
		NewUserName:  "Nuevo",
	}))

	worker.ProcessNow(ctx)

	jobs, err := queue.ListByRecipient(ctx, "admin@hub.test")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, entity.EmailStatusPending, jobs[0].Status)
	assert.Equal(t, 1, jobs[0].Attempts)
	assert.True(t, jobs[0].NextAttemptAt.Equal(c.now.Add(time.Minute)))

	// Not due yet.
	sender.Reset()
	c.Advance(30 * time.Second)
	worker.ProcessNow(ctx)
	assert.Empty(t, sender.Sent())

	c.Advance(30 * time.Second)
	worker.ProcessNow(ctx)
	require.Len(t, sender.Sent(), 1)
	assert.Contains(t, sender.Sent()[0].Subject, "new@hub.es")

	jobs, err = queue.ListByRecipient(ctx, "admin@hub.test")
	require.NoError(t, err)
	assert.Equal(t, entity.EmailStatusSent, jobs[0].Status)
	assert.Equal(t, 1, jobs[0].Attempts)
}

func TestWorker_PermanentFailureStops(t *testing.T) {
	ctx := context.Background()
	c := startOfDay()
	queue := newQueue(t)
	sender := email.NewRecordingSender()
	sender.FailWith(errors.New("422 validation"), true)
	service := email.NewService(queue, "http://localhost:3000", c.Now)

	require.NoError(t, service.QueueAccountApprovedEmail(ctx, adapter.QueueAccountApprovedInput{UserEmail: "bad@hub.es"}))

	worker := newWorker(t, queue, sender, c)
	worker.ProcessNow(ctx)
	c.Advance(time.Hour)
	worker.ProcessNow(ctx)

	jobs, err := queue.ListByRecipient(ctx, "bad@hub.es")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, entity.EmailStatusFailed, jobs[0].Status)
	assert.Equal(t, 1, jobs[0].Attempts)
	assert.NotNil(t, jobs[0].ProcessedAt)
}

func TestEmailQueue_ClaimDueTakesEachJobOnce(t *testing.T) {
	ctx := context.Background()
	c := startOfDay()
	queue := newQueue(t)

	for i := 0; i < 3; i++ {
		job := entity.NewEmailJob(entity.TemplateAccountApproved, fmt.Sprintf("u%d@hub.es", i), "", "s", nil, c.now)
		require.NoError(t, queue.Enqueue(ctx, job))
	}
	future := entity.NewEmailJob(entity.TemplateAccountApproved, "later@hub.es", "", "s", nil, c.now.Add(time.Hour))
	require.NoError(t, queue.Enqueue(ctx, future))

	first, err := queue.ClaimDue(ctx, c.now, 2)
	require.NoError(t, err)
	assert.Len(t, first, 2)
	for _, job := range first {
		assert.Equal(t, entity.EmailStatusProcessing, job.Status)
		assert.NotNil(t, job.ClaimedAt)
	}

	second, err := queue.ClaimDue(ctx, c.now, 10)
	require.NoError(t, err)
	require.Len(t, second, 1)
	for _, job := range first {
		assert.NotEqual(t, job.ID, second[0].ID)
	}

	none, err := queue.ClaimDue(ctx, c.now, 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEmailQueue_ReleaseStaleAndPurgeSent(t *testing.T) {
	ctx := context.Background()
	c := startOfDay()
	queue := newQueue(t)

	stuck := entity.NewEmailJob(entity.TemplateAccountApproved, "stuck@hub.es", "", "s", nil, c.now)
	done := entity.NewEmailJob(entity.TemplateAccountApproved, "done@hub.es", "", "s", nil, c.now)
	require.NoError(t, queue.Enqueue(ctx, stuck))
	require.NoError(t, queue.Enqueue(ctx, done))

	claimed, err := queue.ClaimDue(ctx, c.now, 10)
	require.NoError(t, err)
	require.Len(t, claimed, 2)
	for _, job := range claimed {
		if job.RecipientEmail == "done@hub.es" {
			job.Delivered("re_1", c.now)
			require.NoError(t, queue.Save(ctx, job))
		}
	}

	released, err := queue.ReleaseStale(ctx, c.now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), released)

	again, err := queue.ClaimDue(ctx, c.now, 10)
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, "stuck@hub.es", again[0].RecipientEmail)

	purged, err := queue.PurgeSent(ctx, c.now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(0), purged)

	purged, err = queue.PurgeSent(ctx, c.now.AddDate(0, 0, 31))
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	left, err := queue.ListByRecipient(ctx, "done@hub.es")
	require.NoError(t, err)
	assert.Empty(t, left)
}

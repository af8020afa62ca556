package email

import (
	"context"
	"log/slog"
	"time"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
	"github.com/hubmanager/backend/internal/integration/email/templates"
)

const (
	// staleClaimAfter is how long a job may sit in processing before another worker may retake it.
	staleClaimAfter  = 10 * time.Minute
	maintenanceEvery = time.Hour
)

// WorkerConfig holds configuration for the email worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
	// RetentionDays is how long sent jobs stay in the outbox. Zero keeps them forever.
	RetentionDays int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval:  5 * time.Second,
		BatchSize:     10,
		RetentionDays: 30,
	}
}

// Worker claims due outbox jobs, renders them and hands them to the sender.
type Worker struct {
	queue           adapter.EmailQueueRepository
	sender          adapter.EmailSender
	renderer        *templates.Renderer
	config          WorkerConfig
	now             func() time.Time
	lastMaintenance time.Time
}

// NewWorker creates a new email worker. A nil clock means time.Now.
func NewWorker(
	queue adapter.EmailQueueRepository,
	sender adapter.EmailSender,
	renderer *templates.Renderer,
	config WorkerConfig,
	now func() time.Time,
) *Worker {
	defaults := DefaultWorkerConfig()
	if config.PollInterval <= 0 {
		config.PollInterval = defaults.PollInterval
	}
	if config.BatchSize <= 0 {
		config.BatchSize = defaults.BatchSize
	}
	if now == nil {
		now = time.Now
	}
	return &Worker{
		queue:    queue,
		sender:   sender,
		renderer: renderer,
		config:   config,
		now:      now,
	}
}

// Start runs the worker loop until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Email worker started",
		"poll_interval", w.config.PollInterval,
		"batch_size", w.config.BatchSize,
	)

	ticker := time.NewTicker(w.config.PollInterval)
	defer ticker.Stop()

	for {
		w.maintain(ctx)
		w.ProcessNow(ctx)

		select {
		case <-ctx.Done():
			slog.Info("Email worker shutting down")
			return
		case <-ticker.C:
		}
	}
}

// ProcessNow claims and delivers one batch synchronously.
func (w *Worker) ProcessNow(ctx context.Context) {
	jobs, err := w.queue.ClaimDue(ctx, w.now(), w.config.BatchSize)
	if err != nil {
		slog.Error("Failed to claim email jobs", "error", err)
		return
	}

	for _, job := range jobs {
		if ctx.Err() != nil {
			return
		}
		w.deliver(ctx, job)
	}
}

// maintain releases abandoned claims and purges old sent jobs, at most once per hour.
func (w *Worker) maintain(ctx context.Context) {
	now := w.now()
	if !w.lastMaintenance.IsZero() && now.Sub(w.lastMaintenance) < maintenanceEvery {
		return
	}
	w.lastMaintenance = now

	released, err := w.queue.ReleaseStale(ctx, now.Add(-staleClaimAfter))
	if err != nil {
		slog.Error("Failed to release stale email claims", "error", err)
	} else if released > 0 {
		slog.Warn("Released stale email claims", "count", released)
	}

	if w.config.RetentionDays <= 0 {
		return
	}
	purged, err := w.queue.PurgeSent(ctx, now.AddDate(0, 0, -w.config.RetentionDays))
	if err != nil {
		slog.Error("Failed to purge sent email jobs", "error", err)
		return
	}
	if purged > 0 {
		slog.Info("Purged sent email jobs", "count", purged)
	}
}

func (w *Worker) deliver(ctx context.Context, job *entity.EmailJob) {
	logger := slog.With(
		"job_id", job.ID,
		"template", job.Template,
		"attempt", job.Attempts+1,
	)

	msg, err := w.renderer.Render(job.Template, job.Data)
	if err != nil {
		w.fail(ctx, logger, job, err, true)
		return
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Name:    job.RecipientName,
		Subject: job.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		w.fail(ctx, logger, job, err, domainerror.IsPermanentEmailFailure(err))
		return
	}

	job.Delivered(result.ProviderID, w.now())
	if err := w.queue.Save(ctx, job); err != nil {
		logger.Error("Failed to record delivered email", "error", err)
		return
	}
	logger.Info("Email sent", "provider_id", result.ProviderID)
}

func (w *Worker) fail(ctx context.Context, logger *slog.Logger, job *entity.EmailJob, err error, permanent bool) {
	job.Failed(err, permanent, w.now())
	if saveErr := w.queue.Save(ctx, job); saveErr != nil {
		logger.Error("Failed to record email failure", "error", saveErr, "cause", err)
		return
	}

	if job.Status == entity.EmailStatusFailed {
		logger.Warn("Email job gave up", "attempts", job.Attempts, "error", err)
		return
	}
	logger.Info("Email job scheduled for retry", "next_attempt_at", job.NextAttemptAt, "error", err)
}

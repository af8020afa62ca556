package adapter

import (
	"context"
	"time"

	"github.com/hubmanager/backend/internal/domain/entity"
)

// EmailQueueRepository is the outbox the email worker drains.
type EmailQueueRepository interface {
	Enqueue(ctx context.Context, job *entity.EmailJob) error

	// ClaimDue moves up to limit pending jobs due at now to processing and returns them.
	// A job is handed to one caller only, even with several workers polling.
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]*entity.EmailJob, error)

	Save(ctx context.Context, job *entity.EmailJob) error

	// ReleaseStale returns jobs claimed before cutoff to pending. They belong to a worker that died mid batch.
	ReleaseStale(ctx context.Context, cutoff time.Time) (int64, error)

	// PurgeSent deletes sent jobs processed before cutoff.
	PurgeSent(ctx context.Context, cutoff time.Time) (int64, error)

	ListByRecipient(ctx context.Context, email string) ([]*entity.EmailJob, error)
}

package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
	"github.com/hubmanager/backend/internal/integration/persistence/model"
)

// emailQueueRepository implements the adapter.EmailQueueRepository interface.
type emailQueueRepository struct {
	db *gorm.DB
}

// NewEmailQueueRepository creates a new email queue repository instance.
func NewEmailQueueRepository(db *gorm.DB) adapter.EmailQueueRepository {
	return &emailQueueRepository{db: db}
}

func (r *emailQueueRepository) Enqueue(ctx context.Context, job *entity.EmailJob) error {
	if err := r.db.WithContext(ctx).Create(model.EmailQueueModelFromEntity(job)).Error; err != nil {
		return fmt.Errorf("%w: %w", domainerror.ErrEmailQueueFailed, err)
	}
	return nil
}

// ClaimDue flips each candidate with a conditional update. A row already taken by
// another worker affects zero rows and is skipped.
func (r *emailQueueRepository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]*entity.EmailJob, error) {
	now = now.UTC()
	var candidates []model.EmailQueueModel
	err := r.db.WithContext(ctx).
		Where("status = ? AND next_attempt_at <= ?", entity.EmailStatusPending, now).
		Order("next_attempt_at ASC").
		Limit(limit).
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	claimed := make([]*entity.EmailJob, 0, len(candidates))
	for i := range candidates {
		result := r.db.WithContext(ctx).
			Model(&model.EmailQueueModel{}).
			Where("id = ? AND status = ?", candidates[i].ID, entity.EmailStatusPending).
			Updates(map[string]interface{}{
				"status":     entity.EmailStatusProcessing,
				"claimed_at": now,
			})
		if result.Error != nil {
			return claimed, result.Error
		}
		if result.RowsAffected == 0 {
			continue
		}
		job := candidates[i].ToEntity()
		job.Status = entity.EmailStatusProcessing
		job.ClaimedAt = &now
		claimed = append(claimed, job)
	}
	return claimed, nil
}

func (r *emailQueueRepository) Save(ctx context.Context, job *entity.EmailJob) error {
	return r.db.WithContext(ctx).Save(model.EmailQueueModelFromEntity(job)).Error
}

func (r *emailQueueRepository) ReleaseStale(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.EmailQueueModel{}).
		Where("status = ? AND claimed_at < ?", entity.EmailStatusProcessing, cutoff.UTC()).
		Updates(map[string]interface{}{
			"status":     entity.EmailStatusPending,
			"claimed_at": nil,
		})
	return result.RowsAffected, result.Error
}

func (r *emailQueueRepository) PurgeSent(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("status = ? AND processed_at < ?", entity.EmailStatusSent, cutoff.UTC()).
		Delete(&model.EmailQueueModel{})
	return result.RowsAffected, result.Error
}

func (r *emailQueueRepository) ListByRecipient(ctx context.Context, email string) ([]*entity.EmailJob, error) {
	var models []model.EmailQueueModel
	err := r.db.WithContext(ctx).
		Where("recipient_email = ?", email).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	jobs := make([]*entity.EmailJob, len(models))
	for i := range models {
		jobs[i] = models[i].ToEntity()
	}
	return jobs, nil
}

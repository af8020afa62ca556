// Package email queues, renders and delivers the account lifecycle emails.
package email

import (
	"context"
	"fmt"
	"time"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

// Service writes emails to the outbox. Delivery happens in the Worker.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
	now        func() time.Time
}

// NewService creates a new email service. A nil clock means time.Now.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{queue: queue, appBaseURL: appBaseURL, now: now}
}

// QueueRegistrationPendingEmail tells an admin that someone registered and waits for review.
func (s *Service) QueueRegistrationPendingEmail(ctx context.Context, input adapter.QueueRegistrationPendingInput) error {
	reviewURL := input.ReviewURL
	if reviewURL == "" {
		reviewURL = s.appBaseURL + "/admin/users"
	}

	job := entity.NewEmailJob(
		entity.TemplateRegistrationPending,
		input.AdminEmail,
		input.AdminName,
		fmt.Sprintf("Nuevo registro pendiente: %s - Hub Manager", input.NewUserEmail),
		map[string]string{
			"admin_name":     input.AdminName,
			"new_user_email": input.NewUserEmail,
			"new_user_name":  input.NewUserName,
			"review_url":     reviewURL,
		},
		s.now(),
	)
	return s.enqueue(ctx, job)
}

// QueueAccountApprovedEmail tells a user their account can log in.
func (s *Service) QueueAccountApprovedEmail(ctx context.Context, input adapter.QueueAccountApprovedInput) error {
	loginURL := input.LoginURL
	if loginURL == "" {
		loginURL = s.appBaseURL + "/login"
	}

	job := entity.NewEmailJob(
		entity.TemplateAccountApproved,
		input.UserEmail,
		input.UserName,
		"Tu cuenta ha sido aprobada - Hub Manager",
		map[string]string{
			"user_name": input.UserName,
			"login_url": loginURL,
		},
		s.now(),
	)
	return s.enqueue(ctx, job)
}

func (s *Service) enqueue(ctx context.Context, job *entity.EmailJob) error {
	if err := s.queue.Enqueue(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			fmt.Sprintf("failed to queue %s email", job.Template),
			err,
		)
	}
	return nil
}

var _ adapter.EmailService = (*Service)(nil)

package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/domain/entity"
)

// ApproveUserOutput represents the output of a user approval.
type ApproveUserOutput struct {
	User *entity.User
}

// ApproveUserUseCase lets a pending user log in and notifies them by email.
type ApproveUserUseCase struct {
	userRepo     adapter.UserRepository
	emailService adapter.EmailService
	loginURL     string
}

// NewApproveUserUseCase creates a new ApproveUserUseCase instance.
func NewApproveUserUseCase(userRepo adapter.UserRepository, emailService adapter.EmailService, appBaseURL string) *ApproveUserUseCase {
	return &ApproveUserUseCase{
		userRepo:     userRepo,
		emailService: emailService,
		loginURL:     strings.TrimRight(appBaseURL, "/") + "/login",
	}
}

// Execute approves the user. Approving an approved user is a no-op without a second email.
func (uc *ApproveUserUseCase) Execute(ctx context.Context, userID uuid.UUID) (*ApproveUserOutput, error) {
	user, err := findUser(ctx, uc.userRepo, userID)
	if err != nil {
		return nil, err
	}
	if user.IsApproved {
		return &ApproveUserOutput{User: user}, nil
	}

	user.Approve()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to approve user: %w", err)
	}

	if uc.emailService != nil {
		err := uc.emailService.QueueAccountApprovedEmail(ctx, adapter.QueueAccountApprovedInput{
			UserEmail: user.Email,
			UserName:  user.FullName,
			LoginURL:  uc.loginURL,
		})
		if err != nil {
			slog.Error("Failed to queue approval email", "error", err, "user_id", user.ID)
		}
	}

	return &ApproveUserOutput{User: user}, nil
}

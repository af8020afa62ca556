// Package user contains the admin user management use cases.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

// ListUsersInput represents the input for listing users.
type ListUsersInput struct {
	PendingOnly bool
}

// ListUsersOutput represents the output of listing users.
type ListUsersOutput struct {
	Users []*entity.User
}

// ListUsersUseCase lists every user or only those pending approval.
type ListUsersUseCase struct {
	userRepo adapter.UserRepository
}

// NewListUsersUseCase creates a new ListUsersUseCase instance.
func NewListUsersUseCase(userRepo adapter.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo}
}

// Execute performs the listing.
func (uc *ListUsersUseCase) Execute(ctx context.Context, input ListUsersInput) (*ListUsersOutput, error) {
	users, err := uc.userRepo.List(ctx, input.PendingOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return &ListUsersOutput{Users: users}, nil
}

func findUser(ctx context.Context, userRepo adapter.UserRepository, id uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewUserNotFoundError()
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

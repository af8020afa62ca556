package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/application/usecase/scope"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

// DeleteUserInput represents the input for deleting or rejecting a user.
type DeleteUserInput struct {
	UserID  uuid.UUID
	ActorID uuid.UUID
}

// DeleteUserUseCase removes a user. Rejecting a registration uses the same path.
type DeleteUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewDeleteUserUseCase creates a new DeleteUserUseCase instance.
func NewDeleteUserUseCase(userRepo adapter.UserRepository) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo}
}

// Execute deletes the user. Admins cannot delete themselves.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, input DeleteUserInput) error {
	if input.UserID == input.ActorID {
		return domainerror.InvalidInput(
			domainerror.ErrCodeSelfDelete,
			"You cannot delete your own account",
			nil,
		)
	}

	if err := uc.userRepo.Delete(ctx, input.UserID); err != nil {
		return scope.MapNotFound(err, domainerror.ErrUserNotFound, func() *domainerror.DomainError {
			return domainerror.NotFound(domainerror.ErrCodeUserNotFound, "User not found", domainerror.ErrUserNotFound)
		}, "delete user")
	}
	return nil
}

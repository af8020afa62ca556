package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *entity.User
}

// LoginUserUseCase handles user login logic.
type LoginUserUseCase struct {
	userRepo  adapter.UserRepository
	passwords adapter.PasswordHasher
	tokens    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwords adapter.PasswordHasher,
	tokens adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:  userRepo,
		passwords: passwords,
		tokens:    tokens,
	}
}

// Execute performs the user login. Bad credentials are Unauthorized, unapproved users Forbidden.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	user, err := uc.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, newInvalidCredentialsError()
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !uc.passwords.Matches(user.PasswordHash, input.Password) {
		return nil, newInvalidCredentialsError()
	}

	if !user.IsApproved {
		return nil, domainerror.NewForbiddenError(
			domainerror.ErrCodeUserNotApproved,
			"Tu cuenta está pendiente de aprobación",
			domainerror.ErrUserNotApproved,
		)
	}

	token, err := uc.tokens.Issue(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginUserOutput{
		AccessToken: token.Token,
		ExpiresAt:   token.ExpiresAt,
		User:        user,
	}, nil
}

// newInvalidCredentialsError is shared by unknown email and wrong password to avoid enumeration.
func newInvalidCredentialsError() *domainerror.DomainError {
	return domainerror.NewUnauthorizedError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		domainerror.ErrInvalidCredentials,
	)
}

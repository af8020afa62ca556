// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

// RegistrationPendingMessage is returned to every new user.
const RegistrationPendingMessage = "Registro exitoso. Tu cuenta está pendiente de aprobación por un administrador."

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Email    string
	FullName string
	Password string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	Message string
	User    *entity.User
}

// RegisterUserUseCase handles user registration. New users cannot log in until approved.
type RegisterUserUseCase struct {
	userRepo     adapter.UserRepository
	passwords    adapter.PasswordHasher
	emailService adapter.EmailService
	reviewURL    string
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwords adapter.PasswordHasher,
	emailService adapter.EmailService,
	appBaseURL string,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:     userRepo,
		passwords:    passwords,
		emailService: emailService,
		reviewURL:    strings.TrimRight(appBaseURL, "/") + "/admin",
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	fullName := strings.TrimSpace(input.FullName)

	if email == "" || fullName == "" || !emailRegex.MatchString(email) {
		return nil, domainerror.InvalidInput(
			domainerror.ErrCodeMissingFields,
			"a valid email and full name are required",
			nil,
		)
	}

	if err := entity.ValidatePassword(input.Password); err != nil {
		return nil, domainerror.InvalidInput(
			domainerror.ErrCodeWeakPassword,
			err.Error(),
			domainerror.ErrWeakPassword,
		)
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, newEmailExistsError()
	}

	passwordHash, err := uc.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(email, fullName, passwordHash)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			return nil, newEmailExistsError()
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.notifyAdmins(ctx, user)

	return &RegisterUserOutput{
		Message: RegistrationPendingMessage,
		User:    user,
	}, nil
}

// notifyAdmins queues a pending approval notice per admin. Failures are logged only.
func (uc *RegisterUserUseCase) notifyAdmins(ctx context.Context, user *entity.User) {
	if uc.emailService == nil {
		return
	}
	admins, err := uc.userRepo.ListAdmins(ctx)
	if err != nil {
		slog.Error("Failed to list admins for registration notice", "error", err, "user_id", user.ID)
		return
	}
	for _, admin := range admins {
		err := uc.emailService.QueueRegistrationPendingEmail(ctx, adapter.QueueRegistrationPendingInput{
			AdminEmail:   admin.Email,
			AdminName:    admin.FullName,
			NewUserEmail: user.Email,
			NewUserName:  user.FullName,
			ReviewURL:    uc.reviewURL,
		})
		if err != nil {
			slog.Error("Failed to queue registration notice", "error", err, "admin_id", admin.ID)
		}
	}
}

func newEmailExistsError() *domainerror.DomainError {
	return domainerror.Conflict(
		domainerror.ErrCodeEmailExists,
		"email already registered",
		domainerror.ErrEmailAlreadyExists,
	)
}

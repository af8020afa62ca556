// Package adapter declares the ports the use cases depend on. The integration layer implements them.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/domain/entity"
)

// UserRepository stores accounts. Lookups of a missing user return ErrUserNotFound
// and a duplicate email on Create returns ErrEmailAlreadyExists.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error

	// List is ordered by creation date. pendingOnly keeps unapproved accounts.
	List(ctx context.Context, pendingOnly bool) ([]*entity.User, error)
	// ListAdmins returns every approved admin.
	ListAdmins(ctx context.Context) ([]*entity.User, error)
	Count(ctx context.Context) (total int64, pending int64, err error)
}

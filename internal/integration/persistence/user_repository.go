// Package persistence implements the application repositories on GORM.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
	"github.com/hubmanager/backend/internal/integration/persistence/model"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates the GORM backed account store.
func NewUserRepository(db *gorm.DB) adapter.UserRepository {
	return &userRepository{db: db}
}

// Create maps a unique email violation to ErrEmailAlreadyExists.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	err := r.db.WithContext(ctx).Create(model.UserFromEntity(user)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerror.ErrEmailAlreadyExists
	}
	return err
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *userRepository) findOne(ctx context.Context, cond string, arg interface{}) (*entity.User, error) {
	var row model.UserModel
	err := r.db.WithContext(ctx).Where(cond, arg).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerror.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.ToEntity(), nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Save(model.UserFromEntity(user)).Error
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("email = ?", email).Limit(1).Count(&n).Error
	return n > 0, err
}

// List returns accounts oldest first; pendingOnly keeps the ones awaiting approval.
func (r *userRepository) List(ctx context.Context, pendingOnly bool) ([]*entity.User, error) {
	query := r.db.WithContext(ctx)
	if pendingOnly {
		query = query.Where("is_approved = ?", false)
	}
	return r.list(query)
}

// ListAdmins returns the approved admins, the recipients of registration notices.
func (r *userRepository) ListAdmins(ctx context.Context) ([]*entity.User, error) {
	return r.list(r.db.WithContext(ctx).Where("is_admin = ? AND is_approved = ?", true, true))
}

func (r *userRepository) list(query *gorm.DB) ([]*entity.User, error) {
	var rows []model.UserModel
	if err := query.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	users := make([]*entity.User, 0, len(rows))
	for i := range rows {
		users = append(users, rows[i].ToEntity())
	}
	return users, nil
}

// Count returns the number of accounts and how many still await approval, in one query.
func (r *userRepository) Count(ctx context.Context) (int64, int64, error) {
	var totals struct {
		Total   int64
		Pending int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN is_approved THEN 0 ELSE 1 END), 0) AS pending").
		Scan(&totals).Error
	return totals.Total, totals.Pending, err
}

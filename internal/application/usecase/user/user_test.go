package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubmanager/backend/internal/application/adapter/adaptertest"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

func TestApproveUser(t *testing.T) {
	ctx := context.Background()
	store := adaptertest.NewStore()
	emails := &adaptertest.EmailService{}
	pending := entity.NewUser("ana@hub.es", "Ana", "hashed:x")
	require.NoError(t, store.Users.Create(ctx, pending))

	uc := NewApproveUserUseCase(store.Users, emails, "https://hub.example")

	out, err := uc.Execute(ctx, pending.ID)
	require.NoError(t, err)
	assert.True(t, out.User.IsApproved)
	require.Len(t, emails.Approved, 1)
	assert.Equal(t, "https://hub.example/login", emails.Approved[0].LoginURL)

	_, err = uc.Execute(ctx, pending.ID)
	require.NoError(t, err)
	assert.Len(t, emails.Approved, 1, "approving twice must not send a second email")

	listed, err := NewListUsersUseCase(store.Users).Execute(ctx, ListUsersInput{PendingOnly: true})
	require.NoError(t, err)
	assert.Empty(t, listed.Users)
}

func TestApproveUser_NotFound(t *testing.T) {
	store := adaptertest.NewStore()
	uc := NewApproveUserUseCase(store.Users, nil, "")

	_, err := uc.Execute(context.Background(), entity.NewUser("a@b.es", "A", "").ID)
	assert.True(t, domainerror.IsKind(err, domainerror.KindNotFound))
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	store := adaptertest.NewStore()
	admin := entity.NewAdminUser("admin@hub.es", "Admin", "")
	other := entity.NewUser("ana@hub.es", "Ana", "")
	require.NoError(t, store.Users.Create(ctx, admin))
	require.NoError(t, store.Users.Create(ctx, other))

	uc := NewDeleteUserUseCase(store.Users)

	err := uc.Execute(ctx, DeleteUserInput{UserID: admin.ID, ActorID: admin.ID})
	domainErr, ok := domainerror.As(err)
	require.True(t, ok)
	assert.Equal(t, domainerror.ErrCodeSelfDelete, domainErr.Code)

	require.NoError(t, uc.Execute(ctx, DeleteUserInput{UserID: other.ID, ActorID: admin.ID}))

	err = uc.Execute(ctx, DeleteUserInput{UserID: other.ID, ActorID: admin.ID})
	assert.True(t, domainerror.IsKind(err, domainerror.KindNotFound))
}

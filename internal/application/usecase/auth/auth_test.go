package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubmanager/backend/internal/application/adapter/adaptertest"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

type authFixture struct {
	store    *adaptertest.Store
	emails   *adaptertest.EmailService
	register *RegisterUserUseCase
	login    *LoginUserUseCase
	current  *GetCurrentUserUseCase
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	store := adaptertest.NewStore()
	emails := &adaptertest.EmailService{}
	passwords := adaptertest.PasswordHasher{}

	admin := entity.NewAdminUser("admin@hub.es", "Admin", "hashed:admin123")
	require.NoError(t, store.Users.Create(context.Background(), admin))

	return &authFixture{
		store:    store,
		emails:   emails,
		register: NewRegisterUserUseCase(store.Users, passwords, emails, "https://hub.example/"),
		login:    NewLoginUserUseCase(store.Users, passwords, &adaptertest.TokenService{}),
		current:  NewGetCurrentUserUseCase(store.Users),
	}
}

func TestRegisterUser_CreatesPendingUserAndNotifiesAdmins(t *testing.T) {
	f := newAuthFixture(t)

	out, err := f.register.Execute(context.Background(), RegisterUserInput{
		Email:    "  Ana@Hub.ES ",
		FullName: "Ana López",
		Password: "secret1",
	})
	require.NoError(t, err)

	assert.Equal(t, RegistrationPendingMessage, out.Message)
	assert.Equal(t, "ana@hub.es", out.User.Email)
	assert.False(t, out.User.IsApproved)
	assert.False(t, out.User.IsAdmin)

	require.Len(t, f.emails.Pending, 1)
	assert.Equal(t, "admin@hub.es", f.emails.Pending[0].AdminEmail)
	assert.Equal(t, "ana@hub.es", f.emails.Pending[0].NewUserEmail)
	assert.Equal(t, "https://hub.example/admin", f.emails.Pending[0].ReviewURL)
}

func TestRegisterUser_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input RegisterUserInput
		kind  domainerror.Kind
		code  domainerror.ErrorCode
	}{
		{"missing name", RegisterUserInput{Email: "a@b.es", Password: "secret1"}, domainerror.KindInvalidInput, domainerror.ErrCodeMissingFields},
		{"malformed email", RegisterUserInput{Email: "not-an-email", FullName: "A", Password: "secret1"}, domainerror.KindInvalidInput, domainerror.ErrCodeMissingFields},
		{"weak password", RegisterUserInput{Email: "a@b.es", FullName: "A", Password: "123"}, domainerror.KindInvalidInput, domainerror.ErrCodeWeakPassword},
		{"existing email", RegisterUserInput{Email: "ADMIN@hub.es", FullName: "A", Password: "secret1"}, domainerror.KindConflict, domainerror.ErrCodeEmailExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			_, err := f.register.Execute(context.Background(), tt.input)

			domainErr, ok := domainerror.As(err)
			require.True(t, ok, "expected a domain error, got %v", err)
			assert.Equal(t, tt.kind, domainErr.Kind)
			assert.Equal(t, tt.code, domainErr.Code)
		})
	}
}

func TestRegisterUser_EmailFailureDoesNotFailRegistration(t *testing.T) {
	f := newAuthFixture(t)
	f.emails.Err = assert.AnError

	out, err := f.register.Execute(context.Background(), RegisterUserInput{Email: "b@hub.es", FullName: "B", Password: "secret1"})
	require.NoError(t, err)
	assert.NotNil(t, out.User)
}

func TestLoginUser(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.register.Execute(ctx, RegisterUserInput{Email: "pending@hub.es", FullName: "P", Password: "secret1"})
	require.NoError(t, err)

	t.Run("admin gets a token", func(t *testing.T) {
		out, err := f.login.Execute(ctx, LoginUserInput{Email: "admin@hub.es", Password: "admin123"})
		require.NoError(t, err)
		assert.NotEmpty(t, out.AccessToken)
		assert.True(t, out.User.IsAdmin)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		_, err := f.login.Execute(ctx, LoginUserInput{Email: "admin@hub.es", Password: "nope"})
		assert.True(t, domainerror.IsKind(err, domainerror.KindUnauthorized))
	})

	t.Run("unknown email is unauthorized", func(t *testing.T) {
		_, err := f.login.Execute(ctx, LoginUserInput{Email: "ghost@hub.es", Password: "secret1"})
		assert.True(t, domainerror.IsKind(err, domainerror.KindUnauthorized))
	})

	t.Run("pending user is forbidden", func(t *testing.T) {
		_, err := f.login.Execute(ctx, LoginUserInput{Email: "pending@hub.es", Password: "secret1"})
		domainErr, ok := domainerror.As(err)
		require.True(t, ok)
		assert.Equal(t, domainerror.KindForbidden, domainErr.Kind)
		assert.Equal(t, domainerror.ErrCodeUserNotApproved, domainErr.Code)
	})
}

func TestGetCurrentUser_Missing(t *testing.T) {
	f := newAuthFixture(t)
	_, err := f.current.Execute(context.Background(), entity.NewUser("x@y.es", "X", "").ID)
	assert.True(t, domainerror.IsKind(err, domainerror.KindUnauthorized))
}

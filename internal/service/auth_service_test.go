package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"facility-monitor/internal/repository"
)

func newAuthFixture(t *testing.T) (AuthService, repository.AccountsRepository) {
	t.Helper()
	accounts := repository.NewMemoryAccountsRepo(repository.NewMemoryStore())
	return NewAuthService(accounts, zap.NewNop()), accounts
}

func TestRegisterAndLogin(t *testing.T) {
	auth, _ := newAuthFixture(t)
	ctx := context.Background()

	err := auth.Register(ctx, RegisterRequest{
		Username:  "carla",
		Email:     "carla@example.com",
		Password1: "s3cret-pass",
		Password2: "s3cret-pass",
	})
	require.NoError(t, err)

	p, err := auth.Login(ctx, "carla", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "carla", p.Username)
	assert.False(t, p.IsSuperuser)
	assert.NotEmpty(t, p.AccountID)
}

func TestLogin_WrongPassword(t *testing.T) {
	auth, _ := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, auth.Register(ctx, RegisterRequest{
		Username: "carla", Password1: "s3cret-pass", Password2: "s3cret-pass",
	}))

	_, err := auth.Login(ctx, "carla", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUserSameError(t *testing.T) {
	auth, _ := newAuthFixture(t)

	// Unknown user and wrong password must be indistinguishable.
	_, err := auth.Login(context.Background(), "nobody", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	auth, _ := newAuthFixture(t)

	err := auth.Register(context.Background(), RegisterRequest{
		Username: "carla", Password1: "one", Password2: "two",
	})
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestRegister_UsernameTaken(t *testing.T) {
	auth, _ := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, auth.Register(ctx, RegisterRequest{
		Username: "carla", Password1: "pass", Password2: "pass",
	}))
	err := auth.Register(ctx, RegisterRequest{
		Username: "carla", Password1: "other", Password2: "other",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegister_MissingFields(t *testing.T) {
	auth, _ := newAuthFixture(t)

	err := auth.Register(context.Background(), RegisterRequest{Username: "  ", Password1: "pass", Password2: "pass"})
	assert.ErrorIs(t, err, ErrMissingFields)

	err = auth.Register(context.Background(), RegisterRequest{Username: "carla"})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestRegister_NeverCreatesSuperuser(t *testing.T) {
	auth, accounts := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, auth.Register(ctx, RegisterRequest{
		Username: "carla", Password1: "pass", Password2: "pass",
	}))

	account, err := accounts.GetAccountByUsername(ctx, "carla")
	require.NoError(t, err)
	assert.False(t, account.IsSuperuser)
}

func TestUpsertSuperuser_Idempotent(t *testing.T) {
	_, accounts := newAuthFixture(t)
	ctx := context.Background()

	hash, err := HashPassword("ChangeMe123!")
	require.NoError(t, err)

	require.NoError(t, accounts.UpsertSuperuser(ctx, "admin", hash))
	require.NoError(t, accounts.UpsertSuperuser(ctx, "admin", hash))

	account, err := accounts.GetAccountByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, account.IsSuperuser)
}
